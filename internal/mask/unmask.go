package mask

import (
	"regexp"
	"strings"

	"rtide/internal/source"
)

// payloadPat matches an escaped payload inside a double-quoted literal.
const payloadPat = `((?:[^"\\]|\\.)*)`

var (
	qBegin  = regexp.QuoteMeta(SentinelBegin)
	qEnd    = regexp.QuoteMeta(SentinelEnd)
	qMarker = regexp.QuoteMeta(Marker)

	// Standalone placeholder, with and without its invisible() wrapper.
	reStandalone = regexp.MustCompile(`invisible\("` + qBegin + payloadPat + qEnd + `"\)`)
	reBare       = regexp.MustCompile(`"` + qBegin + payloadPat + qEnd + `"`)

	// Inline-after-brace placeholder: rendered as the block's first
	// statement, it merges back onto the open-brace line above it.
	reInlineBrace = regexp.MustCompile(`\n[ \t]*invisible\("` + regexp.QuoteMeta(InlineBegin) + payloadPat + qEnd + `"\)`)
	reBareBrace   = regexp.MustCompile(`invisible\("` + regexp.QuoteMeta(InlineBegin) + payloadPat + qEnd + `"\)`)

	// A marker the renderer pushed onto a continuation line.
	reWrapped = regexp.MustCompile(`\n[ \t]*` + qMarker)

	// An `else` the renderer pushed below a marker-carrying brace line.
	reElseBreak = regexp.MustCompile(`(` + qMarker + ` "` + payloadPat + `")\n[ \t]*(else\b)`)

	// One inline marker with its payload, plus the space before it.
	reInline = regexp.MustCompile(` ?` + qMarker + ` "` + payloadPat + `"`)
)

// Unmask is the exact inverse of Mask, applied to rendered text: it restores
// every placeholder to its original comment and repairs the line breaks the
// renderer introduced around markers.
//
// Substitution order matters: sentinel wrappers and bare delimiter patterns
// go first (they cover comments with no code attached), then inline markers,
// distinguishing end-of-line markers from markers with trailing code.
func Unmask(rendered string) string {
	// Comments that trailed an open brace come back first, onto the brace
	// line above their rendered position.
	text := reInlineBrace.ReplaceAllStringFunc(rendered, func(m string) string {
		sub := reInlineBrace.FindStringSubmatch(m)
		return " " + Unescape(sub[1])
	})
	text = replacePayload(reBareBrace, text)

	// Standalone placeholders become comment lines again; an empty payload
	// is a preserved blank slot and leaves a blank line.
	text = replacePayload(reStandalone, text)
	text = replacePayload(reBare, text)

	// The renderer may have wrapped a long statement directly before the
	// marker; the comment belongs to the end of the prior logical line.
	text = reWrapped.ReplaceAllString(text, " "+Marker)

	// An if-branch carrying a masked comment pushes `else` to its own line;
	// pull it back beside the closing brace so the restored comment cannot
	// split the if/else grouping.
	text = reElseBreak.ReplaceAllString(text, "$1 $3")

	lines := source.Lines(text)
	for i, line := range lines {
		lines[i] = restoreInline(line)
	}
	return source.Join(lines)
}

func replacePayload(re *regexp.Regexp, text string) string {
	return re.ReplaceAllStringFunc(text, func(m string) string {
		sub := re.FindStringSubmatch(m)
		return Unescape(sub[1])
	})
}

// restoreInline resolves every marker on one physical line. A marker at end
// of line re-attaches its comment there; a marker followed by more code
// (typically ` else {`) moves the comment past that code so nothing rendered
// is swallowed.
func restoreInline(line string) string {
	// Bounded: a pathological payload that re-spells the marker pattern
	// cannot loop forever.
	for i := 0; i < 1000; i++ {
		loc := reInline.FindStringSubmatchIndex(line)
		if loc == nil {
			break
		}
		comment := Unescape(line[loc[2]:loc[3]])
		before := line[:loc[0]]
		after := line[loc[1]:]
		if strings.TrimSpace(after) == "" {
			line = before + " " + comment
		} else {
			line = before + after + " " + comment
		}
	}
	return line
}

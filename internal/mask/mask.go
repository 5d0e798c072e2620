package mask

import (
	"strings"

	"rtide/internal/diag"
	"rtide/internal/source"
)

// Sentinels and the inline marker operator. Fixed, improbable strings; see
// the package comment for the collision caveat.
const (
	SentinelBegin = ".bEgIn_TiDy_InViSiBlE."
	SentinelEnd   = ".eNd_TiDy_InViSiBlE."
	// InlineBegin marks a trailing comment that follows an open brace; the
	// placeholder parses as the block's first statement and the unmasker
	// merges it back onto the brace line.
	InlineBegin = ".bEgIn_TiDy_InLiNe."
	Marker      = "%tIdE_cOmMeNt%"
)

// CommentKind classifies how a comment attaches to the surrounding code.
type CommentKind uint8

const (
	// Standalone is a comment occupying its own line.
	Standalone CommentKind = iota
	// Inline is a trailing comment following code on the same line.
	Inline
	// BlankSlot is a preserved blank-line run, encoded as an empty payload.
	BlankSlot
)

// CommentRecord accounts for one masked comment. Unmasking restores records
// 1:1, in order.
type CommentRecord struct {
	Kind    CommentKind
	Raw     string
	Escaped string
	Line    int // 1-based line in the body passed to Mask
}

// Mask rewrites every comment in body into placeholder expressions the
// parser accepts. When preserveBlank is set, each interior run of blank
// lines is additionally masked as one empty standalone placeholder.
//
// A comment whose text cannot be embedded as a well-formed string literal
// is a *diag.MaskingError; comments are never silently dropped.
func Mask(body string, preserveBlank bool) (string, []CommentRecord, error) {
	lines := source.Lines(body)
	out := make([]string, 0, len(lines))
	var records []CommentRecord

	// Quote state persists across lines: string literals may span them.
	var st scanState
	blankRun := false

	for i, line := range lines {
		if st.inString {
			// Mid string literal: the line is content, not layout, but a
			// comment may still follow where the literal closes.
			blankRun = false
			if cut := st.commentStart(line); cut >= 0 {
				comment := line[cut:]
				if reason := embeddable(comment); reason != "" {
					return "", nil, &diag.MaskingError{Line: i + 1, Comment: comment, Reason: reason}
				}
				escaped := Escape(comment)
				records = append(records, CommentRecord{Kind: Inline, Raw: comment, Escaped: escaped, Line: i + 1})
				out = append(out, maskInline(strings.TrimRight(line[:cut], " \t"), escaped))
				continue
			}
			out = append(out, line)
			continue
		}

		if source.IsBlank(line) {
			if !preserveBlank {
				out = append(out, line)
				continue
			}
			if blankRun {
				continue // coalesce the run into the one placeholder
			}
			blankRun = true
			records = append(records, CommentRecord{Kind: BlankSlot, Line: i + 1})
			out = append(out, standalonePlaceholder("", ""))
			continue
		}
		blankRun = false

		cut := st.commentStart(line)
		if cut < 0 {
			out = append(out, line)
			continue
		}

		comment := line[cut:]
		if reason := embeddable(comment); reason != "" {
			return "", nil, &diag.MaskingError{Line: i + 1, Comment: comment, Reason: reason}
		}
		escaped := Escape(comment)

		code := strings.TrimRight(line[:cut], " \t")
		if strings.TrimSpace(code) == "" {
			records = append(records, CommentRecord{Kind: Standalone, Raw: comment, Escaped: escaped, Line: i + 1})
			out = append(out, standalonePlaceholder(code, escaped))
			continue
		}

		records = append(records, CommentRecord{Kind: Inline, Raw: comment, Escaped: escaped, Line: i + 1})
		out = append(out, maskInline(code, escaped))
	}

	return source.Join(out), records, nil
}

func standalonePlaceholder(indent, escaped string) string {
	return indent + `invisible("` + SentinelBegin + escaped + SentinelEnd + `")`
}

// maskInline attaches a trailing comment to its code line. The plain form is
// the infix marker, but two line shapes need their own encodings to stay
// grammatical: after an open brace the payload becomes the block's first
// statement, and before a trailing comma the marker slips inside the
// argument list.
func maskInline(code, escaped string) string {
	switch code[len(code)-1] {
	case '{':
		return code + ` invisible("` + InlineBegin + escaped + SentinelEnd + `")`
	case ',':
		head := strings.TrimRight(code[:len(code)-1], " \t")
		return head + " " + Marker + " \"" + escaped + "\","
	default:
		return code + " " + Marker + " \"" + escaped + "\""
	}
}

// scanState tracks whether a scan position sits inside a string literal,
// carrying the state across physical lines.
type scanState struct {
	inString bool
	quote    byte
}

// commentStart returns the byte offset of the first `#` outside string
// literals, or -1. It updates the cross-line string state as it goes.
func (st *scanState) commentStart(line string) int {
	for i := 0; i < len(line); i++ {
		b := line[i]
		if st.inString {
			switch b {
			case '\\':
				i++
			case st.quote:
				st.inString = false
			}
			continue
		}
		switch b {
		case '"', '\'', '`':
			st.inString = true
			st.quote = b
		case '#':
			return i
		}
	}
	return -1
}

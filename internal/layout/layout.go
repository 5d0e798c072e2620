// Package layout holds the purely textual passes that run after unmasking:
// reindentation to a configurable width per nesting level, and optional
// relocation of trailing open braces onto their own line.
//
// Both passes scan with string- and comment-awareness so literal content is
// never rewritten, including the interior of multi-line strings.
package layout

import (
	"strings"

	"rtide/internal/source"
)

// lineScan walks physical lines, carrying string state across lines and
// accumulating the bracket balance of each line's code portion.
type lineScan struct {
	inString bool
	quote    byte
}

// balance returns the net open-bracket count of the line's code portion and
// whether the line's first non-blank character is a closing bracket. Text
// inside string literals and after a comment marker is ignored.
func (sc *lineScan) balance(line string) (net int, leadingCloser bool) {
	startedInString := sc.inString
	seen := false
	for i := 0; i < len(line); i++ {
		b := line[i]
		if sc.inString {
			switch b {
			case '\\':
				i++
			case sc.quote:
				sc.inString = false
			}
			continue
		}
		switch b {
		case '"', '\'', '`':
			sc.inString = true
			sc.quote = b
			seen = true
		case '#':
			return net, leadingCloser
		case '{', '(', '[':
			net++
			seen = true
		case '}', ')', ']':
			if !seen && !startedInString {
				leadingCloser = true
			}
			net--
			seen = true
		case ' ', '\t':
		default:
			seen = true
		}
	}
	return net, leadingCloser
}

// Reindent rewrites the leading whitespace of every line to depth × indent
// spaces, where depth follows the bracket balance of the preceding lines.
// Lines that start inside a multi-line string are left untouched, and
// whitespace-only lines become empty.
func Reindent(text string, indent int) string {
	lines := source.Lines(text)
	var sc lineScan
	depth := 0

	for i, line := range lines {
		startedInString := sc.inString
		net, leadingCloser := sc.balance(line)

		if startedInString {
			depth = clamp(depth + net)
			continue
		}
		if source.IsBlank(line) {
			lines[i] = ""
			continue
		}

		eff := depth
		if leadingCloser {
			eff--
		}
		lines[i] = strings.Repeat(" ", clamp(eff)*indent) + strings.Trim(line, " \t")
		depth = clamp(depth + net)
	}
	return source.Join(lines)
}

// BraceNewline splits a trailing open brace off every line that carries
// other content, placing the brace alone on the next line at the content
// line's indentation. A brace inside a string or comment never fires.
func BraceNewline(text string) string {
	lines := source.Lines(text)
	out := make([]string, 0, len(lines))
	var sc lineScan

	for _, line := range lines {
		startedInString := sc.inString
		sc.balance(line)

		if startedInString {
			out = append(out, line)
			continue
		}
		code := strings.TrimRight(codePortion(line, startedInString), " \t")
		if !strings.HasSuffix(code, "{") || code != strings.TrimRight(line, " \t") {
			// Either no trailing brace, or a comment follows it; a brace
			// that is not last on the line stays put.
			out = append(out, line)
			continue
		}
		content := strings.TrimRight(code[:len(code)-1], " \t")
		if strings.TrimSpace(content) == "" {
			out = append(out, line)
			continue
		}
		pad := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		out = append(out, content, pad+"{")
	}
	return source.Join(out)
}

// codePortion strips a trailing comment, respecting string literals.
func codePortion(line string, startedInString bool) string {
	st := lineScan{inString: startedInString}
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
			return line[:i]
		}
	}
	return line
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

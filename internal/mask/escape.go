package mask

import "strings"

// Escape encodes comment text for embedding in a double-quoted string
// literal. Unescape is its exact inverse; the pair is a lossless bijection
// for any text a comment can legally hold.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Unescape decodes an escaped payload back to raw comment text.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// embeddable reports why comment text cannot form a well-formed string
// literal, or "" when it can. Line terminators cannot survive inside a
// single-line payload and a NUL defeats downstream byte scanning.
func embeddable(s string) string {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			return "contains a newline"
		case '\r':
			return "contains a carriage return"
		case 0:
			return "contains a NUL byte"
		}
	}
	return ""
}

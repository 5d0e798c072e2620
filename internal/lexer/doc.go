// Package lexer turns (masked) source text into significant tokens.
//
// Newlines are emitted as tokens because they terminate expressions outside
// of bracketed contexts; horizontal whitespace and raw comments are skipped.
// The formatter normally masks comments before lexing, so a raw `#` comment
// is only seen here when comment preservation is disabled.
package lexer

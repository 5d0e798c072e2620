// Package token defines the token kinds of the R-style surface grammar.
// Comments never reach the token stream: the masker rewrites them into
// string payloads before the lexer runs.
package token

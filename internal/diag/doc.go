// Package diag defines the diagnostics the parser reports and the typed
// errors the formatter surfaces to callers: ParseError, MaskingError and
// ConfigError. Single-file invocations treat all three as hard failures;
// batch mode catches them per file.
package diag

package diag

import (
	"fmt"
	"strings"
)

// ParseError reports that the (masked) input is not syntactically valid.
// It carries the underlying engine diagnostics; no output is ever written
// for an input that fails to parse.
type ParseError struct {
	Diags []Diagnostic
}

func (e *ParseError) Error() string {
	if len(e.Diags) == 0 {
		return "parse failed"
	}
	parts := make([]string, 0, len(e.Diags))
	for _, d := range e.Diags {
		parts = append(parts, d.String())
	}
	return "parse failed: " + strings.Join(parts, "; ")
}

// MaskingError reports a comment whose text defeats the escaping scheme.
// It fires before any rendering occurs; the comment is never dropped.
type MaskingError struct {
	Line    int
	Comment string
	Reason  string
}

func (e *MaskingError) Error() string {
	return fmt.Sprintf("line %d: cannot mask comment %q: %s", e.Line, e.Comment, e.Reason)
}

// ConfigError reports invalid or ambiguous configuration. It fails fast,
// before any processing begins.
type ConfigError struct {
	Option string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Option, e.Reason)
}

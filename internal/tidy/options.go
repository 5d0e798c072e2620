package tidy

import (
	"fmt"

	"rtide/internal/diag"
)

// Width bounds accepted for the re-serializer, matching the historical tool.
const (
	MinWidth = 20
	MaxWidth = 500
)

// Options configures one formatting invocation. A fresh value governs each
// call; nothing here is shared or mutated.
type Options struct {
	// Comment enables comment preservation (masking/unmasking).
	Comment bool
	// Blank preserves leading/trailing blank-line counts, and interior
	// blank runs when Comment is also set.
	Blank bool
	// Arrow rewrites `=` variable assignments to `<-`.
	Arrow bool
	// BraceNewline moves trailing open braces to their own line.
	BraceNewline bool
	// Indent is the number of spaces per nesting level.
	Indent int
	// WidthCutoff is the line-wrap width passed to the re-serializer.
	WidthCutoff int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Comment:     true,
		Blank:       true,
		Indent:      4,
		WidthCutoff: 80,
	}
}

func (o Options) withDefaults() Options {
	if o.Indent == 0 {
		o.Indent = 4
	}
	if o.WidthCutoff == 0 {
		o.WidthCutoff = 80
	}
	return o
}

// Validate fails fast, before any processing begins.
func (o Options) Validate() error {
	if o.WidthCutoff < MinWidth || o.WidthCutoff > MaxWidth {
		return &diag.ConfigError{
			Option: "width_cutoff",
			Reason: fmt.Sprintf("%d is outside [%d, %d]", o.WidthCutoff, MinWidth, MaxWidth),
		}
	}
	if o.Indent < 0 {
		return &diag.ConfigError{Option: "indent", Reason: "must not be negative"}
	}
	return nil
}

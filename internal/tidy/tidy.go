// Package tidy is the round-trip formatting engine: it masks comments,
// parses, re-serializes, unmasks and normalizes layout, preserving what a
// bare parse/pretty-print cycle would discard.
//
// Every stage fully consumes its predecessor's output; the unmasking and
// reindentation repairs need the complete rendered text to work on.
package tidy

import (
	"strings"

	"rtide/internal/deparse"
	"rtide/internal/layout"
	"rtide/internal/mask"
	"rtide/internal/parser"
	"rtide/internal/source"
)

// Result is what one invocation returns: the final text plus the
// masked-but-rendered intermediate, which is useful for diagnosing masking
// problems. Writing either anywhere is the caller's business.
type Result struct {
	// Text is the formatted source.
	Text string
	// Masked is the rendered text before unmasking and layout repair.
	Masked string
	// Comments accounts for every comment carried through the transform.
	Comments []mask.CommentRecord
}

const maxParseDiags = 32

// Source formats one piece of source text. Errors are *diag.ConfigError,
// *diag.MaskingError or *diag.ParseError; on error no usable output exists
// and none of the input should be overwritten.
func Source(text string, opts Options) (Result, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	// Nothing but blank lines: there is no structure to normalize.
	if source.IsBlank(text) {
		return Result{Text: text}, nil
	}

	runs, body := source.RecordBlankRuns(text)
	if !opts.Blank {
		// Blank-run preservation off: edge runs collapse, keeping at most
		// the conventional final newline.
		runs.Leading = 0
		if runs.Trailing > 1 {
			runs.Trailing = 1
		}
	}

	masked := body
	var records []mask.CommentRecord
	if opts.Comment {
		var err error
		masked, records, err = mask.Mask(body, opts.Blank)
		if err != nil {
			return Result{}, err
		}
	}

	exprs, err := parser.Parse(source.NewVirtual("<input>", []byte(masked)), maxParseDiags)
	if err != nil {
		return Result{}, err
	}

	// Cheap pre-check: no `=` in the masked text means no tree can hold an
	// `=` assignment, so the walk is skipped entirely.
	if opts.Arrow && strings.Contains(masked, "=") {
		rewriteAssignments(exprs)
	}

	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, deparse.Expr(e, opts.WidthCutoff))
	}
	rendered := strings.Join(parts, "\n")

	out := rendered
	if opts.Comment {
		out = mask.Unmask(out)
	}
	out = layout.Reindent(out, opts.Indent)
	if opts.BraceNewline {
		out = layout.BraceNewline(out)
	}

	return Result{
		Text:     runs.Restore(out),
		Masked:   rendered,
		Comments: records,
	}, nil
}

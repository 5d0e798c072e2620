package tidy

import "fmt"

// LegacyOptions carries the deprecated option names. A nil field means the
// option was not supplied.
type LegacyOptions struct {
	KeepComment    *bool // keep.comment    -> Comment
	KeepBlankLine  *bool // keep.blank.line -> Blank
	ReplaceAssign  *bool // replace.assign  -> Arrow
	LeftBrace      *bool // left.brace.newline -> BraceNewline
	ReindentSpaces *int  // reindent.spaces -> Indent
	Width          *int  // width           -> WidthCutoff
}

// Merge applies supplied legacy values onto opts and returns one deprecation
// warning per legacy option used. explicit names the current-name options the
// caller set directly; those always win over their legacy twin, so the
// resolution is deterministic. Legacy options are never silently ignored.
func (l LegacyOptions) Merge(opts Options, explicit map[string]bool) (Options, []string) {
	var warnings []string
	apply := func(old, current string, set func()) {
		warnings = append(warnings,
			fmt.Sprintf("option %q is deprecated; use %q", old, current))
		if !explicit[current] {
			set()
		}
	}

	if l.KeepComment != nil {
		apply("keep.comment", "comment", func() { opts.Comment = *l.KeepComment })
	}
	if l.KeepBlankLine != nil {
		apply("keep.blank.line", "blank", func() { opts.Blank = *l.KeepBlankLine })
	}
	if l.ReplaceAssign != nil {
		apply("replace.assign", "arrow", func() { opts.Arrow = *l.ReplaceAssign })
	}
	if l.LeftBrace != nil {
		apply("left.brace.newline", "brace-newline", func() { opts.BraceNewline = *l.LeftBrace })
	}
	if l.ReindentSpaces != nil {
		apply("reindent.spaces", "indent", func() { opts.Indent = *l.ReindentSpaces })
	}
	if l.Width != nil {
		apply("width", "width-cutoff", func() { opts.WidthCutoff = *l.Width })
	}
	return opts, warnings
}

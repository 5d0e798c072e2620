package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rtide/internal/tidy"
)

const configFile = "rtide.toml"

// fileConfig mirrors the [format] table of rtide.toml. Pointer fields
// distinguish "absent" from "false"/"zero".
type fileConfig struct {
	Format struct {
		Comment      *bool `toml:"comment"`
		Blank        *bool `toml:"blank"`
		Arrow        *bool `toml:"arrow"`
		BraceNewline *bool `toml:"brace_newline"`
		Indent       *int  `toml:"indent"`
		WidthCutoff  *int  `toml:"width_cutoff"`
	} `toml:"format"`
}

// resolveOptions layers configuration deterministically: documented
// defaults, then rtide.toml, then explicitly-set current flags, then legacy
// flags (which warn, and never override an explicit current flag).
func resolveOptions(cmd *cobra.Command) (tidy.Options, error) {
	opts := tidy.DefaultOptions()

	if err := applyConfigFile(&opts); err != nil {
		return opts, err
	}

	flags := cmd.Flags()
	explicit := map[string]bool{}
	for _, name := range []string{"comment", "blank", "arrow", "brace-newline", "indent", "width-cutoff"} {
		explicit[name] = flags.Changed(name)
	}
	if explicit["comment"] {
		opts.Comment, _ = flags.GetBool("comment")
	}
	if explicit["blank"] {
		opts.Blank, _ = flags.GetBool("blank")
	}
	if explicit["arrow"] {
		opts.Arrow, _ = flags.GetBool("arrow")
	}
	if explicit["brace-newline"] {
		opts.BraceNewline, _ = flags.GetBool("brace-newline")
	}
	if explicit["indent"] {
		opts.Indent, _ = flags.GetInt("indent")
	}
	if explicit["width-cutoff"] {
		opts.WidthCutoff, _ = flags.GetInt("width-cutoff")
	}

	var legacy tidy.LegacyOptions
	if flags.Changed("keep-comment") {
		v, _ := flags.GetBool("keep-comment")
		legacy.KeepComment = &v
	}
	if flags.Changed("keep-blank-line") {
		v, _ := flags.GetBool("keep-blank-line")
		legacy.KeepBlankLine = &v
	}
	if flags.Changed("replace-assign") {
		v, _ := flags.GetBool("replace-assign")
		legacy.ReplaceAssign = &v
	}
	if flags.Changed("left-brace-newline") {
		v, _ := flags.GetBool("left-brace-newline")
		legacy.LeftBrace = &v
	}
	if flags.Changed("reindent-spaces") {
		v, _ := flags.GetInt("reindent-spaces")
		legacy.ReindentSpaces = &v
	}
	if flags.Changed("width") {
		v, _ := flags.GetInt("width")
		legacy.Width = &v
	}

	opts, warnings := legacy.Merge(opts, explicit)
	warnColor := color.New(color.FgYellow)
	for _, w := range warnings {
		warnColor.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	return opts, opts.Validate()
}

func applyConfigFile(opts *tidy.Options) error {
	var cfg fileConfig
	if _, err := toml.DecodeFile(configFile, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%s: %w", configFile, err)
	}

	f := cfg.Format
	if f.Comment != nil {
		opts.Comment = *f.Comment
	}
	if f.Blank != nil {
		opts.Blank = *f.Blank
	}
	if f.Arrow != nil {
		opts.Arrow = *f.Arrow
	}
	if f.BraceNewline != nil {
		opts.BraceNewline = *f.BraceNewline
	}
	if f.Indent != nil {
		opts.Indent = *f.Indent
	}
	if f.WidthCutoff != nil {
		opts.WidthCutoff = *f.WidthCutoff
	}
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rtide/internal/driver"
	"rtide/internal/tidy"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format R source files",
	Long:  `Format files or directories in place. Pass "-" to read from stdin and print to stdout.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("comment", true, "preserve comments")
	fmtCmd.Flags().Bool("blank", true, "preserve leading/trailing blank lines")
	fmtCmd.Flags().Bool("arrow", false, "rewrite = assignments to <-")
	fmtCmd.Flags().Bool("brace-newline", false, "move trailing open braces to their own line")
	fmtCmd.Flags().Int("indent", 4, "spaces per nesting level")
	fmtCmd.Flags().Int("width-cutoff", 80, "line-wrap width for the re-serializer [20,500]")

	fmtCmd.Flags().Bool("check", false, "check if files are properly formatted")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().StringP("format", "f", "text", "output format (text|json)")
	fmtCmd.Flags().BoolP("recursive", "r", false, "descend into directories")
	fmtCmd.Flags().Int("jobs", 0, "max parallel workers (0 = number of CPUs)")
	fmtCmd.Flags().Bool("cache", false, "reuse cached results for unchanged files")

	// Deprecated spellings kept for compatibility; they warn and map onto
	// the flags above.
	fmtCmd.Flags().Bool("keep-comment", true, "")
	fmtCmd.Flags().Bool("keep-blank-line", true, "")
	fmtCmd.Flags().Bool("replace-assign", false, "")
	fmtCmd.Flags().Bool("left-brace-newline", false, "")
	fmtCmd.Flags().Int("reindent-spaces", 4, "")
	fmtCmd.Flags().Int("width", 80, "")
	for _, name := range []string{
		"keep-comment", "keep-blank-line", "replace-assign",
		"left-brace-newline", "reindent-spaces", "width",
	} {
		_ = fmtCmd.Flags().MarkHidden(name)
	}
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	check, _ := cmd.Flags().GetBool("check")
	writeToStdout, _ := cmd.Flags().GetBool("stdout")
	outputFormat, _ := cmd.Flags().GetString("format")
	recursive, _ := cmd.Flags().GetBool("recursive")
	jobs, _ := cmd.Flags().GetInt("jobs")
	useCache, _ := cmd.Flags().GetBool("cache")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}

	if len(args) == 1 && args[0] == "-" {
		return fmtStdin(cmd.OutOrStdout(), opts)
	}

	dopts := driver.Options{
		Tidy:      opts,
		Check:     check,
		Stdout:    writeToStdout,
		Recursive: recursive,
		Jobs:      jobs,
	}
	if useCache {
		cache, err := driver.OpenCache("rtide")
		if err != nil {
			fmt.Fprintf(os.Stderr, "fmt: cache disabled: %v\n", err)
		} else {
			dopts.Cache = cache
		}
	}

	results, err := driver.FormatPaths(cmd.Context(), args, dopts)
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool
	switch outputFormat {
	case "text":
		renderFmtText(results, check, writeToStdout, quiet, &hasErrors, &hasChanges)
	case "json":
		if err := renderFmtJSON(results, check); err != nil {
			return err
		}
		for _, res := range results {
			hasErrors = hasErrors || res.Err != nil
			hasChanges = hasChanges || res.Changed
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

func fmtStdin(out io.Writer, opts tidy.Options) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}
	res, err := tidy.Source(string(data), opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, res.Text)
	return err
}

var errColor = color.New(color.FgRed)

func renderFmtText(results []driver.Result, check, writeToStdout, quiet bool, hasErrors, hasChanges *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			errColor.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}

		if writeToStdout {
			_, _ = os.Stdout.Write(res.Formatted)
			continue
		}

		if check {
			if res.Changed {
				*hasChanges = true
				if !quiet {
					fmt.Println(res.Path)
				}
			}
			continue
		}

		if res.Changed && !quiet {
			fmt.Printf("reformatted %s\n", res.Path)
		}
	}
}

func renderFmtJSON(results []driver.Result, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

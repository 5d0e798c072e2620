package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rtide/internal/source"
	"rtide/internal/tidy"
)

// maskCmd exposes the masked-but-rendered intermediate of the pipeline,
// which is the first thing to look at when a comment comes back mangled.
var maskCmd = &cobra.Command{
	Use:   "mask [flags] <file>",
	Short: "Print the masked intermediate text for a file (debugging aid)",
	Args:  cobra.ExactArgs(1),
	RunE:  runMask,
}

func init() {
	maskCmd.Flags().Int("width-cutoff", 80, "line-wrap width for the re-serializer [20,500]")
}

func runMask(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		var sf *source.File
		sf, err = source.Load(args[0])
		if sf != nil {
			data = sf.Content
		}
	}
	if err != nil {
		return err
	}

	opts := tidy.DefaultOptions()
	opts.WidthCutoff, _ = cmd.Flags().GetInt("width-cutoff")
	res, err := tidy.Source(string(data), opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Masked)
	return nil
}

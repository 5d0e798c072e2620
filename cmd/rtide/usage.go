package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rtide/internal/driver"
)

var usageCmd = &cobra.Command{
	Use:   "usage [flags] <file>",
	Short: "Print the declared parameter list of each top-level function",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsage,
}

func init() {
	usageCmd.Flags().Int("width-cutoff", 80, "line-wrap width for signatures [20,500]")
}

func runUsage(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	width, _ := cmd.Flags().GetInt("width-cutoff")
	usages, err := driver.Usages(args[0], width)
	if err != nil {
		return err
	}
	for _, u := range usages {
		fmt.Fprintln(cmd.OutOrStdout(), u.Signature)
	}
	return nil
}

package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rtide/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rtide",
	Short: "Tidy formatter for R source files",
	Long:  `rtide reformats R code through a parse/print round trip without losing comments or intentional blank lines`,
}

func main() {
	rootCmd.Version = version.Number

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(maskCmd)
	rootCmd.AddCommand(usageCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	cobra.OnInitialize(func() {
		mode, _ := rootCmd.PersistentFlags().GetString("color")
		switch mode {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		default:
			color.NoColor = !isTerminal(os.Stdout)
		}
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Package version exposes the build identity of the rtide binary.
package version

import "github.com/fatih/color"

// Set at build time via -ldflags "-X rtide/internal/version.Number=…".
var (
	Number = "0.1.0-dev"
	Commit = ""
	Date   = ""
)

var numberColor = color.New(color.FgCyan, color.Bold)

// String renders the one-line version banner, colorized when color is
// enabled for the process.
func String() string {
	s := "rtide " + numberColor.Sprint(Number)
	switch {
	case Commit != "" && Date != "":
		s += " (" + Commit + ", " + Date + ")"
	case Commit != "":
		s += " (" + Commit + ")"
	case Date != "":
		s += " (" + Date + ")"
	}
	return s
}

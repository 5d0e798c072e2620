package source

import "strings"

// BlankRuns records the maximal runs of newline characters at the very start
// and very end of the raw input. Structural parsing strips both; the recorded
// counts are reattached verbatim after all other stages.
type BlankRuns struct {
	Leading  int
	Trailing int
}

// RecordBlankRuns measures the edge newline runs of text and returns the
// counts together with the trimmed body the rest of the pipeline operates on.
func RecordBlankRuns(text string) (BlankRuns, string) {
	var runs BlankRuns
	for runs.Leading < len(text) && text[runs.Leading] == '\n' {
		runs.Leading++
	}
	body := text[runs.Leading:]
	for runs.Trailing < len(body) && body[len(body)-1-runs.Trailing] == '\n' {
		runs.Trailing++
	}
	body = body[:len(body)-runs.Trailing]
	return runs, body
}

// Restore reattaches the recorded runs around the formatted body.
func (r BlankRuns) Restore(body string) string {
	return strings.Repeat("\n", r.Leading) + body + strings.Repeat("\n", r.Trailing)
}

// IsBlank reports whether text contains nothing but whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Lines splits text into physical lines without their terminators.
func Lines(text string) []string {
	return strings.Split(text, "\n")
}

// Join is the inverse of Lines.
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}

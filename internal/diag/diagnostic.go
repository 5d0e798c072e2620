package diag

import "fmt"

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	SevWarning Severity = iota
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Pos is a 1-based line/column position in the input.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Diagnostic is a single parser report.
type Diagnostic struct {
	Severity Severity
	Pos      Pos
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Pos, d.Severity, d.Message)
}

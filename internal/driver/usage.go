package driver

import (
	"rtide/internal/ast"
	"rtide/internal/deparse"
	"rtide/internal/mask"
	"rtide/internal/parser"
	"rtide/internal/source"
	"rtide/internal/tidy"
)

// FunctionUsage is the rendered call signature of one top-level function
// definition.
type FunctionUsage struct {
	Name      string
	Signature string
}

// Usages parses a file and renders the declared parameter list of every
// top-level `name <- function(...)` definition.
func Usages(path string, width int) ([]FunctionUsage, error) {
	sf, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return usagesOf(sf, width)
}

func usagesOf(sf *source.File, width int) ([]FunctionUsage, error) {
	_, body := source.RecordBlankRuns(string(sf.Content))
	masked, _, err := mask.Mask(body, false)
	if err != nil {
		return nil, err
	}
	exprs, err := parser.Parse(source.NewVirtual(sf.Path, []byte(masked)), maxUsageDiags)
	if err != nil {
		return nil, err
	}
	if width < tidy.MinWidth {
		width = tidy.MinWidth
	}

	var usages []FunctionUsage
	for _, e := range exprs {
		assign, ok := e.(*ast.Assign)
		if !ok {
			continue
		}
		name, ok := assign.X.(*ast.Ident)
		if !ok {
			continue
		}
		value := assign.Y
		// A trailing comment on the definition rides along as a marker
		// infix; the function sits on its left.
		if bin, isMarker := value.(*ast.Binary); isMarker && bin.OpText == mask.Marker {
			value = bin.X
		}
		fn, ok := value.(*ast.Function)
		if !ok {
			continue
		}
		usages = append(usages, FunctionUsage{
			Name:      name.Name,
			Signature: deparse.Usage(name.Name, fn, width),
		})
	}
	return usages, nil
}

const maxUsageDiags = 32

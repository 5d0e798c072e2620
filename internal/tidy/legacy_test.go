package tidy

import (
	"strings"
	"testing"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestLegacyMergeAppliesValues(t *testing.T) {
	legacy := LegacyOptions{
		KeepComment:    boolPtr(false),
		ReplaceAssign:  boolPtr(true),
		ReindentSpaces: intPtr(2),
		Width:          intPtr(120),
	}
	opts, warnings := legacy.Merge(DefaultOptions(), nil)

	if opts.Comment {
		t.Fatal("keep.comment=false not applied")
	}
	if !opts.Arrow {
		t.Fatal("replace.assign=true not applied")
	}
	if opts.Indent != 2 || opts.WidthCutoff != 120 {
		t.Fatalf("numeric legacy options not applied: %+v", opts)
	}
	if len(warnings) != 4 {
		t.Fatalf("want 4 deprecation warnings, got %d: %v", len(warnings), warnings)
	}
	for _, w := range warnings {
		if !strings.Contains(w, "deprecated") {
			t.Fatalf("warning misses deprecation notice: %q", w)
		}
	}
}

func TestLegacyMergeCurrentNameWins(t *testing.T) {
	base := DefaultOptions()
	base.WidthCutoff = 100
	legacy := LegacyOptions{Width: intPtr(60)}

	opts, warnings := legacy.Merge(base, map[string]bool{"width-cutoff": true})
	if opts.WidthCutoff != 100 {
		t.Fatalf("explicit current option overridden: %d", opts.WidthCutoff)
	}
	// The deprecation warning is still emitted.
	if len(warnings) != 1 {
		t.Fatalf("want 1 warning, got %d", len(warnings))
	}
}

func TestLegacyMergeUntouchedWhenAbsent(t *testing.T) {
	opts, warnings := LegacyOptions{}.Merge(DefaultOptions(), nil)
	if opts != DefaultOptions() {
		t.Fatalf("options changed with no legacy input: %+v", opts)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

func TestValidateBounds(t *testing.T) {
	opts := DefaultOptions()
	opts.WidthCutoff = MinWidth
	if err := opts.Validate(); err != nil {
		t.Fatalf("min width should validate: %v", err)
	}
	opts.WidthCutoff = MaxWidth
	if err := opts.Validate(); err != nil {
		t.Fatalf("max width should validate: %v", err)
	}
	opts.WidthCutoff = 80
	opts.Indent = -1
	if err := opts.Validate(); err == nil {
		t.Fatal("negative indent should not validate")
	}
}

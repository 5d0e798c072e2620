package tidy

import (
	"errors"
	"strings"
	"testing"

	"rtide/internal/diag"
	"rtide/internal/mask"
)

func format(t *testing.T, text string, opts Options) string {
	t.Helper()

	res, err := Source(text, opts)
	if err != nil {
		t.Fatalf("Source(%q): %v", text, err)
	}
	return res.Text
}

func TestArrowWithInlineCommentAndTrailingBlanks(t *testing.T) {
	opts := DefaultOptions()
	opts.Arrow = true

	got := format(t, "x=1 # set x\ny=2\n\n\n", opts)
	want := "x <- 1 # set x\ny <- 2\n\n\n"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestCommentOnlyInputSurvivesUnchanged(t *testing.T) {
	got := format(t, "# just a comment\n", DefaultOptions())
	if got != "# just a comment\n" {
		t.Fatalf("got %q", got)
	}
}

func TestElseAfterCommentedBrace(t *testing.T) {
	in := "if (a) {\n  x\n} # c\nelse {\n  y\n}\n"
	want := "if (a) {\n    x\n} else { # c\n    y\n}\n"
	got := format(t, in, DefaultOptions())
	if got != want {
		t.Fatalf("want:\n%s\ngot:\n%s", want, got)
	}
}

func TestIdempotence(t *testing.T) {
	opts := DefaultOptions()
	opts.Arrow = true
	cases := []string{
		"x=1 # set x\ny=2\n\n\n",
		"# just a comment\n",
		"if (a) {\n  x\n} # c\nelse {\n  y\n}\n",
		"f <- function(x, y = 2) {\n  # body comment\n  x + y\n}\n",
		"a <- 1\n\n# section\nb <- 2\n",
	}
	for _, in := range cases {
		once := format(t, in, opts)
		twice := format(t, once, opts)
		if once != twice {
			t.Fatalf("not idempotent for %q:\nonce  %q\ntwice %q", in, once, twice)
		}
	}
}

func TestStandaloneCommentAnyLengthRoundTrips(t *testing.T) {
	// Sweeps the placeholder length across the renderer's wrap window at the
	// default width; every length must come back verbatim.
	for n := 1; n <= 120; n++ {
		in := "# " + strings.Repeat("a", n) + "\n"
		got := format(t, in, DefaultOptions())
		if got != in {
			t.Fatalf("comment length %d: got %q", n, got)
		}
	}
}

func TestBraceTrailingCommentAnyLengthRoundTrips(t *testing.T) {
	for n := 1; n <= 120; n++ {
		in := "f <- function() { # " + strings.Repeat("b", n) + "\n    x\n}\n"
		got := format(t, in, DefaultOptions())
		if got != in {
			t.Fatalf("comment length %d: got %q", n, got)
		}
		if strings.Contains(got, mask.SentinelEnd) {
			t.Fatalf("comment length %d: sentinel leaked: %q", n, got)
		}
	}
}

func TestCommentSetIsPreserved(t *testing.T) {
	in := "# header\nx <- 1 # inline\n# footer\n"
	res, err := Source(in, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []string{"# header", "# inline", "# footer"} {
		if !strings.Contains(res.Text, c) {
			t.Fatalf("comment %q lost:\n%s", c, res.Text)
		}
	}
	if len(res.Comments) != 3 {
		t.Fatalf("want 3 comment records, got %d", len(res.Comments))
	}
}

func TestCommentsDroppedWhenDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.Comment = false
	got := format(t, "x <- 1 # gone\n", opts)
	if strings.Contains(got, "#") {
		t.Fatalf("comment survived with preservation off: %q", got)
	}
	if !strings.Contains(got, "x <- 1") {
		t.Fatalf("code lost: %q", got)
	}
}

func TestEdgeBlankRunsPreserved(t *testing.T) {
	got := format(t, "\n\nx <- 1\n\n\n", DefaultOptions())
	if got != "\n\nx <- 1\n\n\n" {
		t.Fatalf("got %q", got)
	}
}

func TestEdgeBlankRunsCollapseWhenDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.Blank = false
	got := format(t, "\n\nx <- 1\n\n\n", opts)
	if got != "x <- 1\n" {
		t.Fatalf("got %q", got)
	}
}

func TestInteriorBlankRunCollapsesToOne(t *testing.T) {
	got := format(t, "a <- 1\n\n\n\nb <- 2\n", DefaultOptions())
	if got != "a <- 1\n\nb <- 2\n" {
		t.Fatalf("got %q", got)
	}
}

func TestBlankOnlyInputPassesThrough(t *testing.T) {
	for _, in := range []string{"", "\n", "\n\n\n", "   \n\t\n"} {
		if got := format(t, in, DefaultOptions()); got != in {
			t.Fatalf("blank input %q changed to %q", in, got)
		}
	}
}

func TestArrowLeavesNamedArgumentsAlone(t *testing.T) {
	opts := DefaultOptions()
	opts.Arrow = true
	got := format(t, "m = mean(x, na.rm = TRUE)\n", opts)
	want := "m <- mean(x, na.rm = TRUE)\n"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestArrowOffKeepsEquals(t *testing.T) {
	got := format(t, "x = 1\n", DefaultOptions())
	if got != "x = 1\n" {
		t.Fatalf("got %q", got)
	}
}

func TestIndentOption(t *testing.T) {
	opts := DefaultOptions()
	opts.Indent = 2
	got := format(t, "if (a) {\nx\n}\n", opts)
	want := "if (a) {\n  x\n}\n"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestBraceNewlineOption(t *testing.T) {
	opts := DefaultOptions()
	opts.BraceNewline = true
	got := format(t, "if (a) {\n  x\n}\n", opts)
	want := "if (a)\n{\n    x\n}\n"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestWidthCutoffValidation(t *testing.T) {
	for _, w := range []int{-1, 5, 19, 501} {
		opts := DefaultOptions()
		opts.WidthCutoff = w
		_, err := Source("x <- 1\n", opts)
		if err == nil {
			t.Fatalf("width %d: want ConfigError", w)
		}
		var cerr *diag.ConfigError
		if !errors.As(err, &cerr) {
			t.Fatalf("width %d: want *diag.ConfigError, got %T", w, err)
		}
	}
}

func TestParseErrorPropagates(t *testing.T) {
	_, err := Source("f(1,\n", DefaultOptions())
	if err == nil {
		t.Fatal("want parse error")
	}
	var perr *diag.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("want *diag.ParseError, got %T", err)
	}
}

func TestMaskedIntermediateExposed(t *testing.T) {
	res, err := Source("x <- 1 # note\n", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Masked, mask.Marker) {
		t.Fatalf("masked intermediate should carry the placeholder, got %q", res.Masked)
	}
	if strings.Contains(res.Text, mask.Marker) {
		t.Fatalf("final text leaked a placeholder: %q", res.Text)
	}
}

func TestFormatterNormalizesSpacing(t *testing.T) {
	got := format(t, "y<-f( a,b ,c )\n", DefaultOptions())
	if got != "y <- f(a, b, c)\n" {
		t.Fatalf("got %q", got)
	}
}

func TestHashInsideStringNotTreatedAsComment(t *testing.T) {
	in := "u <- \"x#y\"\n"
	if got := format(t, in, DefaultOptions()); got != in {
		t.Fatalf("got %q", got)
	}
}

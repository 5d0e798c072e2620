package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"rtide/internal/source"
	"rtide/internal/tidy"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFormatPathsWritesChangedFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.R", "x=1\ny   <-2\n")

	results, err := FormatPaths(context.Background(), []string{path}, Options{Tidy: tidy.DefaultOptions()})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("results: %+v", results)
	}
	if !results[0].Changed {
		t.Fatal("file should be reported changed")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "x = 1\ny <- 2\n" {
		t.Fatalf("written content: %q", got)
	}
}

func TestFormatPathsCheckModeDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.R", "x=1\n")

	results, err := FormatPaths(context.Background(), []string{path},
		Options{Tidy: tidy.DefaultOptions(), Check: true})
	if err != nil {
		t.Fatal(err)
	}
	if !results[0].Changed {
		t.Fatal("check should report the pending change")
	}

	got, _ := os.ReadFile(path)
	if string(got) != "x=1\n" {
		t.Fatalf("check mode rewrote the file: %q", got)
	}
}

func TestFormatPathsUnchangedFileLeftAlone(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.R", "x <- 1\n")

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	before := info.ModTime()

	results, err := FormatPaths(context.Background(), []string{path}, Options{Tidy: tidy.DefaultOptions()})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Changed {
		t.Fatal("canonical input reported as changed")
	}

	info, err = os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(before) {
		t.Fatal("unchanged file was rewritten")
	}
}

func TestFormatPathsContinuesPastBrokenFile(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.R", "f(1,\n")
	good := writeFile(t, dir, "good.R", "x=1\n")

	results, err := FormatPaths(context.Background(), []string{bad, good},
		Options{Tidy: tidy.DefaultOptions()})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}

	byPath := map[string]Result{}
	for _, r := range results {
		byPath[r.Path] = r
	}
	if byPath[bad].Err == nil {
		t.Fatal("broken file should carry its error")
	}
	if byPath[good].Err != nil {
		t.Fatalf("good file failed: %v", byPath[good].Err)
	}

	got, _ := os.ReadFile(bad)
	if string(got) != "f(1,\n" {
		t.Fatalf("broken file was overwritten: %q", got)
	}
	got, _ = os.ReadFile(good)
	if string(got) != "x = 1\n" {
		t.Fatalf("good file not formatted: %q", got)
	}
}

func TestCollectSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.R", "b\n")
	writeFile(t, dir, "a.r", "a\n")
	writeFile(t, dir, "notes.txt", "skip\n")
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "c.R", "c\n")

	flat, err := collectSourceFiles(context.Background(), []string{dir}, false)
	if err != nil {
		t.Fatal(err)
	}
	wantFlat := []string{filepath.Join(dir, "a.r"), filepath.Join(dir, "b.R")}
	if len(flat) != 2 || flat[0] != wantFlat[0] || flat[1] != wantFlat[1] {
		t.Fatalf("flat walk: want %v, got %v", wantFlat, flat)
	}

	deep, err := collectSourceFiles(context.Background(), []string{dir}, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(deep) != 3 || deep[2] != filepath.Join(sub, "c.R") {
		t.Fatalf("recursive walk: got %v", deep)
	}

	// Explicitly named files are taken regardless of extension, once.
	txt := filepath.Join(dir, "notes.txt")
	named, err := collectSourceFiles(context.Background(), []string{txt, txt}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(named) != 1 || named[0] != txt {
		t.Fatalf("explicit file: got %v", named)
	}
}

func TestFormatPathsParallel(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.R", "b.R", "c.R", "d.R"} {
		paths = append(paths, writeFile(t, dir, name, "x=1\n"))
	}

	results, err := FormatPaths(context.Background(), []string{dir},
		Options{Tidy: tidy.DefaultOptions(), Jobs: 4})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(paths) {
		t.Fatalf("want %d results, got %d", len(paths), len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("%s: %v", r.Path, r.Err)
		}
		if string(r.Formatted) != "x = 1\n" {
			t.Fatalf("%s: %q", r.Path, r.Formatted)
		}
	}
}

func TestCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenCache("rtide-test")
	if err != nil {
		t.Fatal(err)
	}

	sf := source.NewVirtual("a.R", []byte("x <- 1\n"))
	key := cache.Key(sf, tidy.DefaultOptions())

	if _, ok := cache.Get(key); ok {
		t.Fatal("empty cache reported a hit")
	}
	cache.Put(key, []byte("x <- 1\n"))
	got, ok := cache.Get(key)
	if !ok || string(got) != "x <- 1\n" {
		t.Fatalf("cache miss after put: %v %q", ok, got)
	}

	// Different options produce a different key.
	other := tidy.DefaultOptions()
	other.Arrow = true
	if cache.Key(sf, other) == key {
		t.Fatal("options not part of the cache key")
	}

	if err := cache.Drop(); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Get(key); ok {
		t.Fatal("entry survived Drop")
	}
}

func TestUsages(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "lib.R",
		"read_all <- function(path, recursive = TRUE) { path } # reader\nhelper = function(x) x\nnot_fn <- 1\n")

	usages, err := Usages(path, 80)
	if err != nil {
		t.Fatal(err)
	}
	if len(usages) != 2 {
		t.Fatalf("want 2 usages, got %+v", usages)
	}
	if usages[0].Signature != "read_all(path, recursive = TRUE)" {
		t.Fatalf("signature: %q", usages[0].Signature)
	}
	if usages[1].Name != "helper" || usages[1].Signature != "helper(x)" {
		t.Fatalf("second usage: %+v", usages[1])
	}
}

// Package driver runs the formatter over files and directories.
//
// Each file's transform is fully independent, so the batch runs on a worker
// pool; a failure on one file is recorded in its result and never aborts the
// walk. Files are overwritten only after the whole pipeline succeeded in
// memory.
package driver

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"rtide/internal/source"
	"rtide/internal/tidy"
)

// Options configures a batch run on top of the core formatting options.
type Options struct {
	Tidy tidy.Options
	// Check reports whether files would change without touching them.
	Check bool
	// Stdout returns formatted content in the results instead of writing.
	Stdout bool
	// Recursive descends into directories named on the command line.
	Recursive bool
	// Jobs caps the worker pool; 0 means GOMAXPROCS.
	Jobs int
	// Cache consults the disk cache before running the pipeline.
	Cache *Cache
}

// Result captures the outcome for a single file.
type Result struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte
	// Masked is the diagnostic intermediate from the core transform.
	Masked string
}

// sourceExts is the fixed extension set batch mode picks up.
var sourceExts = map[string]bool{".R": true, ".r": true}

// FormatPaths formats the given files and directories. Results come back in
// the deterministic sorted-path order regardless of worker scheduling.
func FormatPaths(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := collectSourceFiles(ctx, paths, opts.Recursive)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("fmt: no source files found")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine owns a distinct index, so no locking is needed.
	results := make([]Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = formatOne(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatOne(path string, opts Options) Result {
	res := Result{Path: path}

	sf, err := source.Load(path)
	if err != nil {
		res.Err = err
		return res
	}

	var key cacheKey
	if opts.Cache != nil {
		key = opts.Cache.Key(sf, opts.Tidy)
		if formatted, ok := opts.Cache.Get(key); ok {
			res.Formatted = formatted
			res.Changed = string(formatted) != string(sf.Content)
			return finishResult(res, sf, opts)
		}
	}

	out, err := tidy.Source(string(sf.Content), opts.Tidy)
	if err != nil {
		res.Err = err
		return res
	}
	res.Formatted = []byte(out.Text)
	res.Masked = out.Masked
	res.Changed = out.Text != string(sf.Content)

	if opts.Cache != nil {
		opts.Cache.Put(key, res.Formatted)
	}
	return finishResult(res, sf, opts)
}

// finishResult applies the write-back policy for a successful transform.
func finishResult(res Result, sf *source.File, opts Options) Result {
	if opts.Check || opts.Stdout || !res.Changed {
		return res
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(res.Path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(res.Path, res.Formatted, mode.Perm()); err != nil {
		res.Err = err
		res.Changed = false
	}
	return res
}

func collectSourceFiles(ctx context.Context, paths []string, recursive bool) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			// Named explicitly: take it regardless of extension.
			addFile(p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if !recursive && path != p {
					return fs.SkipDir
				}
				return nil
			}
			if sourceExts[filepath.Ext(path)] {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

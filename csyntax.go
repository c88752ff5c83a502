package csyntax

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"

	"github.com/cfacet/csyntax/ast"
	"github.com/cfacet/csyntax/parser"
)

// Result is a successful parse.
type Result struct {
	// Source is the preprocessed text that was parsed. Error offsets
	// and AST spans index into it.
	Source string
	// Unit is the root of the abstract syntax tree.
	Unit *ast.TranslationUnit
}

// Parse preprocesses the C file at path with cfg's preprocessor and
// parses the output. The context bounds the preprocessor run; the
// parse itself does not block on anything external.
//
// A failure is either a *PreprocessorError (the external command could
// not run or rejected the input) or a *SyntaxError (the preprocessed
// text did not parse); use errors.As to tell them apart.
func Parse(ctx context.Context, cfg Config, path string) (*Result, error) {
	text, err := preprocess(ctx, cfg, path)
	if err != nil {
		return nil, &PreprocessorError{Err: err}
	}
	return ParsePreprocessed(cfg, text)
}

// ParsePreprocessed parses text that has already been preprocessed.
// Line markers in the text are honored when error locations are
// resolved. Each call builds a fresh environment from cfg.Flavor, so
// no state carries over between calls.
func ParsePreprocessed(cfg Config, text string) (*Result, error) {
	unit, perr := parser.Parse(text, cfg.Flavor.newEnv())
	if perr != nil {
		return nil, &SyntaxError{
			Source:   text,
			Line:     perr.Line,
			Column:   perr.Column,
			Offset:   perr.Offset,
			Expected: perr.Expected,
		}
	}
	return &Result{Source: text, Unit: unit}, nil
}

// Driver parses batches of files. Every file gets its own environment,
// so files never observe each other's typedefs and can be parsed in
// parallel.
type Driver struct {
	// Config is used for every file.
	Config Config
	// MaxParallelism caps the number of files in flight at once. If
	// unspecified or set to a non-positive value, then
	// min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)) is used.
	MaxParallelism int
}

type fileResult struct {
	ready chan struct{}
	res   *Result
	err   error
}

// ParseFiles preprocesses and parses the named files concurrently and
// returns their results in input order. The first failure, in input
// order, is returned and cancels the work still pending.
func (d *Driver) ParseFiles(ctx context.Context, paths ...string) ([]*Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := d.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		if cpus := runtime.NumCPU(); par > cpus {
			par = cpus
		}
	}
	sem := semaphore.NewWeighted(int64(par))

	work := make([]*fileResult, len(paths))
	for i, path := range paths {
		r := &fileResult{ready: make(chan struct{})}
		work[i] = r
		go func(path string) {
			defer close(r.ready)
			if err := sem.Acquire(ctx, 1); err != nil {
				r.err = err
				return
			}
			defer sem.Release(1)
			r.res, r.err = Parse(ctx, d.Config, path)
		}(path)
	}

	results := make([]*Result, len(paths))
	for i, r := range work {
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
		results[i] = r.res
	}
	return results, nil
}

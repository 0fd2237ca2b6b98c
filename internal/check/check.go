// Package check parses Monkey source files and reports the first syntax
// error of each one together with a source excerpt.
package check

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/monkey-lang/monkey/internal/parser"
	"github.com/monkey-lang/monkey/internal/position"
)

// Logger is the subset of cli.Logger used while checking.
type Logger interface {
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Debug(string, ...interface{}) {}

// Options controls a check run
type Options struct {
	Jobs          int // concurrent files, defaults to GOMAXPROCS
	ParserOptions []parser.Option
	Logger        Logger
}

// Result is the outcome of checking one file
type Result struct {
	Filename   string
	Statements int
	Program    *parser.Program // nil when Err is set
	Err        error           // nil when the file parsed
	Pos        position.Position
	Excerpt    string // source line with a caret marker, empty when Err is nil
}

// OK reports whether the file parsed without error
func (r Result) OK() bool {
	return r.Err == nil
}

// Source parses content and describes the outcome.
func Source(filename, content string, opts ...parser.Option) Result {
	res := Result{Filename: filename}

	program, err := parser.Parse(content, opts...)
	if err == nil {
		res.Program = program
		res.Statements = len(program.Statements)
		return res
	}

	res.Err = err

	var synErr *parser.SyntaxError
	if errors.As(err, &synErr) {
		src := position.NewSourceFile(filename, content)
		res.Pos = src.Position(synErr.Token.Line, synErr.Token.Column)
		res.Excerpt = src.Excerpt(res.Pos, utf8.RuneCountInString(synErr.Token.Literal))
	}
	return res
}

// File reads and checks a single file
func File(path string, opts ...parser.Option) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Filename: path}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Source(path, string(data), opts...), nil
}

// Files checks paths concurrently. Results come back in the order of paths.
// Syntax errors are reported per Result; the returned error is reserved for
// unreadable files and cancellation.
func Files(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	jobs := opts.Jobs
	if jobs < 1 {
		jobs = runtime.GOMAXPROCS(0)
	}
	log := opts.Logger
	if log == nil {
		log = nopLogger{}
	}

	results := make([]Result, len(paths))
	sem := make(chan struct{}, jobs)
	g, gctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		i, path := i, path

		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-sem }()

			log.Debug("checking %s", path)

			res, err := File(path, opts.ParserOptions...)
			if err != nil {
				return err
			}

			if res.OK() {
				log.Info("%s: %d statements", path, res.Statements)
			} else {
				log.Info("%s: %v", path, res.Err)
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

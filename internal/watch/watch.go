// Package watch re-checks a Monkey source file whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/monkey-lang/monkey/internal/check"
	"github.com/monkey-lang/monkey/internal/parser"
)

// DefaultDebounce is how long the watcher waits for a burst of events to
// settle before parsing again.
const DefaultDebounce = 50 * time.Millisecond

// Op describes a set of file operations
type Op uint32

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

func (op Op) String() string {
	var parts []string
	for _, f := range []struct {
		op   Op
		name string
	}{
		{OpCreate, "CREATE"},
		{OpWrite, "WRITE"},
		{OpRemove, "REMOVE"},
		{OpRename, "RENAME"},
		{OpChmod, "CHMOD"},
	} {
		if op&f.op != 0 {
			parts = append(parts, f.name)
		}
	}
	if len(parts) == 0 {
		return "NONE"
	}
	return strings.Join(parts, "|")
}

func convertOp(op fsnotify.Op) Op {
	var out Op
	if op&fsnotify.Create != 0 {
		out |= OpCreate
	}
	if op&fsnotify.Write != 0 {
		out |= OpWrite
	}
	if op&fsnotify.Remove != 0 {
		out |= OpRemove
	}
	if op&fsnotify.Rename != 0 {
		out |= OpRename
	}
	if op&fsnotify.Chmod != 0 {
		out |= OpChmod
	}
	return out
}

// Logger is the subset of cli.Logger used by the watcher.
type Logger interface {
	Debug(format string, args ...interface{})
	Warn(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

// Options configures a Watcher
type Options struct {
	ParserOptions []parser.Option
	Logger        Logger
	Debounce      time.Duration
}

// Watcher watches a single source file. The parent directory is watched so
// that editors replacing the file through a rename are still seen.
type Watcher struct {
	w      *fsnotify.Watcher
	target string
	opts   Options
}

// New starts watching path
func New(path string, opts Options) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	return &Watcher{w: w, target: abs, opts: opts}, nil
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.w.Close()
}

// Run checks the file once, then again after every change, handing each
// result to fn. It returns nil when ctx is done.
func (w *Watcher) Run(ctx context.Context, fn func(check.Result)) error {
	res, err := check.File(w.target, w.opts.ParserOptions...)
	if err != nil {
		return err
	}
	fn(res)

	timer := time.NewTimer(w.opts.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.target {
				continue
			}

			op := convertOp(ev.Op)
			w.opts.Logger.Debug("%s: %s", ev.Name, op)
			if op&(OpCreate|OpWrite) == 0 {
				continue
			}
			timer.Reset(w.opts.Debounce)
		case <-timer.C:
			res, err := check.File(w.target, w.opts.ParserOptions...)
			if err != nil {
				w.opts.Logger.Warn("%v", err)
				continue
			}
			fn(res)
		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", w.target, err)
		}
	}
}

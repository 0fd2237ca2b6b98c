package check

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/monkey-lang/monkey/internal/lexer"
	"github.com/monkey-lang/monkey/internal/parser"
)

func TestSource(t *testing.T) {
	res := Source("ok.mk", "let x = 1;\nlet y = x + 2;\nx * y")
	if !res.OK() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Statements != 3 {
		t.Errorf("Statements = %d, expected 3", res.Statements)
	}
	if res.Program == nil || len(res.Program.Statements) != 3 {
		t.Fatalf("Program not kept: %+v", res.Program)
	}
	if got := res.Program.Statements[1].String(); got != "let y = (x + 2);" {
		t.Errorf("second statement = %q", got)
	}
	if res.Excerpt != "" {
		t.Errorf("Excerpt = %q, expected empty", res.Excerpt)
	}
}

func TestSourceErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		line    int
		column  int
		excerpt string
		kind    error
	}{
		{
			name:    "missing assign",
			input:   "let x 5;",
			line:    1,
			column:  7,
			excerpt: "   1 | let x 5;\n     |       ^",
			kind:    parser.ErrUnexpectedToken,
		},
		{
			name:    "illegal character",
			input:   "let a = 1;\nlet b = @;",
			line:    2,
			column:  9,
			excerpt: "   2 | let b = @;\n     |         ^",
			kind:    parser.ErrNoPrefixParseFn,
		},
		{
			name:    "multi-byte marker",
			input:   "let = 10;",
			line:    1,
			column:  5,
			excerpt: "   1 | let = 10;\n     |     ^",
			kind:    parser.ErrUnexpectedToken,
		},
		{
			name:    "non-ASCII character",
			input:   "let x = é;",
			line:    1,
			column:  9,
			excerpt: "   1 | let x = é;\n     |         ^",
			kind:    parser.ErrNoPrefixParseFn,
		},
		{
			name:    "identifier marker",
			input:   "let x = 1 foo;",
			line:    1,
			column:  11,
			excerpt: "   1 | let x = 1 foo;\n     |           ^^^",
			kind:    parser.ErrUnexpectedToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Source("bad.mk", tt.input)
			if res.OK() {
				t.Fatal("expected error")
			}
			if res.Program != nil {
				t.Errorf("Program = %v, expected nil on error", res.Program)
			}
			if !errors.Is(res.Err, tt.kind) {
				t.Errorf("error %v is not %v", res.Err, tt.kind)
			}
			if res.Pos.Line != tt.line || res.Pos.Column != tt.column {
				t.Errorf("Pos = %s, expected %d:%d", res.Pos, tt.line, tt.column)
			}
			if res.Excerpt != tt.excerpt {
				t.Errorf("Excerpt =\n%s\nexpected\n%s", res.Excerpt, tt.excerpt)
			}
		})
	}
}

func TestSourceIllegalCause(t *testing.T) {
	res := Source("bad.mk", "let b = @;")
	var lexErr *lexer.LexicalError
	if !errors.As(res.Err, &lexErr) {
		t.Fatalf("expected LexicalError cause, got %v", res.Err)
	}
	if lexErr.Char != '@' {
		t.Errorf("Char = %q, expected '@'", lexErr.Char)
	}
}

func TestSourceParserOptions(t *testing.T) {
	if res := Source("a.mk", "let x = 1"); res.OK() {
		t.Error("missing terminator accepted without lenient option")
	}
	if res := Source("a.mk", "let x = 1", parser.WithLenientTerminators()); !res.OK() {
		t.Errorf("lenient parse failed: %v", res.Err)
	}
}

type recordingLogger struct {
	bytes.Buffer
}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	fmt.Fprintf(&l.Buffer, format+"\n", args...)
}

func (l *recordingLogger) Debug(string, ...interface{}) {}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	inputs := map[string]string{
		"a.mk": "let a = 1;",
		"b.mk": "let b = ;",
		"c.mk": "fn(x) { x }(1); 2; 3",
	}

	var paths []string
	for _, name := range []string{"a.mk", "b.mk", "c.mk"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(inputs[name]), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}

	log := &recordingLogger{}
	results, err := Files(context.Background(), paths, Options{Jobs: 2, Logger: log})
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, expected 3", len(results))
	}

	for i, path := range paths {
		if results[i].Filename != path {
			t.Errorf("result %d is for %s, expected %s", i, results[i].Filename, path)
		}
	}
	if !results[0].OK() || results[0].Statements != 1 {
		t.Errorf("a.mk: %+v", results[0])
	}
	if results[1].OK() {
		t.Error("b.mk: expected error")
	}
	if !results[2].OK() || results[2].Statements != 3 {
		t.Errorf("c.mk: %+v", results[2])
	}
	if !strings.Contains(log.String(), "a.mk: 1 statements") {
		t.Errorf("log missing entry for a.mk:\n%s", log.String())
	}

	var out bytes.Buffer
	if failed := Report(&out, results); failed != 1 {
		t.Errorf("Report returned %d failures, expected 1", failed)
	}
	if !strings.Contains(out.String(), "   1 | let b = ;") {
		t.Errorf("report missing excerpt:\n%s", out.String())
	}
}

func TestFilesMissing(t *testing.T) {
	_, err := Files(context.Background(), []string{filepath.Join(t.TempDir(), "nope.mk")}, Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestFilesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "a.mk")
	if err := os.WriteFile(path, []byte("1"), 0o644); err != nil {
		t.Fatal(err)
	}

	// With one slot and a cancelled context a goroutine may still win the
	// select, so only the error type is checked.
	_, err := Files(ctx, []string{path, path, path}, Options{Jobs: 1})
	if err != nil && !errors.Is(err, context.Canceled) {
		t.Fatalf("unexpected error: %v", err)
	}
}

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/monkey-lang/monkey/internal/cli"
)

// run executes the command tree with fresh flag state
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	reset := func(c *cobra.Command) {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset(rootCmd)
	for _, c := range rootCmd.Commands() {
		reset(c)
	}
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.mk", "let x = 1 + 2 * 3;\nreturn x;")

	out, _, err := run(t, "", "parse", path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out != "let x = (1 + (2 * 3));\nreturn x;\n" {
		t.Errorf("output = %q", out)
	}
}

func TestParseCommandError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.mk", "let x = 1")

	_, stderr, err := run(t, "", "parse", path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(stderr, "   1 | let x = 1") {
		t.Errorf("stderr missing excerpt:\n%s", stderr)
	}

	if _, _, err := run(t, "", "--lenient", "parse", path); err != nil {
		t.Errorf("parse --lenient: %v", err)
	}
}

func TestParseCommandConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.mk", "return 1")
	config := writeFile(t, dir, "monkey.toml", "lenient_terminators = true\n")

	out, _, err := run(t, "", "--config", config, "parse", path)
	if err != nil {
		t.Fatalf("parse with config: %v", err)
	}
	if out != "return 1;\n" {
		t.Errorf("output = %q", out)
	}
}

func TestTokensCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.mk", "x != 1")

	out, _, err := run(t, "", "tokens", path)
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	expected := "1:1\t{Type: IDENT, Literal: \"x\"}\n" +
		"1:3\t{Type: !=, Literal: \"!=\"}\n" +
		"1:6\t{Type: INT, Literal: \"1\"}\n" +
		"1:7\t{Type: EOF, Literal: \"\"}\n"
	if out != expected {
		t.Errorf("output =\n%s\nexpected\n%s", out, expected)
	}
}

func TestTokensCommandIllegal(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.mk", "a $ b")

	_, stderr, err := run(t, "", "tokens", path)
	if err == nil {
		t.Fatal("expected error for illegal character")
	}
	if !strings.Contains(stderr, "illegal character '$' at 1:3") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.mk", "let a = 1;")
	bad := writeFile(t, dir, "bad.mk", "let = 1;")

	out, _, err := run(t, "", "check", "-j", "2", good, bad)
	if err == nil || err.Error() != "1 of 2 files failed" {
		t.Fatalf("check error = %v", err)
	}
	if !strings.Contains(out, good+": ok (1 statements)") {
		t.Errorf("output missing good file:\n%s", out)
	}
	if !strings.Contains(out, bad+": syntax error at 1:5") {
		t.Errorf("output missing bad file:\n%s", out)
	}
}

func TestReplCommand(t *testing.T) {
	isTerminal = func(uintptr) bool { return false }
	defer func() { isTerminal = cli.IsTerminal }()

	out, _, err := run(t, "let a = 1;\n:mode tokens\na\n", "repl", "--mode", "parse")
	if err != nil {
		t.Fatalf("repl: %v", err)
	}
	expected := "let a = 1;\nmode: tokens\n1:1\t{Type: IDENT, Literal: \"a\"}\n"
	if out != expected {
		t.Errorf("output = %q, expected %q", out, expected)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "", "version", "--json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var v map[string]interface{}
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("version output is not JSON: %v", err)
	}
	if v["tool"] != "monkey" {
		t.Errorf("tool = %v", v["tool"])
	}
}

func TestConfigVersionConstraint(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "monkey.yaml", "requires: \">= 99.0.0\"\n")

	if _, _, err := run(t, "", "--config", config, "version"); err == nil {
		t.Fatal("expected version constraint error")
	}
}

func TestExecuteLogsError(t *testing.T) {
	if _, _, err := run(t, "", "version"); err != nil {
		t.Fatalf("version: %v", err)
	}

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"parse", filepath.Join(t.TempDir(), "missing.mk")})

	if err := Execute(); err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(stderr.String(), "[ERROR]") || !strings.Contains(stderr.String(), "missing.mk") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

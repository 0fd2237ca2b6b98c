// Package repl implements the interactive Monkey prompt. Each line is either
// tokenized or parsed and the result printed back.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/monkey-lang/monkey/internal/check"
	"github.com/monkey-lang/monkey/internal/lexer"
	"github.com/monkey-lang/monkey/internal/parser"
)

// Mode selects what the REPL does with input
type Mode int

const (
	ModeTokens Mode = iota // print the tokens of each line
	ModeParse              // print the parsed program
)

func (m Mode) String() string {
	if m == ModeParse {
		return "parse"
	}
	return "tokens"
}

// ParseMode converts a mode name
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tokens", "token", "lex":
		return ModeTokens, nil
	case "parse", "ast":
		return ModeParse, nil
	default:
		return ModeTokens, fmt.Errorf("unknown mode %q (expected tokens or parse)", name)
	}
}

const continuationPrompt = ".. "

// Options configures a REPL
type Options struct {
	Prompt        string
	HistoryFile   string
	Mode          Mode
	Color         bool
	ParserOptions []parser.Option
}

// REPL holds the state of one interactive session
type REPL struct {
	opts    Options
	out     io.Writer
	mode    Mode
	pending strings.Builder
	styles  styles
}

// New creates a REPL writing its output to out
func New(out io.Writer, opts Options) *REPL {
	if opts.Prompt == "" {
		opts.Prompt = ">> "
	}
	return &REPL{
		opts:   opts,
		out:    out,
		mode:   opts.Mode,
		styles: newStyles(opts.Color),
	}
}

// Mode returns the current mode
func (r *REPL) Mode() Mode {
	return r.mode
}

// Prompt returns the prompt for the next line
func (r *REPL) Prompt() string {
	if r.pending.Len() > 0 {
		return continuationPrompt
	}
	return r.opts.Prompt
}

// PrintWelcome prints the banner
func (r *REPL) PrintWelcome() {
	fmt.Fprintln(r.out, r.styles.banner.Render("Welcome to the Monkey REPL!"))
	fmt.Fprintln(r.out, r.styles.muted.Render("Type :help for help, :quit to exit"))
}

// Eval handles one line of input and reports whether the session should end.
func (r *REPL) Eval(line string) (quit bool) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, ":") {
		return r.handleCommand(trimmed)
	}
	if r.pending.Len() == 0 && trimmed == "" {
		return false
	}

	switch r.mode {
	case ModeParse:
		r.evalParse(line)
	default:
		r.evalTokens(line)
	}
	return false
}

func (r *REPL) evalTokens(line string) {
	for _, tok := range lexer.Tokenize(line) {
		if tok.Is(lexer.TokenEOF) {
			break
		}
		style := r.styles.token
		if tok.Is(lexer.TokenIllegal) {
			style = r.styles.err
		}
		fmt.Fprintf(r.out, "%d:%d\t%s\n", tok.Line, tok.Column, style.Render(tok.String()))
	}
}

func (r *REPL) evalParse(line string) {
	if r.pending.Len() > 0 {
		r.pending.WriteByte('\n')
	}
	r.pending.WriteString(line)
	src := r.pending.String()

	res := check.Source("<repl>", src, r.opts.ParserOptions...)
	if !res.OK() && incomplete(res.Err) && strings.TrimSpace(line) != "" {
		return
	}
	r.pending.Reset()

	if !res.OK() {
		fmt.Fprintln(r.out, r.styles.err.Render(res.Err.Error()))
		if res.Excerpt != "" {
			fmt.Fprintln(r.out, res.Excerpt)
		}
		return
	}

	for _, stmt := range res.Program.Statements {
		fmt.Fprintln(r.out, stmt.String())
	}
}

// incomplete reports whether err was caused by running out of input, in
// which case another line may complete the program. An empty line ends the
// continuation.
func incomplete(err error) bool {
	var synErr *parser.SyntaxError
	return errors.As(err, &synErr) && synErr.Token.Is(lexer.TokenEOF)
}

func (r *REPL) handleCommand(cmd string) (quit bool) {
	fields := strings.Fields(cmd)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true
	case ":cancel", ":c":
		if r.pending.Len() > 0 {
			r.pending.Reset()
			fmt.Fprintln(r.out, "input discarded")
		}
	case ":help", ":h":
		r.printHelp()
	case ":mode":
		if len(fields) == 1 {
			fmt.Fprintf(r.out, "mode: %s\n", r.mode)
			return false
		}
		mode, err := ParseMode(fields[1])
		if err != nil {
			fmt.Fprintln(r.out, r.styles.err.Render(err.Error()))
			return false
		}
		r.mode = mode
		r.pending.Reset()
		fmt.Fprintf(r.out, "mode: %s\n", r.mode)
	default:
		fmt.Fprintln(r.out, r.styles.err.Render(fmt.Sprintf("unknown command %s. Type :help for help.", fields[0])))
	}
	return false
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.out, "REPL commands:")
	fmt.Fprintln(r.out, "  :help, :h            Show help")
	fmt.Fprintln(r.out, "  :quit, :q, :exit     Exit REPL")
	fmt.Fprintln(r.out, "  :mode [tokens|parse] Show or switch the mode")
	fmt.Fprintln(r.out, "  :cancel, :c          Discard an unfinished multi-line input")
}

// Run starts an interactive session with line editing. History is read from
// and written back to the configured history file.
func (r *REPL) Run() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if r.opts.HistoryFile != "" {
		if f, err := os.Open(r.opts.HistoryFile); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(r.opts.HistoryFile); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	r.PrintWelcome()

	for {
		line, err := ln.Prompt(r.Prompt())
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(r.out)
			return nil
		}
		if err != nil {
			return err
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if r.Eval(line) {
			return nil
		}
	}
}

// RunReader evaluates every line of in without prompting. It is used when
// stdin is not a terminal.
func (r *REPL) RunReader(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if r.Eval(scanner.Text()) {
			return nil
		}
	}
	if r.pending.Len() > 0 {
		r.Eval("")
	}
	return scanner.Err()
}

package lexer

import (
	"fmt"
	"unicode/utf8"
)

// LexicalError describes a character the lexer could not classify. The lexer
// never returns it directly: it emits a TokenIllegal and records the error so
// the parser can attach it to the syntax error it raises.
type LexicalError struct {
	Char    rune   // utf8.RuneError for an invalid byte
	Literal string // the offending input bytes
	Line    int
	Column  int
}

func (e *LexicalError) Error() string {
	if e.Char == utf8.RuneError && len(e.Literal) == 1 {
		return fmt.Sprintf("invalid UTF-8 byte %#x at %d:%d", e.Literal[0], e.Line, e.Column)
	}
	return fmt.Sprintf("illegal character %q at %d:%d", e.Char, e.Line, e.Column)
}

// Errors returns the lexical errors recorded so far, in input order.
func (l *Lexer) Errors() []*LexicalError {
	return l.errors
}

// ErrorFor returns the lexical error recorded for an illegal token, or nil.
func (l *Lexer) ErrorFor(tok Token) *LexicalError {
	if tok.Type != TokenIllegal {
		return nil
	}
	for _, err := range l.errors {
		if err.Line == tok.Line && err.Column == tok.Column {
			return err
		}
	}
	return nil
}

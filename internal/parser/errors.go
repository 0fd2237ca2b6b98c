package parser

import (
	"errors"
	"fmt"

	"github.com/monkey-lang/monkey/internal/lexer"
)

// Sentinel errors classifying a SyntaxError. Match them with errors.Is.
var (
	ErrUnexpectedToken   = errors.New("unexpected token")
	ErrNoPrefixParseFn   = errors.New("no prefix parse function")
	ErrInvalidInteger    = errors.New("invalid integer literal")
	ErrNestingTooDeep    = errors.New("expression nested too deeply")
	ErrUnterminatedBlock = errors.New("unterminated block")
)

// SyntaxError represents a parsing error at a specific token. Parsing stops
// at the first SyntaxError.
type SyntaxError struct {
	Token   lexer.Token // the offending token
	Message string
	Kind    error // one of the Err* sentinels
	Cause   error // e.g. the *lexer.LexicalError behind an illegal token
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("syntax error at %d:%d: %s", e.Token.Line, e.Token.Column, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *SyntaxError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func (p *Parser) newError(tok lexer.Token, kind error, format string, args ...interface{}) *SyntaxError {
	err := &SyntaxError{
		Token:   tok,
		Message: fmt.Sprintf(format, args...),
		Kind:    kind,
	}
	if lexErr := p.lexer.ErrorFor(tok); lexErr != nil {
		err.Cause = lexErr
	}
	return err
}

// peekError reports a peek token mismatch
func (p *Parser) peekError(expected lexer.TokenType) error {
	return p.newError(p.peek, ErrUnexpectedToken,
		"expected %s, got %s", expected.Describe(), p.peek.Type.Describe())
}

// noPrefixParseFnError reports a token that cannot start an expression
func (p *Parser) noPrefixParseFnError() error {
	return p.newError(p.current, ErrNoPrefixParseFn,
		"no prefix parse function for %s", p.current.Type.String())
}

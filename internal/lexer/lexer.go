// Package lexer implements the monkey lexical analyzer.
//
// The lexer walks an in-memory source string one byte at a time and hands out
// one token per NextToken call. It is a sequential state machine: a Lexer must
// not be shared between goroutines.
package lexer

import "unicode/utf8"

// Lexer represents the lexical analyzer
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination

	line   int
	column int // counted in characters, not bytes
	cont   int // continuation bytes left in the current multi-byte character

	errors []*LexicalError
}

// New creates a new lexer instance
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 1,
	}
	l.readChar()
	return l
}

// Tokenize returns every token of input up to and including the first EOF.
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			return tokens
		}
	}
}

// readChar reads the next byte and advances position. Once the input is
// exhausted the cursor stays put.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		if l.position < len(l.input) {
			l.advanceColumn()
		}
		l.ch = 0
		l.position = len(l.input)
		return
	}

	inRune := false
	if l.readPosition > 0 {
		if l.cont > 0 {
			l.cont--
			inRune = true
		} else {
			l.advanceColumn()
		}
	}
	l.ch = l.input[l.readPosition]
	if !inRune && l.ch >= utf8.RuneSelf {
		_, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.cont = size - 1
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) advanceColumn() {
	if l.ch == '\n' {
		l.line++
		l.column = 1
		return
	}
	l.column++
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

// skipWhitespace skips spaces, tabs, newlines and carriage returns
func (l *Lexer) skipWhitespace() {
	for !l.atEOF() && isWhitespace(l.ch) {
		l.readChar()
	}
}

// readIdentifier reads the maximal run of letters, digits and underscores
func (l *Lexer) readIdentifier() string {
	position := l.position
	for !l.atEOF() && (isLetter(l.ch) || isDigit(l.ch)) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() string {
	position := l.position
	for !l.atEOF() && isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// NextToken scans the input and returns the next token. At end of input it
// returns TokenEOF, and keeps doing so on every later call.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	line, column := l.line, l.column
	if l.atEOF() {
		return Token{Type: TokenEOF, Literal: "", Line: line, Column: column}
	}

	var tok Token
	switch l.ch {
	case '=':
		tok = l.withOptionalEquals(TokenEq, TokenAssign)
	case '!':
		tok = l.withOptionalEquals(TokenNotEq, TokenBang)
	case '<':
		tok = l.withOptionalEquals(TokenLtEq, TokenLt)
	case '>':
		tok = l.withOptionalEquals(TokenGtEq, TokenGt)
	case '+':
		tok = newTokenFromChar(TokenPlus, l.ch)
	case '-':
		tok = newTokenFromChar(TokenMinus, l.ch)
	case '*':
		tok = newTokenFromChar(TokenAsterisk, l.ch)
	case '/':
		tok = newTokenFromChar(TokenSlash, l.ch)
	case ',':
		tok = newTokenFromChar(TokenComma, l.ch)
	case ';':
		tok = newTokenFromChar(TokenSemicolon, l.ch)
	case '(':
		tok = newTokenFromChar(TokenLParen, l.ch)
	case ')':
		tok = newTokenFromChar(TokenRParen, l.ch)
	case '{':
		tok = newTokenFromChar(TokenLBrace, l.ch)
	case '}':
		tok = newTokenFromChar(TokenRBrace, l.ch)
	default:
		if isLetter(l.ch) {
			literal := l.readIdentifier()
			return Token{Type: LookupIdent(literal), Literal: literal, Line: line, Column: column}
		}
		if isDigit(l.ch) {
			literal := l.readNumber()
			return Token{Type: TokenInteger, Literal: literal, Line: line, Column: column}
		}
		return l.readIllegal(line, column)
	}

	tok.Line, tok.Column = line, column
	l.readChar()
	return tok
}

// readIllegal consumes one unclassifiable character, which may span several
// bytes, and records it as a lexical error. An invalid UTF-8 byte is a
// character of its own.
func (l *Lexer) readIllegal(line, column int) Token {
	r, size := utf8.DecodeRuneInString(l.input[l.position:])
	literal := l.input[l.position : l.position+size]
	l.errors = append(l.errors, &LexicalError{Char: r, Literal: literal, Line: line, Column: column})

	for i := 0; i < size; i++ {
		l.readChar()
	}
	return Token{Type: TokenIllegal, Literal: literal, Line: line, Column: column}
}

// withOptionalEquals emits the two-character form when the current character
// is followed by '=', and the single-character form otherwise.
func (l *Lexer) withOptionalEquals(double, single TokenType) Token {
	if l.peekChar() == '=' {
		ch := l.ch
		l.readChar()
		return Token{Type: double, Literal: string(ch) + string(l.ch)}
	}
	return newTokenFromChar(single, l.ch)
}

// newTokenFromChar creates a new token from a single character
func newTokenFromChar(tokenType TokenType, ch byte) Token {
	return Token{Type: tokenType, Literal: string(ch)}
}

package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType int

// Token types
const (
	// 特殊トークン
	TokenEOF TokenType = iota
	TokenIllegal

	// リテラル
	TokenIdentifier
	TokenInteger

	// キーワード
	TokenLet
	TokenFunction
	TokenTrue
	TokenFalse
	TokenIf
	TokenElse
	TokenReturn

	// 演算子
	TokenAssign
	TokenPlus
	TokenMinus
	TokenBang
	TokenAsterisk
	TokenSlash
	TokenLt
	TokenGt
	TokenEq
	TokenNotEq
	TokenLtEq
	TokenGtEq

	// 記号
	TokenComma
	TokenSemicolon
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
)

// tokenNames provides string representations for token types
var tokenNames = map[TokenType]string{
	TokenEOF:     "EOF",
	TokenIllegal: "ILLEGAL",

	TokenIdentifier: "IDENT",
	TokenInteger:    "INT",

	TokenLet:      "LET",
	TokenFunction: "FUNCTION",
	TokenTrue:     "TRUE",
	TokenFalse:    "FALSE",
	TokenIf:       "IF",
	TokenElse:     "ELSE",
	TokenReturn:   "RETURN",

	TokenAssign:   "=",
	TokenPlus:     "+",
	TokenMinus:    "-",
	TokenBang:     "!",
	TokenAsterisk: "*",
	TokenSlash:    "/",
	TokenLt:       "<",
	TokenGt:       ">",
	TokenEq:       "==",
	TokenNotEq:    "!=",
	TokenLtEq:     "<=",
	TokenGtEq:     ">=",

	TokenComma:     ",",
	TokenSemicolon: ";",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLBrace:    "{",
	TokenRBrace:    "}",
}

// keywords maps string keywords to their token types
var keywords = map[string]TokenType{
	"let":    TokenLet,
	"fn":     TokenFunction,
	"true":   TokenTrue,
	"false":  TokenFalse,
	"if":     TokenIf,
	"else":   TokenElse,
	"return": TokenReturn,
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(tt))
}

// Describe returns the label used for the token type in diagnostics.
func (tt TokenType) Describe() string {
	switch tt {
	case TokenEOF:
		return "end of input"
	case TokenIllegal:
		return "illegal token"
	case TokenIdentifier:
		return "identifier"
	case TokenInteger:
		return "integer"
	}
	for word, kw := range keywords {
		if kw == tt {
			return "'" + word + "'"
		}
	}
	if name, ok := tokenNames[tt]; ok {
		return "'" + name + "'"
	}
	return tt.String()
}

// Token represents a lexical token. Line and Column locate the token for
// diagnostics and take no part in token identity.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Literal: %q}", t.Type, t.Literal)
}

// Is reports whether the token has the given type.
func (t Token) Is(tt TokenType) bool {
	return t.Type == tt
}

// LookupIdent checks if identifier is keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdentifier
}

package parser

import (
	"github.com/monkey-lang/monkey/internal/lexer"
)

type (
	prefixParseFn func() (Expression, error)
	infixParseFn  func(Expression) (Expression, error)
)

// DefaultMaxDepth is the default maximum expression nesting depth.
const DefaultMaxDepth = 512

// Option configures a Parser.
type Option func(*Parser)

// WithLenientTerminators accepts let and return statements that omit the
// trailing semicolon.
func WithLenientTerminators() Option {
	return func(p *Parser) {
		p.lenientTerminators = true
	}
}

// WithMaxDepth sets the maximum nesting depth of expressions. Values below 1
// keep the default.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

// Parser represents the recursive descent parser. A Parser owns its lexer
// for the duration of a parse and must not be shared between goroutines.
type Parser struct {
	lexer   *lexer.Lexer
	current lexer.Token
	peek    lexer.Token

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn

	lenientTerminators bool
	maxDepth           int
	depth              int
}

// New creates a new parser instance
func New(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{
		lexer:          l,
		prefixParseFns: make(map[lexer.TokenType]prefixParseFn),
		infixParseFns:  make(map[lexer.TokenType]infixParseFn),
		maxDepth:       DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.registerPrefix(lexer.TokenIdentifier, p.parseIdentifier)
	p.registerPrefix(lexer.TokenInteger, p.parseIntegerLiteral)
	p.registerPrefix(lexer.TokenTrue, p.parseBoolean)
	p.registerPrefix(lexer.TokenFalse, p.parseBoolean)
	p.registerPrefix(lexer.TokenBang, p.parsePrefixExpression)
	p.registerPrefix(lexer.TokenMinus, p.parsePrefixExpression)
	p.registerPrefix(lexer.TokenLParen, p.parseGroupedExpression)
	p.registerPrefix(lexer.TokenIf, p.parseIfExpression)
	p.registerPrefix(lexer.TokenFunction, p.parseFunctionLiteral)

	for _, tt := range []lexer.TokenType{
		lexer.TokenEq, lexer.TokenNotEq,
		lexer.TokenLt, lexer.TokenGt, lexer.TokenLtEq, lexer.TokenGtEq,
		lexer.TokenPlus, lexer.TokenMinus,
		lexer.TokenAsterisk, lexer.TokenSlash,
	} {
		p.registerInfix(tt, p.parseInfixExpression)
	}
	p.registerInfix(lexer.TokenLParen, p.parseCallExpression)

	// Read the first two tokens
	p.nextToken()
	p.nextToken()

	return p
}

// Parse parses input as a complete program.
func Parse(input string, opts ...Option) (*Program, error) {
	return New(lexer.New(input), opts...).ParseProgram()
}

func (p *Parser) registerPrefix(tokenType lexer.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType lexer.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

// nextToken advances the parser to the next token
func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

// currentTokenIs checks if the current token is of the given type
func (p *Parser) currentTokenIs(tokenType lexer.TokenType) bool {
	return p.current.Type == tokenType
}

// peekTokenIs checks if the peek token is of the given type
func (p *Parser) peekTokenIs(tokenType lexer.TokenType) bool {
	return p.peek.Type == tokenType
}

// expectPeek advances if the peek token matches the expected type. On a
// mismatch it does not advance; the caller reports the error.
func (p *Parser) expectPeek(tokenType lexer.TokenType) bool {
	if p.peekTokenIs(tokenType) {
		p.nextToken()
		return true
	}
	return false
}

// ====== Grammar Rules ======

// ParseProgram parses the entire program. The first error aborts the parse
// and no partial program is returned.
func (p *Parser) ParseProgram() (*Program, error) {
	program := &Program{Statements: []Statement{}}

	for !p.currentTokenIs(lexer.TokenEOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
		p.nextToken()
	}

	return program, nil
}

// parseStatement parses a statement
func (p *Parser) parseStatement() (Statement, error) {
	switch p.current.Type {
	case lexer.TokenLet:
		return p.parseLetStatement()
	case lexer.TokenReturn:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses `let <ident> = <expr>;`
func (p *Parser) parseLetStatement() (*LetStatement, error) {
	stmt := &LetStatement{Token: p.current}

	if !p.expectPeek(lexer.TokenIdentifier) {
		return nil, p.peekError(lexer.TokenIdentifier)
	}
	stmt.Name = &Identifier{Token: p.current, Value: p.current.Literal}

	if !p.expectPeek(lexer.TokenAssign) {
		return nil, p.peekError(lexer.TokenAssign)
	}
	p.nextToken()

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Value = value

	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseReturnStatement parses `return <expr>;`
func (p *Parser) parseReturnStatement() (*ReturnStatement, error) {
	stmt := &ReturnStatement{Token: p.current}
	p.nextToken()

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.ReturnValue = value

	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseExpressionStatement parses an expression used as a statement. The
// trailing semicolon is optional.
func (p *Parser) parseExpressionStatement() (*ExpressionStatement, error) {
	stmt := &ExpressionStatement{Token: p.current}

	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt.Expression = expr

	if p.peekTokenIs(lexer.TokenSemicolon) {
		p.nextToken()
	}
	return stmt, nil
}

// parseBlockStatement parses statements up to the closing brace. The current
// token is the opening brace on entry and the closing brace on return.
func (p *Parser) parseBlockStatement() (*BlockStatement, error) {
	block := &BlockStatement{Token: p.current, Statements: []Statement{}}
	p.nextToken()

	for !p.currentTokenIs(lexer.TokenRBrace) {
		if p.currentTokenIs(lexer.TokenEOF) {
			return nil, p.newError(p.current, ErrUnterminatedBlock,
				"expected %s, got %s", lexer.TokenRBrace.Describe(), p.current.Type.Describe())
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		p.nextToken()
	}

	return block, nil
}

// expectTerminator consumes the semicolon that ends a let or return
// statement.
func (p *Parser) expectTerminator() error {
	if p.peekTokenIs(lexer.TokenSemicolon) {
		p.nextToken()
		return nil
	}
	if p.lenientTerminators {
		return nil
	}
	return p.peekError(lexer.TokenSemicolon)
}

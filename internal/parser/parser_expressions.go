package parser

import (
	"strconv"

	"github.com/monkey-lang/monkey/internal/lexer"
)

// ====== Expression Parsing (Pratt Parser) ======

// Precedence levels for operators
type Precedence int

const (
	_ Precedence = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -X !X
	CALL        // myFunction(X)
)

// precedences maps token types to their precedence levels
var precedences = map[lexer.TokenType]Precedence{
	lexer.TokenEq:       EQUALS,
	lexer.TokenNotEq:    EQUALS,
	lexer.TokenLt:       LESSGREATER,
	lexer.TokenGt:       LESSGREATER,
	lexer.TokenLtEq:     LESSGREATER,
	lexer.TokenGtEq:     LESSGREATER,
	lexer.TokenPlus:     SUM,
	lexer.TokenMinus:    SUM,
	lexer.TokenAsterisk: PRODUCT,
	lexer.TokenSlash:    PRODUCT,
	lexer.TokenLParen:   CALL,
}

// peekPrecedence returns the precedence of the peek token
func (p *Parser) peekPrecedence() Precedence {
	if p, ok := precedences[p.peek.Type]; ok {
		return p
	}
	return LOWEST
}

// currentPrecedence returns the precedence of the current token
func (p *Parser) currentPrecedence() Precedence {
	if p, ok := precedences[p.current.Type]; ok {
		return p
	}
	return LOWEST
}

// parseExpression parses an expression whose operators bind tighter than
// precedence. Equal precedence stops the loop, so binary operators are left
// associative.
func (p *Parser) parseExpression(precedence Precedence) (Expression, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return nil, p.newError(p.current, ErrNestingTooDeep,
			"expression nested deeper than %d levels", p.maxDepth)
	}

	prefix := p.prefixParseFns[p.current.Type]
	if prefix == nil {
		return nil, p.noPrefixParseFnError()
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for !p.peekTokenIs(lexer.TokenSemicolon) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peek.Type]
		if infix == nil {
			return left, nil
		}
		p.nextToken()
		if left, err = infix(left); err != nil {
			return nil, err
		}
	}

	return left, nil
}

// parseIdentifier parses an identifier
func (p *Parser) parseIdentifier() (Expression, error) {
	return &Identifier{Token: p.current, Value: p.current.Literal}, nil
}

// parseIntegerLiteral parses an integer literal
func (p *Parser) parseIntegerLiteral() (Expression, error) {
	value, err := strconv.ParseInt(p.current.Literal, 10, 64)
	if err != nil {
		return nil, p.newError(p.current, ErrInvalidInteger,
			"could not parse %q as integer", p.current.Literal)
	}
	return &IntegerLiteral{Token: p.current, Value: value}, nil
}

// parseBoolean parses true or false
func (p *Parser) parseBoolean() (Expression, error) {
	return &Boolean{Token: p.current, Value: p.currentTokenIs(lexer.TokenTrue)}, nil
}

// parsePrefixExpression parses unary expressions
func (p *Parser) parsePrefixExpression() (Expression, error) {
	expr := &PrefixExpression{Token: p.current, Operator: p.current.Literal}

	p.nextToken()
	right, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}
	expr.Right = right
	return expr, nil
}

// parseGroupedExpression parses grouped expressions
func (p *Parser) parseGroupedExpression() (Expression, error) {
	p.nextToken()
	exp, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if !p.expectPeek(lexer.TokenRParen) {
		return nil, p.peekError(lexer.TokenRParen)
	}
	return exp, nil
}

// parseIfExpression parses `if (<cond>) { ... } else { ... }`
func (p *Parser) parseIfExpression() (Expression, error) {
	expr := &IfExpression{Token: p.current}

	if !p.expectPeek(lexer.TokenLParen) {
		return nil, p.peekError(lexer.TokenLParen)
	}
	p.nextToken()

	condition, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	expr.Condition = condition

	if !p.expectPeek(lexer.TokenRParen) {
		return nil, p.peekError(lexer.TokenRParen)
	}
	if !p.expectPeek(lexer.TokenLBrace) {
		return nil, p.peekError(lexer.TokenLBrace)
	}

	if expr.Consequence, err = p.parseBlockStatement(); err != nil {
		return nil, err
	}

	if p.peekTokenIs(lexer.TokenElse) {
		p.nextToken()
		if !p.expectPeek(lexer.TokenLBrace) {
			return nil, p.peekError(lexer.TokenLBrace)
		}
		if expr.Alternative, err = p.parseBlockStatement(); err != nil {
			return nil, err
		}
	}

	return expr, nil
}

// parseFunctionLiteral parses `fn(<params>) { ... }`
func (p *Parser) parseFunctionLiteral() (Expression, error) {
	fn := &FunctionLiteral{Token: p.current}

	if !p.expectPeek(lexer.TokenLParen) {
		return nil, p.peekError(lexer.TokenLParen)
	}

	params, err := p.parseFunctionParameters()
	if err != nil {
		return nil, err
	}
	fn.Parameters = params

	if !p.expectPeek(lexer.TokenLBrace) {
		return nil, p.peekError(lexer.TokenLBrace)
	}

	if fn.Body, err = p.parseBlockStatement(); err != nil {
		return nil, err
	}
	return fn, nil
}

// parseFunctionParameters parses a comma separated identifier list up to ')'
func (p *Parser) parseFunctionParameters() ([]*Identifier, error) {
	params := make([]*Identifier, 0)

	if p.peekTokenIs(lexer.TokenRParen) {
		p.nextToken()
		return params, nil
	}

	if !p.expectPeek(lexer.TokenIdentifier) {
		return nil, p.peekError(lexer.TokenIdentifier)
	}
	params = append(params, &Identifier{Token: p.current, Value: p.current.Literal})

	for p.peekTokenIs(lexer.TokenComma) {
		p.nextToken()
		if !p.expectPeek(lexer.TokenIdentifier) {
			return nil, p.peekError(lexer.TokenIdentifier)
		}
		params = append(params, &Identifier{Token: p.current, Value: p.current.Literal})
	}

	if !p.expectPeek(lexer.TokenRParen) {
		return nil, p.peekError(lexer.TokenRParen)
	}
	return params, nil
}

// parseInfixExpression parses binary expressions. The right operand is parsed
// at the operator's own precedence.
func (p *Parser) parseInfixExpression(left Expression) (Expression, error) {
	expr := &InfixExpression{
		Token:    p.current,
		Operator: p.current.Literal,
		Left:     left,
	}

	precedence := p.currentPrecedence()
	p.nextToken()
	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}
	expr.Right = right
	return expr, nil
}

// parseCallExpression parses function call expressions
func (p *Parser) parseCallExpression(function Expression) (Expression, error) {
	call := &CallExpression{Token: p.current, Function: function}

	args, err := p.parseCallArguments()
	if err != nil {
		return nil, err
	}
	call.Arguments = args
	return call, nil
}

// parseCallArguments parses function call arguments
func (p *Parser) parseCallArguments() ([]Expression, error) {
	args := make([]Expression, 0)

	if p.peekTokenIs(lexer.TokenRParen) {
		p.nextToken()
		return args, nil
	}

	p.nextToken()
	arg, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	args = append(args, arg)

	for p.peekTokenIs(lexer.TokenComma) {
		p.nextToken()
		p.nextToken()
		if arg, err = p.parseExpression(LOWEST); err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	if !p.expectPeek(lexer.TokenRParen) {
		return nil, p.peekError(lexer.TokenRParen)
	}
	return args, nil
}

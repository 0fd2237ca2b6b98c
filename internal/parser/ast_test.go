package parser

import (
	"testing"

	"github.com/monkey-lang/monkey/internal/lexer"
)

func TestProgramString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: lexer.Token{Type: lexer.TokenLet, Literal: "let"},
				Name: &Identifier{
					Token: lexer.Token{Type: lexer.TokenIdentifier, Literal: "myVar"},
					Value: "myVar",
				},
				Value: &Identifier{
					Token: lexer.Token{Type: lexer.TokenIdentifier, Literal: "anotherVar"},
					Value: "anotherVar",
				},
			},
		},
	}

	if program.String() != "let myVar = anotherVar;" {
		t.Errorf("program.String() wrong. got=%q", program.String())
	}
	if program.TokenLiteral() != "let" {
		t.Errorf("program.TokenLiteral() wrong. got=%q", program.TokenLiteral())
	}
}

func TestStatementStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"let x = 1 + 2;", "let x = (1 + 2);"},
		{"return -x;", "return (-x);"},
		{"if (a) { b } else { c }", "if a { b } else { c }"},
		{"fn(a, b) { return a; }", "fn(a, b) { return a; }"},
	}

	for _, tt := range tests {
		program, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.input, err)
		}
		if got := program.String(); got != tt.expected {
			t.Errorf("%q: String() = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

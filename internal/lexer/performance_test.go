// Package lexer provides performance benchmarks for lexical analysis.
package lexer

import (
	"fmt"
	"strings"
	"testing"
)

// generateMonkeyCode creates realistic Monkey source code for benchmarks.
func generateMonkeyCode(functions int, linesPerFunction int) string {
	var builder strings.Builder

	for i := 0; i < functions; i++ {
		builder.WriteString(fmt.Sprintf("let calculate_%d = fn(a, b) {\n", i))

		for j := 0; j < linesPerFunction; j++ {
			switch j % 5 {
			case 0:
				builder.WriteString(fmt.Sprintf("    let dx_%d = b - a;\n", j))
			case 1:
				builder.WriteString(fmt.Sprintf("    let sq_%d = dx_%d * dx_%d + 1;\n", j, j-1, j-1))
			case 2:
				builder.WriteString(fmt.Sprintf("    if (sq_%d >= 10) { return sq_%d / 2; }\n", j-1, j-1))
			case 3:
				builder.WriteString(fmt.Sprintf("    let ok_%d = !(a == b) != false;\n", j))
			case 4:
				builder.WriteString(fmt.Sprintf("    calculate_%d(a, -b);\n", i))
			}
		}

		builder.WriteString("    return a;\n};\n\n")
	}

	return builder.String()
}

// BenchmarkNextToken measures token throughput for several input sizes.
func BenchmarkNextToken(b *testing.B) {
	sizes := []struct {
		name      string
		functions int
		lines     int
	}{
		{"Small", 5, 10},
		{"Medium", 50, 20},
		{"Large", 200, 40},
	}

	for _, size := range sizes {
		input := generateMonkeyCode(size.functions, size.lines)

		b.Run(size.name, func(b *testing.B) {
			b.SetBytes(int64(len(input)))
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				l := New(input)
				for tok := l.NextToken(); tok.Type != TokenEOF; tok = l.NextToken() {
				}
			}
		})
	}
}

// BenchmarkTokenize measures collecting the whole token slice.
func BenchmarkTokenize(b *testing.B) {
	input := generateMonkeyCode(50, 20)
	b.SetBytes(int64(len(input)))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = Tokenize(input)
	}
}

// TestGeneratedCodeHasNoIllegalTokens keeps the benchmark input honest.
func TestGeneratedCodeHasNoIllegalTokens(t *testing.T) {
	l := New(generateMonkeyCode(3, 10))
	for tok := l.NextToken(); tok.Type != TokenEOF; tok = l.NextToken() {
		if tok.Type == TokenIllegal {
			t.Fatalf("illegal token %s at %d:%d", tok, tok.Line, tok.Column)
		}
	}
	if len(l.Errors()) != 0 {
		t.Fatalf("unexpected lexical errors: %v", l.Errors())
	}
}

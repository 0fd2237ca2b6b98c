package position

import (
	"fmt"
	"strings"
)

// Excerpt renders the source line holding pos with a marker of width
// carets under the offending text:
//
//	   1 | let x = @;
//	     |         ^
//
// An invalid position or a line outside the file yields "".
func (sf *SourceFile) Excerpt(pos Position, width int) string {
	if !pos.IsValid() || pos.Line > len(sf.Lines) {
		return ""
	}
	if width < 1 {
		width = 1
	}

	line := sf.GetLine(pos.Line)

	var result strings.Builder
	result.WriteString(fmt.Sprintf("%4d | %s\n", pos.Line, line))
	result.WriteString("     | ")
	result.WriteString(padding(line, pos.Column-1))
	result.WriteString(strings.Repeat("^", width))
	return result.String()
}

// padding copies tabs from the line so the marker lines up with the text
// above it. n counts characters, not bytes.
func padding(line string, n int) string {
	var b strings.Builder
	i := 0
	for _, r := range line {
		if i == n {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		i++
	}
	for ; i < n; i++ {
		b.WriteByte(' ')
	}
	return b.String()
}

package check

import (
	"fmt"
	"io"
)

// Report writes one block per result and returns the number of failed files.
func Report(w io.Writer, results []Result) int {
	failed := 0
	for _, r := range results {
		if r.OK() {
			fmt.Fprintf(w, "%s: ok (%d statements)\n", r.Filename, r.Statements)
			continue
		}

		failed++
		fmt.Fprintf(w, "%s: %v\n", r.Filename, r.Err)
		if r.Excerpt != "" {
			fmt.Fprintln(w, r.Excerpt)
		}
	}
	return failed
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monkey-lang/monkey/internal/check"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the syntax tree of a file",
	Long: `Parses FILE and prints one fully parenthesized line per statement.
On a syntax error the offending line is shown with a marker.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	res := check.Source(args[0], string(data), cfg.ParserOptions()...)
	if !res.OK() {
		check.Report(cmd.ErrOrStderr(), []check.Result{res})
		return fmt.Errorf("%s: parse failed", args[0])
	}
	log.Info("%s: %d statements", args[0], res.Statements)

	out := cmd.OutOrStdout()
	for _, stmt := range res.Program.Statements {
		fmt.Fprintln(out, stmt.String())
	}
	return nil
}

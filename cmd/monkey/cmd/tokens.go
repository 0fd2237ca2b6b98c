package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monkey-lang/monkey/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	l := lexer.New(string(data))
	for {
		tok := l.NextToken()
		fmt.Fprintf(out, "%d:%d\t%s\n", tok.Line, tok.Column, tok)
		if tok.Is(lexer.TokenEOF) {
			break
		}
	}

	for _, e := range l.Errors() {
		log.Warn("%s: %v", args[0], e)
	}
	if n := len(l.Errors()); n > 0 {
		return fmt.Errorf("%s: %d illegal characters", args[0], n)
	}
	return nil
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/monkey-lang/monkey/internal/cli"
	"github.com/monkey-lang/monkey/internal/repl"
)

var replMode string

// isTerminal is replaced in tests
var isTerminal = cli.IsTerminal

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive prompt",
	Long: `Starts an interactive prompt. In tokens mode every line is tokenized,
in parse mode it is parsed. Switch with :mode tokens or :mode parse.

When stdin is not a terminal the lines are read without prompting.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().StringVarP(&replMode, "mode", "m", "tokens", "initial mode (tokens or parse)")
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	mode, err := repl.ParseMode(replMode)
	if err != nil {
		return err
	}

	interactive := isTerminal(os.Stdin.Fd())
	r := repl.New(cmd.OutOrStdout(), repl.Options{
		Prompt:        cfg.Prompt,
		HistoryFile:   cfg.HistoryFile,
		Mode:          mode,
		Color:         interactive && isTerminal(os.Stdout.Fd()),
		ParserOptions: cfg.ParserOptions(),
	})

	if !interactive {
		log.Debug("stdin is not a terminal, reading without prompt")
		return r.RunReader(cmd.InOrStdin())
	}
	return r.Run()
}

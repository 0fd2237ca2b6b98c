// Package cmd implements the monkey command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/monkey-lang/monkey/internal/cli"
)

var (
	cfgFile   string
	verbose   bool
	debugMode bool
	lenient   bool
	maxDepth  int

	cfg *cli.Config
	log *cli.Logger
)

var rootCmd = &cobra.Command{
	Use:   "monkey",
	Short: "Monkey language tokenizer and parser",
	Long: `monkey tokenizes and parses Monkey source code.

Commands:
  tokens   - print the token stream of a file
  parse    - print the syntax tree of a file
  check    - report the first syntax error of each file
  watch    - re-check a file whenever it changes
  repl     - interactive prompt`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	if log != nil {
		log.Error("%v", err)
	} else {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.json, .toml or .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "debug output")
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false, "accept let and return statements without ';'")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0, "maximum expression nesting depth")
}

// loadConfig reads the config file and lets explicit flags override it
func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		c.Verbose = verbose
	}
	if flags.Changed("debug") {
		c.Debug = debugMode
	}
	if flags.Changed("lenient") {
		c.LenientTerminators = lenient
	}
	if flags.Changed("max-depth") {
		c.MaxDepth = maxDepth
	}

	cfg = c
	log = c.Logger().SetOutput(cmd.ErrOrStderr())
	if cfgFile != "" {
		log.Debug("loaded config %s", cfgFile)
	}
	return nil
}

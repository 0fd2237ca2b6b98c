package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/monkey-lang/monkey/internal/check"
)

var checkJobs int

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Report the first syntax error of each file",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().IntVarP(&checkJobs, "jobs", "j", 0, "files checked in parallel (default from config)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs := cfg.Jobs
	if checkJobs > 0 {
		jobs = checkJobs
	}

	results, err := check.Files(contextOf(cmd), args, check.Options{
		Jobs:          jobs,
		ParserOptions: cfg.ParserOptions(),
		Logger:        log,
	})
	if err != nil {
		return err
	}

	if failed := check.Report(cmd.OutOrStdout(), results); failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dsig/internal/diagfmt"
	"dsig/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] corpus.toml",
	Short: "Run a corpus file of signature expectations",
	Long: `Check reads a TOML corpus of [[case]] tables, each carrying a signature
and whether the grammar should accept it, and validates them in parallel:

    [[case]]
    name = "dict of string to variant"
    signature = "a{sv}"
    valid = true`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = GOMAXPROCS)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	corpus, err := driver.LoadCorpus(args[0])
	if err != nil {
		return err
	}

	report, err := driver.RunCorpus(cmd.Context(), corpus, jobs, maxDiagnostics(cmd))
	if err != nil {
		return err
	}

	if report.Bag.Len() > 0 {
		report.Bag.Sort()
		diagfmt.Pretty(cmd.ErrOrStderr(), report.Bag, report.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d cases, %d failed\n", len(report.Results), report.Failed)
	if report.Failed > 0 {
		return fmt.Errorf("corpus check failed")
	}
	return nil
}

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dsig/internal/diagfmt"
	"dsig/internal/driver"
)

var validateCmd = &cobra.Command{
	Use:   "validate [flags] SIGNATURE...",
	Short: "Validate D-Bus type signatures",
	Long: `Validate checks each signature against the grammar and reports every
violation with its byte offset. The exit status is 1 when any signature
is rejected.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().Bool("stdin", false, "read signatures from stdin, one per line")
	validateCmd.Flags().BoolP("quiet", "q", false, "suppress per-signature output, use the exit status only")
}

type namedInput struct {
	name string
	text string
}

func runValidate(cmd *cobra.Command, args []string) error {
	fromStdin, err := cmd.Flags().GetBool("stdin")
	if err != nil {
		return fmt.Errorf("failed to get stdin flag: %w", err)
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	inputs := make([]namedInput, 0, len(args))
	for i, arg := range args {
		inputs = append(inputs, namedInput{name: fmt.Sprintf("<arg%d>", i+1), text: arg})
	}
	if fromStdin {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for line := 1; scanner.Scan(); line++ {
			inputs = append(inputs, namedInput{name: fmt.Sprintf("<stdin:%d>", line), text: scanner.Text()})
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no signatures given; pass them as arguments or use --stdin")
	}

	opts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	}

	failed := 0
	for _, in := range inputs {
		res := driver.Check(in.name, in.text, maxDiagnostics(cmd))
		if res.Sig == nil {
			failed++
			res.Bag.Sort()
			diagfmt.Pretty(cmd.ErrOrStderr(), res.Bag, res.FileSet, opts)
			continue
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %q\n", res.Sig.Text())
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d signatures invalid", failed, len(inputs))
	}
	return nil
}

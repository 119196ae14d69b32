package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dsig/internal/diagfmt"
	"dsig/internal/driver"
)

var splitCmd = &cobra.Command{
	Use:   "split [flags] SIGNATURE",
	Short: "Decompose a signature into its single complete types",
	Long: `Split validates a signature and prints its top-level complete types in
order. Concatenating the parts reproduces the input exactly.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runSplit(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	res := driver.Check("<arg1>", args[0], maxDiagnostics(cmd))
	if res.Sig == nil {
		res.Bag.Sort()
		diagfmt.Pretty(cmd.ErrOrStderr(), res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
		return fmt.Errorf("invalid signature")
	}

	var parts []string
	for part := range res.Sig.All() {
		parts = append(parts, part.Text())
	}

	switch format {
	case "pretty":
		return diagfmt.FormatPartsPretty(cmd.OutOrStdout(), parts)
	case "json":
		return diagfmt.FormatPartsJSON(cmd.OutOrStdout(), res.Sig.Text(), parts)
	case "msgpack":
		return diagfmt.FormatPartsMsgpack(cmd.OutOrStdout(), res.Sig.Text(), parts)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

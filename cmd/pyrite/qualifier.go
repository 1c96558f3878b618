package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pyrite/internal/qualifier"
	"pyrite/internal/source"
)

var qualifierCmd = &cobra.Command{
	Use:   "qualifier [flags] path",
	Short: "Derive the module qualifier for a source path",
	Long: `Qualifier maps a relative source path to its dotted module name the way
the import system would: __init__ and builtins collapse into the package,
stub trees drop their version directories, and identifiers are normalized.`,
	Args: cobra.ExactArgs(1),
	RunE: runQualifier,
}

func init() {
	qualifierCmd.Flags().Bool("stub", false, "treat the path as a stub regardless of extension")
	qualifierCmd.Flags().String("from", "", "expand this from-import clause against the derived qualifier")
}

func runQualifier(cmd *cobra.Command, args []string) error {
	stub, err := cmd.Flags().GetBool("stub")
	if err != nil {
		return fmt.Errorf("failed to get stub flag: %w", err)
	}
	fromClause, err := cmd.Flags().GetString("from")
	if err != nil {
		return fmt.Errorf("failed to get from flag: %w", err)
	}

	handle := source.NewHandle(args[0])
	if stub {
		handle.Stub = true
	}

	q, err := qualifier.FromHandle(handle)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if fromClause == "" {
		fmt.Fprintln(out, q)
		return nil
	}

	expanded, err := qualifier.ExpandRelative(q, handle.IsInit(), fromClause)
	if err != nil {
		return fmt.Errorf("cannot expand %q in %s: %w", fromClause, q, err)
	}
	fmt.Fprintln(out, expanded)
	return nil
}

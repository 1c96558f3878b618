package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pyrite/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the pyrite scan cache",
	Long:  "Remove the on-disk scan cache so the next scan starts cold.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(_ *cobra.Command, _ []string) error {
	cache, err := driver.OpenDiskCache("pyrite")
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	dir := cache.Dir()
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to remove %q: %w", dir, err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "removed %s\n", dir)
	return nil
}

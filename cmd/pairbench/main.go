// Command pairbench exercises pairlist.List from the command line: it fills,
// drains, filters and snapshots lists and reports what that cost.
package main

import (
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := cobra.Command{
		Use:          "pairbench",
		Short:        "Measures pairlist.List against boxed pairs and exercises its cursor.",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newFillCmd())
	rootCmd.AddCommand(newDrainCmd())
	rootCmd.AddCommand(newFilterCmd())
	rootCmd.AddCommand(newSnapshotCmd())
	return &rootCmd
}

func main() {
	rootCmd := newRootCmd()

	start := time.Now()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	log.Printf("[pairbench] time elapsed %v", time.Since(start))
}

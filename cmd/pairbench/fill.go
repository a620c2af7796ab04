package main

import (
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-pairlist/pairlist"
)

func newFillCmd() *cobra.Command {
	var count, capacity int
	fillCmd := cobra.Command{
		Use:     "fill",
		Short:   "Appends pairs to a pairlist.List and to a slice of boxed pairs and compares the cost.",
		Args:    cobra.NoArgs,
		Example: "pairbench fill --count 1000000 --capacity 16",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkCount(count); err != nil {
				return err
			}
			list, err := pairlist.WithCapacity[int, string](capacity)
			if err != nil {
				return err
			}
			listStats, err := measure(func() error { return fillList(list, count) })
			if err != nil {
				return err
			}

			var boxed []*pairlist.Pair[int, string]
			boxedStats, err := measure(func() error { return fillBoxed(&boxed, capacity, count) })
			runtime.KeepAlive(boxed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printHeader(out)
			printStats(out, "pairlist", listStats)
			printStats(out, "boxed", boxedStats)
			return nil
		},
	}
	fillCmd.Flags().IntVarP(&count, "count", "n", 1_000_000, "number of pairs to append")
	fillCmd.Flags().IntVarP(&capacity, "capacity", "c", pairlist.DefaultCapacity, "initial capacity")
	return &fillCmd
}

// fillBoxed is the baseline: one heap object per pair.
func fillBoxed(boxed *[]*pairlist.Pair[int, string], capacity, count int) error {
	if capacity < 0 {
		return errors.Errorf("capacity must be ≥ 0, got %d", capacity)
	}
	*boxed = make([]*pairlist.Pair[int, string], 0, capacity)
	for i := 0; i < count; i++ {
		p := pairlist.NewPair(i, labels[i%len(labels)])
		*boxed = append(*boxed, &p)
	}
	return nil
}

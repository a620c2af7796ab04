package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newDrainCmd() *cobra.Command {
	var count int
	drainCmd := cobra.Command{
		Use:     "drain",
		Short:   "Fills a list and walks it with a cursor, checking every pair.",
		Args:    cobra.NoArgs,
		Example: "pairbench drain --count 100000",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkCount(count); err != nil {
				return err
			}
			list, err := newFilledList(count)
			if err != nil {
				return err
			}

			var seen, sum int
			s, err := measure(func() error {
				return list.Iterator().ForEachRemaining(func(first int, second string) {
					if second != labels[first%len(labels)] {
						return
					}
					seen++
					sum += first
				})
			})
			if err != nil {
				return errors.Wrap(err, "drain")
			}
			if seen != count {
				return errors.Errorf("drain: %d of %d pairs intact", seen, count)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "drained %d pairs, sum of firsts %d\n", seen, sum)
			printHeader(out)
			printStats(out, "cursor", s)
			return nil
		},
	}
	drainCmd.Flags().IntVarP(&count, "count", "n", 1_000_000, "number of pairs")
	return &drainCmd
}

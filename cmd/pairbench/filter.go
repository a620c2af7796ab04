package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-pairlist/pairlist"
)

// filterList keeps the pairs whose first component is a multiple of modulo.
func filterList(l *pairlist.List[int, string], modulo int) (*pairlist.List[int, string], error) {
	return pairlist.FilterByFirst(l, func(first int) bool { return first%modulo == 0 })
}

func newFilterCmd() *cobra.Command {
	var count, modulo, show int
	filterCmd := cobra.Command{
		Use:     "filter",
		Short:   "Selects pairs by their first component using the two-phase cursor.",
		Args:    cobra.NoArgs,
		Example: "pairbench filter --count 1000 --modulo 7 --show 3",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkCount(count); err != nil {
				return err
			}
			if modulo <= 0 {
				return errors.Errorf("modulo must be ≥ 1, got %d", modulo)
			}
			list, err := newFilledList(count)
			if err != nil {
				return err
			}

			var matches *pairlist.List[int, string]
			s, err := measure(func() error {
				var err error
				matches, err = filterList(list, modulo)
				return err
			})
			if err != nil {
				return errors.Wrap(err, "filter")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "matched %d of %d pairs\n", matches.Size(), list.Size())
			for i := 0; i < min(show, matches.Size()); i++ {
				first, _ := matches.First(i)
				second, _ := matches.Second(i)
				fmt.Fprintf(out, "  %s\n", pairlist.NewPair(first, second))
			}
			printHeader(out)
			printStats(out, "cursor", s)
			return nil
		},
	}
	filterCmd.Flags().IntVarP(&count, "count", "n", 1_000_000, "number of pairs")
	filterCmd.Flags().IntVarP(&modulo, "modulo", "m", 2, "keep firsts divisible by this")
	filterCmd.Flags().IntVarP(&show, "show", "s", 0, "print the first matches")
	return &filterCmd
}

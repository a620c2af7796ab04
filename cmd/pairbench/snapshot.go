package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-pairlist/pairlist"
	"github.com/hasbyte1/go-pairlist/snapshot"
)

func newSnapshotCmd() *cobra.Command {
	var (
		count int
		out   string
	)
	snapshotCmd := cobra.Command{
		Use:     "snapshot",
		Short:   "Writes a list snapshot to a file, reads it back and verifies it.",
		Args:    cobra.NoArgs,
		Example: "pairbench snapshot --count 1000 --out pairs.pls",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkCount(count); err != nil {
				return err
			}
			list, err := newFilledList(count)
			if err != nil {
				return err
			}
			want, err := snapshot.Checksum(list)
			if err != nil {
				return err
			}

			if err := writeSnapshot(out, list); err != nil {
				return err
			}
			restored, err := readSnapshot(out)
			if err != nil {
				return err
			}
			got, err := snapshot.Checksum(restored)
			if err != nil {
				return err
			}
			if got != want {
				return errors.Errorf("snapshot %s: restored list differs", out)
			}

			info, err := os.Stat(out)
			if err != nil {
				return errors.Wrap(err, "stat snapshot")
			}
			log.Printf("[pairbench] snapshot %s verified", out)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d pairs, %d bytes, blake2b-256 %s\n",
				out, restored.Size(), info.Size(), hex.EncodeToString(got[:]))
			return nil
		},
	}
	snapshotCmd.Flags().IntVarP(&count, "count", "n", 1_000, "number of pairs")
	snapshotCmd.Flags().StringVarP(&out, "out", "o", "", "snapshot file to write")
	snapshotCmd.MarkFlagRequired("out")
	return &snapshotCmd
}

func writeSnapshot(path string, l *pairlist.List[int, string]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create snapshot")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close snapshot")
		}
	}()
	return snapshot.Encode(f, l)
}

func readSnapshot(path string) (*pairlist.List[int, string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open snapshot")
	}
	defer f.Close()
	return snapshot.Decode[int, string](bufio.NewReader(f))
}

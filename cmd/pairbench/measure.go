package main

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/pkg/errors"

	"github.com/hasbyte1/go-pairlist/pairlist"
)

// labels are shared so that filling does not allocate strings per pair.
var labels = []string{"alpha", "beta", "gamma", "delta", "epsilon"}

type stats struct {
	allocs  uint64
	bytes   uint64
	elapsed time.Duration
}

func measure(fn func() error) (stats, error) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)
	return stats{
		allocs:  after.Mallocs - before.Mallocs,
		bytes:   after.TotalAlloc - before.TotalAlloc,
		elapsed: elapsed,
	}, err
}

func printHeader(w io.Writer) {
	fmt.Fprintf(w, "%-10s %12s %14s %14s\n", "layout", "allocs", "bytes", "elapsed")
}

func printStats(w io.Writer, name string, s stats) {
	fmt.Fprintf(w, "%-10s %12d %14d %14s\n", name, s.allocs, s.bytes, s.elapsed)
}

func checkCount(count int) error {
	if count < 0 {
		return errors.Errorf("count must be ≥ 0, got %d", count)
	}
	return nil
}

func fillList(l *pairlist.List[int, string], count int) error {
	for i := 0; i < count; i++ {
		if err := l.Add(i, labels[i%len(labels)]); err != nil {
			return errors.Wrapf(err, "add pair %d", i)
		}
	}
	return nil
}

func newFilledList(count int) (*pairlist.List[int, string], error) {
	l, err := pairlist.WithCapacity[int, string](count)
	if err != nil {
		return nil, err
	}
	return l, fillList(l, count)
}

package pairlist_test

import (
	"testing"

	"github.com/hasbyte1/go-pairlist/pairlist"
)

const benchSize = 10_000

var sink int

func makeList(n int) *pairlist.List[int, int] {
	l, _ := pairlist.WithCapacity[int, int](n)
	for i := 0; i < n; i++ {
		_ = l.Add(i, i*2)
	}
	return l
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := pairlist.New[int, int]()
		for j := 0; j < benchSize; j++ {
			_ = l.Add(j, j)
		}
	}
}

func BenchmarkAddBoxedPairs(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := make([]*pairlist.Pair[int, int], 0, 16)
		for j := 0; j < benchSize; j++ {
			s = append(s, &pairlist.Pair[int, int]{First: j, Second: j})
		}
	}
}

func BenchmarkCursorDrain(b *testing.B) {
	l := makeList(benchSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		c := l.Iterator()
		for c.HasNext() {
			first, _ := c.ReadFirst()
			second, _ := c.ReadSecond()
			sum += first + second
		}
		sink = sum
	}
}

func BenchmarkAll(b *testing.B) {
	l := makeList(benchSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for first, second := range l.All() {
			sum += first + second
		}
		sink = sum
	}
}

func BenchmarkContainsDefaultEqual(b *testing.B) {
	l := makeList(1_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Contains(999, 1998)
	}
}

func BenchmarkContainsReflectEqual(b *testing.B) {
	opts := pairlist.DefaultOptions[int, int]()
	opts.EqualFirst = pairlist.Equal[int]
	opts.EqualSecond = pairlist.Equal[int]
	l, _ := pairlist.NewWithOptions(opts)
	for i := 0; i < 1_000; i++ {
		_ = l.Add(i, i*2)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Contains(999, 1998)
	}
}

func BenchmarkContainsComparable(b *testing.B) {
	opts := pairlist.DefaultOptions[int, int]()
	opts.EqualFirst = pairlist.Comparable[int]
	opts.EqualSecond = pairlist.Comparable[int]
	l, _ := pairlist.NewWithOptions(opts)
	for i := 0; i < 1_000; i++ {
		_ = l.Add(i, i*2)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Contains(999, 1998)
	}
}

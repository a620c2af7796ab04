package pairlist

import "fmt"

// Combine builds a List from equal-length slices of firsts and seconds.
// Returns [ErrMismatchedLengths] if len(firsts) != len(seconds), and
// [ErrCapacityExceeded] if there are more than [MaxCapacity] pairs.
//
//	l, _ := pairlist.Combine([]string{"a", "b"}, []int{1, 2})
//	// → [(a, 1) (b, 2)]
func Combine[A, B any](firsts []A, seconds []B) (*List[A, B], error) {
	return combine(DefaultOptions[A, B](), firsts, seconds)
}

func combine[A, B any](opts Options[A, B], firsts []A, seconds []B) (*List[A, B], error) {
	if len(firsts) != len(seconds) {
		return nil, fmt.Errorf("%w: %d firsts, %d seconds", ErrMismatchedLengths, len(firsts), len(seconds))
	}
	l, err := newSized(opts, len(firsts))
	if err != nil {
		return nil, err
	}
	copy(l.firsts, firsts)
	copy(l.seconds, seconds)
	return l, nil
}

// Reduce folds every pair of l into a single value, in order.
//
//	total := pairlist.Reduce(l, func(acc int, _ string, n int) int { return acc + n }, 0)
func Reduce[A, B, R any](l *List[A, B], fn func(R, A, B) R, initial R) R {
	acc := initial
	for i := 0; i < l.size; i++ {
		acc = fn(acc, l.firsts[i], l.seconds[i])
	}
	return acc
}

// FilterByFirst returns a new List holding the pairs whose first component
// satisfies keep. The decision is made on the first component alone; second
// components are copied only for kept pairs.
func FilterByFirst[A, B any](l *List[A, B], keep func(A) bool) (*List[A, B], error) {
	if keep == nil {
		return nil, fmt.Errorf("%w: predicate must not be nil", ErrInvalidOption)
	}
	out := newList(Options[A, B]{
		MaxCapacity: l.maxCapacity,
		EqualFirst:  l.equalFirst,
		EqualSecond: l.equalSecond,
	})
	c := l.cursor()
	for c.HasNext() {
		first, err := c.ReadFirst()
		if err != nil {
			return nil, err
		}
		second, err := c.ReadSecond()
		if err != nil {
			return nil, err
		}
		if !keep(first) {
			continue
		}
		if err := out.Add(first, second); err != nil {
			return nil, err
		}
	}
	return out, nil
}

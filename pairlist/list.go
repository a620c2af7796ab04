package pairlist

import (
	"fmt"
	"iter"
	"strings"
)

// List is an ordered sequence of (A, B) pairs stored in two parallel slices.
//
// Pair i lives at firsts[i] and seconds[i]; no Pair value is ever allocated
// for storage. Appends are amortised O(1); Contains and Remove are linear
// scans; indexed access is O(1).
//
// Every structural change (Add, a successful Remove, Clear) bumps an internal
// generation counter that [Cursor] checks on each read. Growth on its own
// (EnsureCapacity) is not a structural change.
//
// # Thread safety
//
// List has no internal synchronisation. Use it from one goroutine at a time,
// like a plain slice.
type List[A, B any] struct {
	firsts      []A
	seconds     []B
	size        int
	modCount    int
	maxCapacity int
	equalFirst  func(A, A) bool
	equalSecond func(B, B) bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an empty List with [DefaultCapacity] slots.
func New[A, B any]() *List[A, B] {
	return newList(DefaultOptions[A, B]())
}

// WithCapacity creates an empty List with room for capacity pairs before the
// first reallocation. Returns [ErrInvalidOption] for a negative capacity or
// one above [MaxCapacity].
func WithCapacity[A, B any](capacity int) (*List[A, B], error) {
	opts := DefaultOptions[A, B]()
	opts.Capacity = capacity
	return NewWithOptions(opts)
}

// NewWithOptions creates an empty List configured by opts.
// Returns [ErrInvalidOption] if opts fails validation.
func NewWithOptions[A, B any](opts Options[A, B]) (*List[A, B], error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	return newList(opts), nil
}

// FromPairs creates a List holding pairs in order.
// Returns [ErrCapacityExceeded] if there are more than [MaxCapacity] pairs.
func FromPairs[A, B any](pairs ...Pair[A, B]) (*List[A, B], error) {
	l, err := newSized(DefaultOptions[A, B](), len(pairs))
	if err != nil {
		return nil, err
	}
	for i, p := range pairs {
		l.firsts[i] = p.First
		l.seconds[i] = p.Second
	}
	return l, nil
}

// newSized creates a List of n zero pairs for the caller to fill in place,
// with room for at least DefaultCapacity pairs.
func newSized[A, B any](opts Options[A, B], n int) (*List[A, B], error) {
	if n > opts.MaxCapacity {
		return nil, fmt.Errorf("%w: need %d slots, max %d",
			ErrCapacityExceeded, n, opts.MaxCapacity)
	}
	opts.Capacity = min(max(n, DefaultCapacity), opts.MaxCapacity)
	l := newList(opts)
	l.size = n
	l.modCount = n
	return l, nil
}

func newList[A, B any](opts Options[A, B]) *List[A, B] {
	l := &List[A, B]{
		firsts:      make([]A, opts.Capacity),
		seconds:     make([]B, opts.Capacity),
		maxCapacity: opts.MaxCapacity,
		equalFirst:  opts.EqualFirst,
		equalSecond: opts.EqualSecond,
	}
	if l.equalFirst == nil {
		l.equalFirst = equalFor[A]()
	}
	if l.equalSecond == nil {
		l.equalSecond = equalFor[B]()
	}
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Size returns the number of pairs.
func (l *List[A, B]) Size() int { return l.size }

// IsEmpty reports whether the list holds no pairs.
func (l *List[A, B]) IsEmpty() bool { return l.size == 0 }

// Capacity returns the number of pair slots currently allocated.
func (l *List[A, B]) Capacity() int { return len(l.firsts) }

// First returns the first component of pair index.
// Returns [ErrIndexOutOfRange] unless 0 ≤ index < Size().
func (l *List[A, B]) First(index int) (A, error) {
	if err := l.checkIndex(index); err != nil {
		var zero A
		return zero, err
	}
	return l.firsts[index], nil
}

// Second returns the second component of pair index.
// Returns [ErrIndexOutOfRange] unless 0 ≤ index < Size().
func (l *List[A, B]) Second(index int) (B, error) {
	if err := l.checkIndex(index); err != nil {
		var zero B
		return zero, err
	}
	return l.seconds[index], nil
}

func (l *List[A, B]) checkIndex(index int) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.size)
	}
	return nil
}

// Contains reports whether some pair equals (first, second).
func (l *List[A, B]) Contains(first A, second B) bool {
	return l.indexOf(first, second) >= 0
}

func (l *List[A, B]) indexOf(first A, second B) int {
	for i := 0; i < l.size; i++ {
		if l.equalFirst(first, l.firsts[i]) && l.equalSecond(second, l.seconds[i]) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Add appends (first, second) at index Size(), growing the backing storage
// by half its size when full.
//
// Returns [ErrCapacityExceeded] when the list already holds its maximum
// number of pairs; the list is left untouched in that case.
func (l *List[A, B]) Add(first A, second B) error {
	if l.size == len(l.firsts) {
		if err := l.grow(l.size + 1); err != nil {
			return err
		}
	}
	l.firsts[l.size] = first
	l.seconds[l.size] = second
	l.size++
	l.modCount++
	return nil
}

// EnsureCapacity grows the backing storage so that at least minCapacity
// pairs fit without reallocation. It is not a structural change: live
// cursors stay valid.
func (l *List[A, B]) EnsureCapacity(minCapacity int) error {
	if minCapacity <= len(l.firsts) {
		return nil
	}
	return l.grow(minCapacity)
}

// Remove deletes the first pair equal to (first, second), shifting the pairs
// after it one slot to the left so their order is kept. It reports whether a
// pair was removed; a miss changes nothing, not even the generation.
func (l *List[A, B]) Remove(first A, second B) bool {
	index := l.indexOf(first, second)
	if index < 0 {
		return false
	}
	l.fastRemove(index)
	return true
}

func (l *List[A, B]) fastRemove(index int) {
	copy(l.firsts[index:l.size], l.firsts[index+1:l.size])
	copy(l.seconds[index:l.size], l.seconds[index+1:l.size])
	l.size--

	// drop references so the removed pair can be collected
	var (
		zeroA A
		zeroB B
	)
	l.firsts[l.size] = zeroA
	l.seconds[l.size] = zeroB
	l.modCount++
}

// Clear removes every pair. Capacity is kept.
func (l *List[A, B]) Clear() {
	clear(l.firsts[:l.size])
	clear(l.seconds[:l.size])
	l.size = 0
	l.modCount++
}

// grow reallocates both slices to the capacity chosen by nextCapacity.
// Both slices are allocated before either is swapped in.
func (l *List[A, B]) grow(minCapacity int) error {
	newCapacity, err := l.nextCapacity(minCapacity)
	if err != nil {
		return err
	}
	firsts := make([]A, newCapacity)
	seconds := make([]B, newCapacity)
	copy(firsts, l.firsts[:l.size])
	copy(seconds, l.seconds[:l.size])
	l.firsts, l.seconds = firsts, seconds
	return nil
}

// nextCapacity returns max(old + old/2, minCapacity) capped at maxCapacity.
// minCapacity < 0 means the caller's size+1 overflowed.
func (l *List[A, B]) nextCapacity(minCapacity int) (int, error) {
	if minCapacity < 0 || minCapacity > l.maxCapacity {
		return 0, fmt.Errorf("%w: need %d slots, max %d",
			ErrCapacityExceeded, minCapacity, l.maxCapacity)
	}
	old := len(l.firsts)
	newCapacity := old + old>>1
	// also catches old + old/2 wrapping negative
	if newCapacity < minCapacity {
		newCapacity = minCapacity
	}
	if newCapacity > l.maxCapacity {
		newCapacity = l.maxCapacity
	}
	return newCapacity, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Iterator returns a fresh [Cursor] positioned before the first pair.
func (l *List[A, B]) Iterator() *Cursor[A, B] {
	c := l.cursor()
	return &c
}

func (l *List[A, B]) cursor() Cursor[A, B] {
	return Cursor[A, B]{
		list:             l,
		lastRead:         -1,
		expectedModCount: l.modCount,
	}
}

// All returns an iterator over the pairs for use with range:
//
//	for id, name := range list.All() {
//	    ...
//	}
//
// All walks a [Cursor], so it is fail-fast on the same best-effort terms:
// when the loop body structurally modifies the list, the next step panics
// with an error wrapping [ErrConcurrentModification].
func (l *List[A, B]) All() iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		c := l.cursor()
		for c.HasNext() {
			first, err := c.ReadFirst()
			if err != nil {
				panic(err)
			}
			second, err := c.ReadSecond()
			if err != nil {
				panic(err)
			}
			if !yield(first, second) {
				return
			}
		}
	}
}

// Pairs returns a copy of the list as boxed pairs.
func (l *List[A, B]) Pairs() []Pair[A, B] {
	out := make([]Pair[A, B], l.size)
	for i := range out {
		out[i] = Pair[A, B]{First: l.firsts[i], Second: l.seconds[i]}
	}
	return out
}

// Firsts returns a copy of the first components in order.
func (l *List[A, B]) Firsts() []A {
	out := make([]A, l.size)
	copy(out, l.firsts[:l.size])
	return out
}

// Seconds returns a copy of the second components in order.
func (l *List[A, B]) Seconds() []B {
	out := make([]B, l.size)
	copy(out, l.seconds[:l.size])
	return out
}

// String renders the list as "[(a1, b1) (a2, b2)]".
// It implements [fmt.Stringer].
func (l *List[A, B]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < l.size; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "(%v, %v)", l.firsts[i], l.seconds[i])
	}
	b.WriteByte(']')
	return b.String()
}

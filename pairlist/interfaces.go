package pairlist

// Container is the surface satisfied by [List].
//
// Accept Container in your own functions so that callers can substitute
// another pair store without depending on *List.
type Container[A, B any] interface {
	// Size returns the number of pairs.
	Size() int

	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool

	// Contains reports whether some pair equals (first, second).
	Contains(first A, second B) bool

	// Add appends (first, second).
	Add(first A, second B) error

	// Remove deletes the first pair equal to (first, second), keeping the
	// order of the rest, and reports whether one was found.
	Remove(first A, second B) bool

	// First returns the first component at index.
	First(index int) (A, error)

	// Second returns the second component at index.
	Second(index int) (B, error)

	// Clear removes every pair.
	Clear()
}

// Iterator is the two-phase read protocol satisfied by [Cursor].
type Iterator[A, B any] interface {
	HasNext() bool
	ReadFirst() (A, error)
	ReadSecond() (B, error)
	ForEachRemaining(action func(A, B)) error
	Remove() error
}

var (
	_ Container[int, string] = (*List[int, string])(nil)
	_ Iterator[int, string]  = (*Cursor[int, string])(nil)
)

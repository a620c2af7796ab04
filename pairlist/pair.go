package pairlist

import "fmt"

// Pair holds two values of possibly different types.
//
// A List never stores Pair values; Pair only appears at the edges of the API
// ([List.Pairs], [FromPairs]) where a caller explicitly asks for boxed pairs.
type Pair[A, B any] struct {
	First  A `json:"first"`
	Second B `json:"second"`
}

// NewPair constructs a Pair.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Unpack returns both components.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

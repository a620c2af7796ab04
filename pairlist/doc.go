// Package pairlist provides a compact, generic list of (A, B) pairs backed by
// two parallel slices, plus a fail-fast cursor that reads each pair in two
// steps.
//
// # Overview
//
// Storing millions of pairs as []Pair[A, B] is fine when A and B are small
// values, but as soon as callers reach for []*Pair or []any every element
// becomes its own heap object. [List] keeps the components in two slices
// instead, so a pair costs no allocation and no pointer hop:
//
//	l := pairlist.New[int, string]()
//	_ = l.Add(1, "one")
//	_ = l.Add(2, "two")
//
//	name, _ := l.Second(1) // "two"
//	l.Remove(1, "one")     // shifts (2, "two") to index 0
//
// # Iteration
//
// [List.Iterator] returns a [Cursor] with a "read first, then read second"
// protocol; [List.All] adapts it to range-over-func:
//
//	for id, name := range l.All() {
//	    fmt.Println(id, name)
//	}
//
// Cursors are fail-fast: after Add, a successful Remove or Clear, the next
// read returns [ErrConcurrentModification]. Detection is best-effort and
// single-goroutine only; List itself is not safe for concurrent use.
//
// # Equality
//
// Contains and Remove compare plain comparable element types (numbers,
// strings, arrays and structs of them) with == and never allocate. Pointers,
// interfaces, non-comparable types and [Equaler] implementations go through
// [Equal] (nil equals nil, [Equaler], ==, then reflect.DeepEqual). Any other
// func can be supplied through [Options].
//
// # Errors
//
// All failures are sentinel errors wrapped with context; match them with
// [errors.Is]: [ErrIndexOutOfRange], [ErrCapacityExceeded],
// [ErrNoSuchElement], [ErrConcurrentModification], [ErrProtocolViolation],
// [ErrInvalidOption].
package pairlist

package pairlist

import "errors"

// Sentinel errors returned by List and Cursor operations.
//
// Use [errors.Is] for comparisons; the returned errors are wrapped with the
// offending index, size or capacity:
//
//	v, err := list.First(10)
//	if errors.Is(err, pairlist.ErrIndexOutOfRange) {
//	    // caller bug
//	}
var (
	// ErrIndexOutOfRange is returned by First and Second when the index is
	// outside [0, Size()-1].
	ErrIndexOutOfRange = errors.New("pairlist: index out of range")

	// ErrCapacityExceeded is returned when growing the backing storage would
	// exceed the configured maximum capacity or overflow int.
	ErrCapacityExceeded = errors.New("pairlist: capacity exceeded")

	// ErrNoSuchElement is returned by a cursor read when no pairs remain.
	ErrNoSuchElement = errors.New("pairlist: no such element")

	// ErrConcurrentModification is returned by a cursor read when the list was
	// structurally modified after the cursor was created. A cursor that
	// returned it never recovers.
	ErrConcurrentModification = errors.New("pairlist: list modified during iteration")

	// ErrProtocolViolation is returned when the cursor call order is broken:
	// ReadSecond without a preceding ReadFirst, or Remove on a cursor.
	ErrProtocolViolation = errors.New("pairlist: cursor protocol violation")

	// ErrMismatchedLengths is returned by Combine when the two slices have
	// different lengths.
	ErrMismatchedLengths = errors.New("pairlist: firsts and seconds must have the same length")

	// ErrInvalidOption is returned when a constructor or helper receives a
	// value outside its allowed range.
	ErrInvalidOption = errors.New("pairlist: invalid option value")
)

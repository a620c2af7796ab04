package pairlist

import (
	"fmt"
	"math"
)

const (
	// DefaultCapacity is the initial backing capacity used by [New].
	DefaultCapacity = 16

	// MaxCapacity is the default growth ceiling: the largest slice length the
	// platform's int can describe, less some headroom so that capacity
	// arithmetic never wraps.
	MaxCapacity = math.MaxInt - 8
)

// Options configures a [List].
type Options[A, B any] struct {
	// Capacity is the initial number of pair slots allocated.
	// Valid range: [0, MaxCapacity]. Default: [DefaultCapacity].
	Capacity int

	// MaxCapacity bounds growth. Add fails with [ErrCapacityExceeded] instead
	// of growing past it. Default: [MaxCapacity].
	MaxCapacity int

	// EqualFirst compares first elements in Contains and Remove.
	// Nil means [Equal].
	EqualFirst func(A, A) bool

	// EqualSecond compares second elements in Contains and Remove.
	// Nil means [Equal].
	EqualSecond func(B, B) bool
}

// DefaultOptions returns Options with [DefaultCapacity] and [MaxCapacity].
func DefaultOptions[A, B any]() Options[A, B] {
	return Options[A, B]{
		Capacity:    DefaultCapacity,
		MaxCapacity: MaxCapacity,
	}
}

func validateOptions[A, B any](opts Options[A, B]) error {
	if opts.MaxCapacity < 1 {
		return fmt.Errorf("%w: max capacity must be ≥ 1, got %d", ErrInvalidOption, opts.MaxCapacity)
	}
	if opts.Capacity < 0 {
		return fmt.Errorf("%w: capacity must be ≥ 0, got %d", ErrInvalidOption, opts.Capacity)
	}
	if opts.Capacity > opts.MaxCapacity {
		return fmt.Errorf("%w: capacity %d exceeds max capacity %d",
			ErrInvalidOption, opts.Capacity, opts.MaxCapacity)
	}
	return nil
}

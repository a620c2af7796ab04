package pairlist

import (
	"errors"
	"fmt"
)

// Cursor walks a [List] front to back without allocating a pair per step.
//
// Each pair is consumed in two phases: [Cursor.ReadFirst] peeks at the first
// component without moving, [Cursor.ReadSecond] returns the second component
// and advances. A caller can therefore inspect the first component and decide
// whether it cares about the second one:
//
//	c := list.Iterator()
//	for c.HasNext() {
//	    id, err := c.ReadFirst()
//	    if err != nil {
//	        return err
//	    }
//	    name, err := c.ReadSecond()
//	    if err != nil {
//	        return err
//	    }
//	    use(id, name)
//	}
//
// ReadFirst may be repeated before ReadSecond; it keeps returning the same
// component. ReadSecond without a ReadFirst since the previous ReadSecond
// fails with [ErrProtocolViolation].
//
// A Cursor records the list's generation when created. Any read after an
// Add, a successful Remove or a Clear on the list fails with
// [ErrConcurrentModification], and the cursor stays unusable from then on.
// The check is a plain counter comparison, not a lock: it catches misuse
// from a single goroutine, it does not make cross-goroutine use safe.
type Cursor[A, B any] struct {
	list             *List[A, B]
	position         int
	lastRead         int
	expectedModCount int
	pendingSecond    bool
}

// HasNext reports whether unread pairs remain. It performs no staleness
// check.
func (c *Cursor[A, B]) HasNext() bool {
	return c.position < c.list.size
}

// ReadFirst returns the first component of the next pair without advancing.
func (c *Cursor[A, B]) ReadFirst() (A, error) {
	var zero A
	if err := c.checkForComodification(); err != nil {
		return zero, err
	}
	if err := c.checkRemaining(); err != nil {
		return zero, err
	}
	c.lastRead = c.position
	c.pendingSecond = true
	return c.list.firsts[c.position], nil
}

// ReadSecond returns the second component of the pair whose first component
// was just read, and advances to the following pair.
//
// When several failures apply, [ErrConcurrentModification] wins over
// [ErrNoSuchElement], which wins over [ErrProtocolViolation]: an exhausted
// cursor always reports exhaustion, and a stale one always reports staleness.
func (c *Cursor[A, B]) ReadSecond() (B, error) {
	var zero B
	if err := c.checkForComodification(); err != nil {
		return zero, err
	}
	if err := c.checkRemaining(); err != nil {
		return zero, err
	}
	if !c.pendingSecond {
		return zero, fmt.Errorf("%w: ReadSecond at position %d without ReadFirst",
			ErrProtocolViolation, c.position)
	}
	c.position++
	c.pendingSecond = false
	return c.list.seconds[c.lastRead], nil
}

// ForEachRemaining calls action for every unread pair, in order.
// It stops at and returns the first read error.
func (c *Cursor[A, B]) ForEachRemaining(action func(A, B)) error {
	if action == nil {
		return fmt.Errorf("%w: action must not be nil", ErrInvalidOption)
	}
	for c.HasNext() {
		first, err := c.ReadFirst()
		if err != nil {
			return err
		}
		second, err := c.ReadSecond()
		if err != nil {
			return err
		}
		action(first, second)
	}
	return nil
}

// Remove is not supported; use [List.Remove] outside the traversal.
// It always returns an error matching both [ErrProtocolViolation] and
// [errors.ErrUnsupported].
func (c *Cursor[A, B]) Remove() error {
	return fmt.Errorf("%w: remove: %w", ErrProtocolViolation, errors.ErrUnsupported)
}

func (c *Cursor[A, B]) checkForComodification() error {
	if c.list.modCount != c.expectedModCount {
		return fmt.Errorf("%w: generation %d, cursor expects %d",
			ErrConcurrentModification, c.list.modCount, c.expectedModCount)
	}
	return nil
}

func (c *Cursor[A, B]) checkRemaining() error {
	if c.position >= c.list.size {
		return fmt.Errorf("%w: position %d, size %d", ErrNoSuchElement, c.position, c.list.size)
	}
	return nil
}

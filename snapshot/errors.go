package snapshot

import "github.com/pkg/errors"

// Sentinel errors returned by Decode and Unmarshal. Returned errors wrap them
// with context; match with [errors.Is].
var (
	// ErrBadMagic is returned when the frame does not start with "PLS1".
	ErrBadMagic = errors.New("snapshot: bad magic")

	// ErrChecksumMismatch is returned when the payload digest does not match.
	ErrChecksumMismatch = errors.New("snapshot: checksum mismatch")

	// ErrLengthMismatch is returned when the payload holds a different number
	// of firsts and seconds.
	ErrLengthMismatch = errors.New("snapshot: firsts and seconds differ in length")

	// ErrTooLarge is returned when a payload exceeds MaxPayload.
	ErrTooLarge = errors.New("snapshot: payload too large")
)

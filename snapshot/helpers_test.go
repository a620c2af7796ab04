package snapshot_test

import (
	"encoding/binary"
	"testing"

	"golang.org/x/crypto/blake2b"
)

// frameFor builds a frame around an arbitrary payload with a valid digest.
func frameFor(t *testing.T, data []byte) []byte {
	t.Helper()
	frame := make([]byte, 8, 8+len(data)+blake2b.Size256)
	copy(frame, "PLS1")
	binary.LittleEndian.PutUint32(frame[4:], uint32(len(data)))
	frame = append(frame, data...)
	sum := blake2b.Sum256(data)
	return append(frame, sum[:]...)
}

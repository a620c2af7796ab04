// Package snapshot encodes a [pairlist.List] into a self-checking byte frame
// and back, so a list can be handed to another process or stashed in a
// cache without trusting the transport.
//
// # Frame layout
//
//	offset  size  field
//	0       4     magic "PLS1"
//	4       4     payload length, little endian
//	8       n     JSON payload {"firsts":[...],"seconds":[...]}
//	8+n     32    BLAKE2b-256 digest of the payload
//
// The payload keeps the list's parallel layout: two JSON arrays of equal
// length. Element types must round-trip through encoding/json.
//
// A snapshot is a copy, not a live view, and this package does not manage
// files; callers decide where frames go.
package snapshot

package snapshot

import (
	"bytes"
	"crypto/subtle"
	"encoding/binary"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"github.com/hasbyte1/go-pairlist/pairlist"
)

const (
	// MaxPayload bounds the JSON payload of a single frame (64 MiB).
	MaxPayload = 64 << 20

	headerSize = 8
	digestSize = blake2b.Size256
)

var magic = [4]byte{'P', 'L', 'S', '1'}

type payload[A, B any] struct {
	Firsts  []A `json:"firsts"`
	Seconds []B `json:"seconds"`
}

// Encode writes l to w as a single frame.
func Encode[A, B any](w io.Writer, l *pairlist.List[A, B]) error {
	data, err := encodePayload(l)
	if err != nil {
		return err
	}

	var header [headerSize]byte
	copy(header[:4], magic[:])
	binary.LittleEndian.PutUint32(header[4:], uint32(len(data)))
	sum := blake2b.Sum256(data)

	if _, err := w.Write(header[:]); err != nil {
		return errors.Wrap(err, "snapshot: write header")
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "snapshot: write payload")
	}
	if _, err := w.Write(sum[:]); err != nil {
		return errors.Wrap(err, "snapshot: write digest")
	}
	return nil
}

// Decode reads one frame from r into a new list built with default options.
func Decode[A, B any](r io.Reader) (*pairlist.List[A, B], error) {
	return DecodeWithOptions(r, pairlist.DefaultOptions[A, B]())
}

// DecodeWithOptions reads one frame from r into a new list built with opts.
// Capacity is raised to the number of decoded pairs when smaller. The list
// is only returned once the whole frame has been verified.
func DecodeWithOptions[A, B any](r io.Reader, opts pairlist.Options[A, B]) (*pairlist.List[A, B], error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, errors.Wrap(err, "snapshot: read header")
	}
	if !bytes.Equal(header[:4], magic[:]) {
		return nil, errors.Wrapf(ErrBadMagic, "got %q", header[:4])
	}
	n := binary.LittleEndian.Uint32(header[4:])
	if n > MaxPayload {
		return nil, errors.Wrapf(ErrTooLarge, "%d bytes", n)
	}

	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, errors.Wrap(err, "snapshot: read payload")
	}
	var want [digestSize]byte
	if _, err := io.ReadFull(r, want[:]); err != nil {
		return nil, errors.Wrap(err, "snapshot: read digest")
	}
	got := blake2b.Sum256(data)
	if subtle.ConstantTimeCompare(got[:], want[:]) != 1 {
		return nil, ErrChecksumMismatch
	}

	var p payload[A, B]
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "snapshot: decode payload")
	}
	if len(p.Firsts) != len(p.Seconds) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d firsts, %d seconds", len(p.Firsts), len(p.Seconds))
	}

	l, err := pairlist.NewWithOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := l.EnsureCapacity(len(p.Firsts)); err != nil {
		return nil, err
	}
	for i := range p.Firsts {
		if err := l.Add(p.Firsts[i], p.Seconds[i]); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Marshal returns l as a frame.
func Marshal[A, B any](l *pairlist.List[A, B]) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a frame produced by Marshal or Encode.
func Unmarshal[A, B any](frame []byte) (*pairlist.List[A, B], error) {
	return Decode[A, B](bytes.NewReader(frame))
}

// Checksum returns the BLAKE2b-256 digest of l's payload. Two lists with
// equal JSON encodings have equal checksums.
func Checksum[A, B any](l *pairlist.List[A, B]) ([digestSize]byte, error) {
	data, err := encodePayload(l)
	if err != nil {
		return [digestSize]byte{}, err
	}
	return blake2b.Sum256(data), nil
}

func encodePayload[A, B any](l *pairlist.List[A, B]) ([]byte, error) {
	data, err := json.Marshal(payload[A, B]{Firsts: l.Firsts(), Seconds: l.Seconds()})
	if err != nil {
		return nil, errors.Wrap(err, "snapshot: encode payload")
	}
	if len(data) > MaxPayload {
		return nil, errors.Wrapf(ErrTooLarge, "%d bytes", len(data))
	}
	return data, nil
}

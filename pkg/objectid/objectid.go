package objectid

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

// ObjectID is a 96-bit identifier: 4 bytes of big-endian Unix seconds,
// 5 bytes of machine/process randomness, 3 bytes of big-endian counter.
type ObjectID [12]byte

// EncodedSize is the length of the canonical hex form.
const EncodedSize = 24

// Errors reported by generation and parsing.
var (
	// ErrMalformedText indicates a string that is not 24 hex characters.
	ErrMalformedText = errors.New("objectid: malformed text")

	// ErrInvalidTimestamp indicates a timestamp override outside the
	// 32-bit Unix-seconds range.
	ErrInvalidTimestamp = errors.New("objectid: timestamp out of range")
)

// String renders the canonical 24-character lower-case hex form.
func (o ObjectID) String() string {
	var buf [EncodedSize]byte
	hex.Encode(buf[:], o[:])
	return string(buf[:])
}

// Timestamp returns the embedded Unix-seconds timestamp.
func (o ObjectID) Timestamp() uint32 {
	return binary.BigEndian.Uint32(o[0:4])
}

// Machine returns the 5-byte machine/process component.
func (o ObjectID) Machine() [5]byte {
	var m [5]byte
	copy(m[:], o[4:9])
	return m
}

// Counter returns the 24-bit counter value.
func (o ObjectID) Counter() uint32 {
	return uint32(o[9])<<16 | uint32(o[10])<<8 | uint32(o[11])
}

// Bytes returns a copy of the raw 12 bytes.
func (o ObjectID) Bytes() []byte {
	b := make([]byte, 12)
	copy(b, o[:])
	return b
}

// Parse decodes a canonical ObjectId string. Wrong length or non-hex input
// fails with ErrMalformedText. Upper-case hex is accepted.
func Parse(s string) (ObjectID, error) {
	var o ObjectID
	if len(s) != EncodedSize {
		return o, fmt.Errorf("%w: length %d, want %d", ErrMalformedText, len(s), EncodedSize)
	}
	if _, err := hex.Decode(o[:], []byte(s)); err != nil {
		return ObjectID{}, fmt.Errorf("%w: %v", ErrMalformedText, err)
	}
	return o, nil
}

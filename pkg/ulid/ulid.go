package ulid

import (
	"errors"
	"fmt"
)

// ULID is a 128-bit identifier: 6 bytes of big-endian millisecond timestamp
// followed by 10 bytes of randomness.
type ULID [16]byte

// EncodedSize is the length of the canonical text form.
const EncodedSize = 26

// Errors reported by generation and parsing.
var (
	// ErrMalformedText indicates a string that is not a canonical
	// 26-character Crockford Base32 ULID.
	ErrMalformedText = errors.New("ulid: malformed text")

	// ErrInvalidTimestamp indicates a timestamp override that does not fit
	// the 48-bit millisecond field.
	ErrInvalidTimestamp = errors.New("ulid: timestamp out of range")

	// ErrRandomOverflow indicates that the monotonic randomness increment
	// wrapped past the 80-bit maximum within a single millisecond.
	ErrRandomOverflow = errors.New("ulid: randomness overflow in same millisecond")
)

// alphabet is Crockford's Base32: I, L, O and U are excluded to avoid
// visual ambiguity.
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// dec maps an ASCII byte to its alphabet index, or 0xff when the byte is
// outside the alphabet.
var dec [256]byte

func init() {
	for i := range dec {
		dec[i] = 0xff
	}
	for i := 0; i < len(alphabet); i++ {
		dec[alphabet[i]] = byte(i)
	}
}

// String renders the canonical 26-character form. The 128 bits are read as
// 26 five-bit groups, the first group carrying only the top three bits, so
// the first character never exceeds '7'.
func (u ULID) String() string {
	out := make([]byte, EncodedSize)
	for i := 0; i < EncodedSize; i++ {
		start := i*5 - 2
		var v byte
		for b := 0; b < 5; b++ {
			v <<= 1
			pos := start + b
			if pos >= 0 {
				v |= (u[pos/8] >> (7 - pos%8)) & 1
			}
		}
		out[i] = alphabet[v]
	}
	return string(out)
}

// Timestamp returns the embedded millisecond timestamp.
func (u ULID) Timestamp() uint64 {
	return uint64(u[0])<<40 | uint64(u[1])<<32 | uint64(u[2])<<24 |
		uint64(u[3])<<16 | uint64(u[4])<<8 | uint64(u[5])
}

// Bytes returns a copy of the raw 16 bytes.
func (u ULID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, u[:])
	return b
}

// Parse decodes a canonical ULID string. Strings that are not exactly 26
// characters, contain bytes outside the restricted alphabet, or whose first
// character exceeds '7' (a value past 128 bits) fail with ErrMalformedText.
func Parse(s string) (ULID, error) {
	var u ULID
	if len(s) != EncodedSize {
		return u, fmt.Errorf("%w: length %d, want %d", ErrMalformedText, len(s), EncodedSize)
	}
	for i := 0; i < EncodedSize; i++ {
		v := dec[s[i]]
		if v == 0xff {
			return u, fmt.Errorf("%w: character %q at position %d", ErrMalformedText, s[i], i)
		}
		if i == 0 && v > 7 {
			return u, fmt.Errorf("%w: first character %q overflows 128 bits", ErrMalformedText, s[0])
		}
		start := i*5 - 2
		for b := 0; b < 5; b++ {
			pos := start + b
			if pos < 0 {
				continue
			}
			if (v>>(4-b))&1 != 0 {
				u[pos/8] |= 1 << (7 - pos%8)
			}
		}
	}
	return u, nil
}

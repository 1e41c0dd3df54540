package uuid

import (
	"errors"
	"fmt"
	"strings"
)

// UUID is a 128-bit identifier stored in network byte order.
type UUID [16]byte

// Errors reported by generation and parsing.
var (
	// ErrMalformedText indicates a string that is not a canonical
	// hyphenated UUID.
	ErrMalformedText = errors.New("uuid: malformed text")

	// ErrInvalidTimestamp indicates an explicit timestamp override that
	// does not fit the target version's timestamp field.
	ErrInvalidTimestamp = errors.New("uuid: timestamp out of range")

	// ErrInvalidPayloadLength indicates a v8 payload longer than 16 bytes.
	ErrInvalidPayloadLength = errors.New("uuid: payload exceeds 16 bytes")
)

// Well-known namespaces from RFC 4122 appendix C, used by v3 and v5.
var (
	NamespaceDNS  = UUID{0x6b, 0xa7, 0xb8, 0x10, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}
	NamespaceURL  = UUID{0x6b, 0xa7, 0xb8, 0x11, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}
	NamespaceOID  = UUID{0x6b, 0xa7, 0xb8, 0x12, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}
	NamespaceX500 = UUID{0x6b, 0xa7, 0xb8, 0x14, 0x9d, 0xad, 0x11, 0xd1, 0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8}
)

const encodedSize = 36

// hyphen positions in the canonical encoding
var hyphens = [4]int{8, 13, 18, 23}

// String renders the canonical lower-case hyphenated 8-4-4-4-12 form.
func (u UUID) String() string {
	const digits = "0123456789abcdef"
	out := make([]byte, encodedSize)
	j := 0
	for i, b := range u {
		switch i {
		case 4, 6, 8, 10:
			out[j] = '-'
			j++
		}
		out[j] = digits[b>>4]
		out[j+1] = digits[b&0x0f]
		j += 2
	}
	return string(out)
}

// Version returns the version nibble (high nibble of byte 6).
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Bytes returns a copy of the raw 16 bytes.
func (u UUID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, u[:])
	return b
}

// Parse decodes a canonical hyphenated UUID. Upper and lower case hex are
// both accepted; anything else (wrong length, misplaced hyphens, stray
// characters) fails with ErrMalformedText.
func Parse(s string) (UUID, error) {
	var u UUID
	if len(s) != encodedSize {
		return u, fmt.Errorf("%w: length %d, want %d", ErrMalformedText, len(s), encodedSize)
	}
	for _, p := range hyphens {
		if s[p] != '-' {
			return u, fmt.Errorf("%w: missing hyphen at position %d", ErrMalformedText, p)
		}
	}
	j := 0
	for i := 0; i < encodedSize; {
		if i == 8 || i == 13 || i == 18 || i == 23 {
			i++
			continue
		}
		hi, lo := hexVal(s[i]), hexVal(s[i+1])
		if hi < 0 || lo < 0 {
			return u, fmt.Errorf("%w: invalid hex at position %d", ErrMalformedText, i)
		}
		u[j] = byte(hi<<4 | lo)
		j++
		i += 2
	}
	return u, nil
}

// ParseNamespace resolves a namespace argument: one of the well-known names
// (dns, url, oid, x500, case-insensitive) or a raw UUID literal.
func ParseNamespace(s string) (UUID, error) {
	switch strings.ToLower(s) {
	case "dns":
		return NamespaceDNS, nil
	case "url":
		return NamespaceURL, nil
	case "oid":
		return NamespaceOID, nil
	case "x500":
		return NamespaceX500, nil
	}
	u, err := Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("namespace %q is not dns/url/oid/x500 or a UUID: %w", s, err)
	}
	return u, nil
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

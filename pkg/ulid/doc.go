// Package ulid implements ULID generation and the fixed-width 26-character
// Crockford Base32 encoding.
//
// A ULID is 16 bytes: a 48-bit big-endian millisecond timestamp followed by
// 80 bits of randomness. The encoding uses the restricted Base32 alphabet
// (no I, L, O, U), so encoded values sort lexicographically in generation
// order when timestamps increase.
//
// The Generator keeps per-instance batch state: when two values are minted
// in the same millisecond, the second reuses the previous randomness plus
// one, keeping a batch strictly increasing. The state belongs to one
// generator instance; concurrent use of a single instance is unsupported.
package ulid

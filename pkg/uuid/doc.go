// Package uuid implements RFC 4122 UUID generation and the canonical
// hyphenated text encoding.
//
// Supported versions:
//
//   - v1: time-based (Gregorian 100-ns ticks, random clock sequence, node id)
//   - v3: name-based, MD5
//   - v4: random
//   - v5: name-based, SHA-1 (deterministic; preferred over v3)
//   - v6: time-ordered reshuffle of v1 (sortable as raw bytes)
//   - v7: Unix-epoch time-ordered (recommended for new systems)
//   - v8: custom payload, only version/variant bits stamped
//
// Generation goes through a Generator that owns its time and entropy
// sources, so tests can pin both and get byte-exact output. The version
// nibble (high nibble of byte 6) and the RFC 4122 variant bits (bits 6-7 of
// byte 8) are stamped on every generated value.
package uuid

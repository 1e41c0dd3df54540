// Package objectid implements MongoDB-style ObjectId generation and the
// 24-character hex encoding.
//
// An ObjectId is 12 bytes: a 4-byte big-endian Unix-seconds timestamp, a
// 5-byte random machine/process component established once per generator
// instance, and a 3-byte big-endian counter that increments per value and
// wraps modulo 2^24. Within one instance, values are totally ordered by
// timestamp, then counter.
package objectid

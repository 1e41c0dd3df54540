package uuid

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"hash"
	"io"

	"github.com/getidgen/idgen/pkg/clock"
)

// Version identifies a UUID layout.
type Version uint8

// Supported versions.
const (
	V1 Version = 1
	V3 Version = 3
	V4 Version = 4
	V5 Version = 5
	V6 Version = 6
	V7 Version = 7
	V8 Version = 8
)

// Supported reports whether v is a version this package can generate.
func (v Version) Supported() bool {
	switch v {
	case V1, V3, V4, V5, V6, V7, V8:
		return true
	}
	return false
}

const (
	// maxTicks is the largest value of the 60-bit v1/v6 timestamp field
	// (100-ns ticks since 1582-10-15 00:00:00 UTC).
	maxTicks = 1<<60 - 1

	// maxUnixMilli is the largest 48-bit v7 millisecond timestamp.
	maxUnixMilli = 1<<48 - 1

	// gregorianOffset is the number of 100-ns ticks between the Gregorian
	// epoch (1582-10-15) and the Unix epoch (1970-01-01).
	gregorianOffset = 122192928000000000
)

// Config selects a version and carries its per-version options. Exactly the
// options relevant to the chosen version are consulted; Generate validates
// the combination.
type Config struct {
	Version Version

	// Timestamp overrides the clock. For v1/v6 it is the raw 60-bit field
	// value in 100-ns ticks since the Gregorian epoch; for v7 it is Unix
	// milliseconds. Other versions reject it.
	Timestamp *uint64

	// Namespace and Name feed the v3/v5 hash input.
	Namespace *UUID
	Name      string

	// NodeID pins the v1/v6 node field. When nil a pseudo-random MAC with
	// the locally-administered bit set is drawn per value.
	NodeID *[6]byte

	// Data is the v8 payload, at most 16 bytes. Shorter payloads are
	// zero-padded at the tail.
	Data []byte
}

// Generator produces UUIDs using an injectable clock and entropy source.
// The zero-value options are the system clock and crypto/rand.
type Generator struct {
	clock   clock.Clocker
	entropy io.Reader
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock substitutes the time source.
func WithClock(c clock.Clocker) Option {
	return func(g *Generator) { g.clock = c }
}

// WithEntropy substitutes the randomness source.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) { g.entropy = r }
}

// NewGenerator returns a Generator backed by the system clock and
// crypto/rand unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		clock:   clock.New(),
		entropy: rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate dispatches on cfg.Version. Validation and bit-stamping for each
// version live in the per-version constructors.
func (g *Generator) Generate(cfg Config) (UUID, error) {
	switch cfg.Version {
	case V1:
		return g.NewV1(cfg.Timestamp, cfg.NodeID)
	case V3, V5:
		if cfg.Namespace == nil || cfg.Name == "" {
			return UUID{}, fmt.Errorf("uuid: version %d requires a namespace and a name", cfg.Version)
		}
		if cfg.Version == V3 {
			return g.NewV3(*cfg.Namespace, cfg.Name), nil
		}
		return g.NewV5(*cfg.Namespace, cfg.Name), nil
	case V4:
		return g.NewV4()
	case V6:
		return g.NewV6(cfg.Timestamp, cfg.NodeID)
	case V7:
		return g.NewV7(cfg.Timestamp)
	case V8:
		return g.NewV8(cfg.Data)
	default:
		return UUID{}, fmt.Errorf("uuid: unsupported version %d", cfg.Version)
	}
}

// NewV1 builds a time-based UUID: 60-bit Gregorian timestamp split into
// time_low/time_mid/time_hi, a fresh 14-bit random clock sequence, and the
// node id (given or pseudo-random MAC).
func (g *Generator) NewV1(ticks *uint64, node *[6]byte) (UUID, error) {
	ts, err := g.resolveTicks(ticks)
	if err != nil {
		return UUID{}, err
	}
	var u UUID
	binary.BigEndian.PutUint32(u[0:4], uint32(ts))         // time_low
	binary.BigEndian.PutUint16(u[4:6], uint16(ts>>32))     // time_mid
	binary.BigEndian.PutUint16(u[6:8], uint16(ts>>48)&0xfff) // time_hi
	if err := g.fillClockSeqAndNode(&u, node); err != nil {
		return UUID{}, err
	}
	u.stamp(V1)
	return u, nil
}

// NewV3 builds a name-based UUID from MD5(namespace ++ name). Deterministic.
func (g *Generator) NewV3(namespace UUID, name string) UUID {
	return hashed(md5.New(), V3, namespace, name)
}

// NewV4 fills all 16 bytes from the entropy source and stamps the bits.
func (g *Generator) NewV4() (UUID, error) {
	var u UUID
	if err := g.readEntropy(u[:]); err != nil {
		return UUID{}, err
	}
	u.stamp(V4)
	return u, nil
}

// NewV5 builds a name-based UUID from SHA-1(namespace ++ name).
// Deterministic: the same namespace and name always yield the same UUID.
func (g *Generator) NewV5(namespace UUID, name string) UUID {
	return hashed(sha1.New(), V5, namespace, name)
}

// NewV6 reorders the v1 timestamp high-to-low so raw byte order follows
// generation time.
func (g *Generator) NewV6(ticks *uint64, node *[6]byte) (UUID, error) {
	ts, err := g.resolveTicks(ticks)
	if err != nil {
		return UUID{}, err
	}
	var u UUID
	binary.BigEndian.PutUint32(u[0:4], uint32(ts>>28))       // time_high
	binary.BigEndian.PutUint16(u[4:6], uint16(ts>>12))       // time_mid
	binary.BigEndian.PutUint16(u[6:8], uint16(ts)&0xfff)     // time_low
	if err := g.fillClockSeqAndNode(&u, node); err != nil {
		return UUID{}, err
	}
	u.stamp(V6)
	return u, nil
}

// NewV7 places a 48-bit big-endian Unix millisecond timestamp in the high
// bytes and fills the rest with randomness. Values minted at strictly
// increasing timestamps sort after earlier ones as raw bytes.
func (g *Generator) NewV7(unixMilli *uint64) (UUID, error) {
	var ms uint64
	if unixMilli != nil {
		if *unixMilli > maxUnixMilli {
			return UUID{}, fmt.Errorf("%w: %d exceeds 48 bits", ErrInvalidTimestamp, *unixMilli)
		}
		ms = *unixMilli
	} else {
		ms = uint64(g.clock.Now().UnixMilli())
	}
	var u UUID
	u[0] = byte(ms >> 40)
	u[1] = byte(ms >> 32)
	u[2] = byte(ms >> 24)
	u[3] = byte(ms >> 16)
	u[4] = byte(ms >> 8)
	u[5] = byte(ms)
	if err := g.readEntropy(u[6:]); err != nil {
		return UUID{}, err
	}
	u.stamp(V7)
	return u, nil
}

// NewV8 copies up to 16 payload bytes in (zero-padding the tail) and stamps
// only the mandatory version/variant bits; every other caller bit is left
// untouched.
func (g *Generator) NewV8(data []byte) (UUID, error) {
	if len(data) > 16 {
		return UUID{}, fmt.Errorf("%w: got %d bytes", ErrInvalidPayloadLength, len(data))
	}
	var u UUID
	copy(u[:], data)
	u.stamp(V8)
	return u, nil
}

// resolveTicks returns the 60-bit v1/v6 timestamp field: the override when
// present, otherwise the clock converted to Gregorian 100-ns ticks.
func (g *Generator) resolveTicks(override *uint64) (uint64, error) {
	if override != nil {
		if *override > maxTicks {
			return 0, fmt.Errorf("%w: %d exceeds 60 bits", ErrInvalidTimestamp, *override)
		}
		return *override, nil
	}
	now := g.clock.Now()
	ticks := uint64(now.Unix())*10000000 + uint64(now.Nanosecond()/100) + gregorianOffset
	return ticks & maxTicks, nil
}

// fillClockSeqAndNode writes a fresh random 14-bit clock sequence into bytes
// 8-9 and the node id into bytes 10-15. The clock sequence is fresh random
// per call rather than incremented on collision; with a random sequence per
// value the collision window is a single 100-ns tick.
func (g *Generator) fillClockSeqAndNode(u *UUID, node *[6]byte) error {
	if err := g.readEntropy(u[8:10]); err != nil {
		return err
	}
	if node != nil {
		copy(u[10:], node[:])
		return nil
	}
	if err := g.readEntropy(u[10:]); err != nil {
		return err
	}
	// Locally-administered unicast MAC: set bit 1, clear bit 0. Keeps
	// generated node ids out of the real hardware address space.
	u[10] = (u[10] | 0x02) &^ 0x01
	return nil
}

func (g *Generator) readEntropy(p []byte) error {
	if _, err := io.ReadFull(g.entropy, p); err != nil {
		return fmt.Errorf("uuid: reading entropy: %w", err)
	}
	return nil
}

func hashed(h hash.Hash, v Version, namespace UUID, name string) UUID {
	h.Write(namespace[:])
	h.Write([]byte(name))
	sum := h.Sum(nil)
	var u UUID
	copy(u[:], sum[:16])
	u.stamp(v)
	return u
}

// stamp writes the version nibble and RFC 4122 variant bits.
func (u *UUID) stamp(v Version) {
	u[6] = (u[6] & 0x0f) | byte(v)<<4
	u[8] = (u[8] & 0x3f) | 0x80
}

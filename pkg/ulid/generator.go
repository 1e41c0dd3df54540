package ulid

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/getidgen/idgen/pkg/clock"
)

// maxUnixMilli is the largest timestamp the 48-bit field can hold.
const maxUnixMilli = 1<<48 - 1

// Generator produces ULIDs with a per-instance monotonicity guarantee:
// within one instance, values minted in the same millisecond strictly
// increase. A single instance must not be used concurrently.
type Generator struct {
	clock    clock.Clocker
	entropy  io.Reader
	override *uint64

	// batch state
	lastMs   uint64
	lastRand [10]byte
	primed   bool
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

// WithTimestamp pins every generated value to the given millisecond
// timestamp instead of reading the clock.
func WithTimestamp(unixMilli uint64) Option {
	return func(g *Generator) { g.override = &unixMilli }
}

// NewGenerator returns a Generator backed by the system clock and
// crypto/rand unless overridden. A pinned timestamp wider than 48 bits is
// rejected here, before any value is emitted.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		clock:   clock.New(),
		entropy: rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.override != nil && *g.override > maxUnixMilli {
		return nil, fmt.Errorf("%w: %d exceeds 48 bits", ErrInvalidTimestamp, *g.override)
	}
	return g, nil
}

// Next returns the next ULID. In a new millisecond the randomness is drawn
// fresh; in the same millisecond (or if the clock regresses mid-batch) the
// previous randomness is incremented by one as an 80-bit big-endian
// integer, so a batch stays strictly increasing. A carry out of the 80th
// bit fails with ErrRandomOverflow rather than wrapping silently.
func (g *Generator) Next() (ULID, error) {
	ms := uint64(0)
	if g.override != nil {
		ms = *g.override
	} else {
		ms = uint64(g.clock.Now().UnixMilli())
	}

	if g.primed && ms <= g.lastMs {
		ms = g.lastMs
		if !increment(&g.lastRand) {
			return ULID{}, ErrRandomOverflow
		}
	} else {
		if _, err := io.ReadFull(g.entropy, g.lastRand[:]); err != nil {
			return ULID{}, fmt.Errorf("ulid: reading entropy: %w", err)
		}
	}
	g.lastMs = ms
	g.primed = true

	var u ULID
	u[0] = byte(ms >> 40)
	u[1] = byte(ms >> 32)
	u[2] = byte(ms >> 24)
	u[3] = byte(ms >> 16)
	u[4] = byte(ms >> 8)
	u[5] = byte(ms)
	copy(u[6:], g.lastRand[:])
	return u, nil
}

// increment adds one to the 80-bit big-endian value in place. It reports
// false when the addition carries out of the top bit.
func increment(r *[10]byte) bool {
	for i := len(r) - 1; i >= 0; i-- {
		r[i]++
		if r[i] != 0 {
			return true
		}
	}
	return false
}

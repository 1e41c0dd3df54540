package objectid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/getidgen/idgen/pkg/clock"
)

// counterMask keeps the counter within 24 bits.
const counterMask = 1<<24 - 1

// Generator produces ObjectIds. The 5-byte machine component is drawn once
// at construction and reused for every value from this instance, so ids
// minted by different processes in the same second remain distinct. The
// counter is seeded randomly and increments by one per value, wrapping
// modulo 2^24 silently. A single instance must not be used concurrently.
type Generator struct {
	clock    clock.Clocker
	override *uint32
	machine  [5]byte
	counter  uint32
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock substitutes the time source.
func WithClock(c clock.Clocker) Option {
	return func(g *Generator) { g.clock = c }
}

// WithTimestamp pins every generated value to the given Unix-seconds
// timestamp instead of reading the clock.
func WithTimestamp(unixSec uint32) Option {
	return func(g *Generator) { g.override = &unixSec }
}

// NewGenerator draws the per-instance machine component and counter seed
// from entropy. The entropy reader defaults to crypto/rand.
func NewGenerator(opts ...Option) (*Generator, error) {
	return newGenerator(rand.Reader, opts...)
}

func newGenerator(entropy io.Reader, opts ...Option) (*Generator, error) {
	g := &Generator{clock: clock.New()}
	var seed [9]byte
	if _, err := io.ReadFull(entropy, seed[:]); err != nil {
		return nil, fmt.Errorf("objectid: reading entropy: %w", err)
	}
	copy(g.machine[:], seed[:5])
	g.counter = binary.BigEndian.Uint32(seed[5:]) & counterMask
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Next returns the next ObjectId. It never fails: counter wrap-around is an
// accepted design limit covered by the timestamp rolling over.
func (g *Generator) Next() ObjectID {
	ts := uint32(0)
	if g.override != nil {
		ts = *g.override
	} else {
		ts = uint32(g.clock.Now().Unix())
	}
	g.counter = (g.counter + 1) & counterMask

	var o ObjectID
	binary.BigEndian.PutUint32(o[0:4], ts)
	copy(o[4:9], g.machine[:])
	o[9] = byte(g.counter >> 16)
	o[10] = byte(g.counter >> 8)
	o[11] = byte(g.counter)
	return o
}

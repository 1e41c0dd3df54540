package uuid

import (
	"encoding/binary"
	"errors"
	"testing"
	"time"

	guuid "github.com/google/uuid"

	"github.com/getidgen/idgen/pkg/clock"
)

// seqReader yields a deterministic byte stream for pinned-entropy tests.
type seqReader struct {
	next byte
}

func (r *seqReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next
		r.next++
	}
	return len(p), nil
}

func uptr(v uint64) *uint64 { return &v }

// v1Ticks reassembles the 60-bit timestamp field from a v1 layout.
func v1Ticks(u UUID) uint64 {
	low := uint64(binary.BigEndian.Uint32(u[0:4]))
	mid := uint64(binary.BigEndian.Uint16(u[4:6]))
	hi := uint64(binary.BigEndian.Uint16(u[6:8]) & 0x0fff)
	return hi<<48 | mid<<32 | low
}

// v6Ticks reassembles the 60-bit timestamp field from a v6 layout.
func v6Ticks(u UUID) uint64 {
	high := uint64(binary.BigEndian.Uint32(u[0:4]))
	mid := uint64(binary.BigEndian.Uint16(u[4:6]))
	low := uint64(binary.BigEndian.Uint16(u[6:8]) & 0x0fff)
	return high<<28 | mid<<12 | low
}

func checkStamp(t *testing.T, u UUID, want Version) {
	t.Helper()
	if u.Version() != want {
		t.Errorf("version nibble = %d, want %d (uuid=%s)", u.Version(), want, u)
	}
	if u[8]&0xc0 != 0x80 {
		t.Errorf("variant bits = %02x, want 10xxxxxx (uuid=%s)", u[8], u)
	}
}

func TestGenerate_AllVersionsStamped(t *testing.T) {
	g := NewGenerator()
	ns := NamespaceDNS
	configs := []Config{
		{Version: V1},
		{Version: V3, Namespace: &ns, Name: "example.com"},
		{Version: V4},
		{Version: V5, Namespace: &ns, Name: "example.com"},
		{Version: V6},
		{Version: V7},
		{Version: V8, Data: []byte{0xde, 0xad, 0xbe, 0xef}},
	}
	for _, cfg := range configs {
		u, err := g.Generate(cfg)
		if err != nil {
			t.Fatalf("Generate(v%d) error: %v", cfg.Version, err)
		}
		checkStamp(t, u, cfg.Version)
	}
}

func TestGenerate_UnsupportedVersion(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Generate(Config{Version: 2}); err == nil {
		t.Error("Generate(v2) succeeded, want error")
	}
}

func TestGenerate_HashVersionsRequireNamespace(t *testing.T) {
	g := NewGenerator()
	for _, v := range []Version{V3, V5} {
		if _, err := g.Generate(Config{Version: v, Name: "example.com"}); err == nil {
			t.Errorf("Generate(v%d) without namespace succeeded, want error", v)
		}
	}
}

func TestNewV1_TimestampZero(t *testing.T) {
	g := NewGenerator()
	u, err := g.NewV1(uptr(0), nil)
	if err != nil {
		t.Fatalf("NewV1(0) error: %v", err)
	}
	checkStamp(t, u, V1)
	if got := v1Ticks(u); got != 0 {
		t.Errorf("timestamp field = %d, want 0", got)
	}
}

func TestNewV1_TimestampMax(t *testing.T) {
	g := NewGenerator()
	u, err := g.NewV1(uptr(maxTicks), nil)
	if err != nil {
		t.Fatalf("NewV1(max) error: %v", err)
	}
	if got := v1Ticks(u); got != maxTicks {
		t.Errorf("timestamp field = %d, want %d", got, uint64(maxTicks))
	}
}

func TestNewV1_TimestampTooWide(t *testing.T) {
	g := NewGenerator()
	if _, err := g.NewV1(uptr(1<<60), nil); !errors.Is(err, ErrInvalidTimestamp) {
		t.Errorf("NewV1(2^60) error = %v, want ErrInvalidTimestamp", err)
	}
}

func TestNewV1_ClockConversion(t *testing.T) {
	// At the Unix epoch the Gregorian tick count equals the fixed
	// 1582-10-15 → 1970-01-01 offset.
	g := NewGenerator(WithClock(clock.Fixed(time.Unix(0, 0))))
	u, err := g.NewV1(nil, nil)
	if err != nil {
		t.Fatalf("NewV1 error: %v", err)
	}
	if got := v1Ticks(u); got != gregorianOffset {
		t.Errorf("timestamp field = %d, want %d", got, uint64(gregorianOffset))
	}
}

func TestNewV1_NodeID(t *testing.T) {
	g := NewGenerator()
	node := [6]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab}
	u, err := g.NewV1(nil, &node)
	if err != nil {
		t.Fatalf("NewV1 error: %v", err)
	}
	for i := 0; i < 6; i++ {
		if u[10+i] != node[i] {
			t.Fatalf("node byte %d = %02x, want %02x", i, u[10+i], node[i])
		}
	}
}

func TestNewV1_PseudoMAC(t *testing.T) {
	g := NewGenerator()
	for i := 0; i < 50; i++ {
		u, err := g.NewV1(nil, nil)
		if err != nil {
			t.Fatalf("NewV1 error: %v", err)
		}
		if u[10]&0x02 == 0 {
			t.Errorf("node id %x missing locally-administered bit", u[10:])
		}
		if u[10]&0x01 != 0 {
			t.Errorf("node id %x has multicast bit set", u[10:])
		}
	}
}

func TestNewV3_MatchesReference(t *testing.T) {
	g := NewGenerator()
	u := g.NewV3(NamespaceDNS, "example.com")
	checkStamp(t, u, V3)

	want := guuid.NewMD5(guuid.NameSpaceDNS, []byte("example.com"))
	if u.String() != want.String() {
		t.Errorf("NewV3 = %s, reference = %s", u, want)
	}
}

func TestNewV4_Entropy(t *testing.T) {
	g := NewGenerator(WithEntropy(&seqReader{}))
	u, err := g.NewV4()
	if err != nil {
		t.Fatalf("NewV4 error: %v", err)
	}
	checkStamp(t, u, V4)
	// Bytes outside the stamped positions must pass through untouched.
	want := UUID{0, 1, 2, 3, 4, 5, 0x46, 7, 0x88, 9, 10, 11, 12, 13, 14, 15}
	if u != want {
		t.Errorf("NewV4 = %v, want %v", u, want)
	}
}

func TestNewV4_Unique(t *testing.T) {
	g := NewGenerator()
	seen := make(map[UUID]bool, 1000)
	for i := 0; i < 1000; i++ {
		u, err := g.NewV4()
		if err != nil {
			t.Fatalf("NewV4 error: %v", err)
		}
		if seen[u] {
			t.Fatalf("NewV4 duplicate: %s", u)
		}
		seen[u] = true
	}
}

func TestNewV5_ReferenceVector(t *testing.T) {
	g := NewGenerator()
	u := g.NewV5(NamespaceDNS, "example.com")
	const want = "cfbff0d1-9375-5685-968c-48ce8b15ae17"
	if u.String() != want {
		t.Errorf("NewV5(dns, example.com) = %s, want %s", u, want)
	}
}

func TestNewV5_Deterministic(t *testing.T) {
	g := NewGenerator()
	a := g.NewV5(NamespaceDNS, "example.com")
	b := g.NewV5(NamespaceDNS, "example.com")
	if a != b {
		t.Errorf("NewV5 not deterministic: %s vs %s", a, b)
	}
	if g.NewV5(NamespaceURL, "example.com") == a {
		t.Error("NewV5 ignored namespace change")
	}
	if g.NewV5(NamespaceDNS, "example.org") == a {
		t.Error("NewV5 ignored name change")
	}
}

func TestNewV5_MatchesReference(t *testing.T) {
	g := NewGenerator()
	for _, name := range []string{"", "a", "example.com", "идентификатор"} {
		ours := g.NewV5(NamespaceURL, name)
		ref := guuid.NewSHA1(guuid.NameSpaceURL, []byte(name))
		if ours.String() != ref.String() {
			t.Errorf("NewV5(url, %q) = %s, reference = %s", name, ours, ref)
		}
	}
}

func TestNewV6_TimestampRoundTrip(t *testing.T) {
	g := NewGenerator()
	for _, ticks := range []uint64{0, 1, 0x0123456789abcde, maxTicks} {
		u, err := g.NewV6(uptr(ticks), nil)
		if err != nil {
			t.Fatalf("NewV6(%d) error: %v", ticks, err)
		}
		checkStamp(t, u, V6)
		if got := v6Ticks(u); got != ticks {
			t.Errorf("v6 timestamp field = %d, want %d", got, ticks)
		}
	}
}

func TestNewV6_SortsByTimestamp(t *testing.T) {
	g := NewGenerator()
	prev, err := g.NewV6(uptr(1000), nil)
	if err != nil {
		t.Fatal(err)
	}
	for ticks := uint64(2000); ticks < 10000; ticks += 1000 {
		cur, err := g.NewV6(uptr(ticks), nil)
		if err != nil {
			t.Fatal(err)
		}
		if cur.String() <= prev.String() {
			t.Errorf("v6 not time-ordered: %s <= %s", cur, prev)
		}
		prev = cur
	}
}

func TestNewV7_TimestampEmbedding(t *testing.T) {
	g := NewGenerator()
	const ms = 1609459200000 // 2021-01-01T00:00:00Z
	u, err := g.NewV7(uptr(ms))
	if err != nil {
		t.Fatalf("NewV7 error: %v", err)
	}
	checkStamp(t, u, V7)
	got := uint64(u[0])<<40 | uint64(u[1])<<32 | uint64(u[2])<<24 |
		uint64(u[3])<<16 | uint64(u[4])<<8 | uint64(u[5])
	if got != ms {
		t.Errorf("embedded ms = %d, want %d", got, uint64(ms))
	}
}

func TestNewV7_ClockDefault(t *testing.T) {
	g := NewGenerator(WithClock(clock.Fixed(time.UnixMilli(1609459200000))))
	u, err := g.NewV7(nil)
	if err != nil {
		t.Fatalf("NewV7 error: %v", err)
	}
	ref, err := guuid.Parse(u.String())
	if err != nil {
		t.Fatalf("reference Parse(%s) error: %v", u, err)
	}
	if ref.Version() != 7 {
		t.Errorf("reference sees version %d, want 7", ref.Version())
	}
	sec, _ := ref.Time().UnixTime()
	if sec != 1609459200 {
		t.Errorf("reference extracts %d s, want 1609459200", sec)
	}
}

func TestNewV7_TimestampTooWide(t *testing.T) {
	g := NewGenerator()
	if _, err := g.NewV7(uptr(1 << 48)); !errors.Is(err, ErrInvalidTimestamp) {
		t.Errorf("NewV7(2^48) error = %v, want ErrInvalidTimestamp", err)
	}
}

func TestNewV7_SortsByTimestamp(t *testing.T) {
	g := NewGenerator()
	prev, err := g.NewV7(uptr(1000))
	if err != nil {
		t.Fatal(err)
	}
	for ms := uint64(1001); ms < 1100; ms++ {
		cur, err := g.NewV7(uptr(ms))
		if err != nil {
			t.Fatal(err)
		}
		if cur.String() <= prev.String() {
			t.Errorf("v7 not time-ordered: %s <= %s", cur, prev)
		}
		prev = cur
	}
}

func TestNewV8_PayloadPreserved(t *testing.T) {
	g := NewGenerator()
	data := []byte{
		0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
		0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10,
	}
	u, err := g.NewV8(data)
	if err != nil {
		t.Fatalf("NewV8 error: %v", err)
	}
	checkStamp(t, u, V8)
	for i, b := range data {
		switch i {
		case 6:
			if u[i] != (b&0x0f)|0x80 {
				t.Errorf("byte 6 = %02x, want version-stamped %02x", u[i], (b&0x0f)|0x80)
			}
		case 8:
			if u[i] != (b&0x3f)|0x80 {
				t.Errorf("byte 8 = %02x, want variant-stamped %02x", u[i], (b&0x3f)|0x80)
			}
		default:
			if u[i] != b {
				t.Errorf("byte %d = %02x, want %02x (must pass through)", i, u[i], b)
			}
		}
	}
}

func TestNewV8_ShortPayloadZeroPadded(t *testing.T) {
	g := NewGenerator()
	u, err := g.NewV8([]byte{0xaa, 0xbb})
	if err != nil {
		t.Fatalf("NewV8 error: %v", err)
	}
	if u[0] != 0xaa || u[1] != 0xbb {
		t.Errorf("payload prefix = %02x%02x, want aabb", u[0], u[1])
	}
	for i := 2; i < 16; i++ {
		if i == 6 || i == 8 {
			continue // stamped
		}
		if u[i] != 0 {
			t.Errorf("byte %d = %02x, want 0 (zero padding)", i, u[i])
		}
	}
}

func TestNewV8_PayloadTooLong(t *testing.T) {
	g := NewGenerator()
	if _, err := g.NewV8(make([]byte, 17)); !errors.Is(err, ErrInvalidPayloadLength) {
		t.Errorf("NewV8(17 bytes) error = %v, want ErrInvalidPayloadLength", err)
	}
}

func TestGenerated_ParsesAsReference(t *testing.T) {
	// Everything we emit must be accepted by the reference implementation
	// with matching version and RFC 4122 variant.
	g := NewGenerator()
	ns := NamespaceOID
	configs := []Config{
		{Version: V1, Timestamp: uptr(138648505740000000)},
		{Version: V3, Namespace: &ns, Name: "1.2.3.4"},
		{Version: V4},
		{Version: V5, Namespace: &ns, Name: "1.2.3.4"},
		{Version: V6, Timestamp: uptr(138648505740000000)},
		{Version: V7, Timestamp: uptr(1609459200000)},
		{Version: V8, Data: []byte("payload")},
	}
	for _, cfg := range configs {
		u, err := g.Generate(cfg)
		if err != nil {
			t.Fatalf("Generate(v%d) error: %v", cfg.Version, err)
		}
		ref, err := guuid.Parse(u.String())
		if err != nil {
			t.Fatalf("reference rejects v%d output %s: %v", cfg.Version, u, err)
		}
		if int(ref.Version()) != int(cfg.Version) {
			t.Errorf("reference sees version %d, want %d", ref.Version(), cfg.Version)
		}
		if ref.Variant() != guuid.RFC4122 {
			t.Errorf("reference sees variant %v, want RFC4122", ref.Variant())
		}
	}
}

func BenchmarkNewV4(b *testing.B) {
	g := NewGenerator()
	for i := 0; i < b.N; i++ {
		_, _ = g.NewV4()
	}
}

func BenchmarkNewV5(b *testing.B) {
	g := NewGenerator()
	for i := 0; i < b.N; i++ {
		_ = g.NewV5(NamespaceDNS, "example.com")
	}
}

func BenchmarkNewV7(b *testing.B) {
	g := NewGenerator()
	for i := 0; i < b.N; i++ {
		_, _ = g.NewV7(nil)
	}
}

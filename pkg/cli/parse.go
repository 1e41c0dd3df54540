package cli

import (
	"encoding/hex"
	"fmt"
	"net"
	"strconv"

	"github.com/getidgen/idgen/pkg/uuid"
)

// parseTimestamp parses a decimal timestamp override. Range checks against
// the per-version field width happen in the generator.
func parseTimestamp(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an unsigned integer", uuid.ErrInvalidTimestamp, s)
	}
	return v, nil
}

// parseNodeID parses a 48-bit node identifier: any form net.ParseMAC
// accepts (aa:bb:cc:dd:ee:ff, aa-bb-cc-dd-ee-ff, aabb.ccdd.eeff) or 12
// bare hex characters.
func parseNodeID(s string) ([6]byte, error) {
	var node [6]byte
	if len(s) == 12 {
		if _, err := hex.Decode(node[:], []byte(s)); err == nil {
			return node, nil
		}
	}
	hw, err := net.ParseMAC(s)
	if err != nil || len(hw) != 6 {
		return node, fmt.Errorf("%w: node id %q is not a 48-bit hardware address", uuid.ErrMalformedText, s)
	}
	copy(node[:], hw)
	return node, nil
}

// parseData decodes the v8 hex payload.
func parseData(s string) ([]byte, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: data %q is not hexadecimal", uuid.ErrMalformedText, s)
	}
	return data, nil
}

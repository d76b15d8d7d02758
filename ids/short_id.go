// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"errors"
	"sort"

	"github.com/xavax-project/xavax-avalanche/utils/formatting"
)

// ShortIDLen is the length, in bytes, of a ShortID: RIPEMD160(SHA256(pubkey)).
const ShortIDLen = 20

var errWrongShortIDLen = errors.New("input has incorrect length for a ShortID")

// ShortID is a 20-byte identifier. It is used as a wallet address and as a
// validator node ID. Two ShortIDs are equal iff their raw bytes are equal;
// any Bech32 rendering is purely a presentation convenience and never part
// of the wire format.
type ShortID [ShortIDLen]byte

// ShortEmpty is the all-zero ShortID.
var ShortEmpty = ShortID{}

// ToShortID copies b into a new ShortID. b must be exactly ShortIDLen bytes.
func ToShortID(b []byte) (ShortID, error) {
	var id ShortID
	if len(b) != ShortIDLen {
		return id, errWrongShortIDLen
	}
	copy(id[:], b)
	return id, nil
}

// ShortFromBech32Address parses a chain-prefixed Bech32 address (e.g.
// "X-fuji1zcm8wjm8swx7c9hpd2mvlt9jrwyv82rpmrucwc") into its 20-byte payload.
func ShortFromBech32Address(addrStr string) (ShortID, error) {
	_, _, addrBytes, err := formatting.ParseAddress(addrStr)
	if err != nil {
		return ShortID{}, err
	}
	return ToShortID(addrBytes)
}

// Bytes returns a copy of the raw 20 bytes.
func (id ShortID) Bytes() []byte {
	b := make([]byte, ShortIDLen)
	copy(b, id[:])
	return b
}

// IsZero reports whether id is the all-zero ShortID.
func (id ShortID) IsZero() bool { return id == ShortEmpty }

// Equals reports whether id and other hold the same bytes.
func (id ShortID) Equals(other ShortID) bool { return id == other }

// Less reports whether id sorts before other by raw byte content.
func (id ShortID) Less(other ShortID) bool { return bytes.Compare(id[:], other[:]) < 0 }

// String CB58-encodes the raw bytes. Bech32 is the human-facing rendering
// used for addresses; this is the uniform, context-free fallback zap and
// %v formatting use.
func (id ShortID) String() string { return formatting.EncodeCB58(id[:]) }

// Bech32 renders id as a chain-prefixed Bech32 address under hrp, e.g.
// FormatAddress("X", "fuji", id).
func (id ShortID) Bech32(chainAlias, hrp string) (string, error) {
	return formatting.FormatAddress(chainAlias, hrp, id[:])
}

// ShortIDsAreSortedAndUnique reports whether ids is strictly ascending by
// raw byte content, per the §3 address-list invariant.
func ShortIDsAreSortedAndUnique(list []ShortID) bool {
	for i := 1; i < len(list); i++ {
		if !list[i-1].Less(list[i]) {
			return false
		}
	}
	return true
}

// SortShortIDs sorts list ascending by raw byte content, in place.
func SortShortIDs(list []ShortID) {
	sort.Slice(list, func(i, j int) bool { return list[i].Less(list[j]) })
}

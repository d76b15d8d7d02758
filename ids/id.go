// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ids defines the two fixed-width identifiers that appear
// throughout the wire format: the 32-byte ID (blockchain/asset/tx/subnet
// identifiers) and the 20-byte ShortID (addresses, node IDs).
package ids

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/xavax-project/xavax-avalanche/utils/formatting"
)

// IDLen is the length, in bytes, of an ID.
const IDLen = 32

var errWrongIDLen = errors.New("input has incorrect length for an ID")

// ID is a 32-byte identifier: a blockchain ID, asset ID, transaction ID, or
// subnet ID depending on context. It is a fixed-size array, not a slice, so
// values are compared and copied like any other Go value.
type ID [IDLen]byte

// Empty is the all-zero ID.
var Empty = ID{}

// ToID copies b into a new ID. b must be exactly IDLen bytes.
func ToID(b []byte) (ID, error) {
	var id ID
	if len(b) != IDLen {
		return id, errWrongIDLen
	}
	copy(id[:], b)
	return id, nil
}

// FromCB58 parses a CB58-encoded ID.
func FromCB58(str string) (ID, error) {
	b, err := formatting.DecodeCB58(str)
	if err != nil {
		return ID{}, err
	}
	return ToID(b)
}

// Bytes returns a copy of the raw 32 bytes.
func (id ID) Bytes() []byte {
	b := make([]byte, IDLen)
	copy(b, id[:])
	return b
}

// IsZero reports whether id is the all-zero ID.
func (id ID) IsZero() bool { return id == Empty }

// Equals reports whether id and other hold the same bytes.
func (id ID) Equals(other ID) bool { return id == other }

// Less reports whether id sorts before other by raw byte content.
func (id ID) Less(other ID) bool { return bytes.Compare(id[:], other[:]) < 0 }

// String CB58-encodes the ID.
func (id ID) String() string { return formatting.EncodeCB58(id[:]) }

func (id ID) MarshalJSON() ([]byte, error) { return json.Marshal(id.String()) }

func (id *ID) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	parsed, err := FromCB58(str)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
)

// OutputOwners is the tail shared by every secp256k1-style output:
// locktime(u64) ‖ threshold(u32) ‖ addresses[] (u32 len, 20-byte entries).
// Address lists MUST be sorted ascending with no duplicates (invariant 2).
type OutputOwners struct {
	Locktime  uint64
	Threshold uint32
	Addrs     []ids.ShortID
}

// Marshal writes the shared tail, enforcing invariant 2 so an unsorted or
// duplicated address list can never reach the wire. It does not write a
// type tag; callers embed OutputOwners inside a tagged wrapper.
func (o *OutputOwners) Marshal(p *wrappers.Packer) {
	if !ids.ShortIDsAreSortedAndUnique(o.Addrs) {
		p.Add(codec.NewConstraintViolation("output owner addresses not sorted/unique"))
		return
	}
	p.PackLong(o.Locktime)
	p.PackInt(o.Threshold)
	p.PackInt(uint32(len(o.Addrs)))
	for _, addr := range o.Addrs {
		p.PackFixedBytes(addr[:])
	}
}

// Unmarshal reads the shared tail and enforces invariant 2.
func (o *OutputOwners) Unmarshal(p *wrappers.Packer) {
	o.Locktime = p.UnpackLong()
	o.Threshold = p.UnpackInt()
	n := p.UnpackInt()
	if p.Errored() {
		return
	}
	addrs := make([]ids.ShortID, n)
	for i := range addrs {
		b := p.UnpackFixedBytes(ids.ShortIDLen)
		if p.Errored() {
			return
		}
		copy(addrs[i][:], b)
	}
	if !ids.ShortIDsAreSortedAndUnique(addrs) {
		p.Add(codec.NewConstraintViolation("output owner addresses not sorted/unique"))
		return
	}
	o.Addrs = addrs
}

// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
)

// SubnetAuth (type_id=10 in PVM context) = address_indices[] (u32 len, u32
// entries, strictly ascending per invariant 5), proving authority over a
// subnet's owning address set. ConsumerOwners is an auxiliary, non-wire
// field mirroring avax.TransferableInput.ConsumerOwners: the subnet's
// owner address list, populated by the caller so the signer can match
// keypairs without a separate lookup pass.
type SubnetAuth struct {
	SigIndices     []uint32
	ConsumerOwners []ids.ShortID
}

func (a *SubnetAuth) TypeID() uint32 { return codec.TypeSubnetAuth }

func (a *SubnetAuth) Marshal(p *wrappers.Packer) {
	p.PackInt(uint32(len(a.SigIndices)))
	for _, idx := range a.SigIndices {
		p.PackInt(idx)
	}
}

func (a *SubnetAuth) Unmarshal(p *wrappers.Packer) {
	n := p.UnpackInt()
	if p.Errored() {
		return
	}
	indices := make([]uint32, n)
	for i := range indices {
		indices[i] = p.UnpackInt()
		if p.Errored() {
			return
		}
		if i > 0 && indices[i-1] >= indices[i] {
			p.Add(codec.NewConstraintViolation("subnet auth address indices not strictly ascending"))
			return
		}
	}
	a.SigIndices = indices
}

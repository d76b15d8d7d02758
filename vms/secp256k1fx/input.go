// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
)

// Input is the address-indices list shared by TransferInput and
// MintOperation: address_indices[] (u32 len, u32 entries, strictly
// ascending per invariant 5).
type Input struct {
	SigIndices []uint32
}

func (i *Input) Marshal(p *wrappers.Packer) {
	p.PackInt(uint32(len(i.SigIndices)))
	for _, idx := range i.SigIndices {
		p.PackInt(idx)
	}
}

// Unmarshal reads the address-indices list and rejects indices that are not
// strictly ascending. It does not check the indices against an address-list
// length, since that length is only known to the UTXO the enclosing input
// consumes; callers validate with avax.VerifyAddressIndices once the UTXO is
// resolved.
func (i *Input) Unmarshal(p *wrappers.Packer) {
	n := p.UnpackInt()
	if p.Errored() {
		return
	}
	indices := make([]uint32, n)
	for j := range indices {
		indices[j] = p.UnpackInt()
		if p.Errored() {
			return
		}
		if j > 0 && indices[j-1] >= indices[j] {
			p.Add(codec.NewConstraintViolation("secp256k1fx input address indices not strictly ascending"))
			return
		}
	}
	i.SigIndices = indices
}

// TransferInput (type_id=5) = amount(u64) ‖ Input.
type TransferInput struct {
	Amount uint64
	Input
}

func (i *TransferInput) TypeID() uint32 { return codec.TypeTransferInput }

func (i *TransferInput) Marshal(p *wrappers.Packer) {
	p.PackLong(i.Amount)
	i.Input.Marshal(p)
}

func (i *TransferInput) Unmarshal(p *wrappers.Packer) {
	i.Amount = p.UnpackLong()
	i.Input.Unmarshal(p)
}

// MakeInput resolves type ID 5 for the generic avax.Input dispatcher.
func MakeInput(typeID uint32) (avax.Input, error) {
	if typeID == codec.TypeTransferInput {
		return &TransferInput{}, nil
	}
	return nil, codec.NewUnknownTypeID("secp256k1fx input", typeID)
}

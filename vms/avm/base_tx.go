// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avm

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
)

// UnsignedTx is implemented by every AVM (and, via the shared BaseTx
// discipline, PVM) unsigned transaction variant.
type UnsignedTx interface {
	TypeID() uint32
	Marshal(p *wrappers.Packer)
	Unmarshal(p *wrappers.Packer)

	// SigningOwnerSets returns, in credential order, the address-owner
	// set each consumed UTXO requires a signature threshold over. Its
	// length is the number of credentials the signed envelope must
	// carry (invariant 9).
	SigningOwnerSets() [][]ids.ShortID
}

// BaseTx = network_id(u32) ‖ blockchain_id(32) ‖ outputs[] ‖ inputs[] ‖
// memo(u32 len, ≤256 bytes). Every other AVM/PVM variant begins with these
// same bytes, with the leading type tag rewritten to its own type ID.
type BaseTx struct {
	NetworkID    uint32
	BlockchainID ids.ID
	Outs         []*avax.TransferableOutput
	Ins          []*avax.TransferableInput
	Memo         []byte
}

func (t *BaseTx) TypeID() uint32 { return codec.TypeBaseTx }

// marshalBody writes network_id ‖ blockchain_id ‖ outputs[] ‖ inputs[] ‖
// memo, without a leading type tag. Variants call this after writing their
// own tag.
func (t *BaseTx) marshalBody(p *wrappers.Packer) {
	if !avax.IsSortedTransferableOutputs(t.Outs) {
		p.Add(codec.NewConstraintViolation("transferable outputs not sorted"))
		return
	}
	if !avax.IsSortedTransferableInputs(t.Ins) {
		p.Add(codec.NewConstraintViolation("transferable inputs not sorted"))
		return
	}
	if len(t.Memo) > codec.MaxMemoLen {
		p.Add(codec.NewConstraintViolation("memo exceeds max length"))
		return
	}

	p.PackInt(t.NetworkID)
	p.PackFixedBytes(t.BlockchainID[:])

	p.PackInt(uint32(len(t.Outs)))
	for _, out := range t.Outs {
		out.Marshal(p)
	}

	p.PackInt(uint32(len(t.Ins)))
	for _, in := range t.Ins {
		in.Marshal(p)
	}

	p.PackBytes(t.Memo)
}

// Marshal writes the tagged BaseTx: type_id(0) ‖ body.
func (t *BaseTx) Marshal(p *wrappers.Packer) {
	p.PackInt(codec.TypeBaseTx)
	t.marshalBody(p)
}

// unmarshalBody reads the BaseTx body (everything after the type tag,
// which the caller has already consumed).
func (t *BaseTx) unmarshalBody(p *wrappers.Packer) {
	t.NetworkID = p.UnpackInt()
	bcBytes := p.UnpackFixedBytes(ids.IDLen)
	if p.Errored() {
		return
	}
	copy(t.BlockchainID[:], bcBytes)

	numOuts := p.UnpackInt()
	if p.Errored() {
		return
	}
	outs := make([]*avax.TransferableOutput, numOuts)
	for i := range outs {
		out, err := avax.UnmarshalTransferableOutput(p, MakeOutput)
		if err != nil {
			p.Add(err)
			return
		}
		outs[i] = out
	}
	if !avax.IsSortedTransferableOutputs(outs) {
		p.Add(codec.NewConstraintViolation("transferable outputs not sorted"))
		return
	}
	t.Outs = outs

	numIns := p.UnpackInt()
	if p.Errored() {
		return
	}
	ins := make([]*avax.TransferableInput, numIns)
	for i := range ins {
		in, err := avax.UnmarshalTransferableInput(p, MakeInput)
		if err != nil {
			p.Add(err)
			return
		}
		ins[i] = in
	}
	if !avax.IsSortedTransferableInputs(ins) {
		p.Add(codec.NewConstraintViolation("transferable inputs not sorted"))
		return
	}
	t.Ins = ins

	memo := p.UnpackBytes()
	if p.Errored() {
		return
	}
	if len(memo) > codec.MaxMemoLen {
		p.Add(codec.NewConstraintViolation("memo exceeds max length"))
		return
	}
	t.Memo = memo
}

// Unmarshal reads a tagged BaseTx, rejecting any tag other than 0.
func (t *BaseTx) Unmarshal(p *wrappers.Packer) {
	typeID := p.UnpackInt()
	if p.Errored() {
		return
	}
	if typeID != codec.TypeBaseTx {
		p.Add(codec.NewUnknownTypeID("avm unsigned tx", typeID))
		return
	}
	t.unmarshalBody(p)
}

// SigningOwnerSets returns one owner set per input in t.Ins, in order.
func (t *BaseTx) SigningOwnerSets() [][]ids.ShortID {
	owners := make([][]ids.ShortID, len(t.Ins))
	for i, in := range t.Ins {
		owners[i] = in.ConsumerOwners
	}
	return owners
}

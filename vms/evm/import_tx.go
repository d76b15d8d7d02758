// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/avm"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
)

// UnsignedAtomicTx is implemented by both bridge transaction variants.
type UnsignedAtomicTx interface {
	TypeID() uint32
	Marshal(p *wrappers.Packer)
	Unmarshal(p *wrappers.Packer)
	SigningOwnerSets() [][]ids.ShortID
}

// ImportTx (type_id=0, the bridge's own independent numbering) =
// network_id(u32) ‖ blockchain_id(32) ‖ source_chain(32) ‖
// imported_inputs[] (AVM TransferableInput) ‖ evm_outputs[] (EVMOutput).
type ImportTx struct {
	NetworkID      uint32
	BlockchainID   ids.ID
	SourceChain    ids.ID
	ImportedInputs []*avax.TransferableInput
	EVMOutputs     []*EVMOutput
}

func (t *ImportTx) TypeID() uint32 { return codec.TypeAtomicImportTx }

func (t *ImportTx) Marshal(p *wrappers.Packer) {
	if !avax.IsSortedTransferableInputs(t.ImportedInputs) {
		p.Add(codec.NewConstraintViolation("imported inputs not sorted"))
		return
	}
	p.PackInt(codec.TypeAtomicImportTx)
	p.PackInt(t.NetworkID)
	p.PackFixedBytes(t.BlockchainID[:])
	p.PackFixedBytes(t.SourceChain[:])

	p.PackInt(uint32(len(t.ImportedInputs)))
	for _, in := range t.ImportedInputs {
		in.Marshal(p)
	}

	p.PackInt(uint32(len(t.EVMOutputs)))
	for _, out := range t.EVMOutputs {
		out.Marshal(p)
	}
}

func (t *ImportTx) Unmarshal(p *wrappers.Packer) {
	typeID := p.UnpackInt()
	if p.Errored() {
		return
	}
	if typeID != codec.TypeAtomicImportTx {
		p.Add(codec.NewUnknownTypeID("atomic tx", typeID))
		return
	}

	t.NetworkID = p.UnpackInt()
	bcBytes := p.UnpackFixedBytes(ids.IDLen)
	if p.Errored() {
		return
	}
	copy(t.BlockchainID[:], bcBytes)

	scBytes := p.UnpackFixedBytes(ids.IDLen)
	if p.Errored() {
		return
	}
	copy(t.SourceChain[:], scBytes)

	n := p.UnpackInt()
	if p.Errored() {
		return
	}
	ins := make([]*avax.TransferableInput, n)
	for i := range ins {
		in, err := avax.UnmarshalTransferableInput(p, avm.MakeInput)
		if err != nil {
			p.Add(err)
			return
		}
		ins[i] = in
	}
	if !avax.IsSortedTransferableInputs(ins) {
		p.Add(codec.NewConstraintViolation("imported inputs not sorted"))
		return
	}
	t.ImportedInputs = ins

	m := p.UnpackInt()
	if p.Errored() {
		return
	}
	outs := make([]*EVMOutput, m)
	for i := range outs {
		out := &EVMOutput{}
		out.Unmarshal(p)
		if p.Errored() {
			return
		}
		outs[i] = out
	}
	t.EVMOutputs = outs
}

// SigningOwnerSets returns one owner set per imported input, in order.
func (t *ImportTx) SigningOwnerSets() [][]ids.ShortID {
	owners := make([][]ids.ShortID, len(t.ImportedInputs))
	for i, in := range t.ImportedInputs {
		owners[i] = in.ConsumerOwners
	}
	return owners
}

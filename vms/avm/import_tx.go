// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avm

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
)

// ImportTx (type_id=3) = BaseTx body ‖ source_chain(32) ‖
// imported_inputs[] (TransferableInput, drawn from the source chain's
// UTXO set rather than this chain's).
type ImportTx struct {
	BaseTx
	SourceChain    ids.ID
	ImportedInputs []*avax.TransferableInput
}

func (t *ImportTx) TypeID() uint32 { return codec.TypeAVMImportTx }

func (t *ImportTx) Marshal(p *wrappers.Packer) {
	if !avax.IsSortedTransferableInputs(t.ImportedInputs) {
		p.Add(codec.NewConstraintViolation("imported inputs not sorted"))
		return
	}
	p.PackInt(codec.TypeAVMImportTx)
	t.BaseTx.marshalBody(p)
	if p.Errored() {
		return
	}
	p.PackFixedBytes(t.SourceChain[:])
	p.PackInt(uint32(len(t.ImportedInputs)))
	for _, in := range t.ImportedInputs {
		in.Marshal(p)
	}
}

func (t *ImportTx) Unmarshal(p *wrappers.Packer) {
	typeID := p.UnpackInt()
	if p.Errored() {
		return
	}
	if typeID != codec.TypeAVMImportTx {
		p.Add(codec.NewUnknownTypeID("avm unsigned tx", typeID))
		return
	}
	t.BaseTx.unmarshalBody(p)
	if p.Errored() {
		return
	}

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
		in, err := avax.UnmarshalTransferableInput(p, MakeInput)
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
}

// SigningOwnerSets appends one owner set per imported input after the
// BaseTx inputs' owner sets, matching their wire order in the credential
// list (invariant 9).
func (t *ImportTx) SigningOwnerSets() [][]ids.ShortID {
	owners := t.BaseTx.SigningOwnerSets()
	for _, in := range t.ImportedInputs {
		owners = append(owners, in.ConsumerOwners)
	}
	return owners
}

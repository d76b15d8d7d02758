// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
)

// ExportTx (type_id=18) = BaseTx body ‖ destination_chain(32) ‖
// exported_outputs[], as the AVM counterpart.
type ExportTx struct {
	BaseTx
	DestinationChain ids.ID
	ExportedOutputs  []*avax.TransferableOutput
}

func (t *ExportTx) TypeID() uint32 { return codec.TypePVMExportTx }

func (t *ExportTx) Marshal(p *wrappers.Packer) {
	if !avax.IsSortedTransferableOutputs(t.ExportedOutputs) {
		p.Add(codec.NewConstraintViolation("exported outputs not sorted"))
		return
	}
	p.PackInt(codec.TypePVMExportTx)
	t.BaseTx.marshalBody(p)
	if p.Errored() {
		return
	}
	p.PackFixedBytes(t.DestinationChain[:])
	p.PackInt(uint32(len(t.ExportedOutputs)))
	for _, out := range t.ExportedOutputs {
		out.Marshal(p)
	}
}

func (t *ExportTx) Unmarshal(p *wrappers.Packer) {
	typeID := p.UnpackInt()
	if p.Errored() {
		return
	}
	if typeID != codec.TypePVMExportTx {
		p.Add(codec.NewUnknownTypeID("pvm unsigned tx", typeID))
		return
	}
	t.BaseTx.unmarshalBody(p)
	if p.Errored() {
		return
	}

	dcBytes := p.UnpackFixedBytes(ids.IDLen)
	if p.Errored() {
		return
	}
	copy(t.DestinationChain[:], dcBytes)

	n := p.UnpackInt()
	if p.Errored() {
		return
	}
	outs := make([]*avax.TransferableOutput, n)
	for i := range outs {
		out, err := avax.UnmarshalTransferableOutput(p, MakeOutput)
		if err != nil {
			p.Add(err)
			return
		}
		outs[i] = out
	}
	if !avax.IsSortedTransferableOutputs(outs) {
		p.Add(codec.NewConstraintViolation("exported outputs not sorted"))
		return
	}
	t.ExportedOutputs = outs
}

// SigningOwnerSets returns one owner set per BaseTx input; ExportTx
// introduces no additional consumed UTXOs of its own.
func (t *ExportTx) SigningOwnerSets() [][]ids.ShortID { return t.BaseTx.SigningOwnerSets() }

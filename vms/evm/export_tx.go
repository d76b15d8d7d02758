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

// ExportTx (type_id=1, the bridge's own independent numbering) =
// network_id(u32) ‖ blockchain_id(32) ‖ destination_chain(32) ‖
// evm_inputs[] (EVMInput) ‖ exported_outputs[] (AVM TransferableOutput).
type ExportTx struct {
	NetworkID        uint32
	BlockchainID     ids.ID
	DestinationChain ids.ID
	EVMInputs        []*EVMInput
	ExportedOutputs  []*avax.TransferableOutput
}

func (t *ExportTx) TypeID() uint32 { return codec.TypeAtomicExportTx }

func (t *ExportTx) Marshal(p *wrappers.Packer) {
	if !avax.IsSortedTransferableOutputs(t.ExportedOutputs) {
		p.Add(codec.NewConstraintViolation("exported outputs not sorted"))
		return
	}
	p.PackInt(codec.TypeAtomicExportTx)
	p.PackInt(t.NetworkID)
	p.PackFixedBytes(t.BlockchainID[:])
	p.PackFixedBytes(t.DestinationChain[:])

	p.PackInt(uint32(len(t.EVMInputs)))
	for _, in := range t.EVMInputs {
		in.Marshal(p)
	}

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
	if typeID != codec.TypeAtomicExportTx {
		p.Add(codec.NewUnknownTypeID("atomic tx", typeID))
		return
	}

	t.NetworkID = p.UnpackInt()
	bcBytes := p.UnpackFixedBytes(ids.IDLen)
	if p.Errored() {
		return
	}
	copy(t.BlockchainID[:], bcBytes)

	dcBytes := p.UnpackFixedBytes(ids.IDLen)
	if p.Errored() {
		return
	}
	copy(t.DestinationChain[:], dcBytes)

	n := p.UnpackInt()
	if p.Errored() {
		return
	}
	ins := make([]*EVMInput, n)
	for i := range ins {
		in := &EVMInput{}
		in.Unmarshal(p)
		if p.Errored() {
			return
		}
		ins[i] = in
	}
	t.EVMInputs = ins

	m := p.UnpackInt()
	if p.Errored() {
		return
	}
	outs := make([]*avax.TransferableOutput, m)
	for i := range outs {
		out, err := avax.UnmarshalTransferableOutput(p, avm.MakeOutput)
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

// SigningOwnerSets returns one single-address owner set per EVM input: an
// EVM balance is authorized by the key of the address it is drawn from, so
// the owner list is on the wire rather than caller-supplied.
func (t *ExportTx) SigningOwnerSets() [][]ids.ShortID {
	owners := make([][]ids.ShortID, len(t.EVMInputs))
	for i, in := range t.EVMInputs {
		owners[i] = []ids.ShortID{in.Address}
	}
	return owners
}

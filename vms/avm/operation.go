// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avm

import (
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
)

// TransferableOp is one entry of an OperationTx's operations list: asset_id
// (32) ‖ utxo_ids[] (u32 len, tx_id(32)‖index(u32) entries) ‖ op(tagged).
// ConsumerOwners is an auxiliary, non-wire field mirroring
// TransferableInput.ConsumerOwners: the owner set of the UTXO(s) the
// operation consumes, populated by the caller for the signer.
type TransferableOp struct {
	Asset          ids.ID
	UTXOIDs        []*avax.UTXOID
	Op             avax.Operation
	ConsumerOwners []ids.ShortID
}

func (o *TransferableOp) Marshal(p *wrappers.Packer) {
	p.PackFixedBytes(o.Asset[:])
	p.PackInt(uint32(len(o.UTXOIDs)))
	for _, u := range o.UTXOIDs {
		u.Marshal(p)
	}
	p.PackInt(o.Op.TypeID())
	o.Op.Marshal(p)
}

func (o *TransferableOp) Unmarshal(p *wrappers.Packer) {
	assetBytes := p.UnpackFixedBytes(ids.IDLen)
	if p.Errored() {
		return
	}
	copy(o.Asset[:], assetBytes)

	n := p.UnpackInt()
	if p.Errored() {
		return
	}
	utxoIDs := make([]*avax.UTXOID, n)
	for i := range utxoIDs {
		u := &avax.UTXOID{}
		u.Unmarshal(p)
		if p.Errored() {
			return
		}
		utxoIDs[i] = u
	}
	o.UTXOIDs = utxoIDs

	typeID := p.UnpackInt()
	if p.Errored() {
		return
	}
	op, err := MakeOperation(typeID)
	if err != nil {
		p.Add(err)
		return
	}
	op.Unmarshal(p)
	if p.Errored() {
		return
	}
	o.Op = op
}

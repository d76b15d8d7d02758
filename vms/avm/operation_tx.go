// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avm

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
)

// OperationTx (type_id=2) = BaseTx body ‖ operations[].
type OperationTx struct {
	BaseTx
	Ops []*TransferableOp
}

func (t *OperationTx) TypeID() uint32 { return codec.TypeOperationTx }

func (t *OperationTx) Marshal(p *wrappers.Packer) {
	p.PackInt(codec.TypeOperationTx)
	t.BaseTx.marshalBody(p)
	if p.Errored() {
		return
	}
	p.PackInt(uint32(len(t.Ops)))
	for _, op := range t.Ops {
		op.Marshal(p)
	}
}

func (t *OperationTx) Unmarshal(p *wrappers.Packer) {
	typeID := p.UnpackInt()
	if p.Errored() {
		return
	}
	if typeID != codec.TypeOperationTx {
		p.Add(codec.NewUnknownTypeID("avm unsigned tx", typeID))
		return
	}
	t.BaseTx.unmarshalBody(p)
	if p.Errored() {
		return
	}
	n := p.UnpackInt()
	if p.Errored() {
		return
	}
	ops := make([]*TransferableOp, n)
	for i := range ops {
		op := &TransferableOp{}
		op.Unmarshal(p)
		if p.Errored() {
			return
		}
		ops[i] = op
	}
	t.Ops = ops
}

// SigningOwnerSets returns one owner set per BaseTx input, followed by one
// owner set per operation, in wire order, per invariant 9.
func (t *OperationTx) SigningOwnerSets() [][]ids.ShortID {
	owners := t.BaseTx.SigningOwnerSets()
	for _, op := range t.Ops {
		owners = append(owners, op.ConsumerOwners)
	}
	return owners
}

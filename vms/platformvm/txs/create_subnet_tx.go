// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
)

// CreateSubnetTx (type_id=16) = BaseTx body ‖ RewardsOwner (the new
// subnet's owner set).
type CreateSubnetTx struct {
	BaseTx
	Owner RewardsOwner
}

func (t *CreateSubnetTx) TypeID() uint32 { return codec.TypeCreateSubnetTx }

func (t *CreateSubnetTx) Marshal(p *wrappers.Packer) {
	p.PackInt(codec.TypeCreateSubnetTx)
	t.BaseTx.marshalBody(p)
	if p.Errored() {
		return
	}
	t.Owner.Marshal(p)
}

func (t *CreateSubnetTx) Unmarshal(p *wrappers.Packer) {
	typeID := p.UnpackInt()
	if p.Errored() {
		return
	}
	if typeID != codec.TypeCreateSubnetTx {
		p.Add(codec.NewUnknownTypeID("pvm unsigned tx", typeID))
		return
	}
	t.BaseTx.unmarshalBody(p)
	if p.Errored() {
		return
	}
	t.Owner.Unmarshal(p)
}

// SigningOwnerSets returns one owner set per BaseTx input; CreateSubnetTx
// introduces no additional consumed UTXOs.
func (t *CreateSubnetTx) SigningOwnerSets() [][]ids.ShortID { return t.BaseTx.SigningOwnerSets() }

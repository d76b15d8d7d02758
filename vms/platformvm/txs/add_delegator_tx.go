// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
)

// AddDelegatorTx (type_id=14) = BaseTx body ‖ Validator ‖ Stake ‖
// RewardsOwner.
type AddDelegatorTx struct {
	BaseTx
	Validator    Validator
	StakeOuts    Stake
	RewardsOwner RewardsOwner
}

func (t *AddDelegatorTx) TypeID() uint32 { return codec.TypeAddDelegatorTx }

func (t *AddDelegatorTx) Marshal(p *wrappers.Packer) {
	p.PackInt(codec.TypeAddDelegatorTx)
	t.BaseTx.marshalBody(p)
	if p.Errored() {
		return
	}
	t.Validator.Marshal(p)
	t.StakeOuts.Marshal(p)
	t.RewardsOwner.Marshal(p)
}

func (t *AddDelegatorTx) Unmarshal(p *wrappers.Packer) {
	typeID := p.UnpackInt()
	if p.Errored() {
		return
	}
	if typeID != codec.TypeAddDelegatorTx {
		p.Add(codec.NewUnknownTypeID("pvm unsigned tx", typeID))
		return
	}
	t.BaseTx.unmarshalBody(p)
	if p.Errored() {
		return
	}
	t.Validator.Unmarshal(p)
	t.StakeOuts.Unmarshal(p)
	t.RewardsOwner.Unmarshal(p)
}

// SigningOwnerSets returns one owner set per BaseTx input; AddDelegatorTx
// consumes no additional UTXOs beyond those.
func (t *AddDelegatorTx) SigningOwnerSets() [][]ids.ShortID { return t.BaseTx.SigningOwnerSets() }

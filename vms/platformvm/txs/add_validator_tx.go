// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
)

// AddValidatorTx (type_id=12) = BaseTx body ‖ Validator ‖ Stake ‖
// RewardsOwner ‖ shares(u32).
type AddValidatorTx struct {
	BaseTx
	Validator    Validator
	StakeOuts    Stake
	RewardsOwner RewardsOwner
	Shares       uint32
}

func (t *AddValidatorTx) TypeID() uint32 { return codec.TypeAddValidatorTx }

func (t *AddValidatorTx) Marshal(p *wrappers.Packer) {
	p.PackInt(codec.TypeAddValidatorTx)
	t.BaseTx.marshalBody(p)
	if p.Errored() {
		return
	}
	t.Validator.Marshal(p)
	t.StakeOuts.Marshal(p)
	t.RewardsOwner.Marshal(p)
	p.PackInt(t.Shares)
}

func (t *AddValidatorTx) Unmarshal(p *wrappers.Packer) {
	typeID := p.UnpackInt()
	if p.Errored() {
		return
	}
	if typeID != codec.TypeAddValidatorTx {
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
	if p.Errored() {
		return
	}
	t.Shares = p.UnpackInt()
}

// SigningOwnerSets returns one owner set per BaseTx input; AddValidatorTx
// consumes no additional UTXOs beyond those.
func (t *AddValidatorTx) SigningOwnerSets() [][]ids.ShortID { return t.BaseTx.SigningOwnerSets() }

// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
)

// AddSubnetValidatorTx (type_id=13) = BaseTx body ‖ Validator ‖
// subnet_id(32) ‖ SubnetAuth.
type AddSubnetValidatorTx struct {
	BaseTx
	Validator Validator
	SubnetID  ids.ID
	Auth      SubnetAuth
}

func (t *AddSubnetValidatorTx) TypeID() uint32 { return codec.TypeAddSubnetValidatorTx }

func (t *AddSubnetValidatorTx) Marshal(p *wrappers.Packer) {
	p.PackInt(codec.TypeAddSubnetValidatorTx)
	t.BaseTx.marshalBody(p)
	if p.Errored() {
		return
	}
	t.Validator.Marshal(p)
	p.PackFixedBytes(t.SubnetID[:])
	t.Auth.Marshal(p)
}

func (t *AddSubnetValidatorTx) Unmarshal(p *wrappers.Packer) {
	typeID := p.UnpackInt()
	if p.Errored() {
		return
	}
	if typeID != codec.TypeAddSubnetValidatorTx {
		p.Add(codec.NewUnknownTypeID("pvm unsigned tx", typeID))
		return
	}
	t.BaseTx.unmarshalBody(p)
	if p.Errored() {
		return
	}
	t.Validator.Unmarshal(p)
	if p.Errored() {
		return
	}
	subnetBytes := p.UnpackFixedBytes(ids.IDLen)
	if p.Errored() {
		return
	}
	copy(t.SubnetID[:], subnetBytes)
	t.Auth.Unmarshal(p)
}

// SigningOwnerSets appends the subnet auth's owner set after the BaseTx
// inputs' owner sets (invariant 9).
func (t *AddSubnetValidatorTx) SigningOwnerSets() [][]ids.ShortID {
	return append(t.BaseTx.SigningOwnerSets(), t.Auth.ConsumerOwners)
}

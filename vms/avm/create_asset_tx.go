// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avm

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
)

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}

// CreateAssetTx (type_id=1) = BaseTx body ‖ name(u32 len, ASCII ≤128) ‖
// symbol(u32 len, ASCII ≤4) ‖ denomination(u8 ≤32) ‖ initial_states[].
type CreateAssetTx struct {
	BaseTx
	Name          string
	Symbol        string
	Denomination  byte
	InitialStates []*InitialState
}

func (t *CreateAssetTx) TypeID() uint32 { return codec.TypeCreateAssetTx }

func (t *CreateAssetTx) Marshal(p *wrappers.Packer) {
	if !isASCII(t.Name) || len(t.Name) > codec.MaxAssetNameLen {
		p.Add(codec.NewConstraintViolation("asset name not ASCII or too long"))
		return
	}
	if !isASCII(t.Symbol) || len(t.Symbol) > codec.MaxAssetSymbolLen {
		p.Add(codec.NewConstraintViolation("asset symbol not ASCII or too long"))
		return
	}
	if t.Denomination > codec.MaxDenomination {
		p.Add(codec.NewConstraintViolation("denomination exceeds max"))
		return
	}

	p.PackInt(codec.TypeCreateAssetTx)
	t.BaseTx.marshalBody(p)
	if p.Errored() {
		return
	}
	p.PackStr32(t.Name)
	p.PackStr32(t.Symbol)
	p.PackByte(t.Denomination)
	p.PackInt(uint32(len(t.InitialStates)))
	for _, s := range t.InitialStates {
		s.Marshal(p)
	}
}

func (t *CreateAssetTx) Unmarshal(p *wrappers.Packer) {
	typeID := p.UnpackInt()
	if p.Errored() {
		return
	}
	if typeID != codec.TypeCreateAssetTx {
		p.Add(codec.NewUnknownTypeID("avm unsigned tx", typeID))
		return
	}
	t.BaseTx.unmarshalBody(p)
	if p.Errored() {
		return
	}

	t.Name = p.UnpackStr32()
	t.Symbol = p.UnpackStr32()
	if p.Errored() {
		return
	}
	if !isASCII(t.Name) || len(t.Name) > codec.MaxAssetNameLen {
		p.Add(codec.NewConstraintViolation("asset name not ASCII or too long"))
		return
	}
	if !isASCII(t.Symbol) || len(t.Symbol) > codec.MaxAssetSymbolLen {
		p.Add(codec.NewConstraintViolation("asset symbol not ASCII or too long"))
		return
	}

	t.Denomination = p.UnpackByte()
	if p.Errored() {
		return
	}
	if t.Denomination > codec.MaxDenomination {
		p.Add(codec.NewConstraintViolation("denomination exceeds max"))
		return
	}

	n := p.UnpackInt()
	if p.Errored() {
		return
	}
	states := make([]*InitialState, n)
	for i := range states {
		s := &InitialState{}
		s.Unmarshal(p)
		if p.Errored() {
			return
		}
		states[i] = s
	}
	t.InitialStates = states
}

// SigningOwnerSets returns one owner set per BaseTx input; CreateAssetTx
// introduces no additional consumed UTXOs.
func (t *CreateAssetTx) SigningOwnerSets() [][]ids.ShortID { return t.BaseTx.SigningOwnerSets() }

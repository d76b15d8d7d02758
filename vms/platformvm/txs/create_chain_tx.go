// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
)

// CreateChainTx (type_id=15) = BaseTx body ‖ subnet_id(32) ‖
// chain_name(u16 len, bytes — the one exception to the codec's u32
// length-prefix rule) ‖ vm_id(32) ‖ fx_ids[] (u32 len, 32-byte entries) ‖
// genesis_data(u32 len, bytes) ‖ SubnetAuth.
type CreateChainTx struct {
	BaseTx
	SubnetID    ids.ID
	ChainName   string
	VMID        ids.ID
	FxIDs       []ids.ID
	GenesisData []byte
	Auth        SubnetAuth
}

func (t *CreateChainTx) TypeID() uint32 { return codec.TypeCreateChainTx }

func (t *CreateChainTx) Marshal(p *wrappers.Packer) {
	p.PackInt(codec.TypeCreateChainTx)
	t.BaseTx.marshalBody(p)
	if p.Errored() {
		return
	}
	p.PackFixedBytes(t.SubnetID[:])
	p.PackStr(t.ChainName)
	p.PackFixedBytes(t.VMID[:])
	p.PackInt(uint32(len(t.FxIDs)))
	for _, fx := range t.FxIDs {
		p.PackFixedBytes(fx[:])
	}
	p.PackBytes(t.GenesisData)
	t.Auth.Marshal(p)
}

func (t *CreateChainTx) Unmarshal(p *wrappers.Packer) {
	typeID := p.UnpackInt()
	if p.Errored() {
		return
	}
	if typeID != codec.TypeCreateChainTx {
		p.Add(codec.NewUnknownTypeID("pvm unsigned tx", typeID))
		return
	}
	t.BaseTx.unmarshalBody(p)
	if p.Errored() {
		return
	}

	subnetBytes := p.UnpackFixedBytes(ids.IDLen)
	if p.Errored() {
		return
	}
	copy(t.SubnetID[:], subnetBytes)

	t.ChainName = p.UnpackStr()
	if p.Errored() {
		return
	}

	vmBytes := p.UnpackFixedBytes(ids.IDLen)
	if p.Errored() {
		return
	}
	copy(t.VMID[:], vmBytes)

	n := p.UnpackInt()
	if p.Errored() {
		return
	}
	fxIDs := make([]ids.ID, n)
	for i := range fxIDs {
		fxBytes := p.UnpackFixedBytes(ids.IDLen)
		if p.Errored() {
			return
		}
		copy(fxIDs[i][:], fxBytes)
	}
	t.FxIDs = fxIDs

	t.GenesisData = p.UnpackBytes()
	if p.Errored() {
		return
	}

	t.Auth.Unmarshal(p)
}

// SigningOwnerSets appends the subnet auth's owner set after the BaseTx
// inputs' owner sets (invariant 9).
func (t *CreateChainTx) SigningOwnerSets() [][]ids.ShortID {
	return append(t.BaseTx.SigningOwnerSets(), t.Auth.ConsumerOwners)
}

// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stakeable implements the locked-until-timestamp input/output
// wrappers the platform chain uses to represent staked/locked funds: a
// locktime prefix around an ordinary secp256k1fx transfer input/output.
package stakeable

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
	"github.com/xavax-project/xavax-avalanche/vms/secp256k1fx"
)

// LockIn (type_id=21) = locktime(u64) ‖ inner(tagged Input, always a
// secp256k1fx.TransferInput in this context).
type LockIn struct {
	Locktime   uint64
	TransferIn avax.Input
}

func (i *LockIn) TypeID() uint32 { return codec.TypeStakeableLockIn }

func (i *LockIn) Marshal(p *wrappers.Packer) {
	p.PackLong(i.Locktime)
	p.PackInt(i.TransferIn.TypeID())
	i.TransferIn.Marshal(p)
}

func (i *LockIn) Unmarshal(p *wrappers.Packer) {
	i.Locktime = p.UnpackLong()
	if p.Errored() {
		return
	}
	typeID := p.UnpackInt()
	if p.Errored() {
		return
	}
	in, err := secp256k1fx.MakeInput(typeID)
	if err != nil {
		p.Add(err)
		return
	}
	in.Unmarshal(p)
	if p.Errored() {
		return
	}
	i.TransferIn = in
}

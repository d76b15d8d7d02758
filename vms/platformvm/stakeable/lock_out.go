// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stakeable

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
	"github.com/xavax-project/xavax-avalanche/vms/secp256k1fx"
)

// LockOut (type_id=22) = locktime(u64) ‖ inner(tagged Output, always a
// secp256k1fx.TransferOutput in this context).
type LockOut struct {
	Locktime    uint64
	TransferOut avax.Output
}

func (o *LockOut) TypeID() uint32 { return codec.TypeStakeableLockOut }

func (o *LockOut) Marshal(p *wrappers.Packer) {
	p.PackLong(o.Locktime)
	p.PackInt(o.TransferOut.TypeID())
	o.TransferOut.Marshal(p)
}

func (o *LockOut) Unmarshal(p *wrappers.Packer) {
	o.Locktime = p.UnpackLong()
	if p.Errored() {
		return
	}
	typeID := p.UnpackInt()
	if p.Errored() {
		return
	}
	if typeID != codec.TypeTransferOutput {
		p.Add(codec.NewUnknownTypeID("stakeable output", typeID))
		return
	}
	out, err := secp256k1fx.MakeOutput(typeID)
	if err != nil {
		p.Add(err)
		return
	}
	out.Unmarshal(p)
	if p.Errored() {
		return
	}
	o.TransferOut = out
}

// Amount returns the locked amount, assuming the inner output is a
// secp256k1fx.TransferOutput (the only variant this wrapper ever carries).
func (o *LockOut) Amount() uint64 {
	if t, ok := o.TransferOut.(*secp256k1fx.TransferOutput); ok {
		return t.Amount
	}
	return 0
}

// MakeOutput resolves type ID 22 for contexts that allow stakeable locks
// alongside plain secp256k1fx outputs.
func MakeOutput(typeID uint32) (avax.Output, error) {
	switch typeID {
	case codec.TypeStakeableLockOut:
		return &LockOut{}, nil
	default:
		return nil, codec.NewUnknownTypeID("stakeable output", typeID)
	}
}

// MakeInput resolves type ID 21 for contexts that allow stakeable locks
// alongside plain secp256k1fx inputs.
func MakeInput(typeID uint32) (avax.Input, error) {
	switch typeID {
	case codec.TypeStakeableLockIn:
		return &LockIn{}, nil
	default:
		return nil, codec.NewUnknownTypeID("stakeable input", typeID)
	}
}

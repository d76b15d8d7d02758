// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
	"github.com/xavax-project/xavax-avalanche/vms/platformvm/stakeable"
	"github.com/xavax-project/xavax-avalanche/vms/secp256k1fx"
)

// Stake = locked_outs[] (u32 len, TransferableOutput entries): the stake
// amount a validator/delegator transaction locks. Always length-prefixed;
// see the PVM stakeable-lock notes in DESIGN.md for why.
type Stake struct {
	LockedOuts []*avax.TransferableOutput
}

func (s *Stake) Marshal(p *wrappers.Packer) {
	p.PackInt(uint32(len(s.LockedOuts)))
	for _, out := range s.LockedOuts {
		out.Marshal(p)
	}
}

func (s *Stake) Unmarshal(p *wrappers.Packer) {
	n := p.UnpackInt()
	if p.Errored() {
		return
	}
	outs := make([]*avax.TransferableOutput, n)
	for i := range outs {
		out, err := avax.UnmarshalTransferableOutput(p, MakeOutput)
		if err != nil {
			p.Add(err)
			return
		}
		outs[i] = out
	}
	s.LockedOuts = outs
}

// TotalWeight sums the locked outputs' transfer amounts.
func (s *Stake) TotalWeight() uint64 {
	var total uint64
	for _, out := range s.LockedOuts {
		switch o := out.Out.(type) {
		case *secp256k1fx.TransferOutput:
			total += o.Amount
		case *stakeable.LockOut:
			total += o.Amount()
		}
	}
	return total
}

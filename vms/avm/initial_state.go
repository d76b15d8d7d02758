// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avm

import (
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
)

// InitialState = fx_id(u32) ‖ outputs[] (bare Outputs, no asset_id prefix:
// the asset being created is implicit).
type InitialState struct {
	FxID uint32
	Outs []avax.Output
}

func (s *InitialState) Marshal(p *wrappers.Packer) {
	p.PackInt(s.FxID)
	p.PackInt(uint32(len(s.Outs)))
	for _, out := range s.Outs {
		p.PackInt(out.TypeID())
		out.Marshal(p)
	}
}

func (s *InitialState) Unmarshal(p *wrappers.Packer) {
	s.FxID = p.UnpackInt()
	n := p.UnpackInt()
	if p.Errored() {
		return
	}
	outs := make([]avax.Output, n)
	for i := range outs {
		typeID := p.UnpackInt()
		if p.Errored() {
			return
		}
		out, err := MakeOutput(typeID)
		if err != nil {
			p.Add(err)
			return
		}
		out.Unmarshal(p)
		if p.Errored() {
			return
		}
		outs[i] = out
	}
	s.Outs = outs
}

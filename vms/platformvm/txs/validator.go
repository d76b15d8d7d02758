// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package txs implements the platform chain's (P-chain) unsigned
// transaction variants: validator registration, subnet/chain creation,
// and the P-chain's own import/export halves of the atomic bridge.
package txs

import "github.com/xavax-project/xavax-avalanche/utils/wrappers"

// Validator = node_id(20) ‖ start_time(u64) ‖ end_time(u64) ‖ weight(u64).
type Validator struct {
	NodeID    [20]byte
	StartTime uint64
	EndTime   uint64
	Weight    uint64
}

func (v *Validator) Marshal(p *wrappers.Packer) {
	p.PackFixedBytes(v.NodeID[:])
	p.PackLong(v.StartTime)
	p.PackLong(v.EndTime)
	p.PackLong(v.Weight)
}

func (v *Validator) Unmarshal(p *wrappers.Packer) {
	nodeIDBytes := p.UnpackFixedBytes(20)
	if p.Errored() {
		return
	}
	copy(v.NodeID[:], nodeIDBytes)
	v.StartTime = p.UnpackLong()
	v.EndTime = p.UnpackLong()
	v.Weight = p.UnpackLong()
}

// Duration reports the validation period in seconds.
func (v *Validator) Duration() uint64 { return v.EndTime - v.StartTime }

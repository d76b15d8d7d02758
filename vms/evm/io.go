// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package evm implements the atomic bridge between the C-chain (EVM) and
// the X/P chains: the EVM-side balance records and the two transaction
// variants that move value across the shared-memory boundary. It does
// not execute EVM state; bridging is the whole of its responsibility.
package evm

import (
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
)

// EVMInput = address(20) ‖ amount(u64) ‖ asset_id(32) ‖ nonce(u64). The
// nonce prevents double-spend of the same EVM account balance across
// concurrently constructed export transactions.
type EVMInput struct {
	Address ids.ShortID
	Amount  uint64
	AssetID ids.ID
	Nonce   uint64
}

func (i *EVMInput) Marshal(p *wrappers.Packer) {
	p.PackFixedBytes(i.Address[:])
	p.PackLong(i.Amount)
	p.PackFixedBytes(i.AssetID[:])
	p.PackLong(i.Nonce)
}

func (i *EVMInput) Unmarshal(p *wrappers.Packer) {
	addrBytes := p.UnpackFixedBytes(ids.ShortIDLen)
	if p.Errored() {
		return
	}
	copy(i.Address[:], addrBytes)
	i.Amount = p.UnpackLong()
	assetBytes := p.UnpackFixedBytes(ids.IDLen)
	if p.Errored() {
		return
	}
	copy(i.AssetID[:], assetBytes)
	i.Nonce = p.UnpackLong()
}

// EVMOutput = address(20) ‖ amount(u64) ‖ asset_id(32).
type EVMOutput struct {
	Address ids.ShortID
	Amount  uint64
	AssetID ids.ID
}

func (o *EVMOutput) Marshal(p *wrappers.Packer) {
	p.PackFixedBytes(o.Address[:])
	p.PackLong(o.Amount)
	p.PackFixedBytes(o.AssetID[:])
}

func (o *EVMOutput) Unmarshal(p *wrappers.Packer) {
	addrBytes := p.UnpackFixedBytes(ids.ShortIDLen)
	if p.Errored() {
		return
	}
	copy(o.Address[:], addrBytes)
	o.Amount = p.UnpackLong()
	assetBytes := p.UnpackFixedBytes(ids.IDLen)
	if p.Errored() {
		return
	}
	copy(o.AssetID[:], assetBytes)
}

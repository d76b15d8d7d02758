// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package avax holds the primitive records AVM, PVM, and the EVM-Atomic
// bridge all share: the transferable output/input envelope and the UTXO
// they're indexed by.
package avax

import "github.com/xavax-project/xavax-avalanche/utils/wrappers"

// Output is implemented by every tagged output variant (secp256k1fx and
// nftfx outputs, stakeable-locked wrappers).
type Output interface {
	TypeID() uint32
	Marshal(p *wrappers.Packer)
	Unmarshal(p *wrappers.Packer)
}

// Input is implemented by every tagged input variant.
type Input interface {
	TypeID() uint32
	Marshal(p *wrappers.Packer)
	Unmarshal(p *wrappers.Packer)
}

// Credential is implemented by every tagged credential variant.
type Credential interface {
	TypeID() uint32
	Marshal(p *wrappers.Packer)
	Unmarshal(p *wrappers.Packer)
	NumSignatures() int
	SignatureAt(i int) [65]byte
}

// Operation is implemented by every tagged fx operation (OperationTx's
// operations[]).
type Operation interface {
	TypeID() uint32
	Marshal(p *wrappers.Packer)
	Unmarshal(p *wrappers.Packer)
}

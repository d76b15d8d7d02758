// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package avm implements the asset/UTXO chain's (X-chain) unsigned
// transaction variants, their shared BaseTx body, and the output/input/
// credential/operation dispatch used to parse them.
package avm

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
	"github.com/xavax-project/xavax-avalanche/vms/nftfx"
	"github.com/xavax-project/xavax-avalanche/vms/secp256k1fx"
)

// MakeOutput resolves an AVM-context output by type ID (6, 7, 10, 11).
func MakeOutput(typeID uint32) (avax.Output, error) {
	switch typeID {
	case codec.TypeMintOutput, codec.TypeTransferOutput:
		return secp256k1fx.MakeOutput(typeID)
	case codec.TypeNFTMintOutput, codec.TypeNFTTransferOutput:
		return nftfx.MakeOutput(typeID)
	default:
		return nil, codec.NewUnknownTypeID("avm output", typeID)
	}
}

// MakeInput resolves an AVM-context input by type ID (5).
func MakeInput(typeID uint32) (avax.Input, error) {
	return secp256k1fx.MakeInput(typeID)
}

// MakeCredential resolves an AVM-context credential by type ID (9 or 14).
func MakeCredential(typeID uint32) (avax.Credential, error) {
	switch typeID {
	case codec.TypeCredential:
		return secp256k1fx.MakeCredential(typeID)
	case codec.TypeNFTCredential:
		return nftfx.MakeCredential(typeID)
	default:
		return nil, codec.NewUnknownTypeID("avm credential", typeID)
	}
}

// MakeOperation resolves an AVM-context fx operation by type ID (8).
func MakeOperation(typeID uint32) (avax.Operation, error) {
	return secp256k1fx.MakeOperation(typeID)
}

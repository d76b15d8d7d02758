// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
	"github.com/xavax-project/xavax-avalanche/vms/platformvm/stakeable"
	"github.com/xavax-project/xavax-avalanche/vms/secp256k1fx"
)

// MakeOutput resolves a PVM-context output: plain secp256k1fx transfer/mint
// outputs (6, 7) or a stakeable lock wrapper (22).
func MakeOutput(typeID uint32) (avax.Output, error) {
	switch typeID {
	case codec.TypeMintOutput, codec.TypeTransferOutput:
		return secp256k1fx.MakeOutput(typeID)
	case codec.TypeStakeableLockOut:
		return stakeable.MakeOutput(typeID)
	default:
		return nil, codec.NewUnknownTypeID("pvm output", typeID)
	}
}

// MakeInput resolves a PVM-context input: a plain secp256k1fx transfer
// input (5) or a stakeable lock wrapper (21).
func MakeInput(typeID uint32) (avax.Input, error) {
	switch typeID {
	case codec.TypeTransferInput:
		return secp256k1fx.MakeInput(typeID)
	case codec.TypeStakeableLockIn:
		return stakeable.MakeInput(typeID)
	default:
		return nil, codec.NewUnknownTypeID("pvm input", typeID)
	}
}

// MakeCredential resolves a PVM-context credential (9, secp256k1fx only —
// the platform chain has no NFT fx).
func MakeCredential(typeID uint32) (avax.Credential, error) {
	return secp256k1fx.MakeCredential(typeID)
}

// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package secp256k1fx implements the feature extension every AVM and PVM
// transaction uses by default: outputs, inputs, credentials, and mint
// operations authorized by a threshold of secp256k1 signatures.
package secp256k1fx

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
)

// TransferOutput (type_id=7) = amount(u64) ‖ OutputOwners tail.
type TransferOutput struct {
	Amount uint64
	avax.OutputOwners
}

func (o *TransferOutput) TypeID() uint32 { return codec.TypeTransferOutput }

func (o *TransferOutput) Marshal(p *wrappers.Packer) {
	p.PackLong(o.Amount)
	o.OutputOwners.Marshal(p)
}

func (o *TransferOutput) Unmarshal(p *wrappers.Packer) {
	o.Amount = p.UnpackLong()
	o.OutputOwners.Unmarshal(p)
}

// MintOutput (type_id=6) = OutputOwners tail only.
type MintOutput struct {
	avax.OutputOwners
}

func (o *MintOutput) TypeID() uint32 { return codec.TypeMintOutput }

func (o *MintOutput) Marshal(p *wrappers.Packer)   { o.OutputOwners.Marshal(p) }
func (o *MintOutput) Unmarshal(p *wrappers.Packer) { o.OutputOwners.Unmarshal(p) }

// MakeOutput resolves type IDs 6 and 7 for the generic avax.Output
// dispatcher. Other fx packages (nftfx, stakeable) compose this with their
// own type IDs to build a context's full output dispatcher.
func MakeOutput(typeID uint32) (avax.Output, error) {
	switch typeID {
	case codec.TypeMintOutput:
		return &MintOutput{}, nil
	case codec.TypeTransferOutput:
		return &TransferOutput{}, nil
	default:
		return nil, codec.NewUnknownTypeID("secp256k1fx output", typeID)
	}
}

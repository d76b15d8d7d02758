// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package nftfx implements the NFT feature extension: group-tagged mint
// and transfer outputs and the credential that authorizes spending them.
package nftfx

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
)

// MintOutput (type_id=10) = group_id(u32) ‖ OutputOwners tail.
type MintOutput struct {
	GroupID uint32
	avax.OutputOwners
}

func (o *MintOutput) TypeID() uint32 { return codec.TypeNFTMintOutput }

func (o *MintOutput) Marshal(p *wrappers.Packer) {
	p.PackInt(o.GroupID)
	o.OutputOwners.Marshal(p)
}

func (o *MintOutput) Unmarshal(p *wrappers.Packer) {
	o.GroupID = p.UnpackInt()
	o.OutputOwners.Unmarshal(p)
}

// TransferOutput (type_id=11, output context) = group_id(u32) ‖
// payload(u32 len, bytes, ≤ MaxNFTPayloadLen) ‖ OutputOwners tail.
type TransferOutput struct {
	GroupID uint32
	Payload []byte
	avax.OutputOwners
}

func (o *TransferOutput) TypeID() uint32 { return codec.TypeNFTTransferOutput }

func (o *TransferOutput) Marshal(p *wrappers.Packer) {
	if len(o.Payload) > codec.MaxNFTPayloadLen {
		p.Add(codec.NewConstraintViolation("nft payload exceeds max length"))
		return
	}
	p.PackInt(o.GroupID)
	p.PackBytes(o.Payload)
	o.OutputOwners.Marshal(p)
}

func (o *TransferOutput) Unmarshal(p *wrappers.Packer) {
	o.GroupID = p.UnpackInt()
	o.Payload = p.UnpackBytes()
	if p.Errored() {
		return
	}
	if len(o.Payload) > codec.MaxNFTPayloadLen {
		p.Add(codec.NewConstraintViolation("nft payload exceeds max length"))
		return
	}
	o.OutputOwners.Unmarshal(p)
}

// MakeOutput resolves type IDs 10 and 11 for the generic avax.Output
// dispatcher in an output context where 11 denotes NFTTransferOutput (as
// opposed to the PVM RewardsOwner/SubnetAuth context, which fixes 10/11 to
// different meanings and is parsed directly rather than through this
// dispatcher).
func MakeOutput(typeID uint32) (avax.Output, error) {
	switch typeID {
	case codec.TypeNFTMintOutput:
		return &MintOutput{}, nil
	case codec.TypeNFTTransferOutput:
		return &TransferOutput{}, nil
	default:
		return nil, codec.NewUnknownTypeID("nftfx output", typeID)
	}
}

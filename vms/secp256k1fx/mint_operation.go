// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
)

// MintOperation (type_id=8) spends a MintOutput to produce a fresh
// MintOutput and TransferOutput, minting new units of a variable-cap
// asset. Wire shape: Input (address indices authorizing the mint) ‖
// MintOutput ‖ TransferOutput.
type MintOperation struct {
	Input          Input
	MintOutput     MintOutput
	TransferOutput TransferOutput
}

func (o *MintOperation) TypeID() uint32 { return codec.TypeMintOperation }

func (o *MintOperation) Marshal(p *wrappers.Packer) {
	o.Input.Marshal(p)
	o.MintOutput.Marshal(p)
	o.TransferOutput.Marshal(p)
}

func (o *MintOperation) Unmarshal(p *wrappers.Packer) {
	o.Input.Unmarshal(p)
	o.MintOutput.Unmarshal(p)
	o.TransferOutput.Unmarshal(p)
}

// MakeOperation resolves type ID 8 for the generic avax.Operation
// dispatcher.
func MakeOperation(typeID uint32) (avax.Operation, error) {
	if typeID == codec.TypeMintOperation {
		return &MintOperation{}, nil
	}
	return nil, codec.NewUnknownTypeID("operation", typeID)
}

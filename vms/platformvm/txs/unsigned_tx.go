// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
)

// ParseUnsignedTx peeks the leading type tag of an unsigned PVM
// transaction and dispatches to the matching variant's Unmarshal,
// rewinding the cursor first so the variant sees its own tag.
func ParseUnsignedTx(p *wrappers.Packer) (UnsignedTx, error) {
	start := p.Offset
	typeID := p.UnpackInt()
	if p.Errored() {
		return nil, p.Err
	}
	p.Offset = start

	var tx UnsignedTx
	switch typeID {
	case codec.TypeBaseTx:
		tx = &BaseTx{}
	case codec.TypeAddValidatorTx:
		tx = &AddValidatorTx{}
	case codec.TypeAddSubnetValidatorTx:
		tx = &AddSubnetValidatorTx{}
	case codec.TypeAddDelegatorTx:
		tx = &AddDelegatorTx{}
	case codec.TypeCreateChainTx:
		tx = &CreateChainTx{}
	case codec.TypeCreateSubnetTx:
		tx = &CreateSubnetTx{}
	case codec.TypePVMImportTx:
		tx = &ImportTx{}
	case codec.TypePVMExportTx:
		tx = &ExportTx{}
	default:
		return nil, codec.NewUnknownTypeID("pvm unsigned tx", typeID)
	}

	tx.Unmarshal(p)
	if p.Errored() {
		return nil, p.Err
	}
	return tx, nil
}

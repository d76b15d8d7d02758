// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avm

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
)

// ParseUnsignedTx peeks the leading type tag of an unsigned AVM transaction
// and dispatches to the matching variant's Unmarshal, rewinding the cursor
// first so the variant sees its own tag.
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
	case codec.TypeCreateAssetTx:
		tx = &CreateAssetTx{}
	case codec.TypeOperationTx:
		tx = &OperationTx{}
	case codec.TypeAVMImportTx:
		tx = &ImportTx{}
	case codec.TypeAVMExportTx:
		tx = &ExportTx{}
	default:
		return nil, codec.NewUnknownTypeID("avm unsigned tx", typeID)
	}

	tx.Unmarshal(p)
	if p.Errored() {
		return nil, p.Err
	}
	return tx, nil
}

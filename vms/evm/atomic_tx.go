// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
	"github.com/xavax-project/xavax-avalanche/vms/secp256k1fx"
)

// ParseUnsignedAtomicTx peeks the leading type tag of an atomic bridge
// transaction and dispatches to ImportTx (0) or ExportTx (1).
func ParseUnsignedAtomicTx(p *wrappers.Packer) (UnsignedAtomicTx, error) {
	start := p.Offset
	typeID := p.UnpackInt()
	if p.Errored() {
		return nil, p.Err
	}
	p.Offset = start

	var tx UnsignedAtomicTx
	switch typeID {
	case codec.TypeAtomicImportTx:
		tx = &ImportTx{}
	case codec.TypeAtomicExportTx:
		tx = &ExportTx{}
	default:
		return nil, codec.NewUnknownTypeID("atomic tx", typeID)
	}

	tx.Unmarshal(p)
	if p.Errored() {
		return nil, p.Err
	}
	return tx, nil
}

// SignedAtomicTransaction = codec_id(u16) ‖ atomic_tx(tagged) ‖
// credentials[].
type SignedAtomicTransaction struct {
	Unsigned    UnsignedAtomicTx
	Credentials []avax.Credential
}

func (t *SignedAtomicTransaction) Marshal(p *wrappers.Packer) {
	owners := t.Unsigned.SigningOwnerSets()
	if len(t.Credentials) != len(owners) {
		p.Add(codec.NewConstraintViolation("credential count does not match signing owner sets"))
		return
	}
	p.PackShort(codec.CodecID)
	t.Unsigned.Marshal(p)
	if p.Errored() {
		return
	}
	p.PackInt(uint32(len(t.Credentials)))
	for _, cred := range t.Credentials {
		p.PackInt(cred.TypeID())
		cred.Marshal(p)
	}
}

func (t *SignedAtomicTransaction) Unmarshal(p *wrappers.Packer) {
	codecID := p.UnpackShort()
	if p.Errored() {
		return
	}
	if codecID != codec.CodecID {
		p.Add(codec.NewUnknownTypeID("signed tx codec_id", uint32(codecID)))
		return
	}

	unsigned, err := ParseUnsignedAtomicTx(p)
	if err != nil {
		p.Add(err)
		return
	}
	t.Unsigned = unsigned

	n := p.UnpackInt()
	if p.Errored() {
		return
	}
	creds := make([]avax.Credential, n)
	for i := range creds {
		typeID := p.UnpackInt()
		if p.Errored() {
			return
		}
		cred, err := secp256k1fx.MakeCredential(typeID)
		if err != nil {
			p.Add(err)
			return
		}
		cred.Unmarshal(p)
		if p.Errored() {
			return
		}
		creds[i] = cred
	}

	owners := t.Unsigned.SigningOwnerSets()
	if len(creds) != len(owners) {
		p.Add(codec.NewConstraintViolation("credential count does not match signing owner sets"))
		return
	}
	t.Credentials = creds
}

// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avm

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
)

// SignedTx is the signed envelope every AVM transaction is broadcast as:
// codec_id(u16, =0) ‖ unsigned_tx(tagged) ‖ credentials[] (one per
// UnsignedTx.SigningOwnerSets() entry, invariant 9).
type SignedTx struct {
	Unsigned    UnsignedTx
	Credentials []avax.Credential
}

func (t *SignedTx) Marshal(p *wrappers.Packer) {
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

func (t *SignedTx) Unmarshal(p *wrappers.Packer) {
	codecID := p.UnpackShort()
	if p.Errored() {
		return
	}
	if codecID != codec.CodecID {
		p.Add(codec.NewUnknownTypeID("signed tx codec_id", uint32(codecID)))
		return
	}

	unsigned, err := ParseUnsignedTx(p)
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
		cred, err := MakeCredential(typeID)
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

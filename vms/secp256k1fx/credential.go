// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/utils/crypto"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
)

// Credential (type_id=9) = signatures[] (u32 len, 65-byte entries).
type Credential struct {
	Sigs [][crypto.SignatureLen]byte
}

func (c *Credential) TypeID() uint32 { return codec.TypeCredential }

func (c *Credential) Marshal(p *wrappers.Packer) {
	p.PackInt(uint32(len(c.Sigs)))
	for _, sig := range c.Sigs {
		p.PackFixedBytes(sig[:])
	}
}

func (c *Credential) Unmarshal(p *wrappers.Packer) {
	n := p.UnpackInt()
	if p.Errored() {
		return
	}
	sigs := make([][crypto.SignatureLen]byte, n)
	for i := range sigs {
		b := p.UnpackFixedBytes(crypto.SignatureLen)
		if p.Errored() {
			return
		}
		copy(sigs[i][:], b)
	}
	c.Sigs = sigs
}

func (c *Credential) NumSignatures() int { return len(c.Sigs) }

func (c *Credential) SignatureAt(i int) [crypto.SignatureLen]byte { return c.Sigs[i] }

// AddSignature appends a 65-byte recoverable signature.
func (c *Credential) AddSignature(sig []byte) {
	var fixed [crypto.SignatureLen]byte
	copy(fixed[:], sig)
	c.Sigs = append(c.Sigs, fixed)
}

// MakeCredential resolves type ID 9 for the generic avax.Credential
// dispatcher.
func MakeCredential(typeID uint32) (avax.Credential, error) {
	if typeID == codec.TypeCredential {
		return &Credential{}, nil
	}
	return nil, codec.NewUnknownTypeID("credential", typeID)
}

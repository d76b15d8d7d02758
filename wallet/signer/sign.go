// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package signer implements the canonicalize-hash-recover-emit pipeline
// every AVM, PVM, and EVM-Atomic transaction is signed through: the same
// algorithm, parameterized only by the unsigned transaction's own
// SigningOwnerSets, so no variant-specific knowledge lives here.
package signer

import (
	"go.uber.org/zap"

	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/hashing"
	"github.com/xavax-project/xavax-avalanche/utils/logging"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/secp256k1fx"
	"github.com/xavax-project/xavax-avalanche/wallet/keychain"
)

// log observes the signing pipeline. It defaults to a no-op so callers
// that never opt in pay nothing; SetLogger lets an embedding application
// see which inputs were under-signed without instrumenting its own
// keypair lookup.
var log = logging.NoLog()

// SetLogger replaces the package-level logger used by BuildCredentials.
func SetLogger(l *zap.Logger) { log = l }

// UnsignedTx is implemented by every signable AVM, PVM, and EVM-Atomic
// unsigned transaction variant.
type UnsignedTx interface {
	Marshal(p *wrappers.Packer)
	SigningOwnerSets() [][]ids.ShortID
}

// Digest computes SHA256(codec_id(u16 BE) ‖ unsigned_tx.emit_bytes()), the
// preimage every credential signature is produced over.
func Digest(tx UnsignedTx) ([]byte, error) {
	p := &wrappers.Packer{MaxSize: 1 << 25}
	p.PackShort(codec.CodecID)
	tx.Marshal(p)
	if p.Errored() {
		return nil, p.Err
	}
	return hashing.ComputeHash256(p.Bytes), nil
}

// BuildCredentials implements §4.7 step 3: for each input's owner set, in
// wire order, it builds a type-9 secp256k1fx credential signing digest
// with every keypair whose address matches an owner. An owner with no
// matching keypair is silently skipped (deliberately permissive — a
// partial signer may contribute a partially-signed credential). An empty
// owner set is an error: the caller invoked the signer without populating
// the auxiliary owner list for that input.
func BuildCredentials(tx UnsignedTx, keypairs []*keychain.Keypair) ([]*secp256k1fx.Credential, error) {
	digest, err := Digest(tx)
	if err != nil {
		return nil, err
	}

	ownerSets := tx.SigningOwnerSets()
	creds := make([]*secp256k1fx.Credential, len(ownerSets))
	for i, owners := range ownerSets {
		if len(owners) == 0 {
			log.Error("input has no owner set", zap.Int("credentialIndex", i))
			return nil, codec.ErrMissingInputOwners
		}
		cred := &secp256k1fx.Credential{}
		for _, owner := range owners {
			kp := findKeypair(keypairs, owner)
			if kp == nil {
				log.Debug("skipping owner with no matching keypair",
					zap.Int("credentialIndex", i),
					zap.Stringer("address", owner),
				)
				continue
			}
			sig, err := kp.Private.SignHash(digest)
			if err != nil {
				return nil, err
			}
			cred.AddSignature(sig)
		}
		log.Debug("built credential",
			zap.Int("credentialIndex", i),
			zap.Int("numOwners", len(owners)),
			zap.Int("numSignatures", cred.NumSignatures()),
		)
		creds[i] = cred
	}
	return creds, nil
}

func findKeypair(keypairs []*keychain.Keypair, addr ids.ShortID) *keychain.Keypair {
	for _, kp := range keypairs {
		if kp.Address.Equals(addr) {
			return kp
		}
	}
	return nil
}

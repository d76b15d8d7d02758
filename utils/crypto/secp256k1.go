// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/hashing"
)

const (
	// PrivateKeyLen is the length, in bytes, of a raw secp256k1 secret.
	PrivateKeyLen = 32
	// PublicKeyLen is the length, in bytes, of a compressed secp256k1
	// public key.
	PublicKeyLen = 33
	// SignatureLen is the length, in bytes, of a recoverable signature in
	// either the [r‖s‖v] or [v‖s‖r] layout.
	SignatureLen = 65
)

var (
	// ErrInvalidSignatureLen is returned when a signature is not
	// SignatureLen bytes.
	ErrInvalidSignatureLen = errors.New("crypto: signature has wrong length")
	// ErrInvalidPrivateKeyLen is returned when a raw secret is not
	// PrivateKeyLen bytes.
	ErrInvalidPrivateKeyLen = errors.New("crypto: private key has wrong length")
	// ErrSignatureInvalid is returned when recovery fails, s is not
	// low-normalized, or the recovery byte is out of range.
	ErrSignatureInvalid = errors.New("crypto: signature invalid")

	// curveOrder is the secp256k1 group order n.
	curveOrder, _ = new(big.Int).SetString(
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16,
	)
	halfCurveOrder = new(big.Int).Rsh(curveOrder, 1)
)

// PrivateKey is a secp256k1 secret key.
type PrivateKey struct {
	sk *secp256k1.PrivateKey
}

// NewPrivateKey generates a fresh secp256k1 secret using a CSPRNG.
func NewPrivateKey() (*PrivateKey, error) {
	sk, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return &PrivateKey{sk: sk}, nil
}

// ToPrivateKey parses a 32-byte raw secret.
func ToPrivateKey(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeyLen {
		return nil, ErrInvalidPrivateKeyLen
	}
	sk := secp256k1.PrivKeyFromBytes(b)
	return &PrivateKey{sk: sk}, nil
}

// Bytes returns the raw 32-byte secret.
func (k *PrivateKey) Bytes() []byte { return k.sk.Serialize() }

// PublicKey returns the corresponding compressed public key.
func (k *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{pk: k.sk.PubKey()}
}

// Address returns RIPEMD160(SHA256(compressed pubkey)).
func (k *PrivateKey) Address() ids.ShortID { return k.PublicKey().Address() }

// SignHash signs a pre-hashed 32-byte digest, returning a 65-byte
// [r(32)‖s(32)‖v(1)] recoverable signature with low-S enforced and v in
// {0,1}.
func (k *PrivateKey) SignHash(hash []byte) ([]byte, error) {
	compact := ecdsa.SignCompact(k.sk, hash, true)
	return compactToRSV(compact)
}

// Sign hashes message with SHA-256 and signs the digest.
func (k *PrivateKey) Sign(message []byte) ([]byte, error) {
	return k.SignHash(hashing.ComputeHash256(message))
}

// SignHashEVM produces the [v(1)‖s(32)‖r(32)] layout, with v += 27, that
// EVM-style callers expect.
func (k *PrivateKey) SignHashEVM(hash []byte) ([]byte, error) {
	rsv, err := k.SignHash(hash)
	if err != nil {
		return nil, err
	}
	return rsvToVSR(rsv), nil
}

// compactToRSV converts decred's compact signature layout
// [recoveryByte(1)‖r(32)‖s(32)] (recoveryByte = 27+id[+4 if compressed])
// into the wire layout [r(32)‖s(32)‖v(1)] with v the bare recovery id.
func compactToRSV(compact []byte) ([]byte, error) {
	if len(compact) != SignatureLen {
		return nil, ErrInvalidSignatureLen
	}
	recoveryByte := compact[0]
	v := (recoveryByte - 27) &^ 4

	out := make([]byte, SignatureLen)
	copy(out[0:32], compact[1:33])
	copy(out[32:64], compact[33:65])
	out[64] = v

	s := new(big.Int).SetBytes(out[32:64])
	if s.Cmp(halfCurveOrder) > 0 {
		return nil, ErrSignatureInvalid
	}
	return out, nil
}

// rsvToVSR reorders [r‖s‖v] into [v‖s‖r] with v += 27, the layout used by
// EVM tooling that expects Ethereum's (v, s, r) signature triple.
func rsvToVSR(rsv []byte) []byte {
	out := make([]byte, SignatureLen)
	out[0] = rsv[64] + 27
	copy(out[1:33], rsv[32:64])
	copy(out[33:65], rsv[0:32])
	return out
}

// vsrToRSV is the inverse of rsvToVSR.
func vsrToRSV(vsr []byte) []byte {
	out := make([]byte, SignatureLen)
	copy(out[0:32], vsr[33:65])
	copy(out[32:64], vsr[1:33])
	out[64] = vsr[0] - 27
	return out
}

// PublicKey is a compressed secp256k1 public key.
type PublicKey struct {
	pk *secp256k1.PublicKey
}

// ToPublicKey parses a compressed 33-byte public key.
func ToPublicKey(b []byte) (*PublicKey, error) {
	pk, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, err
	}
	return &PublicKey{pk: pk}, nil
}

// Bytes returns the compressed 33-byte encoding.
func (k *PublicKey) Bytes() []byte { return k.pk.SerializeCompressed() }

// Address returns RIPEMD160(SHA256(compressed pubkey)).
func (k *PublicKey) Address() ids.ShortID {
	addrBytes := hashing.ComputeHash160(k.Bytes())
	addr, _ := ids.ToShortID(addrBytes)
	return addr
}

// RecoverHash recovers the public key that produced sig over hash, where
// sig is in the [r‖s‖v] layout.
func RecoverHash(sig, hash []byte) (*PublicKey, error) {
	if len(sig) != SignatureLen {
		return nil, ErrInvalidSignatureLen
	}
	v := sig[64]
	if v > 3 {
		return nil, ErrSignatureInvalid
	}
	s := new(big.Int).SetBytes(sig[32:64])
	if s.Cmp(halfCurveOrder) > 0 {
		return nil, ErrSignatureInvalid
	}

	compact := make([]byte, SignatureLen)
	compact[0] = 27 + 4 + v // assume compressed pubkey, matching SignHash
	copy(compact[1:33], sig[0:32])
	copy(compact[33:65], sig[32:64])

	pk, _, err := ecdsa.RecoverCompact(compact, hash)
	if err != nil {
		return nil, ErrSignatureInvalid
	}
	return &PublicKey{pk: pk}, nil
}

// Recover hashes message with SHA-256 and recovers over the digest.
func Recover(sig, message []byte) (*PublicKey, error) {
	return RecoverHash(sig, hashing.ComputeHash256(message))
}

// RecoverHashEVM recovers over a [v‖s‖r] (v += 27) layout signature.
func RecoverHashEVM(vsr, hash []byte) (*PublicKey, error) {
	if len(vsr) != SignatureLen {
		return nil, ErrInvalidSignatureLen
	}
	return RecoverHash(vsrToRSV(vsr), hash)
}

// RandReader exposes the CSPRNG used for key generation, so callers that
// need raw secure randomness (e.g. mnemonic entropy) share one source.
var RandReader = rand.Reader

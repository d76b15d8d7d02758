// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hashing collects the digest functions the codec and signer
// depend on: SHA-256 (checksums, signing preimages) and RIPEMD-160
// (address derivation). It also provides Keccak-256 and BLAKE3 helpers,
// which no other package in this module calls.
package hashing

import (
	"crypto/sha256"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for Avalanche address derivation
)

// HashLen is the length, in bytes, of a SHA-256/Keccak-256/BLAKE3 digest.
const HashLen = 32

// AddrLen is the length, in bytes, of a RIPEMD-160 digest.
const AddrLen = 20

// ComputeHash256 returns the SHA-256 digest of buf.
func ComputeHash256(buf []byte) []byte {
	arr := ComputeHash256Array(buf)
	return arr[:]
}

// ComputeHash256Array returns the SHA-256 digest of buf as a fixed array.
func ComputeHash256Array(buf []byte) [HashLen]byte {
	return sha256.Sum256(buf)
}

// ComputeRIPEMD160 returns the plain RIPEMD-160 digest of buf.
func ComputeRIPEMD160(buf []byte) []byte {
	hasher := ripemd160.New()
	_, _ = hasher.Write(buf)
	return hasher.Sum(nil)
}

// ComputeHash160 returns RIPEMD160(SHA256(buf)), the address digest.
func ComputeHash160(buf []byte) []byte {
	return ComputeRIPEMD160(ComputeHash256(buf))
}

// ComputeKeccak256 returns the Keccak-256 digest of buf.
func ComputeKeccak256(buf []byte) []byte {
	return ethcrypto.Keccak256(buf)
}

// ComputeBlake3 returns the 32-byte BLAKE3 digest of buf.
func ComputeBlake3(buf []byte) []byte {
	h := blake3.New()
	_, _ = h.Write(buf)
	return h.Sum(nil)
}

// Checksum returns the last n bytes of SHA-256(buf). n must be <= HashLen.
func Checksum(buf []byte, n int) []byte {
	hash := ComputeHash256(buf)
	return hash[len(hash)-n:]
}

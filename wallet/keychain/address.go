// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keychain

import (
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/crypto"
	"github.com/xavax-project/xavax-avalanche/utils/formatting"
	"github.com/xavax-project/xavax-avalanche/utils/hashing"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
)

// interopMessagePrefix and interopMessageHeader frame an interop-signed
// message the way node-facing signers recognize it, so a signature over
// application data can never be mistaken for a signature over a raw
// transaction preimage.
const (
	interopMessagePrefix = 0x1a
	interopMessageHeader = "Avalanche Signed Message:\n"
)

// BechAddress renders addr as a Bech32 string under hrp, prefixed with the
// chain alias (e.g. "X-fuji1...").
func BechAddress(chainAlias, hrp string, addr [20]byte) (string, error) {
	return formatting.FormatAddress(chainAlias, hrp, addr[:])
}

// FramedInteropMessage builds the byte image an interop signature is
// computed over: prefix(0x1a) ‖ "Avalanche Signed Message:\n" ‖
// len(preimage)(u32 BE) ‖ preimage.
func FramedInteropMessage(preimage []byte) []byte {
	p := &wrappers.Packer{}
	p.PackByte(interopMessagePrefix)
	p.PackFixedStrBytes(interopMessageHeader)
	p.PackInt(uint32(len(preimage)))
	p.PackFixedBytes(preimage)
	return p.Bytes
}

// InteropDigest hashes the framed interop message with SHA-256, the
// digest an interop signature is actually computed over.
func InteropDigest(preimage []byte) []byte {
	return hashing.ComputeHash256(FramedInteropMessage(preimage))
}

// SignInteropMessage signs preimage under the interop framing, for
// application-level messages that must never be mistaken for a raw
// transaction preimage signature.
func SignInteropMessage(priv *crypto.PrivateKey, preimage []byte) ([]byte, error) {
	return priv.SignHash(InteropDigest(preimage))
}

// VerifyInteropMessage recovers the address that produced sig over
// preimage under the interop framing.
func VerifyInteropMessage(sig, preimage []byte) (ids.ShortID, error) {
	pub, err := crypto.RecoverHash(sig, InteropDigest(preimage))
	if err != nil {
		return ids.ShortID{}, err
	}
	return pub.Address(), nil
}

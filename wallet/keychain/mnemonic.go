// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package keychain derives secp256k1 keypairs and Bech32 addresses from a
// BIP-39 mnemonic via a BIP-32 hierarchical path, and signs interop
// messages the way a node-facing wallet would.
package keychain

import (
	"fmt"

	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"

	"github.com/xavax-project/xavax-avalanche/utils/crypto"
)

// mnemonicEntropyBits yields a 24-word BIP-39 phrase.
const mnemonicEntropyBits = 256

// GenerateMnemonic returns a fresh 24-word English BIP-39 phrase, drawing
// its entropy from crypto.RandReader's CSPRNG.
func GenerateMnemonic() (string, error) {
	entropy := make([]byte, mnemonicEntropyBits/8)
	if _, err := crypto.RandReader.Read(entropy); err != nil {
		return "", fmt.Errorf("keychain: reading mnemonic entropy: %w", err)
	}
	return bip39.NewMnemonic(entropy)
}

// seed derives the BIP-32 master seed from a mnemonic phrase using an
// empty passphrase, per PBKDF2-HMAC-SHA512.
func seed(mnemonic string) ([]byte, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("keychain: invalid mnemonic phrase")
	}
	return bip39.NewSeedWithErrorChecking(mnemonic, "")
}

// masterKey derives the BIP-32 extended master key for a mnemonic phrase.
func masterKey(mnemonic string) (*bip32.Key, error) {
	s, err := seed(mnemonic)
	if err != nil {
		return nil, err
	}
	return bip32.NewMasterKey(s)
}

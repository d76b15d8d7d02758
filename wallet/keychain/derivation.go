// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keychain

import (
	"fmt"

	"github.com/tyler-smith/go-bip32"

	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/crypto"
)

// DefaultCoinType is Avalanche's registered SLIP-44 coin type.
const DefaultCoinType = 9000

// DerivationPath is the typed form of m/44'/coin_type'/account'/change/
// address_index, preferred over a raw path string since it cannot express
// a malformed path.
type DerivationPath struct {
	CoinType     uint32
	Account      uint32
	Change       uint32
	AddressIndex uint32
}

// String renders the BIP-32 text form of the path, e.g.
// "m/44'/9000'/0'/0/0".
func (d DerivationPath) String() string {
	return fmt.Sprintf("m/44'/%d'/%d'/%d/%d", d.CoinType, d.Account, d.Change, d.AddressIndex)
}

// Keypair is a derived secp256k1 keypair and its Avalanche address.
type Keypair struct {
	Private *crypto.PrivateKey
	Public  *crypto.PublicKey
	Address ids.ShortID
}

// DeriveKey walks the BIP-32 hierarchy m/44'/coin_type'/account'/change/
// address_index from a mnemonic phrase and returns the resulting
// secp256k1 keypair.
func DeriveKey(mnemonic string, path DerivationPath) (*Keypair, error) {
	master, err := masterKey(mnemonic)
	if err != nil {
		return nil, err
	}

	key := master
	for _, index := range []uint32{
		bip32.FirstHardenedChild + 44,
		bip32.FirstHardenedChild + path.CoinType,
		bip32.FirstHardenedChild + path.Account,
		path.Change,
		path.AddressIndex,
	} {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, fmt.Errorf("keychain: deriving child key: %w", err)
		}
	}

	priv, err := crypto.ToPrivateKey(key.Key)
	if err != nil {
		return nil, fmt.Errorf("keychain: parsing derived private key: %w", err)
	}
	pub := priv.PublicKey()
	return &Keypair{
		Private: priv,
		Public:  pub,
		Address: pub.Address(),
	}, nil
}

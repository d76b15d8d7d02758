// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const addressSep = "-"

var (
	errNoSeparator  = errors.New("formatting: no chain alias separator in address")
	errEmptyAddress = errors.New("formatting: empty address part")
)

// EncodeBech32 encodes data under the given human-readable prefix using
// plain Bech32 (BIP-173), not Bech32m.
func EncodeBech32(hrp string, data []byte) (string, error) {
	converted, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(hrp, converted)
}

// DecodeBech32 reverses EncodeBech32, returning the HRP and raw payload.
func DecodeBech32(bechStr string) (string, []byte, error) {
	hrp, data, err := bech32.Decode(bechStr)
	if err != nil {
		return "", nil, err
	}
	converted, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, converted, nil
}

// FormatAddress renders a chain-prefixed address, e.g. "X-fuji1...".
func FormatAddress(chainAlias, hrp string, addr []byte) (string, error) {
	bech, err := EncodeBech32(hrp, addr)
	if err != nil {
		return "", err
	}
	return chainAlias + addressSep + bech, nil
}

// ParseAddress splits a chain-prefixed address into its chain alias, HRP,
// and raw payload.
func ParseAddress(str string) (chainAlias string, hrp string, addr []byte, err error) {
	idx := strings.Index(str, addressSep)
	if idx < 0 {
		return "", "", nil, errNoSeparator
	}
	chainAlias = str[:idx]
	bech := str[idx+1:]
	if len(bech) == 0 {
		return "", "", nil, errEmptyAddress
	}
	hrp, addr, err = DecodeBech32(bech)
	if err != nil {
		return "", "", nil, err
	}
	return chainAlias, hrp, addr, nil
}

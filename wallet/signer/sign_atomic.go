// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package signer

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
	"github.com/xavax-project/xavax-avalanche/vms/evm"
	"github.com/xavax-project/xavax-avalanche/wallet/keychain"
)

// SignAtomic runs the §4.7 pipeline over an EVM-Atomic bridge transaction
// and returns its CB58-encoded signed envelope.
func SignAtomic(tx evm.UnsignedAtomicTx, keypairs []*keychain.Keypair) (string, error) {
	creds, err := BuildCredentials(tx, keypairs)
	if err != nil {
		return "", err
	}
	avaxCreds := make([]avax.Credential, len(creds))
	for i, c := range creds {
		avaxCreds[i] = c
	}
	signed := &evm.SignedAtomicTransaction{Unsigned: tx, Credentials: avaxCreds}
	return codec.EmitCB58(signed)
}

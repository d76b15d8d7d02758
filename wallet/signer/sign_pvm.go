// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package signer

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
	"github.com/xavax-project/xavax-avalanche/vms/platformvm/txs"
	"github.com/xavax-project/xavax-avalanche/wallet/keychain"
)

// SignPVM runs the §4.7 pipeline over a PVM unsigned transaction and
// returns its CB58-encoded signed envelope.
func SignPVM(tx txs.UnsignedTx, keypairs []*keychain.Keypair) (string, error) {
	creds, err := BuildCredentials(tx, keypairs)
	if err != nil {
		return "", err
	}
	avaxCreds := make([]avax.Credential, len(creds))
	for i, c := range creds {
		avaxCreds[i] = c
	}
	signed := &txs.SignedTx{Unsigned: tx, Credentials: avaxCreds}
	return codec.EmitCB58(signed)
}

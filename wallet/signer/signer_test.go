// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package signer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/crypto"
	"github.com/xavax-project/xavax-avalanche/utils/hashing"
	"github.com/xavax-project/xavax-avalanche/vms/avm"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
	"github.com/xavax-project/xavax-avalanche/vms/secp256k1fx"
	"github.com/xavax-project/xavax-avalanche/wallet/keychain"
)

func newKeypair(t *testing.T) *keychain.Keypair {
	t.Helper()
	priv, err := crypto.NewPrivateKey()
	require.NoError(t, err)
	pub := priv.PublicKey()
	return &keychain.Keypair{Private: priv, Public: pub, Address: pub.Address()}
}

// unsignedBaseTx builds a BaseTx spending one UTXO owned by owners.
func unsignedBaseTx(owners ...ids.ShortID) *avm.BaseTx {
	return &avm.BaseTx{
		NetworkID:    5,
		BlockchainID: ids.ID{0xab},
		Outs: []*avax.TransferableOutput{{
			Asset: ids.ID{0x3d},
			Out: &secp256k1fx.TransferOutput{
				Amount: 90,
				OutputOwners: avax.OutputOwners{
					Threshold: 1,
					Addrs:     []ids.ShortID{{0xee}},
				},
			},
		}},
		Ins: []*avax.TransferableInput{{
			UTXOID: avax.UTXOID{TxID: ids.ID{0x39}, OutputIndex: 0},
			Asset:  ids.ID{0x3d},
			In: &secp256k1fx.TransferInput{
				Amount: 100,
				Input:  secp256k1fx.Input{SigIndices: []uint32{0}},
			},
			ConsumerOwners: owners,
		}},
	}
}

func TestSignAVMRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	kp := newKeypair(t)
	tx := unsignedBaseTx(kp.Address)

	encoded, err := SignAVM(tx, []*keychain.Keypair{kp})
	require.NoError(err)

	// The emitted envelope parses back and re-emits identically.
	parsed := &avm.SignedTx{}
	require.NoError(codec.ParseCB58(encoded, parsed))
	reEncoded, err := codec.EmitCB58(parsed)
	require.NoError(err)
	assert.Equal(encoded, reEncoded)

	require.Len(parsed.Credentials, 1)
	assert.Equal(1, parsed.Credentials[0].NumSignatures())

	// The signature recovers to the signing keypair's address over the
	// canonical preimage digest.
	digest, err := Digest(tx)
	require.NoError(err)
	sig := parsed.Credentials[0].SignatureAt(0)
	pub, err := crypto.RecoverHash(sig[:], digest)
	require.NoError(err)
	assert.Equal(kp.Address, pub.Address())
}

func TestSignAVMDeterministic(t *testing.T) {
	require := require.New(t)

	kp := newKeypair(t)
	tx := unsignedBaseTx(kp.Address)

	first, err := SignAVM(tx, []*keychain.Keypair{kp})
	require.NoError(err)
	second, err := SignAVM(tx, []*keychain.Keypair{kp})
	require.NoError(err)
	require.Equal(first, second)
}

func TestSignAVMMissingOwnersErrors(t *testing.T) {
	assert := assert.New(t)

	kp := newKeypair(t)
	tx := unsignedBaseTx() // ConsumerOwners left empty

	_, err := SignAVM(tx, []*keychain.Keypair{kp})
	assert.ErrorIs(err, codec.ErrMissingInputOwners)
}

func TestSignAVMSkipsOwnersWithoutKeypair(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	kp := newKeypair(t)
	stranger := newKeypair(t)

	ownerList := []ids.ShortID{kp.Address, stranger.Address}
	ids.SortShortIDs(ownerList)
	tx := unsignedBaseTx(ownerList...)

	// Only one of the two owners has a keypair available: the credential
	// is under-signed, not an error.
	creds, err := BuildCredentials(tx, []*keychain.Keypair{kp})
	require.NoError(err)
	require.Len(creds, 1)
	assert.Equal(1, creds[0].NumSignatures())
}

func TestBuildCredentialsPositionalAlignment(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	kpA := newKeypair(t)
	kpB := newKeypair(t)

	tx := unsignedBaseTx(kpA.Address)
	tx.Ins = append(tx.Ins, &avax.TransferableInput{
		UTXOID: avax.UTXOID{TxID: ids.ID{0x40}, OutputIndex: 0},
		Asset:  ids.ID{0x3d},
		In: &secp256k1fx.TransferInput{
			Amount: 5,
			Input:  secp256k1fx.Input{SigIndices: []uint32{0}},
		},
		ConsumerOwners: []ids.ShortID{kpB.Address},
	})

	creds, err := BuildCredentials(tx, []*keychain.Keypair{kpA, kpB})
	require.NoError(err)
	require.Len(creds, 2)

	digest, err := Digest(tx)
	require.NoError(err)

	// Credential i pairs with input i: the first recovers to kpA, the
	// second to kpB.
	sig0 := creds[0].SignatureAt(0)
	pub0, err := crypto.RecoverHash(sig0[:], digest)
	require.NoError(err)
	assert.Equal(kpA.Address, pub0.Address())

	sig1 := creds[1].SignatureAt(0)
	pub1, err := crypto.RecoverHash(sig1[:], digest)
	require.NoError(err)
	assert.Equal(kpB.Address, pub1.Address())
}

func TestSignAVMRejectsUnsortedInputs(t *testing.T) {
	assert := assert.New(t)

	kp := newKeypair(t)
	tx := unsignedBaseTx(kp.Address)
	tx.Ins = append(tx.Ins, &avax.TransferableInput{
		UTXOID: avax.UTXOID{TxID: ids.ID{0x01}, OutputIndex: 0}, // sorts before 0x39
		Asset:  ids.ID{0x3d},
		In: &secp256k1fx.TransferInput{
			Amount: 5,
			Input:  secp256k1fx.Input{SigIndices: []uint32{0}},
		},
		ConsumerOwners: []ids.ShortID{kp.Address},
	})

	_, err := SignAVM(tx, []*keychain.Keypair{kp})
	assert.ErrorIs(err, codec.ErrConstraintViolation)
}

func TestDigestCoversCodecIDPrefix(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	kp := newKeypair(t)
	tx := unsignedBaseTx(kp.Address)

	b, err := codec.Marshal(tx)
	require.NoError(err)

	digest, err := Digest(tx)
	require.NoError(err)

	// The digest is over codec_id ‖ tx bytes, not the bare tx bytes.
	preimage := append([]byte{0, 0}, b...)
	assert.Equal(hashing.ComputeHash256(preimage), digest)
}

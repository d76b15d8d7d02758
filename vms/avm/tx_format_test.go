// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
	"github.com/xavax-project/xavax-avalanche/vms/nftfx"
	"github.com/xavax-project/xavax-avalanche/vms/secp256k1fx"
)

func testBaseTx() BaseTx {
	return BaseTx{
		NetworkID:    5,
		BlockchainID: ids.ID{0xab},
		Outs: []*avax.TransferableOutput{{
			Asset: ids.ID{0x3d},
			Out: &secp256k1fx.TransferOutput{
				Amount: 100_000_000,
				OutputOwners: avax.OutputOwners{
					Threshold: 1,
					Addrs:     []ids.ShortID{{0xe1}},
				},
			},
		}},
		Ins: []*avax.TransferableInput{{
			UTXOID: avax.UTXOID{TxID: ids.ID{0x39}, OutputIndex: 1},
			Asset:  ids.ID{0x3d},
			In: &secp256k1fx.TransferInput{
				Amount: 100_000_000,
				Input:  secp256k1fx.Input{SigIndices: []uint32{0}},
			},
		}},
		Memo: []byte("xavax"),
	}
}

func roundTrip(t *testing.T, tx UnsignedTx, parsed UnsignedTx) {
	t.Helper()
	require := require.New(t)

	b, err := codec.Marshal(tx)
	require.NoError(err)
	require.NoError(codec.Unmarshal(b, parsed))

	reEmitted, err := codec.Marshal(parsed)
	require.NoError(err)
	require.Equal(b, reEmitted)
}

func TestBaseTxRoundTrip(t *testing.T) {
	tx := testBaseTx()
	parsed := &BaseTx{}
	roundTrip(t, &tx, parsed)
	assert.Equal(t, &tx, parsed)
}

func TestBaseTxRejectsOversizeMemo(t *testing.T) {
	assert := assert.New(t)

	tx := testBaseTx()
	tx.Memo = make([]byte, codec.MaxMemoLen+1)

	_, err := codec.Marshal(&tx)
	assert.ErrorIs(err, codec.ErrConstraintViolation)
}

func TestBaseTxRejectsUnsortedOutputs(t *testing.T) {
	assert := assert.New(t)

	tx := testBaseTx()
	second := &avax.TransferableOutput{
		Asset: ids.ID{0x01},
		Out: &secp256k1fx.TransferOutput{
			Amount:       1,
			OutputOwners: avax.OutputOwners{Threshold: 1, Addrs: []ids.ShortID{{0x01}}},
		},
	}
	// second sorts before the existing output; appending it breaks the
	// order.
	tx.Outs = append(tx.Outs, second)

	_, err := codec.Marshal(&tx)
	assert.ErrorIs(err, codec.ErrConstraintViolation)

	avax.SortTransferableOutputs(tx.Outs)
	_, err = codec.Marshal(&tx)
	assert.NoError(err)
}

func TestCreateAssetTxRoundTrip(t *testing.T) {
	tx := &CreateAssetTx{
		BaseTx:       testBaseTx(),
		Name:         "Wrapped Tether",
		Symbol:       "USDT",
		Denomination: 9,
		InitialStates: []*InitialState{{
			FxID: 0,
			Outs: []avax.Output{
				&secp256k1fx.MintOutput{
					OutputOwners: avax.OutputOwners{Threshold: 1, Addrs: []ids.ShortID{{0x0a}}},
				},
				&secp256k1fx.TransferOutput{
					Amount:       1_000_000,
					OutputOwners: avax.OutputOwners{Threshold: 1, Addrs: []ids.ShortID{{0x0a}}},
				},
			},
		}},
	}

	parsed := &CreateAssetTx{}
	roundTrip(t, tx, parsed)
	assert.Equal(t, tx, parsed)
}

func TestCreateAssetTxRejectsBadMetadata(t *testing.T) {
	assert := assert.New(t)

	tx := &CreateAssetTx{BaseTx: testBaseTx(), Name: "ok", Symbol: "TOOLONG"}
	_, err := codec.Marshal(tx)
	assert.ErrorIs(err, codec.ErrConstraintViolation)

	tx = &CreateAssetTx{BaseTx: testBaseTx(), Name: "caf\xc3\xa9", Symbol: "OK"}
	_, err = codec.Marshal(tx)
	assert.ErrorIs(err, codec.ErrConstraintViolation)

	tx = &CreateAssetTx{BaseTx: testBaseTx(), Name: "ok", Symbol: "OK", Denomination: codec.MaxDenomination + 1}
	_, err = codec.Marshal(tx)
	assert.ErrorIs(err, codec.ErrConstraintViolation)
}

func TestOperationTxRoundTrip(t *testing.T) {
	tx := &OperationTx{
		BaseTx: testBaseTx(),
		Ops: []*TransferableOp{{
			Asset:   ids.ID{0x3d},
			UTXOIDs: []*avax.UTXOID{{TxID: ids.ID{0x11}, OutputIndex: 0}},
			Op: &secp256k1fx.MintOperation{
				Input: secp256k1fx.Input{SigIndices: []uint32{0}},
				MintOutput: secp256k1fx.MintOutput{
					OutputOwners: avax.OutputOwners{Threshold: 1, Addrs: []ids.ShortID{{0x0a}}},
				},
				TransferOutput: secp256k1fx.TransferOutput{
					Amount:       10,
					OutputOwners: avax.OutputOwners{Threshold: 1, Addrs: []ids.ShortID{{0x0b}}},
				},
			},
		}},
	}

	parsed := &OperationTx{}
	roundTrip(t, tx, parsed)
	assert.Equal(t, tx, parsed)
}

func TestImportTxRoundTrip(t *testing.T) {
	tx := &ImportTx{
		BaseTx:      testBaseTx(),
		SourceChain: ids.ID{0x04},
		ImportedInputs: []*avax.TransferableInput{{
			UTXOID: avax.UTXOID{TxID: ids.ID{0x42}, OutputIndex: 0},
			Asset:  ids.ID{0x3d},
			In: &secp256k1fx.TransferInput{
				Amount: 50,
				Input:  secp256k1fx.Input{SigIndices: []uint32{0}},
			},
		}},
	}

	parsed := &ImportTx{}
	roundTrip(t, tx, parsed)
	assert.Equal(t, tx, parsed)
}

func TestExportTxRoundTrip(t *testing.T) {
	tx := &ExportTx{
		BaseTx:           testBaseTx(),
		DestinationChain: ids.ID{0x04},
		ExportedOutputs: []*avax.TransferableOutput{{
			Asset: ids.ID{0x3d},
			Out: &nftfx.TransferOutput{
				GroupID:      1,
				Payload:      []byte("tag"),
				OutputOwners: avax.OutputOwners{Threshold: 1, Addrs: []ids.ShortID{{0x0c}}},
			},
		}},
	}

	parsed := &ExportTx{}
	roundTrip(t, tx, parsed)
	assert.Equal(t, tx, parsed)
}

func TestParseUnsignedTxUnknownTypeID(t *testing.T) {
	assert := assert.New(t)

	p := &wrappers.Packer{MaxSize: 16}
	p.PackInt(0xffff)

	q := &wrappers.Packer{Bytes: p.Bytes}
	_, err := ParseUnsignedTx(q)
	assert.ErrorIs(err, codec.ErrUnknownTypeID)
}

func TestSignedTxRejectsCredentialCountMismatch(t *testing.T) {
	assert := assert.New(t)

	base := testBaseTx()
	signed := &SignedTx{Unsigned: &base} // one input, zero credentials

	_, err := codec.Marshal(signed)
	assert.ErrorIs(err, codec.ErrConstraintViolation)
}

func TestUnmarshalRejectsTrailingBytes(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tx := testBaseTx()
	b, err := codec.Marshal(&tx)
	require.NoError(err)

	b = append(b, 0x00)
	err = codec.Unmarshal(b, &BaseTx{})
	assert.ErrorIs(err, codec.ErrConstraintViolation)
}

func TestMakeCredentialDispatch(t *testing.T) {
	assert := assert.New(t)

	cred, err := MakeCredential(codec.TypeCredential)
	assert.NoError(err)
	assert.Equal(codec.TypeCredential, cred.TypeID())

	cred, err = MakeCredential(codec.TypeNFTCredential)
	assert.NoError(err)
	assert.Equal(codec.TypeNFTCredential, cred.TypeID())

	_, err = MakeCredential(3)
	assert.ErrorIs(err, codec.ErrUnknownTypeID)
}

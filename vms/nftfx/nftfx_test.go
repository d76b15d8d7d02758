// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nftfx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
)

func TestMintOutputRoundTrip(t *testing.T) {
	assert := assert.New(t)

	out := &MintOutput{
		GroupID: 3,
		OutputOwners: avax.OutputOwners{
			Threshold: 1,
			Addrs:     []ids.ShortID{{0x01}},
		},
	}

	p := &wrappers.Packer{MaxSize: 256}
	out.Marshal(p)
	assert.False(p.Errored())

	parsed := &MintOutput{}
	q := &wrappers.Packer{Bytes: p.Bytes}
	parsed.Unmarshal(q)
	assert.False(q.Errored())
	assert.Equal(out, parsed)
}

func TestTransferOutputRoundTrip(t *testing.T) {
	assert := assert.New(t)

	out := &TransferOutput{
		GroupID: 1,
		Payload: []byte("ipfs://QmNft"),
		OutputOwners: avax.OutputOwners{
			Locktime:  12,
			Threshold: 1,
			Addrs:     []ids.ShortID{{0x01}, {0x02}},
		},
	}

	p := &wrappers.Packer{MaxSize: 2048}
	out.Marshal(p)
	assert.False(p.Errored())

	parsed := &TransferOutput{}
	q := &wrappers.Packer{Bytes: p.Bytes}
	parsed.Unmarshal(q)
	assert.False(q.Errored())
	assert.Equal(len(p.Bytes), q.Offset)
	assert.Equal(out, parsed)
}

func TestTransferOutputRejectsOversizePayload(t *testing.T) {
	assert := assert.New(t)

	out := &TransferOutput{
		GroupID: 1,
		Payload: make([]byte, codec.MaxNFTPayloadLen+1),
		OutputOwners: avax.OutputOwners{
			Threshold: 1,
			Addrs:     []ids.ShortID{{0x01}},
		},
	}

	p := &wrappers.Packer{MaxSize: 4096}
	out.Marshal(p)
	assert.ErrorIs(p.Err, codec.ErrConstraintViolation)

	// Hand-pack the same over-size record so the parse side rejects bytes
	// the emit side refuses to produce.
	q := &wrappers.Packer{MaxSize: 4096}
	q.PackInt(1)
	q.PackBytes(make([]byte, codec.MaxNFTPayloadLen+1))
	q.PackLong(0)
	q.PackInt(1)
	q.PackInt(1)
	addr := ids.ShortID{0x01}
	q.PackFixedBytes(addr[:])

	parsed := &TransferOutput{}
	r := &wrappers.Packer{Bytes: q.Bytes}
	parsed.Unmarshal(r)
	assert.ErrorIs(r.Err, codec.ErrConstraintViolation)
}

func TestCredentialTypeID(t *testing.T) {
	assert := assert.New(t)

	cred := &Credential{}
	assert.Equal(codec.TypeNFTCredential, cred.TypeID())

	made, err := MakeCredential(codec.TypeNFTCredential)
	assert.NoError(err)
	assert.IsType(&Credential{}, made)

	_, err = MakeCredential(codec.TypeCredential)
	assert.ErrorIs(err, codec.ErrUnknownTypeID)
}

func TestMakeOutputDispatch(t *testing.T) {
	assert := assert.New(t)

	out, err := MakeOutput(codec.TypeNFTMintOutput)
	assert.NoError(err)
	assert.IsType(&MintOutput{}, out)

	out, err = MakeOutput(codec.TypeNFTTransferOutput)
	assert.NoError(err)
	assert.IsType(&TransferOutput{}, out)

	_, err = MakeOutput(codec.TypeTransferOutput)
	assert.ErrorIs(err, codec.ErrUnknownTypeID)
}

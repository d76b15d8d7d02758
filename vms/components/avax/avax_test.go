// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
)

func TestOutputOwnersRoundTrip(t *testing.T) {
	assert := assert.New(t)

	owners := OutputOwners{
		Locktime:  54321,
		Threshold: 1,
		Addrs:     []ids.ShortID{{1}, {2}},
	}

	p := &wrappers.Packer{MaxSize: 256}
	owners.Marshal(p)
	assert.False(p.Errored())

	parsed := OutputOwners{}
	q := &wrappers.Packer{Bytes: p.Bytes}
	parsed.Unmarshal(q)
	assert.False(q.Errored())
	assert.Equal(len(p.Bytes), q.Offset)
	assert.Equal(owners, parsed)
}

// packOwnerTail hand-packs locktime ‖ threshold ‖ addresses[], bypassing
// OutputOwners.Marshal so parse-side rejection can be exercised on bytes
// the emit side refuses to produce.
func packOwnerTail(addrs ...ids.ShortID) []byte {
	p := &wrappers.Packer{MaxSize: 256}
	p.PackLong(0)
	p.PackInt(1)
	p.PackInt(uint32(len(addrs)))
	for _, addr := range addrs {
		p.PackFixedBytes(addr[:])
	}
	return p.Bytes
}

func TestOutputOwnersMarshalRejectsUnsortedAddrs(t *testing.T) {
	assert := assert.New(t)

	owners := OutputOwners{
		Threshold: 1,
		Addrs:     []ids.ShortID{{2}, {1}},
	}

	p := &wrappers.Packer{MaxSize: 256}
	owners.Marshal(p)
	assert.ErrorIs(p.Err, codec.ErrConstraintViolation)
}

func TestOutputOwnersUnmarshalRejectsUnsortedAddrs(t *testing.T) {
	assert := assert.New(t)

	parsed := OutputOwners{}
	q := &wrappers.Packer{Bytes: packOwnerTail(ids.ShortID{2}, ids.ShortID{1})}
	parsed.Unmarshal(q)
	assert.ErrorIs(q.Err, codec.ErrConstraintViolation)
}

func TestOutputOwnersRejectsDuplicateAddrs(t *testing.T) {
	assert := assert.New(t)

	owners := OutputOwners{
		Threshold: 1,
		Addrs:     []ids.ShortID{{1}, {1}},
	}

	p := &wrappers.Packer{MaxSize: 256}
	owners.Marshal(p)
	assert.ErrorIs(p.Err, codec.ErrConstraintViolation)

	parsed := OutputOwners{}
	q := &wrappers.Packer{Bytes: packOwnerTail(ids.ShortID{1}, ids.ShortID{1})}
	parsed.Unmarshal(q)
	assert.ErrorIs(q.Err, codec.ErrConstraintViolation)
}

func TestUTXOIDLess(t *testing.T) {
	assert := assert.New(t)

	a := UTXOID{TxID: ids.ID{1}, OutputIndex: 0}
	b := UTXOID{TxID: ids.ID{1}, OutputIndex: 1}
	c := UTXOID{TxID: ids.ID{2}, OutputIndex: 0}

	assert.True(a.Less(&b))
	assert.True(b.Less(&c))
	assert.False(c.Less(&a))
	assert.False(a.Less(&a))
}

func TestSortTransferableInputs(t *testing.T) {
	assert := assert.New(t)

	ins := []*TransferableInput{
		{UTXOID: UTXOID{TxID: ids.ID{2}}},
		{UTXOID: UTXOID{TxID: ids.ID{1}, OutputIndex: 1}},
		{UTXOID: UTXOID{TxID: ids.ID{1}, OutputIndex: 0}},
	}

	assert.False(IsSortedTransferableInputs(ins))
	SortTransferableInputs(ins)
	assert.True(IsSortedTransferableInputs(ins))
	assert.Equal(ids.ID{1}, ins[0].TxID)
	assert.Equal(uint32(0), ins[0].OutputIndex)
	assert.Equal(ids.ID{2}, ins[2].TxID)
}

func TestVerifyAddressIndices(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(VerifyAddressIndices([]uint32{0, 1, 2}, 3))
	assert.NoError(VerifyAddressIndices(nil, 0))

	err := VerifyAddressIndices([]uint32{0, 0}, 3)
	assert.ErrorIs(err, codec.ErrConstraintViolation)

	err = VerifyAddressIndices([]uint32{1, 0}, 3)
	assert.ErrorIs(err, codec.ErrConstraintViolation)

	err = VerifyAddressIndices([]uint32{3}, 3)
	assert.ErrorIs(err, codec.ErrConstraintViolation)
}

// fakeOutput is a minimal tagged output for exercising the generic
// transferable/UTXO envelopes without importing an fx package.
type fakeOutput struct {
	Amount uint64
}

func (o *fakeOutput) TypeID() uint32 { return 7 }

func (o *fakeOutput) Marshal(p *wrappers.Packer) {
	p.PackLong(o.Amount)
	p.PackLong(0)
	p.PackInt(1)
	p.PackInt(0)
}

func (o *fakeOutput) Unmarshal(p *wrappers.Packer) {
	o.Amount = p.UnpackLong()
	_ = p.UnpackLong()
	_ = p.UnpackInt()
	_ = p.UnpackInt()
}

func makeFakeOutput(typeID uint32) (Output, error) {
	if typeID != 7 {
		return nil, codec.NewUnknownTypeID("fake output", typeID)
	}
	return &fakeOutput{}, nil
}

func TestUTXORoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	utxo := &UTXO{
		UTXOID: UTXOID{TxID: ids.ID{0xaa}, OutputIndex: 2},
		Asset:  ids.ID{0xbb},
		Out:    &fakeOutput{Amount: 1000},
	}

	p := &wrappers.Packer{MaxSize: 256}
	utxo.Marshal(p)
	require.False(p.Errored())

	// codec_id(2) + tx_id(32) + index(4) + asset(32) + tag(4) + out(24).
	assert.Len(p.Bytes, 98)

	q := &wrappers.Packer{Bytes: p.Bytes}
	parsed, err := UnmarshalUTXO(q, makeFakeOutput)
	require.NoError(err)
	assert.Equal(len(p.Bytes), q.Offset)
	assert.Equal(utxo.UTXOID, parsed.UTXOID)
	assert.Equal(utxo.Asset, parsed.Asset)
	assert.Equal(utxo.Out, parsed.Out)
}

func TestUnmarshalTransferableOutputUnknownTypeID(t *testing.T) {
	assert := assert.New(t)

	p := &wrappers.Packer{MaxSize: 256}
	p.PackFixedBytes(make([]byte, ids.IDLen))
	p.PackInt(99)

	q := &wrappers.Packer{Bytes: p.Bytes}
	_, err := UnmarshalTransferableOutput(q, makeFakeOutput)
	assert.ErrorIs(err, codec.ErrUnknownTypeID)
}

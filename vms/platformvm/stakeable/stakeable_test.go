// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stakeable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
	"github.com/xavax-project/xavax-avalanche/vms/components/avax"
	"github.com/xavax-project/xavax-avalanche/vms/secp256k1fx"
)

func TestLockOutRoundTrip(t *testing.T) {
	assert := assert.New(t)

	out := &LockOut{
		Locktime: 1_700_000_000,
		TransferOut: &secp256k1fx.TransferOutput{
			Amount: 123,
			OutputOwners: avax.OutputOwners{
				Threshold: 1,
				Addrs:     []ids.ShortID{{0x01}},
			},
		},
	}

	p := &wrappers.Packer{MaxSize: 256}
	out.Marshal(p)
	assert.False(p.Errored())

	parsed := &LockOut{}
	q := &wrappers.Packer{Bytes: p.Bytes}
	parsed.Unmarshal(q)
	assert.False(q.Errored())
	assert.Equal(len(p.Bytes), q.Offset)
	assert.Equal(out, parsed)
	assert.Equal(uint64(123), parsed.Amount())
}

func TestLockInRoundTrip(t *testing.T) {
	assert := assert.New(t)

	in := &LockIn{
		Locktime: 1_700_000_000,
		TransferIn: &secp256k1fx.TransferInput{
			Amount: 456,
			Input:  secp256k1fx.Input{SigIndices: []uint32{0, 1}},
		},
	}

	p := &wrappers.Packer{MaxSize: 256}
	in.Marshal(p)
	assert.False(p.Errored())

	parsed := &LockIn{}
	q := &wrappers.Packer{Bytes: p.Bytes}
	parsed.Unmarshal(q)
	assert.False(q.Errored())
	assert.Equal(in, parsed)
}

func TestLockOutRejectsNestedLock(t *testing.T) {
	assert := assert.New(t)

	// A stakeable lock may only wrap a plain transfer output; a nested
	// lock tag inside the wrapper is an unknown type in that context.
	p := &wrappers.Packer{MaxSize: 64}
	p.PackLong(0)
	p.PackInt(codec.TypeStakeableLockOut)

	parsed := &LockOut{}
	q := &wrappers.Packer{Bytes: p.Bytes}
	parsed.Unmarshal(q)
	assert.ErrorIs(q.Err, codec.ErrUnknownTypeID)
}

func TestMakeDispatch(t *testing.T) {
	assert := assert.New(t)

	out, err := MakeOutput(codec.TypeStakeableLockOut)
	assert.NoError(err)
	assert.IsType(&LockOut{}, out)

	_, err = MakeOutput(codec.TypeStakeableLockIn)
	assert.ErrorIs(err, codec.ErrUnknownTypeID)

	in, err := MakeInput(codec.TypeStakeableLockIn)
	assert.NoError(err)
	assert.IsType(&LockIn{}, in)

	_, err = MakeInput(codec.TypeStakeableLockOut)
	assert.ErrorIs(err, codec.ErrUnknownTypeID)
}

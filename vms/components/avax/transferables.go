// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import (
	"bytes"
	"sort"

	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
)

// TransferableOutput = asset_id(32) ‖ output(tagged).
type TransferableOutput struct {
	Asset ids.ID
	Out   Output
}

func (o *TransferableOutput) Marshal(p *wrappers.Packer) {
	p.PackFixedBytes(o.Asset[:])
	p.PackInt(o.Out.TypeID())
	o.Out.Marshal(p)
}

// UnmarshalTransferableOutput parses a TransferableOutput, resolving its
// output variant via makeOutput.
func UnmarshalTransferableOutput(p *wrappers.Packer, makeOutput OutputFactory) (*TransferableOutput, error) {
	assetBytes := p.UnpackFixedBytes(ids.IDLen)
	if p.Errored() {
		return nil, p.Err
	}
	typeID := p.UnpackInt()
	if p.Errored() {
		return nil, p.Err
	}
	out, err := makeOutput(typeID)
	if err != nil {
		return nil, err
	}
	out.Unmarshal(p)
	if p.Errored() {
		return nil, p.Err
	}
	var asset ids.ID
	copy(asset[:], assetBytes)
	return &TransferableOutput{Asset: asset, Out: out}, nil
}

// Bytes returns the output's full serialized bytes, used as the sort key
// for invariant 3.
func (o *TransferableOutput) Bytes() []byte {
	p := &wrappers.Packer{}
	o.Marshal(p)
	return p.Bytes
}

// SortTransferableOutputs sorts outs ascending by full serialized bytes, in
// place (invariant 3).
func SortTransferableOutputs(outs []*TransferableOutput) {
	sort.SliceStable(outs, func(i, j int) bool {
		return bytes.Compare(outs[i].Bytes(), outs[j].Bytes()) < 0
	})
}

// IsSortedTransferableOutputs reports whether outs is already in the
// invariant-3 order.
func IsSortedTransferableOutputs(outs []*TransferableOutput) bool {
	for i := 1; i < len(outs); i++ {
		if bytes.Compare(outs[i-1].Bytes(), outs[i].Bytes()) > 0 {
			return false
		}
	}
	return true
}

// TransferableInput = tx_id(32) ‖ utxo_index(u32) ‖ asset_id(32) ‖
// input(tagged). ConsumerOwners is an auxiliary, non-wire field: the
// address list of the UTXO this input consumes, populated by the caller
// from its UTXO set so the signer can locate signing keypairs. It is never
// read or written by Marshal/Unmarshal.
type TransferableInput struct {
	UTXOID
	Asset          ids.ID
	In             Input
	ConsumerOwners []ids.ShortID
}

func (i *TransferableInput) Marshal(p *wrappers.Packer) {
	i.UTXOID.Marshal(p)
	p.PackFixedBytes(i.Asset[:])
	p.PackInt(i.In.TypeID())
	i.In.Marshal(p)
}

// InputFactory builds an empty Input for a given type ID, or an error if
// the ID is unrecognized in the input context.
type InputFactory func(typeID uint32) (Input, error)

// UnmarshalTransferableInput parses a TransferableInput, resolving its
// input variant via makeInput. ConsumerOwners is left empty; it is the
// caller's responsibility to populate it from a UTXO lookup.
func UnmarshalTransferableInput(p *wrappers.Packer, makeInput InputFactory) (*TransferableInput, error) {
	in := &TransferableInput{}
	in.UTXOID.Unmarshal(p)
	assetBytes := p.UnpackFixedBytes(ids.IDLen)
	if p.Errored() {
		return nil, p.Err
	}
	copy(in.Asset[:], assetBytes)

	typeID := p.UnpackInt()
	if p.Errored() {
		return nil, p.Err
	}
	input, err := makeInput(typeID)
	if err != nil {
		return nil, err
	}
	input.Unmarshal(p)
	if p.Errored() {
		return nil, p.Err
	}
	in.In = input
	return in, nil
}

// SortTransferableInputs sorts ins ascending by (tx_id, utxo_index), in
// place (invariant 4).
func SortTransferableInputs(ins []*TransferableInput) {
	sort.SliceStable(ins, func(i, j int) bool {
		return ins[i].UTXOID.Less(&ins[j].UTXOID)
	})
}

// IsSortedTransferableInputs reports whether ins is already in the
// invariant-4 order.
func IsSortedTransferableInputs(ins []*TransferableInput) bool {
	for i := 1; i < len(ins); i++ {
		if !ins[i-1].UTXOID.Less(&ins[i].UTXOID) {
			return false
		}
	}
	return true
}

// VerifyAddressIndices checks invariant 5: indices strictly ascending and
// each a valid index into addrs.
func VerifyAddressIndices(indices []uint32, numAddrs int) error {
	for i, idx := range indices {
		if int(idx) >= numAddrs {
			return codec.NewConstraintViolation("address index out of range")
		}
		if i > 0 && indices[i-1] >= idx {
			return codec.NewConstraintViolation("address indices not strictly ascending")
		}
	}
	return nil
}

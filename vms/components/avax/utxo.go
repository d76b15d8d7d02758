// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import (
	"github.com/xavax-project/xavax-avalanche/codec"
	"github.com/xavax-project/xavax-avalanche/ids"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
)

// UTXOID identifies an unspent transaction output by the transaction that
// created it and its output index within that transaction.
type UTXOID struct {
	TxID        ids.ID
	OutputIndex uint32
}

// Marshal writes tx_id(32) ‖ output_index(u32).
func (u *UTXOID) Marshal(p *wrappers.Packer) {
	p.PackFixedBytes(u.TxID[:])
	p.PackInt(u.OutputIndex)
}

// Unmarshal reads tx_id(32) ‖ output_index(u32).
func (u *UTXOID) Unmarshal(p *wrappers.Packer) {
	txIDBytes := p.UnpackFixedBytes(ids.IDLen)
	if p.Errored() {
		return
	}
	copy(u.TxID[:], txIDBytes)
	u.OutputIndex = p.UnpackInt()
}

// Less orders UTXOIDs by (tx_id, utxo_index) ascending, per invariant 4.
func (u *UTXOID) Less(other *UTXOID) bool {
	if u.TxID != other.TxID {
		return u.TxID.Less(other.TxID)
	}
	return u.OutputIndex < other.OutputIndex
}

// UTXO is the unit referenced by inputs. A UTXO's output carries the
// address list an input's address indices index into.
type UTXO struct {
	UTXOID
	Asset ids.ID
	Out   Output
}

// OutputFactory builds an empty Output for a given type ID, or an error if
// the ID is unrecognized in the output context.
type OutputFactory func(typeID uint32) (Output, error)

// Marshal writes codec_id(u16) ‖ tx_id(32) ‖ output_index(u32) ‖
// asset_id(32) ‖ output(tagged).
func (u *UTXO) Marshal(p *wrappers.Packer) {
	p.PackShort(codec.CodecID)
	u.UTXOID.Marshal(p)
	p.PackFixedBytes(u.Asset[:])
	p.PackInt(u.Out.TypeID())
	u.Out.Marshal(p)
}

// UnmarshalUTXO parses a UTXO record, resolving the output variant via
// makeOutput.
func UnmarshalUTXO(p *wrappers.Packer, makeOutput OutputFactory) (*UTXO, error) {
	u := &UTXO{}
	_ = p.UnpackShort() // codec_id; currently always 0
	u.UTXOID.Unmarshal(p)
	assetBytes := p.UnpackFixedBytes(ids.IDLen)
	if p.Errored() {
		return nil, p.Err
	}
	copy(u.Asset[:], assetBytes)

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
	u.Out = out
	return u, nil
}

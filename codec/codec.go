// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"github.com/xavax-project/xavax-avalanche/utils/formatting"
	"github.com/xavax-project/xavax-avalanche/utils/wrappers"
)

// CodecID is the envelope codec version every currently defined wire
// record uses.
const CodecID uint16 = 0

// Packable is the two-way serializer every wire type implements: Marshal
// writes the type's canonical bytes into p; Unmarshal reads them back out,
// advancing p.Offset by exactly the bytes belonging to this record. On
// failure the packer's error is set and p.Offset is left unspecified.
type Packable interface {
	Marshal(p *wrappers.Packer)
	Unmarshal(p *wrappers.Packer)
}

// Marshal serializes v into a freshly allocated byte slice.
func Marshal(v Packable) ([]byte, error) {
	p := &wrappers.Packer{MaxSize: 1 << 25}
	v.Marshal(p)
	if p.Errored() {
		return nil, p.Err
	}
	return p.Bytes, nil
}

// Unmarshal parses b into v, requiring the entire buffer to be consumed.
func Unmarshal(b []byte, v Packable) error {
	p := &wrappers.Packer{Bytes: b}
	v.Unmarshal(p)
	if p.Errored() {
		return p.Err
	}
	if p.Offset != len(b) {
		return NewConstraintViolation("trailing bytes after parse")
	}
	return nil
}

// EmitCB58 serializes v and CB58-encodes the result.
func EmitCB58(v Packable) (string, error) {
	b, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return formatting.EncodeCB58(b), nil
}

// ParseCB58 CB58-decodes str and parses the payload into v.
func ParseCB58(str string, v Packable) error {
	b, err := formatting.DecodeCB58(str)
	if err != nil {
		return err
	}
	return Unmarshal(b, v)
}

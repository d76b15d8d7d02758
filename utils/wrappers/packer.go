// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wrappers implements the byte-primitive (L0) layer of the codec:
// fixed-width big-endian integer extraction/emission and bounded, copying
// slice access. Every higher wire type builds its Marshal/Unmarshal pair on
// top of a Packer.
package wrappers

import "errors"

const (
	ByteLen  = 1
	ShortLen = 2
	IntLen   = 4
	LongLen  = 8

	// MaxStringLen is the largest length a PackStr/UnpackStr payload may
	// declare; the field's length prefix is a uint16, so this is its max.
	MaxStringLen = 1<<16 - 1
)

var (
	errBadLength   = errors.New("packer has insufficient length for input")
	errNegativeLen = errors.New("packer encountered a negative length")
)

// ErrBadLength reports whether err indicates the buffer ended before a
// fixed-width or length-prefixed field could be read in full.
func ErrBadLength(err error) bool {
	return errors.Is(err, errBadLength) || errors.Is(err, errNegativeLen)
}

// Packer packs and unpacks a byte slice in a big-endian, length-prefixed
// wire format. It is used both to emit (Pack*) and to parse (Unpack*) a
// single contiguous buffer; Offset is the shared read/write cursor.
type Packer struct {
	Errs

	// MaxSize bounds how large Bytes may grow during packing. Zero means
	// unbounded.
	MaxSize int
	Bytes   []byte
	Offset  int
}

func (p *Packer) checkSpace(bytes int) bool {
	if p.Errored() {
		return false
	}
	if p.Offset+bytes < 0 || p.Offset+bytes > len(p.Bytes) {
		p.Add(errBadLength)
		return false
	}
	return true
}

func (p *Packer) expand(need int) {
	if p.Errored() {
		return
	}
	want := p.Offset + need
	if want <= len(p.Bytes) {
		return
	}
	if p.MaxSize != 0 && want > p.MaxSize {
		p.Add(errBadLength)
		return
	}
	newBytes := make([]byte, want)
	copy(newBytes, p.Bytes)
	p.Bytes = newBytes
}

// PackByte appends a single byte.
func (p *Packer) PackByte(val byte) {
	p.expand(ByteLen)
	if p.Errored() {
		return
	}
	p.Bytes[p.Offset] = val
	p.Offset++
}

// UnpackByte reads a single byte.
func (p *Packer) UnpackByte() byte {
	if !p.checkSpace(ByteLen) {
		return 0
	}
	val := p.Bytes[p.Offset]
	p.Offset++
	return val
}

// PackShort appends a big-endian uint16.
func (p *Packer) PackShort(val uint16) {
	p.expand(ShortLen)
	if p.Errored() {
		return
	}
	p.Bytes[p.Offset] = byte(val >> 8)
	p.Bytes[p.Offset+1] = byte(val)
	p.Offset += ShortLen
}

// UnpackShort reads a big-endian uint16.
func (p *Packer) UnpackShort() uint16 {
	if !p.checkSpace(ShortLen) {
		return 0
	}
	val := uint16(p.Bytes[p.Offset])<<8 | uint16(p.Bytes[p.Offset+1])
	p.Offset += ShortLen
	return val
}

// PackInt appends a big-endian uint32.
func (p *Packer) PackInt(val uint32) {
	p.expand(IntLen)
	if p.Errored() {
		return
	}
	for i := 0; i < IntLen; i++ {
		p.Bytes[p.Offset+i] = byte(val >> uint(8*(IntLen-1-i)))
	}
	p.Offset += IntLen
}

// UnpackInt reads a big-endian uint32.
func (p *Packer) UnpackInt() uint32 {
	if !p.checkSpace(IntLen) {
		return 0
	}
	var val uint32
	for i := 0; i < IntLen; i++ {
		val = val<<8 | uint32(p.Bytes[p.Offset+i])
	}
	p.Offset += IntLen
	return val
}

// PackLong appends a big-endian uint64.
func (p *Packer) PackLong(val uint64) {
	p.expand(LongLen)
	if p.Errored() {
		return
	}
	for i := 0; i < LongLen; i++ {
		p.Bytes[p.Offset+i] = byte(val >> uint(8*(LongLen-1-i)))
	}
	p.Offset += LongLen
}

// UnpackLong reads a big-endian uint64.
func (p *Packer) UnpackLong() uint64 {
	if !p.checkSpace(LongLen) {
		return 0
	}
	var val uint64
	for i := 0; i < LongLen; i++ {
		val = val<<8 | uint64(p.Bytes[p.Offset+i])
	}
	p.Offset += LongLen
	return val
}

// PackFixedBytes appends bytes with no length prefix.
func (p *Packer) PackFixedBytes(bytes []byte) {
	p.expand(len(bytes))
	if p.Errored() {
		return
	}
	copy(p.Bytes[p.Offset:], bytes)
	p.Offset += len(bytes)
}

// UnpackFixedBytes reads size bytes with no length prefix. The result is a
// freshly allocated copy; it never aliases p.Bytes.
func (p *Packer) UnpackFixedBytes(size int) []byte {
	if !p.checkSpace(size) {
		return nil
	}
	bytes := make([]byte, size)
	copy(bytes, p.Bytes[p.Offset:p.Offset+size])
	p.Offset += size
	return bytes
}

// PackBytes appends a uint32 length prefix followed by bytes.
func (p *Packer) PackBytes(bytes []byte) {
	p.PackInt(uint32(len(bytes)))
	p.PackFixedBytes(bytes)
}

// UnpackBytes reads a uint32-length-prefixed byte string.
func (p *Packer) UnpackBytes() []byte {
	size := p.UnpackInt()
	return p.UnpackFixedBytes(int(size))
}

// PackStr appends a uint16 length prefix followed by bytes. This is the
// narrow exception to the codec's otherwise-uniform u32 length prefixes,
// used only for CreateChainTx's chain name.
func (p *Packer) PackStr(str string) {
	if len(str) > MaxStringLen {
		p.Add(errBadLength)
		return
	}
	p.PackShort(uint16(len(str)))
	p.PackFixedBytes([]byte(str))
}

// UnpackStr reads a uint16-length-prefixed string.
func (p *Packer) UnpackStr() string {
	size := p.UnpackShort()
	return string(p.UnpackFixedBytes(int(size)))
}

// PackFixedStrBytes writes a string with no length prefix.
func (p *Packer) PackFixedStrBytes(str string) {
	p.PackFixedBytes([]byte(str))
}

// PackStr32 appends a uint32 length prefix followed by string bytes. This
// is the default string encoding used everywhere except CreateChainTx's
// chain name.
func (p *Packer) PackStr32(str string) { p.PackBytes([]byte(str)) }

// UnpackStr32 reads a uint32-length-prefixed string.
func (p *Packer) UnpackStr32() string { return string(p.UnpackBytes()) }

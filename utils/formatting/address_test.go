// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestParseAddressKnownValue(t *testing.T) {
	assert := assert.New(t)

	chainAlias, hrp, addr, err := ParseAddress("X-fuji1zcm8wjm8swx7c9hpd2mvlt9jrwyv82rpmrucwc")
	assert.NoError(err)
	assert.Equal("X", chainAlias)
	assert.Equal("fuji", hrp)
	assert.Len(addr, 20)

	// Re-encoding the payload under the same HRP reproduces the original
	// Bech32 part.
	bech, err := EncodeBech32("fuji", addr)
	assert.NoError(err)
	assert.Equal("fuji1zcm8wjm8swx7c9hpd2mvlt9jrwyv82rpmrucwc", bech)

	full, err := FormatAddress("X", "fuji", addr)
	assert.NoError(err)
	assert.Equal("X-fuji1zcm8wjm8swx7c9hpd2mvlt9jrwyv82rpmrucwc", full)
}

func TestParseAddressNoSeparator(t *testing.T) {
	assert := assert.New(t)

	_, _, _, err := ParseAddress("fuji1zcm8wjm8swx7c9hpd2mvlt9jrwyv82rpmrucwc")
	assert.Error(err)
}

func TestParseAddressEmptyBechPart(t *testing.T) {
	assert := assert.New(t)

	_, _, _, err := ParseAddress("X-")
	assert.Error(err)
}

func TestDecodeBech32CorruptedChar(t *testing.T) {
	assert := assert.New(t)

	str, err := EncodeBech32("fuji", make([]byte, 20))
	assert.NoError(err)

	// Corrupt one data character; the BCH checksum must catch it.
	b := []byte(str)
	idx := len(b) - 2
	if b[idx] == 'q' {
		b[idx] = 'p'
	} else {
		b[idx] = 'q'
	}
	_, _, err = DecodeBech32(string(b))
	assert.Error(err)
}

func TestBech32Symmetry(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("decode(encode(hrp, addr)) == (hrp, addr)", prop.ForAll(
		func(addr []byte) bool {
			str, err := EncodeBech32("avax", addr)
			if err != nil {
				return false
			}
			hrp, decoded, err := DecodeBech32(str)
			if err != nil || hrp != "avax" {
				return false
			}
			if len(decoded) != len(addr) {
				return false
			}
			for i := range addr {
				if decoded[i] != addr[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(20, gen.UInt8()),
	))

	properties.TestingRun(t)
}

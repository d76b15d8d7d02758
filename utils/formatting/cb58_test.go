// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"crypto/sha256"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

func TestEncodeCB58KnownValue(t *testing.T) {
	assert := assert.New(t)

	// The empty payload still carries its four checksum bytes.
	str := EncodeCB58(nil)
	assert.NotEmpty(str)
	assert.Equal("45PJLL", str)

	decoded, err := DecodeCB58(str)
	assert.NoError(err)
	assert.Empty(decoded)
}

func TestDecodeCB58BadChecksum(t *testing.T) {
	assert := assert.New(t)

	str := EncodeCB58([]byte{1, 2, 3, 4, 5})

	// Swap the final character for a different alphabet member, corrupting
	// the checksum.
	last := str[len(str)-1]
	replacement := byte('2')
	if last == replacement {
		replacement = '3'
	}
	corrupted := str[:len(str)-1] + string(replacement)

	_, err := DecodeCB58(corrupted)
	assert.Error(err)
}

func TestDecodeCB58TooShort(t *testing.T) {
	assert := assert.New(t)

	// "1" decodes to a single zero byte, too short to hold a checksum.
	_, err := DecodeCB58("1")
	assert.Error(err)
}

func TestCB58Involution(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("decode(encode(b)) == b", prop.ForAll(
		func(payload []byte) bool {
			decoded, err := DecodeCB58(EncodeCB58(payload))
			if err != nil {
				return false
			}
			if len(decoded) != len(payload) {
				return false
			}
			for i := range payload {
				if decoded[i] != payload[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("encode emits only base-58 characters", prop.ForAll(
		func(payload []byte) bool {
			for _, r := range EncodeCB58(payload) {
				if !strings.ContainsRune(base58Alphabet, r) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}

func TestCB58CorruptedChecksumBytes(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("flipping a checksum byte is rejected", prop.ForAll(
		func(payload []byte, flip uint8) bool {
			checksum := sha256.Sum256(payload)
			buf := append([]byte{}, payload...)
			buf = append(buf, checksum[len(checksum)-ChecksumLen:]...)
			buf[len(buf)-1-int(flip%ChecksumLen)] ^= 0xff

			_, err := DecodeCB58(base58.Encode(buf))
			return err == ErrBadChecksum
		},
		gen.SliceOf(gen.UInt8()),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}

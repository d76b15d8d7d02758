// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package formatting implements the L1 encodings the codec and signer
// depend on: CB58 (base-58 with a trailing SHA-256 checksum) and Bech32
// chain-address serialization.
package formatting

import (
	"crypto/sha256"
	"errors"

	"github.com/mr-tron/base58"
)

// ChecksumLen is the number of trailing checksum bytes CB58 appends.
const ChecksumLen = 4

var (
	// ErrBadChecksum is returned when a CB58 string's trailing checksum
	// bytes don't match a fresh SHA-256 of the prefix.
	ErrBadChecksum = errors.New("formatting: cb58 checksum mismatch")
	errTooShort    = errors.New("formatting: cb58 input too short to contain a checksum")
)

// EncodeCB58 encodes payload as base-58 (Bitcoin alphabet) of
// payload || SHA256(payload)[last 4 bytes]. Encoding is total: it never
// fails.
func EncodeCB58(payload []byte) string {
	checksum := sha256.Sum256(payload)
	buf := make([]byte, len(payload)+ChecksumLen)
	copy(buf, payload)
	copy(buf[len(payload):], checksum[len(checksum)-ChecksumLen:])
	return base58.Encode(buf)
}

// DecodeCB58 reverses EncodeCB58, verifying the checksum.
func DecodeCB58(str string) ([]byte, error) {
	raw, err := base58.Decode(str)
	if err != nil {
		return nil, err
	}
	if len(raw) < ChecksumLen {
		return nil, errTooShort
	}
	splitIdx := len(raw) - ChecksumLen
	payload, checksum := raw[:splitIdx], raw[splitIdx:]

	expected := sha256.Sum256(payload)
	expectedChecksum := expected[len(expected)-ChecksumLen:]
	for i := range checksum {
		if checksum[i] != expectedChecksum[i] {
			return nil, ErrBadChecksum
		}
	}
	return payload, nil
}

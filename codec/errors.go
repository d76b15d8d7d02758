// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package codec defines the wire-format contract every tagged record in
// this module implements, the closed type-ID table that drives variant
// dispatch, and the error taxonomy parsing can fail with.
package codec

import (
	"errors"
	"fmt"
)

// TruncatedInput names the error kind for a buffer that ends before a
// fixed-width field could be read in full. The parsers in this module do
// not return it: they report a short buffer through the Packer's own error,
// which wrappers.ErrBadLength recognizes.
var TruncatedInput = errors.New("codec: truncated input")

// LengthOverflowErr wraps ErrLengthOverflow with the declared length that
// would have read past the end of the buffer. The parsers in this module do
// not construct it: an over-long length prefix is reported through the
// Packer's own error, the same one a short buffer produces.
type LengthOverflowErr struct {
	Declared int
}

func (e *LengthOverflowErr) Error() string {
	return fmt.Sprintf("codec: declared length %d overflows remaining input", e.Declared)
}
func (e *LengthOverflowErr) Unwrap() error { return ErrLengthOverflow }

// ErrLengthOverflow is the sentinel LengthOverflowErr wraps, so callers can
// match with errors.Is without caring about the declared length.
var ErrLengthOverflow = errors.New("codec: length overflow")

// UnknownTypeIDErr reports a tag outside the expected set for its parse
// context.
type UnknownTypeIDErr struct {
	Context string
	TypeID  uint32
}

func (e *UnknownTypeIDErr) Error() string {
	return fmt.Sprintf("codec: unknown type id %d in context %q", e.TypeID, e.Context)
}
func (e *UnknownTypeIDErr) Unwrap() error { return ErrUnknownTypeID }

// ErrUnknownTypeID is the sentinel UnknownTypeIDErr wraps.
var ErrUnknownTypeID = errors.New("codec: unknown type id")

// ConstraintViolationErr reports a §3 invariant breach: an unsorted or
// duplicated list, an over-size payload, a malformed address-index
// sequence, and so on.
type ConstraintViolationErr struct {
	Reason string
}

func (e *ConstraintViolationErr) Error() string {
	return fmt.Sprintf("codec: constraint violation: %s", e.Reason)
}
func (e *ConstraintViolationErr) Unwrap() error { return ErrConstraintViolation }

// ErrConstraintViolation is the sentinel ConstraintViolationErr wraps.
var ErrConstraintViolation = errors.New("codec: constraint violation")

// NewConstraintViolation builds a ConstraintViolationErr with reason.
func NewConstraintViolation(reason string) error {
	return &ConstraintViolationErr{Reason: reason}
}

// NewUnknownTypeID builds an UnknownTypeIDErr for context/typeID.
func NewUnknownTypeID(context string, typeID uint32) error {
	return &UnknownTypeIDErr{Context: context, TypeID: typeID}
}

// ErrMissingInputOwners is returned by the signer when invoked without the
// auxiliary owner list for some consumed input.
var ErrMissingInputOwners = errors.New("codec: missing input owners for signing")

// ErrSignatureInvalid names the same failure as utils/crypto.ErrSignatureInvalid
// (bad low-S, out-of-range v, or failed EC recovery). Signature checks in this
// module return the utils/crypto error; nothing returns this one.
var ErrSignatureInvalid = errors.New("codec: signature invalid")

// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package crypto wraps secp256k1 ECDSA signing and recovery in the two
// byte layouts the wallet needs: the native [r‖s‖v] layout used by every
// Avalanche credential, and the [v‖s‖r] (v += 27) layout EVM-style callers
// expect. See secp256k1.go for the concrete PrivateKey and PublicKey
// types.
package crypto

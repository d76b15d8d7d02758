// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// Type IDs. The same numeric ID can denote different variants in
// different parse contexts; dispatch is always by (context, id), never by
// a single global table.
const (
	TypeBaseTx         uint32 = 0
	TypeCreateAssetTx  uint32 = 1
	TypeOperationTx    uint32 = 2
	TypeAVMImportTx    uint32 = 3
	TypeAVMExportTx    uint32 = 4
	TypeTransferInput  uint32 = 5
	TypeMintOutput     uint32 = 6
	TypeTransferOutput uint32 = 7
	TypeMintOperation  uint32 = 8
	TypeCredential     uint32 = 9

	TypeNFTMintOutput     uint32 = 10
	TypeSubnetAuth        uint32 = 10
	TypeNFTTransferOutput uint32 = 11
	TypeOutputOwners      uint32 = 11

	TypeAddValidatorTx       uint32 = 12
	TypeAddSubnetValidatorTx uint32 = 13
	TypeAddDelegatorTx       uint32 = 14
	TypeNFTCredential        uint32 = 14
	TypeCreateChainTx        uint32 = 15
	TypeCreateSubnetTx       uint32 = 16
	TypePVMImportTx          uint32 = 17
	TypePVMExportTx          uint32 = 18

	TypeStakeableLockIn  uint32 = 21
	TypeStakeableLockOut uint32 = 22

	// TypeAtomicImportTx and TypeAtomicExportTx are the EVM-Atomic
	// bridge's own, independent numbering (§4.5): 0 for the C→X/P import,
	// 1 for the X/P→C export.
	TypeAtomicImportTx uint32 = 0
	TypeAtomicExportTx uint32 = 1
)

// Size limits enforced by invariant 7.
const (
	MaxMemoLen        = 256
	MaxNFTPayloadLen  = 1024
	MaxAssetNameLen   = 128
	MaxAssetSymbolLen = 4
	MaxDenomination   = 32
)

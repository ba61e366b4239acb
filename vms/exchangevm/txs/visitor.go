// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

// Visitor is the tagged-variant dispatch target for the five
// asset-chain transaction kinds (spec §9: "no virtual dispatch is
// needed at the codec layer" beyond this single visit call per kind).
type Visitor interface {
	BaseTx(*BaseTx) error
	CreateAssetTx(*CreateAssetTx) error
	OperationTx(*OperationTx) error
	ImportTx(*ImportTx) error
	ExportTx(*ExportTx) error
}

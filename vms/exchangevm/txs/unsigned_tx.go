// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package txs implements the five asset-chain transaction kinds spec
// §4.3 enumerates (base transfer, create-asset, operation, import,
// export), their shared header, and the registry/visitor plumbing
// that dispatches on the wire type tag.
package txs

import (
	"github.com/luxfi/txsdk/components/lux"
	"github.com/luxfi/txsdk/primitives"
)

// Asset-chain transaction type tags (spec §6).
const (
	BaseTxTypeID         uint32 = 0x00000000
	CreateAssetTxTypeID  uint32 = 0x00000001
	OperationTxTypeID    uint32 = 0x00000002
	ImportTxTypeID       uint32 = 0x00000003
	ExportTxTypeID       uint32 = 0x00000004
)

// Signable is a signing-pipeline element: an input or operation that
// requires signatures. BaseTxHeader's sorted inputs and an
// OperationTx's authored-order operations both satisfy this.
type Signable interface {
	SigIndices() []lux.SigIdx
	NewCredential(sigs [][65]byte) lux.Credential
}

// UnsignedTx is the contract every asset-chain transaction body
// satisfies: a wire tag, a payload encoder, and the ordered list of
// signable elements the signing pipeline (spec §4.4) walks.
type UnsignedTx interface {
	lux.Element
	// Visit dispatches to the matching Visitor method, the
	// tagged-variant analogue of the source's class-hierarchy dispatch
	// (spec §9).
	Visit(v Visitor) error
	// SignableElements returns, in the canonical iteration order spec
	// §4.4 defines per kind, every input/operation a Credential must
	// be produced for.
	SignableElements() []Signable
	// Header returns the common header every kind shares.
	Header() *lux.BaseTxHeader
}

// Registry is the closed asset-chain transaction registry (one of
// spec §4.5's five/six registries).
var Registry = lux.NewRegistry[UnsignedTx]("tx")

// UnmarshalUnsignedTx reads the u32 type tag then dispatches through
// Registry, failing with UnknownTypeIDError (domain "tx") on an
// unrecognized tag (spec fixture S7).
func UnmarshalUnsignedTx(r *primitives.Reader) (UnsignedTx, error) {
	return Registry.DecodeTagged(r)
}

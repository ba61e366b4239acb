// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package txs implements the platform chain's single staking
// transaction kind (spec §4.3's "Platform-chain kind") and its
// single-signature signed envelope, distinct from the asset chain's
// credentials-array form.
package txs

import (
	"github.com/luxfi/txsdk/components/lux"
	"github.com/luxfi/txsdk/primitives"
)

// AddDefaultSubnetDelegatorTxTypeID is the platform chain's one
// transaction tag (spec §6).
const AddDefaultSubnetDelegatorTxTypeID uint32 = 0x00000000

// UnsignedTx is the contract the platform chain's transaction body
// satisfies. Kept as an interface (rather than using
// *AddDefaultSubnetDelegatorTx directly) so the closed registry
// pattern matches the asset chain's, even though today it holds
// exactly one tag (spec §4.5: "Adding a kind is a source-level
// change").
type UnsignedTx interface {
	lux.Element
}

// Registry is the closed platform-chain transaction registry.
var Registry = lux.NewRegistry[UnsignedTx]("tx-platform")

func init() {
	Registry.Register(AddDefaultSubnetDelegatorTxTypeID, func(r *primitives.Reader) (UnsignedTx, error) {
		return UnmarshalAddDefaultSubnetDelegatorTx(r)
	})
}

// UnmarshalUnsignedTx reads the u32 type tag then dispatches through
// Registry.
func UnmarshalUnsignedTx(r *primitives.Reader) (UnsignedTx, error) {
	return Registry.DecodeTagged(r)
}

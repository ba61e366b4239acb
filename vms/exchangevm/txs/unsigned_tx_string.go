// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/luxfi/txsdk/address"
	"github.com/luxfi/txsdk/components/lux"
	"github.com/luxfi/txsdk/primitives"
)

// UnsignedTxString returns the base-58-with-checksum string form of
// an UnsignedTx. Spec §6 names this round-trip only for SignedTx;
// this is a supplemented feature (see SPEC_FULL.md) useful for
// offline/air-gapped signing where the unsigned tx needs to be
// displayed or transmitted before any signature exists.
func UnsignedTxString(u UnsignedTx) string {
	return address.EncodeChecksum(lux.CanonicalBytes(u))
}

// UnsignedTxFromString decodes the base-58-with-checksum string form
// of an UnsignedTx, verifying the checksum before parsing.
func UnsignedTxFromString(s string) (UnsignedTx, error) {
	payload, err := address.DecodeChecksum(s)
	if err != nil {
		return nil, err
	}
	r := primitives.NewReader(payload)
	u, err := UnmarshalUnsignedTx(r)
	if err != nil {
		return nil, err
	}
	if err := r.Done(); err != nil {
		return nil, err
	}
	return u, nil
}

// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lux

import (
	"github.com/luxfi/ids"

	"github.com/luxfi/txsdk/primitives"
)

// SigIdx is a pointer into an Output's address list: AddressIndex is
// serialized, Source is a local-only hint the keychain uses to find
// the matching key and is never written to the wire (spec §3, §9).
type SigIdx struct {
	AddressIndex uint32
	Source       ids.ShortID
}

// Marshal writes only AddressIndex; Source is never serialized.
func (s SigIdx) Marshal(w *primitives.Writer) {
	w.WriteU32(s.AddressIndex)
}

// UnmarshalSigIdx reads an AddressIndex with a zero Source; the caller
// fills Source in separately from the referenced Output's address
// list once it is known.
func UnmarshalSigIdx(r *primitives.Reader) (SigIdx, error) {
	idx, err := r.ReadU32()
	if err != nil {
		return SigIdx{}, err
	}
	return SigIdx{AddressIndex: idx}, nil
}

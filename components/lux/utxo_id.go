// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lux

import (
	"bytes"

	"github.com/luxfi/ids"

	"github.com/luxfi/txsdk/hashing"
	"github.com/luxfi/txsdk/primitives"
)

// UTXOID names a consumable UTXO: the id of the transaction that
// created it and the index of the output within that transaction.
type UTXOID struct {
	TxID        ids.ID
	OutputIndex uint32
}

// Marshal writes TxID then OutputIndex, the order spec §3 lists them.
func (u UTXOID) Marshal(w *primitives.Writer) {
	w.WriteID(u.TxID)
	w.WriteU32(u.OutputIndex)
}

// UnmarshalUTXOID reads a UTXOID.
func UnmarshalUTXOID(r *primitives.Reader) (UTXOID, error) {
	txID, err := r.ReadID()
	if err != nil {
		return UTXOID{}, err
	}
	idx, err := r.ReadU32()
	if err != nil {
		return UTXOID{}, err
	}
	return UTXOID{TxID: txID, OutputIndex: idx}, nil
}

// InputID returns the hash of this UTXOID's encoded form, the stable
// key `BaseTxHeader.InputIDs` and duplicate-UTXO detection use to name
// a consumed UTXO independent of which input payload spends it.
func (u UTXOID) InputID() ids.ID {
	w := primitives.NewWriter(primitives.IDLen + 4)
	u.Marshal(w)
	digest := hashing.Hash256(w.Bytes())
	var id ids.ID
	copy(id[:], digest[:])
	return id
}

// Equals reports whether u and other name the same UTXO.
func (u UTXOID) Equals(other UTXOID) bool {
	return u.TxID == other.TxID && u.OutputIndex == other.OutputIndex
}

// Compare orders two UTXOIDs by TxID then OutputIndex, used where a
// UtxoId list itself needs a deterministic order (the authored order
// inside a TransferableOperation is preserved as-is per spec §3 and
// does not use this; this exists for callers building import-side
// bookkeeping that wants a stable key).
func (u UTXOID) Compare(other UTXOID) int {
	if c := bytes.Compare(u.TxID[:], other.TxID[:]); c != 0 {
		return c
	}
	switch {
	case u.OutputIndex < other.OutputIndex:
		return -1
	case u.OutputIndex > other.OutputIndex:
		return 1
	default:
		return 0
	}
}

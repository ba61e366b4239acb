// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lux

import (
	"github.com/luxfi/ids"

	"github.com/luxfi/txsdk/primitives"
)

// TransferableOutput pairs an AssetId with the Output it funds. Spec
// §3: "Ordered by canonical byte form" — its Bytes() is what the
// BaseTx header's output-sort comparator uses.
type TransferableOutput struct {
	AssetID ids.ID
	Out     Output
}

// Marshal writes AssetID followed by Out's canonical form (type tag
// then payload).
func (o *TransferableOutput) Marshal(w *primitives.Writer) {
	w.WriteID(o.AssetID)
	w.WriteU32(o.Out.TypeID())
	o.Out.Marshal(w)
}

// Bytes returns the full encoded form, used as the sort key.
func (o *TransferableOutput) Bytes() []byte {
	w := primitives.NewWriter(64)
	o.Marshal(w)
	return w.Bytes()
}

// Verify checks the underlying Output.
func (o *TransferableOutput) Verify() error {
	if o == nil || o.Out == nil {
		return &primitives.InvariantViolationError{Detail: "nil transferable output"}
	}
	return o.Out.Verify()
}

// UnmarshalTransferableOutput reads an AssetId followed by a
// registry-dispatched Output.
func UnmarshalTransferableOutput(r *primitives.Reader) (*TransferableOutput, error) {
	assetID, err := r.ReadID()
	if err != nil {
		return nil, err
	}
	out, err := OutputRegistry.DecodeTagged(r)
	if err != nil {
		return nil, err
	}
	return &TransferableOutput{AssetID: assetID, Out: out}, nil
}

// TransferableInput pairs the UTXO it spends and the AssetId it must
// carry with the Input payload proving the right to spend it.
type TransferableInput struct {
	UTXOID  UTXOID
	AssetID ids.ID
	In      Input
}

// Marshal writes UTXOID, AssetID, then In's canonical form, the
// (UtxoId, AssetId, Input) order spec §3 lists.
func (i *TransferableInput) Marshal(w *primitives.Writer) {
	i.UTXOID.Marshal(w)
	w.WriteID(i.AssetID)
	w.WriteU32(i.In.TypeID())
	i.In.Marshal(w)
}

// Bytes returns the full encoded form, used as the sort key.
func (i *TransferableInput) Bytes() []byte {
	w := primitives.NewWriter(96)
	i.Marshal(w)
	return w.Bytes()
}

// Verify checks the underlying Input.
func (i *TransferableInput) Verify() error {
	if i == nil || i.In == nil {
		return &primitives.InvariantViolationError{Detail: "nil transferable input"}
	}
	return i.In.Verify()
}

// SigIndices forwards to the underlying Input.
func (i *TransferableInput) SigIndices() []SigIdx {
	return i.In.SigIndices()
}

// NewCredential forwards to the underlying Input.
func (i *TransferableInput) NewCredential(sigs [][65]byte) Credential {
	return i.In.NewCredential(sigs)
}

// UnmarshalTransferableInput reads a UTXOID, AssetId, then a
// registry-dispatched Input.
func UnmarshalTransferableInput(r *primitives.Reader) (*TransferableInput, error) {
	utxoID, err := UnmarshalUTXOID(r)
	if err != nil {
		return nil, err
	}
	assetID, err := r.ReadID()
	if err != nil {
		return nil, err
	}
	in, err := InputRegistry.DecodeTagged(r)
	if err != nil {
		return nil, err
	}
	return &TransferableInput{UTXOID: utxoID, AssetID: assetID, In: in}, nil
}

// TransferableOperation pairs an AssetId and the ordered list of
// UTXOs it consumes with the Operation describing the state change.
// Spec §3: "UtxoId list order is preserved as authored" — unlike
// outputs/inputs, this list is never sorted.
type TransferableOperation struct {
	AssetID ids.ID
	UTXOIDs []UTXOID
	Op      Operation
}

// Marshal writes AssetID, the UTXOID count and list in authored
// order, then Op's canonical form.
func (o *TransferableOperation) Marshal(w *primitives.Writer) {
	w.WriteID(o.AssetID)
	w.WriteU32(uint32(len(o.UTXOIDs)))
	for _, u := range o.UTXOIDs {
		u.Marshal(w)
	}
	w.WriteU32(o.Op.TypeID())
	o.Op.Marshal(w)
}

// Verify checks the underlying Operation.
func (o *TransferableOperation) Verify() error {
	if o == nil || o.Op == nil {
		return &primitives.InvariantViolationError{Detail: "nil transferable operation"}
	}
	return o.Op.Verify()
}

// SigIndices forwards to the underlying Operation.
func (o *TransferableOperation) SigIndices() []SigIdx {
	return o.Op.SigIndices()
}

// NewCredential forwards to the underlying Operation.
func (o *TransferableOperation) NewCredential(sigs [][65]byte) Credential {
	return o.Op.NewCredential(sigs)
}

// UnmarshalTransferableOperation reads an AssetId, a UtxoId list, then
// a registry-dispatched Operation.
func UnmarshalTransferableOperation(r *primitives.Reader) (*TransferableOperation, error) {
	assetID, err := r.ReadID()
	if err != nil {
		return nil, err
	}
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	utxoIDs := make([]UTXOID, n)
	for idx := range utxoIDs {
		u, err := UnmarshalUTXOID(r)
		if err != nil {
			return nil, err
		}
		utxoIDs[idx] = u
	}
	op, err := OperationRegistry.DecodeTagged(r)
	if err != nil {
		return nil, err
	}
	return &TransferableOperation{AssetID: assetID, UTXOIDs: utxoIDs, Op: op}, nil
}

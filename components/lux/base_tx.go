// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lux

import (
	"github.com/luxfi/ids"
	"github.com/luxfi/math/set"

	"github.com/luxfi/txsdk/components/verify"
	"github.com/luxfi/txsdk/primitives"
)

// BaseTxHeader is the common header shared by every asset-chain
// transaction kind (spec §4.3): network id, target chain, and the
// outputs/inputs sections, sorted into canonical order on encode.
//
// Outs and Ins hold whatever order the caller supplied at
// construction time; SortedOuts/SortedIns compute the canonical order
// on demand so that Marshal and the signing pipeline agree on it
// without either one mutating the caller's slices.
type BaseTxHeader struct {
	NetworkID    uint32
	BlockchainID ids.ID
	Outs         []*TransferableOutput
	Ins          []*TransferableInput
}

// SortedOuts returns a copy of Outs in canonical byte order.
func (h *BaseTxHeader) SortedOuts() []*TransferableOutput {
	out := make([]*TransferableOutput, len(h.Outs))
	copy(out, h.Outs)
	SortTransferableOutputs(out)
	return out
}

// SortedIns returns a copy of Ins in canonical byte order.
func (h *BaseTxHeader) SortedIns() []*TransferableInput {
	in := make([]*TransferableInput, len(h.Ins))
	copy(in, h.Ins)
	SortTransferableInputs(in)
	return in
}

// Marshal writes the header in the wire layout of spec §4.3:
//
//	u32 network_id
//	[32] blockchain_id
//	u32 num_outputs | TransferableOutput × num_outputs (canonical order)
//	u32 num_inputs  | TransferableInput  × num_inputs  (canonical order)
func (h *BaseTxHeader) Marshal(w *primitives.Writer) {
	w.WriteU32(h.NetworkID)
	w.WriteID(h.BlockchainID)

	outs := h.SortedOuts()
	w.WriteU32(uint32(len(outs)))
	for _, o := range outs {
		o.Marshal(w)
	}

	ins := h.SortedIns()
	w.WriteU32(uint32(len(ins)))
	for _, i := range ins {
		i.Marshal(w)
	}
}

// UnmarshalBaseTxHeader reads a header, preserving the stream's
// output/input order exactly (spec §4.3: "decode preserves the order
// found in the stream"; re-sorting on decode would corrupt the
// signing digest of a foreign-produced transaction).
func UnmarshalBaseTxHeader(r *primitives.Reader) (*BaseTxHeader, error) {
	networkID, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	blockchainID, err := r.ReadID()
	if err != nil {
		return nil, err
	}

	numOuts, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	outs := make([]*TransferableOutput, numOuts)
	for i := range outs {
		o, err := UnmarshalTransferableOutput(r)
		if err != nil {
			return nil, err
		}
		outs[i] = o
	}

	numIns, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	ins := make([]*TransferableInput, numIns)
	for i := range ins {
		in, err := UnmarshalTransferableInput(r)
		if err != nil {
			return nil, err
		}
		ins[i] = in
	}

	return &BaseTxHeader{
		NetworkID:    networkID,
		BlockchainID: blockchainID,
		Outs:         outs,
		Ins:          ins,
	}, nil
}

// InputIDs returns the set of UTXOs this header's inputs consume,
// keyed by UTXOID.InputID(). A set smaller than len(Ins) means the
// same UTXO was listed twice.
func (h *BaseTxHeader) InputIDs() set.Set[ids.ID] {
	inputIDs := make(set.Set[ids.ID], len(h.Ins))
	for _, in := range h.Ins {
		inputIDs.Add(in.UTXOID.InputID())
	}
	return inputIDs
}

// Verify checks every output and input, in the order held (not the
// canonical order, since this runs before an encode may have
// occurred), then rejects a header that spends the same UTXO twice.
func (h *BaseTxHeader) Verify() error {
	for _, o := range h.Outs {
		if err := o.Verify(); err != nil {
			return err
		}
	}
	for _, i := range h.Ins {
		if err := i.Verify(); err != nil {
			return err
		}
	}
	if h.InputIDs().Len() != len(h.Ins) {
		return &primitives.InvariantViolationError{Detail: "duplicate UTXO consumed by the same transaction"}
	}
	return nil
}

var _ verify.Verifiable = (*BaseTxHeader)(nil)

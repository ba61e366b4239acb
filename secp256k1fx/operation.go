// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"github.com/luxfi/txsdk/components/lux"
	"github.com/luxfi/txsdk/primitives"
)

// MintOperation consumes a MintOutput and produces both a replacement
// MintOutput (so minting rights persist) and a newly minted
// TransferOutput.
type MintOperation struct {
	Input          Input
	MintOutput     MintOutput
	TransferOutput TransferOutput
}

func (*MintOperation) TypeID() uint32 { return MintOperationTypeID }

func (op *MintOperation) Marshal(w *primitives.Writer) {
	op.Input.Marshal(w)
	op.MintOutput.Marshal(w)
	op.TransferOutput.Marshal(w)
}

func (op *MintOperation) Verify() error {
	if err := op.Input.Verify(); err != nil {
		return err
	}
	if err := op.MintOutput.Verify(); err != nil {
		return err
	}
	return op.TransferOutput.Verify()
}

func (op *MintOperation) SigIndices() []lux.SigIdx {
	return op.Input.SigIndicesOf()
}

// NewCredential builds the secp256k1fx Credential this operation expects.
func (op *MintOperation) NewCredential(sigs [][65]byte) lux.Credential {
	return &Credential{Signatures: sigs}
}

// UnmarshalMintOperation decodes a MintOperation payload.
func UnmarshalMintOperation(r *primitives.Reader) (*MintOperation, error) {
	in, err := UnmarshalInput(r)
	if err != nil {
		return nil, err
	}
	mintOut, err := UnmarshalOutputOwners(r)
	if err != nil {
		return nil, err
	}
	amt, err := r.ReadU64()
	if err != nil {
		return nil, err
	}
	xferOwners, err := UnmarshalOutputOwners(r)
	if err != nil {
		return nil, err
	}
	return &MintOperation{
		Input:          *in,
		MintOutput:     MintOutput{OutputOwners: *mintOut},
		TransferOutput: TransferOutput{Amt: amt, OutputOwners: *xferOwners},
	}, nil
}

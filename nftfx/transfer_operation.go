// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nftfx

import (
	"github.com/luxfi/txsdk/components/lux"
	"github.com/luxfi/txsdk/primitives"
	"github.com/luxfi/txsdk/secp256k1fx"
)

// Type tags for this package's Output/Operation/Credential elements.
const (
	TransferOutputTypeID    uint32 = 0x0000000b
	TransferOperationTypeID uint32 = 0x0000000d
	CredentialTypeID        uint32 = 0x0000000e
)

// TransferOperation is spec §6's NFT_TRANSFER_OP: it consumes one NFT
// TransferOutput and reissues it to a new owner set.
type TransferOperation struct {
	Input  secp256k1fx.Input
	Output TransferOutput
}

func (*TransferOperation) TypeID() uint32 { return TransferOperationTypeID }

func (op *TransferOperation) Marshal(w *primitives.Writer) {
	op.Input.Marshal(w)
	op.Output.Marshal(w)
}

func (op *TransferOperation) Verify() error {
	if err := op.Input.Verify(); err != nil {
		return err
	}
	return op.Output.Verify()
}

func (op *TransferOperation) SigIndices() []lux.SigIdx {
	return op.Input.SigIndicesOf()
}

// NewCredential builds the nftfx Credential (NFT_CREDENTIAL) this
// operation expects.
func (op *TransferOperation) NewCredential(sigs [][65]byte) lux.Credential {
	return &Credential{Signatures: sigs}
}

// UnmarshalTransferOperation decodes a TransferOperation payload.
func UnmarshalTransferOperation(r *primitives.Reader) (*TransferOperation, error) {
	in, err := secp256k1fx.UnmarshalInput(r)
	if err != nil {
		return nil, err
	}
	out, err := UnmarshalTransferOutput(r)
	if err != nil {
		return nil, err
	}
	return &TransferOperation{Input: *in, Output: *out}, nil
}

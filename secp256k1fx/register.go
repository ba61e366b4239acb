// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"github.com/luxfi/txsdk/components/lux"
	"github.com/luxfi/txsdk/primitives"
)

func init() {
	lux.OutputRegistry.Register(TransferOutputTypeID, func(r *primitives.Reader) (lux.Output, error) {
		return UnmarshalTransferOutput(r)
	})
	lux.OutputRegistry.Register(MintOutputTypeID, func(r *primitives.Reader) (lux.Output, error) {
		return UnmarshalMintOutput(r)
	})

	lux.InputRegistry.Register(TransferInputTypeID, func(r *primitives.Reader) (lux.Input, error) {
		return UnmarshalTransferInput(r)
	})

	lux.OperationRegistry.Register(MintOperationTypeID, func(r *primitives.Reader) (lux.Operation, error) {
		return UnmarshalMintOperation(r)
	})

	lux.CredentialRegistry.Register(CredentialTypeID, func(r *primitives.Reader) (lux.Credential, error) {
		return UnmarshalCredential(r)
	})
}

// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nftfx

import (
	"github.com/luxfi/txsdk/components/lux"
	"github.com/luxfi/txsdk/primitives"
)

func init() {
	lux.OutputRegistry.Register(TransferOutputTypeID, func(r *primitives.Reader) (lux.Output, error) {
		return UnmarshalTransferOutput(r)
	})
	lux.OperationRegistry.Register(TransferOperationTypeID, func(r *primitives.Reader) (lux.Operation, error) {
		return UnmarshalTransferOperation(r)
	})
	lux.CredentialRegistry.Register(CredentialTypeID, func(r *primitives.Reader) (lux.Credential, error) {
		return UnmarshalCredential(r)
	})
}

// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import "github.com/luxfi/txsdk/primitives"

func init() {
	Registry.Register(BaseTxTypeID, func(r *primitives.Reader) (UnsignedTx, error) {
		return UnmarshalBaseTx(r)
	})
	Registry.Register(CreateAssetTxTypeID, func(r *primitives.Reader) (UnsignedTx, error) {
		return UnmarshalCreateAssetTx(r)
	})
	Registry.Register(OperationTxTypeID, func(r *primitives.Reader) (UnsignedTx, error) {
		return UnmarshalOperationTx(r)
	})
	Registry.Register(ImportTxTypeID, func(r *primitives.Reader) (UnsignedTx, error) {
		return UnmarshalImportTx(r)
	})
	Registry.Register(ExportTxTypeID, func(r *primitives.Reader) (UnsignedTx, error) {
		return UnmarshalExportTx(r)
	})
}

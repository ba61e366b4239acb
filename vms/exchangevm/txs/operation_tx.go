// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/luxfi/txsdk/components/lux"
	"github.com/luxfi/txsdk/primitives"
)

var _ UnsignedTx = (*OperationTx)(nil)

// OperationTx carries non-transfer state changes (e.g. NFT transfers)
// alongside the shared header (spec §4.3).
type OperationTx struct {
	BaseTx

	Ops []*lux.TransferableOperation
}

func (*OperationTx) TypeID() uint32 { return OperationTxTypeID }

func (t *OperationTx) Marshal(w *primitives.Writer) {
	t.BaseTx.Marshal(w)
	w.WriteU32(uint32(len(t.Ops)))
	for _, op := range t.Ops {
		op.Marshal(w)
	}
}

func (t *OperationTx) Verify() error {
	if err := t.BaseTx.Verify(); err != nil {
		return err
	}
	for _, op := range t.Ops {
		if err := op.Verify(); err != nil {
			return err
		}
	}
	return nil
}

func (t *OperationTx) Visit(v Visitor) error {
	return v.OperationTx(t)
}

// SignableElements returns the sorted inputs followed by the
// operations in authored order, the OPERATION_TX signing order spec
// §4.4 defines.
func (t *OperationTx) SignableElements() []Signable {
	base := t.BaseTx.SignableElements()
	out := make([]Signable, 0, len(base)+len(t.Ops))
	out = append(out, base...)
	for _, op := range t.Ops {
		out = append(out, op)
	}
	return out
}

// UnmarshalOperationTx decodes an OperationTx payload.
func UnmarshalOperationTx(r *primitives.Reader) (*OperationTx, error) {
	base, err := UnmarshalBaseTx(r)
	if err != nil {
		return nil, err
	}
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	ops := make([]*lux.TransferableOperation, n)
	for i := range ops {
		op, err := lux.UnmarshalTransferableOperation(r)
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}
	return &OperationTx{BaseTx: *base, Ops: ops}, nil
}

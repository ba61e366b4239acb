// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/luxfi/ids"

	"github.com/luxfi/txsdk/components/lux"
	"github.com/luxfi/txsdk/primitives"
)

var _ UnsignedTx = (*ExportTx)(nil)

// ExportTx sends an asset to another blockchain (spec §4.3).
// ExportedOuts have no signers: only the shared header's inputs are
// signable (spec §4.4: "Export outputs have no signers").
type ExportTx struct {
	BaseTx

	DestinationChain ids.ID
	ExportedOuts     []*lux.TransferableOutput
}

func (*ExportTx) TypeID() uint32 { return ExportTxTypeID }

func (t *ExportTx) Marshal(w *primitives.Writer) {
	t.BaseTx.Marshal(w)
	w.WriteID(t.DestinationChain)
	w.WriteU32(uint32(len(t.ExportedOuts)))
	for _, out := range t.ExportedOuts {
		out.Marshal(w)
	}
}

func (t *ExportTx) Verify() error {
	if err := t.BaseTx.Verify(); err != nil {
		return err
	}
	for _, out := range t.ExportedOuts {
		if err := out.Verify(); err != nil {
			return err
		}
	}
	return nil
}

func (t *ExportTx) Visit(v Visitor) error {
	return v.ExportTx(t)
}

// UnmarshalExportTx decodes an ExportTx payload.
func UnmarshalExportTx(r *primitives.Reader) (*ExportTx, error) {
	base, err := UnmarshalBaseTx(r)
	if err != nil {
		return nil, err
	}
	destChain, err := r.ReadID()
	if err != nil {
		return nil, err
	}
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	outs := make([]*lux.TransferableOutput, n)
	for i := range outs {
		out, err := lux.UnmarshalTransferableOutput(r)
		if err != nil {
			return nil, err
		}
		outs[i] = out
	}
	return &ExportTx{BaseTx: *base, DestinationChain: destChain, ExportedOuts: outs}, nil
}

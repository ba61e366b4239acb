// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/luxfi/ids"

	"github.com/luxfi/txsdk/components/lux"
	"github.com/luxfi/txsdk/primitives"
)

var _ UnsignedTx = (*ImportTx)(nil)

// ImportTx pulls UTXOs in from another chain (spec §4.3).
type ImportTx struct {
	BaseTx

	SourceChain ids.ID
	ImportedIns []*lux.TransferableInput
}

func (*ImportTx) TypeID() uint32 { return ImportTxTypeID }

func (t *ImportTx) Marshal(w *primitives.Writer) {
	t.BaseTx.Marshal(w)
	w.WriteID(t.SourceChain)
	w.WriteU32(uint32(len(t.ImportedIns)))
	for _, in := range t.ImportedIns {
		in.Marshal(w)
	}
}

func (t *ImportTx) Verify() error {
	if err := t.BaseTx.Verify(); err != nil {
		return err
	}
	for _, in := range t.ImportedIns {
		if err := in.Verify(); err != nil {
			return err
		}
	}
	return nil
}

func (t *ImportTx) Visit(v Visitor) error {
	return v.ImportTx(t)
}

// SignableElements returns the sorted base inputs followed by the
// import-side inputs in authored order, per spec §4.4.
func (t *ImportTx) SignableElements() []Signable {
	base := t.BaseTx.SignableElements()
	out := make([]Signable, 0, len(base)+len(t.ImportedIns))
	out = append(out, base...)
	for _, in := range t.ImportedIns {
		out = append(out, in)
	}
	return out
}

// UnmarshalImportTx decodes an ImportTx payload. The wire layout puts
// the source chain id before the imported-input count, mirroring
// CreateAssetTx's name/symbol-before-states ordering.
func UnmarshalImportTx(r *primitives.Reader) (*ImportTx, error) {
	base, err := UnmarshalBaseTx(r)
	if err != nil {
		return nil, err
	}
	sourceChain, err := r.ReadID()
	if err != nil {
		return nil, err
	}
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	ins := make([]*lux.TransferableInput, n)
	for i := range ins {
		in, err := lux.UnmarshalTransferableInput(r)
		if err != nil {
			return nil, err
		}
		ins[i] = in
	}
	return &ImportTx{BaseTx: *base, SourceChain: sourceChain, ImportedIns: ins}, nil
}

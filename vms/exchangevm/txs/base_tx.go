// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/luxfi/txsdk/components/lux"
	"github.com/luxfi/txsdk/primitives"
)

var _ UnsignedTx = (*BaseTx)(nil)

// BaseTx is the basis of every asset-chain transaction: the shared
// header with no extra payload (spec §4.3's BASE_TX row is "(none)").
type BaseTx struct {
	lux.BaseTxHeader
}

func (*BaseTx) TypeID() uint32 { return BaseTxTypeID }

func (t *BaseTx) Marshal(w *primitives.Writer) {
	t.BaseTxHeader.Marshal(w)
}

func (t *BaseTx) Verify() error {
	return t.BaseTxHeader.Verify()
}

func (t *BaseTx) Visit(v Visitor) error {
	return v.BaseTx(t)
}

func (t *BaseTx) Header() *lux.BaseTxHeader {
	return &t.BaseTxHeader
}

// SignableElements returns this transaction's sorted inputs, the
// BASE_TX signing order spec §4.4 defines.
func (t *BaseTx) SignableElements() []Signable {
	ins := t.SortedIns()
	out := make([]Signable, len(ins))
	for i, in := range ins {
		out[i] = in
	}
	return out
}

// UnmarshalBaseTx decodes a BaseTx payload (just the header).
func UnmarshalBaseTx(r *primitives.Reader) (*BaseTx, error) {
	header, err := lux.UnmarshalBaseTxHeader(r)
	if err != nil {
		return nil, err
	}
	return &BaseTx{BaseTxHeader: *header}, nil
}

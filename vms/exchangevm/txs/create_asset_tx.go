// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"fmt"

	"github.com/luxfi/txsdk/components/lux"
	"github.com/luxfi/txsdk/primitives"
)

var _ UnsignedTx = (*CreateAssetTx)(nil)

// MaxDenomination is the inclusive upper bound spec §4.3/§7/§8
// property 7 place on CreateAssetTx.Denomination.
const MaxDenomination = 32

// InvalidDenominationError is returned when a CreateAssetTx is built
// with a denomination outside [0, MaxDenomination].
type InvalidDenominationError struct {
	Value uint8
}

func (e *InvalidDenominationError) Error() string {
	return fmt.Sprintf("invalid denomination %d: must be in [0, %d]", e.Value, MaxDenomination)
}

// InitialState is one group of outputs minted at asset-creation time,
// tagged with the fx family (index into the fx set) that owns them.
type InitialState struct {
	FxIndex uint32
	Outs    []lux.Output
}

func (s *InitialState) Marshal(w *primitives.Writer) {
	w.WriteU32(s.FxIndex)
	w.WriteU32(uint32(len(s.Outs)))
	for _, out := range s.Outs {
		w.WriteU32(out.TypeID())
		out.Marshal(w)
	}
}

func (s *InitialState) Verify() error {
	for _, out := range s.Outs {
		if err := out.Verify(); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalInitialState decodes an InitialState.
func UnmarshalInitialState(r *primitives.Reader) (*InitialState, error) {
	fxIndex, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	outs := make([]lux.Output, n)
	for i := range outs {
		out, err := lux.OutputRegistry.DecodeTagged(r)
		if err != nil {
			return nil, err
		}
		outs[i] = out
	}
	return &InitialState{FxIndex: fxIndex, Outs: outs}, nil
}

// CreateAssetTx defines a new asset: its name, ticker symbol,
// denomination, and the UTXOs it's minted with (spec §4.3).
type CreateAssetTx struct {
	BaseTx

	Name         string
	Symbol       string
	Denomination uint8
	States       []*InitialState
}

// NewCreateAssetTx validates denomination before returning a tx,
// failing with InvalidDenominationError per spec §4.3/§8 property 7.
func NewCreateAssetTx(base BaseTx, name, symbol string, denomination uint8, states []*InitialState) (*CreateAssetTx, error) {
	if denomination > MaxDenomination {
		return nil, &InvalidDenominationError{Value: denomination}
	}
	return &CreateAssetTx{BaseTx: base, Name: name, Symbol: symbol, Denomination: denomination, States: states}, nil
}

func (*CreateAssetTx) TypeID() uint32 { return CreateAssetTxTypeID }

func (t *CreateAssetTx) Marshal(w *primitives.Writer) {
	t.BaseTx.Marshal(w)
	w.WriteString(t.Name)
	w.WriteString(t.Symbol)
	w.WriteU8(t.Denomination)
	w.WriteU32(uint32(len(t.States)))
	for _, s := range t.States {
		s.Marshal(w)
	}
}

func (t *CreateAssetTx) Verify() error {
	if t.Denomination > MaxDenomination {
		return &InvalidDenominationError{Value: t.Denomination}
	}
	if err := t.BaseTx.Verify(); err != nil {
		return err
	}
	for _, s := range t.States {
		if err := s.Verify(); err != nil {
			return err
		}
	}
	return nil
}

func (t *CreateAssetTx) Visit(v Visitor) error {
	return v.CreateAssetTx(t)
}

// UnmarshalCreateAssetTx decodes a CreateAssetTx payload, failing
// with InvalidDenominationError if the decoded byte is out of range
// (spec fixture S4).
func UnmarshalCreateAssetTx(r *primitives.Reader) (*CreateAssetTx, error) {
	base, err := UnmarshalBaseTx(r)
	if err != nil {
		return nil, err
	}
	name, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	symbol, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	denomination, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	if denomination > MaxDenomination {
		return nil, &InvalidDenominationError{Value: denomination}
	}
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	states := make([]*InitialState, n)
	for i := range states {
		s, err := UnmarshalInitialState(r)
		if err != nil {
			return nil, err
		}
		states[i] = s
	}
	return &CreateAssetTx{BaseTx: *base, Name: name, Symbol: symbol, Denomination: denomination, States: states}, nil
}

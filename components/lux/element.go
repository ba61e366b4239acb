// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lux implements the element codec described in spec §4.2: the
// transferable outputs, inputs, and operations a transaction is built
// from, plus the canonical comparator that orders them on encode.
package lux

import "github.com/luxfi/txsdk/primitives"

// Element is the contract every output, input, operation, and
// credential satisfies: a wire-tagged payload that knows how to
// serialize itself. Decoding is done through the per-category
// Registry rather than a method on the interface, since decoding has
// to look the concrete type up by tag before it exists.
type Element interface {
	// TypeID is the wire tag written ahead of Marshal's payload.
	TypeID() uint32
	// Marshal writes this element's payload (not including the type
	// tag) to w.
	Marshal(w *primitives.Writer)
}

// CanonicalBytes returns u32-be(type_id) || encode(), the byte form
// spec §4.2 defines the canonical comparator over.
func CanonicalBytes(e Element) []byte {
	w := primitives.NewWriter(64)
	w.WriteU32(e.TypeID())
	e.Marshal(w)
	return w.Bytes()
}

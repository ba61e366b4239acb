// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lux

import "github.com/luxfi/txsdk/primitives"

// Decoder builds a T by reading its payload (the type tag has already
// been consumed) from r.
type Decoder[T any] func(r *primitives.Reader) (T, error)

// Registry is a closed, append-only (at init time) map from wire type
// tag to decoder for one element category. Spec §4.2/§4.5 calls for
// exactly this shape per category: outputs, inputs, operations,
// credentials, and (separately, one level up) transactions.
type Registry[T any] struct {
	domain   string
	decoders map[uint32]Decoder[T]
}

// NewRegistry returns an empty registry for domain, used only in
// UnknownTypeIDError messages.
func NewRegistry[T any](domain string) *Registry[T] {
	return &Registry[T]{domain: domain, decoders: make(map[uint32]Decoder[T])}
}

// Register installs dec under id. Called from package init()s only;
// a duplicate registration is a programmer error, not a runtime one.
func (r *Registry[T]) Register(id uint32, dec Decoder[T]) {
	if _, exists := r.decoders[id]; exists {
		panic("lux: duplicate registration for type id in domain " + r.domain)
	}
	r.decoders[id] = dec
}

// Decode reads the payload for type tag id, failing with
// UnknownTypeIDError if id is not in the registry.
func (r *Registry[T]) Decode(id uint32, reader *primitives.Reader) (T, error) {
	dec, ok := r.decoders[id]
	if !ok {
		var zero T
		return zero, &primitives.UnknownTypeIDError{Domain: r.domain, ID: id}
	}
	return dec(reader)
}

// DecodeTagged reads the u32 type tag itself, then dispatches.
func (r *Registry[T]) DecodeTagged(reader *primitives.Reader) (T, error) {
	id, err := reader.ReadU32()
	if err != nil {
		var zero T
		return zero, err
	}
	return r.Decode(id, reader)
}

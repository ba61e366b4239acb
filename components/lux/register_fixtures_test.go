// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lux

import "github.com/luxfi/txsdk/primitives"

// This package's own Output/Input registries are otherwise populated
// only by secp256k1fx/nftfx's init()s, which this package cannot
// import without a cycle. Registering the test-only fixture kinds here
// lets BaseTxHeader's Marshal/Unmarshal round-trip tests exercise the
// real registry dispatch path instead of bypassing it.
func init() {
	OutputRegistry.Register(1, func(r *primitives.Reader) (Output, error) {
		val, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		return &testOutput{tag: 1, val: val}, nil
	})
	InputRegistry.Register(1, func(r *primitives.Reader) (Input, error) {
		val, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		return &testInput{tag: 1, val: val}, nil
	})
}

// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package verify holds the marker interfaces elements embed to declare
// whether they can be checked for well-formedness, independent of the
// wire codec that (de)serializes them.
package verify

// Verifiable is anything with an independent well-formedness check.
type Verifiable interface {
	Verify() error
}

// State marks an element as usable as a UTXO, i.e. as the output side
// of a transaction.
type State interface {
	Verifiable
}

// IsState is embedded by outputs to satisfy State without writing a
// trivial Verify() themselves when they have nothing further to check
// beyond what they already embed (e.g. OutputOwners).
type IsState struct{}

// Verify implements State with a permissive default.
func (IsState) Verify() error { return nil }

// IsNotState is embedded by inputs/owners that are never used as a
// UTXO output, documenting the distinction even though both marker
// types currently compile to nothing.
type IsNotState struct{}

// All verifies every non-nil element, short-circuiting on first error.
func All(elements ...Verifiable) error {
	for _, e := range elements {
		if e == nil {
			continue
		}
		if err := e.Verify(); err != nil {
			return err
		}
	}
	return nil
}

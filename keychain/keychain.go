// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keychain

import "github.com/luxfi/ids"

// Keychain looks a Signer up by the short address a SigIdx.source
// hints at. get(address) -> Option<Signer> in spec §9's terms.
type Keychain interface {
	Get(addr ids.ShortID) (Signer, bool)
}

// MemKeychain is a concrete, read-only-during-signing in-memory
// Keychain, the way a client SDK ships one rather than requiring every
// caller to implement the interface from scratch.
type MemKeychain struct {
	signers map[ids.ShortID]Signer
}

// NewMemKeychain returns an empty MemKeychain.
func NewMemKeychain() *MemKeychain {
	return &MemKeychain{signers: make(map[ids.ShortID]Signer)}
}

// Add registers signer under its own address.
func (k *MemKeychain) Add(signer Signer) {
	k.signers[signer.Address()] = signer
}

// Get implements Keychain.
func (k *MemKeychain) Get(addr ids.ShortID) (Signer, bool) {
	s, ok := k.signers[addr]
	return s, ok
}

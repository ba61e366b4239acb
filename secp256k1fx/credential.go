// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import "github.com/luxfi/txsdk/primitives"

// Credential bundles the recoverable signatures produced for one
// Input's or Operation's SigIndices, in the same order.
type Credential struct {
	Signatures [][primitives.SigLen]byte
}

func (*Credential) TypeID() uint32 { return CredentialTypeID }

func (c *Credential) Marshal(w *primitives.Writer) {
	w.WriteU32(uint32(len(c.Signatures)))
	for _, sig := range c.Signatures {
		w.WriteSignature(sig)
	}
}

// Sigs implements lux.Credential.
func (c *Credential) Sigs() [][65]byte {
	return c.Signatures
}

// UnmarshalCredential decodes a Credential payload.
func UnmarshalCredential(r *primitives.Reader) (*Credential, error) {
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	sigs := make([][primitives.SigLen]byte, n)
	for i := range sigs {
		sig, err := r.ReadSignature()
		if err != nil {
			return nil, err
		}
		sigs[i] = sig
	}
	return &Credential{Signatures: sigs}, nil
}

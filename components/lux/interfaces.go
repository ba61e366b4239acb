// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lux

import "github.com/luxfi/txsdk/components/verify"

// Output is a spendable UTXO payload: an owner set plus whatever
// conditions gate spending it (locktime, threshold, NFT group, ...).
type Output interface {
	Element
	verify.State
}

// Input is the spending side of an Output: it carries the SigIdx list
// the signing pipeline walks to assemble a Credential, and asserts
// consumability independent of the UTXO it references.
type Input interface {
	Element
	verify.Verifiable
	// SigIndices returns the signer pointers this input requires, in
	// the order its Credential's signatures must appear.
	SigIndices() []SigIdx
	// NewCredential builds the Credential kind this Input expects,
	// populated with sigs in SigIndices order. Spec §4.4 step 3 calls
	// this "new Credential(credential_id = e.credential_id())"; each
	// concrete Input knows its own credential kind, so no separate
	// registry is needed to go from signatures back to a Credential.
	NewCredential(sigs [][65]byte) Credential
}

// Operation is a non-transfer state change (e.g. an NFT transfer) that
// consumes one or more UTXOs of a TransferableOperation and, like an
// Input, drives one Credential's worth of signatures.
type Operation interface {
	Element
	verify.Verifiable
	SigIndices() []SigIdx
	NewCredential(sigs [][65]byte) Credential
}

// Credential is a tagged bundle of signatures satisfying one signable
// element's (Input's or Operation's) signer set.
type Credential interface {
	Element
	Sigs() [][65]byte
}

// OutputRegistry, InputRegistry, OperationRegistry, and
// CredentialRegistry are the four closed element registries spec §4.5
// names (the fifth and sixth, asset-chain and platform-chain
// transactions, live one level up in their own vms/*/txs packages
// since transaction bodies aren't interchangeable the way elements
// are).
var (
	OutputRegistry     = NewRegistry[Output]("output")
	InputRegistry      = NewRegistry[Input]("input")
	OperationRegistry  = NewRegistry[Operation]("operation")
	CredentialRegistry = NewRegistry[Credential]("credential")
)

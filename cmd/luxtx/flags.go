// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/luxfi/ids"
)

const (
	NetworkIDKey   = "network-id"
	BlockchainIDKey = "blockchain-id"
	PrivateKeyKey  = "private-key"
	AmountKey      = "amount"
	DestinationKey = "destination"
)

func AddFlags(flags *pflag.FlagSet) {
	flags.Uint32(NetworkIDKey, 0, "network id the transaction targets")
	flags.String(BlockchainIDKey, "", "hex-encoded 32-byte blockchain id (required)")
	flags.String(PrivateKeyKey, "", "hex-encoded 32-byte secp256k1 private key to sign with (required)")
	flags.Uint64(AmountKey, 0, "amount to transfer in the base tx's sole output")
	flags.String(DestinationKey, "", "hex-encoded 20-byte destination address (required)")
}

// Config holds the parsed, decoded CLI inputs for building and
// signing a minimal BaseTx end to end.
type Config struct {
	NetworkID    uint32
	BlockchainID ids.ID
	PrivateKey   []byte
	Amount       uint64
	Destination  ids.ShortID
}

// ParseFlags parses and decodes flags into a Config, mirroring the
// flags.go/ParseFlags split the teacher's xsvm chain-create CLI uses.
func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	networkID, err := flags.GetUint32(NetworkIDKey)
	if err != nil {
		return nil, err
	}

	blockchainIDHex, err := flags.GetString(BlockchainIDKey)
	if err != nil {
		return nil, err
	}
	blockchainID, err := decodeID(blockchainIDHex)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", BlockchainIDKey, err)
	}

	privateKeyHex, err := flags.GetString(PrivateKeyKey)
	if err != nil {
		return nil, err
	}
	privateKey, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", PrivateKeyKey, err)
	}

	amount, err := flags.GetUint64(AmountKey)
	if err != nil {
		return nil, err
	}

	destinationHex, err := flags.GetString(DestinationKey)
	if err != nil {
		return nil, err
	}
	destination, err := decodeShortID(destinationHex)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", DestinationKey, err)
	}

	return &Config{
		NetworkID:    networkID,
		BlockchainID: blockchainID,
		PrivateKey:   privateKey,
		Amount:       amount,
		Destination:  destination,
	}, nil
}

func decodeID(s string) (ids.ID, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return ids.ID{}, err
	}
	if len(raw) != 32 {
		return ids.ID{}, fmt.Errorf("expected 32 bytes, got %d", len(raw))
	}
	var id ids.ID
	copy(id[:], raw)
	return id, nil
}

func decodeShortID(s string) (ids.ShortID, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return ids.ShortID{}, err
	}
	if len(raw) != 20 {
		return ids.ShortID{}, fmt.Errorf("expected 20 bytes, got %d", len(raw))
	}
	var id ids.ShortID
	copy(id[:], raw)
	return id, nil
}

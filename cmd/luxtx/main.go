// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command luxtx exercises the codec and signing pipeline end to end:
// it builds a BaseTx with a single transfer output, signs it against
// a keychain loaded from a raw private key, and prints the base-58
// string form. It performs no node transport — that stays out of
// scope per spec.md's HTTP/JSON-RPC non-goal.
package main

import (
	"fmt"
	"os"

	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/spf13/pflag"

	"github.com/luxfi/txsdk/components/lux"
	"github.com/luxfi/txsdk/keychain"
	"github.com/luxfi/txsdk/secp256k1fx"
	"github.com/luxfi/txsdk/vms/exchangevm/txs"
)

func main() {
	flags := pflag.NewFlagSet("luxtx", pflag.ContinueOnError)
	AddFlags(flags)

	cfg, err := ParseFlags(flags, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "luxtx:", err)
		os.Exit(1)
	}

	logger := log.NewLogger("luxtx")
	txs.SetLogger(logger)

	signer, err := keychain.NewSecp256k1Signer(cfg.PrivateKey)
	if err != nil {
		fmt.Fprintln(os.Stderr, "luxtx: building signer:", err)
		os.Exit(1)
	}

	kc := keychain.NewMemKeychain()
	kc.Add(signer)

	unsigned := &txs.BaseTx{
		BaseTxHeader: lux.BaseTxHeader{
			NetworkID:    cfg.NetworkID,
			BlockchainID: cfg.BlockchainID,
			Outs: []*lux.TransferableOutput{
				{
					AssetID: cfg.BlockchainID,
					Out: &secp256k1fx.TransferOutput{
						Amt: cfg.Amount,
						OutputOwners: secp256k1fx.OutputOwners{
							Threshold: 1,
							Addrs:     []ids.ShortID{cfg.Destination},
						},
					},
				},
			},
		},
	}

	signed, err := txs.Sign(unsigned, kc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "luxtx: signing:", err)
		os.Exit(1)
	}

	fmt.Println(signed.String())
}

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

func keygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new account and print its address and private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := crypto.GenerateKey()
			if err != nil {
				return fmt.Errorf("generating key: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "address:     %s\n", crypto.PubkeyToAddress(key.PublicKey).Hex())
			fmt.Fprintf(out, "private_key: %s\n", hex.EncodeToString(crypto.FromECDSA(key)))
			return nil
		},
	}
}

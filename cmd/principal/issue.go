package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"insurance-gateway/config"
	"insurance-gateway/internal/service"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

var issueFlags = struct {
	subject    string
	privateKey string
	secret     string
	issuer     string
	expiry     time.Duration
}{}

// resolveSubject returns the caller address named by --subject or derived from --key.
func resolveSubject(subject, privateKey string) (common.Address, error) {
	switch {
	case subject != "" && privateKey != "":
		return common.Address{}, errors.New("use either --subject or --key, not both")
	case privateKey != "":
		key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
		if err != nil {
			return common.Address{}, fmt.Errorf("parsing private key: %w", err)
		}
		return crypto.PubkeyToAddress(key.PublicKey), nil
	case subject != "":
		if !common.IsHexAddress(subject) {
			return common.Address{}, fmt.Errorf("%q is not a hex address", subject)
		}
		return common.HexToAddress(subject), nil
	default:
		return common.Address{}, errors.New("--subject or --key is required")
	}
}

func issueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a bearer token whose subject is the caller address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			caller, err := resolveSubject(issueFlags.subject, issueFlags.privateKey)
			if err != nil {
				return err
			}

			// Flags override the gateway's own jwt settings so tokens validate against it.
			cfg, err := config.Load(globalFlags.configFile)
			if err != nil {
				return err
			}
			secret, issuer, expiry := cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiry
			if cmd.Flags().Changed("secret") {
				secret = issueFlags.secret
			}
			if cmd.Flags().Changed("issuer") {
				issuer = issueFlags.issuer
			}
			if cmd.Flags().Changed("expiry") {
				expiry = issueFlags.expiry
			}
			if secret == "" {
				return errors.New("jwt secret is required (--secret or IGW_JWT_SECRET)")
			}
			if expiry <= 0 {
				return errors.New("expiry must be positive")
			}

			token, expiresAt, err := service.NewJWTTokenService(secret, expiry, issuer).Generate(caller)
			if err != nil {
				return fmt.Errorf("issuing token: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "subject:    %s\n", caller.Hex())
			fmt.Fprintf(out, "expires_at: %s\n", expiresAt.UTC().Format(time.RFC3339))
			fmt.Fprintf(out, "token:      %s\n", token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&issueFlags.subject, "subject", "s", "", "caller address the token is issued to")
	cmd.Flags().StringVarP(&issueFlags.privateKey, "key", "k", "", "hex private key; the subject is its address")
	cmd.Flags().StringVar(&issueFlags.secret, "secret", "", "HMAC secret shared with the gateway")
	cmd.Flags().StringVar(&issueFlags.issuer, "issuer", "", "token issuer")
	cmd.Flags().DurationVar(&issueFlags.expiry, "expiry", 0, "token lifetime")
	return cmd
}

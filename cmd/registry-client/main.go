package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/certledger/cert-registry-backend/api"
	"github.com/certledger/cert-registry-backend/api/clients"
	"github.com/certledger/cert-registry-backend/cmd/flags"
)

var flagToken = &cli.StringFlag{
	Name:  "token",
	Usage: "certificate token; the record key is derived from it. A random uuid is generated for issue when omitted",
}
var flagID = &cli.StringFlag{
	Name:  "id",
	Usage: "precomputed record key, 64-char hex string with 0x prefix. Takes precedence over --token",
}
var flagHolderID = &cli.StringFlag{
	Name:  "holder-id",
	Usage: "holder identifier, e.g. a student number",
}
var flagFullName = &cli.StringFlag{
	Name:  "full-name",
	Usage: "holder full name; normalized server-side before hashing",
}
var flagHolderHash = &cli.StringFlag{
	Name:  "holder-hash",
	Usage: "precomputed holder hash, 64-char hex string with 0x prefix. Takes precedence over --holder-id and --full-name",
}
var flagTitle = &cli.StringFlag{
	Name:  "title",
	Usage: "certificate title",
}
var flagIssuer = &cli.StringFlag{
	Name:  "issuer",
	Usage: "issuing organization",
}
var flagExpiresAt = &cli.Int64Flag{
	Name:  "expires-at",
	Usage: "expiry as a unix timestamp; 0 means the certificate never expires",
}
var flagKind = &cli.StringFlag{
	Name:  "kind",
	Usage: "filter history by event kind: 'issued' or 'revoked'",
}

func main() {
	app := &cli.App{
		Name:  "registry-client",
		Usage: "Issue, verify and revoke certificates through a registry server",
		Flags: []cli.Flag{
			flags.ServerAddrFlag,
		},
		Commands: []*cli.Command{
			{
				Name:  "issue",
				Usage: "Issue a new certificate",
				Flags: []cli.Flag{
					flagToken,
					flagID,
					flagHolderID,
					flagFullName,
					flagHolderHash,
					flagTitle,
					flagIssuer,
					flagExpiresAt,
				},
				Action: func(cCtx *cli.Context) error {
					token := cCtx.String(flagToken.Name)
					if token == "" && cCtx.String(flagID.Name) == "" {
						token = uuid.Must(uuid.NewRandom()).String()
						fmt.Fprintln(os.Stderr, "generated token:", token)
					}

					resp, err := newClient(cCtx).Issue(&api.IssueRequest{
						Token:      token,
						ID:         cCtx.String(flagID.Name),
						HolderID:   cCtx.String(flagHolderID.Name),
						FullName:   cCtx.String(flagFullName.Name),
						HolderHash: cCtx.String(flagHolderHash.Name),
						Title:      cCtx.String(flagTitle.Name),
						Issuer:     cCtx.String(flagIssuer.Name),
						ExpiresAt:  cCtx.Int64(flagExpiresAt.Name),
					})
					if err != nil {
						return fmt.Errorf("issuance failed: %w", err)
					}
					return printJSON(resp)
				},
			},
			{
				Name:  "verify",
				Usage: "Verify a certificate",
				Flags: []cli.Flag{
					flagToken,
					flagID,
					flagHolderID,
					flagFullName,
					flagHolderHash,
				},
				Action: func(cCtx *cli.Context) error {
					resp, err := newClient(cCtx).Verify(&api.VerifyRequest{
						Token:      cCtx.String(flagToken.Name),
						ID:         cCtx.String(flagID.Name),
						HolderID:   cCtx.String(flagHolderID.Name),
						FullName:   cCtx.String(flagFullName.Name),
						HolderHash: cCtx.String(flagHolderHash.Name),
					})
					if err != nil {
						return fmt.Errorf("verification failed: %w", err)
					}
					return printJSON(resp)
				},
			},
			{
				Name:  "revoke",
				Usage: "Revoke a certificate",
				Flags: []cli.Flag{
					flagToken,
					flagID,
				},
				Action: func(cCtx *cli.Context) error {
					resp, err := newClient(cCtx).Revoke(&api.RevokeRequest{
						Token: cCtx.String(flagToken.Name),
						ID:    cCtx.String(flagID.Name),
					})
					if err != nil {
						return fmt.Errorf("revocation failed: %w", err)
					}
					return printJSON(resp)
				},
			},
			{
				Name:  "history",
				Usage: "List the audit log, newest first",
				Flags: []cli.Flag{
					flagKind,
				},
				Action: func(cCtx *cli.Context) error {
					resp, err := newClient(cCtx).History(cCtx.String(flagKind.Name))
					if err != nil {
						return fmt.Errorf("history request failed: %w", err)
					}
					return printJSON(resp)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newClient(cCtx *cli.Context) *clients.RegistryClient {
	return &clients.RegistryClient{
		ServerAddr: cCtx.String(flags.ServerAddrFlag.Name),
	}
}

func printJSON(payload any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

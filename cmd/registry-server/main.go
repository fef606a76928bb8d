package main

import (
	"errors"
	"fmt"
	"log"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/urfave/cli/v2"

	"github.com/certledger/cert-registry-backend/cmd/flags"
	"github.com/certledger/cert-registry-backend/httpserver"
	"github.com/certledger/cert-registry-backend/interfaces"
	"github.com/certledger/cert-registry-backend/registry"
)

var serverFlags = append([]cli.Flag{
	flags.ListenAddrFlag,
	flags.LedgerFlag,
	flags.SaltFlag,
	flags.RpcAddrFlag,
	flags.ContractAddrFlag,
	flags.PrivateKeyFlag,
	flags.ChainIDFlag,
}, flags.CommonFlags...)

func main() {
	app := &cli.App{
		Name:  "registry-server",
		Usage: "Serve the certificate registry API",
		Flags: serverFlags,
		Action: func(cCtx *cli.Context) error {
			listenAddr := cCtx.String(flags.ListenAddrFlag.Name)
			ledgerKind := cCtx.String(flags.LedgerFlag.Name)
			salt := cCtx.String(flags.SaltFlag.Name)

			logger := flags.SetupLogger(cCtx)

			var ledger interfaces.CertificateLedger
			switch ledgerKind {
			case "memory":
				logger.Info("Using in-memory ledger")
				ledger = registry.NewMemoryLedger()

			case "onchain":
				rpcAddress := cCtx.String(flags.RpcAddrFlag.Name)
				contractHex := cCtx.String(flags.ContractAddrFlag.Name)
				privateKeyHex := cCtx.String(flags.PrivateKeyFlag.Name)
				chainID := cCtx.Int64(flags.ChainIDFlag.Name)

				if contractHex == "" {
					logger.Error("registry-contract is required when using the onchain ledger")
					return errors.New("registry-contract is required for the onchain ledger")
				}
				contractAddr, err := interfaces.NewContractAddressFromHex(contractHex)
				if err != nil {
					logger.Error("Invalid registry contract address", "err", err)
					return err
				}

				logger.Info("Connecting to Ethereum RPC", "address", rpcAddress)
				ethClient, err := ethclient.Dial(rpcAddress)
				if err != nil {
					logger.Error("Failed to dial RPC", "err", err)
					return err
				}

				client, err := registry.NewOnchainLedgerClient(ethClient, ethClient, gethcommon.Address(contractAddr))
				if err != nil {
					logger.Error("Failed to bind registry contract", "err", err)
					return err
				}

				if privateKeyHex != "" {
					privateKey, err := crypto.HexToECDSA(privateKeyHex)
					if err != nil {
						logger.Error("Invalid private key", "err", err)
						return fmt.Errorf("invalid private key: %w", err)
					}
					auth, err := bind.NewKeyedTransactorWithChainID(privateKey, new(big.Int).SetInt64(chainID))
					if err != nil {
						logger.Error("Failed to create transactor", "err", err)
						return err
					}
					client.SetTransactOpts(auth)
				} else {
					logger.Warn("No private key configured, issue and revoke will be rejected")
				}

				logger.Info("Using onchain ledger", "contract", client.Address().Hex(), "chainID", chainID)
				ledger = client

			default:
				logger.Error("Invalid ledger", "ledger", ledgerKind)
				return fmt.Errorf("invalid ledger: %s", ledgerKind)
			}

			cfg := flags.ConfigureServer(cCtx, logger, listenAddr)
			handler := httpserver.NewHandler(ledger, salt, logger)

			server, err := httpserver.New(cfg, handler)
			if err != nil {
				logger.Error("Failed to create server", "err", err)
				return err
			}

			logger.Info("Starting server")
			server.RunInBackground()

			exit := make(chan os.Signal, 1)
			signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

			logger.Info("Server is running, press Ctrl+C to stop")
			<-exit
			logger.Info("Shutdown signal received")

			server.Shutdown()
			logger.Info("Server shutdown complete")

			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

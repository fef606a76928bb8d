package registry

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/certledger/cert-registry-backend/bindings/certregistry"
	"github.com/certledger/cert-registry-backend/interfaces"
)

// ErrNoTransactOpts is returned when a transaction is attempted without first
// setting transaction options.
var ErrNoTransactOpts = errors.New("no authorized transactor available")

// Revert reason strings used by the CertificateRegistry contract.
const (
	revertAlreadyIssued = "Already issued"
	revertNotFound      = "Not found"
)

// OnchainLedgerClient implements the interfaces.CertificateLedger interface
// for interacting with a CertificateRegistry smart contract deployed on a
// blockchain. Issue and Revoke submit transactions and wait until they are
// mined; Verify and Events are free calls.
type OnchainLedgerClient struct {
	contract *certregistry.CertificateRegistry
	backend  bind.DeployBackend
	address  common.Address
	auth     *bind.TransactOpts
}

// NewOnchainLedgerClient creates a new client for the CertificateRegistry
// contract at the specified address. It requires a ContractBackend for
// reading from the blockchain and a DeployBackend for awaiting transaction
// receipts.
func NewOnchainLedgerClient(client bind.ContractBackend, backend bind.DeployBackend, address common.Address) (*OnchainLedgerClient, error) {
	contract, err := certregistry.NewCertificateRegistry(address, client)
	if err != nil {
		return nil, err
	}

	return &OnchainLedgerClient{
		contract: contract,
		backend:  backend,
		address:  address,
	}, nil
}

// SetTransactOpts sets the transaction options required for functions that
// modify state. This must be called before using Issue or Revoke.
func (c *OnchainLedgerClient) SetTransactOpts(auth *bind.TransactOpts) {
	c.auth = auth
}

// Address returns the bound contract address.
func (c *OnchainLedgerClient) Address() common.Address {
	return c.address
}

// Issue submits an issue transaction and waits for it to be mined. A revert
// with the contract's "Already issued" reason is mapped to
// interfaces.ErrAlreadyIssued.
func (c *OnchainLedgerClient) Issue(ctx context.Context, id interfaces.CertificateID, holderHash interfaces.HolderHash, title, issuer string, expiresAt int64) (interfaces.TxResult, error) {
	if c.auth == nil {
		return interfaces.TxResult{}, ErrNoTransactOpts
	}

	tx, err := c.contract.Issue(c.auth, id, holderHash, title, issuer, new(big.Int).SetInt64(expiresAt))
	if err != nil {
		return interfaces.TxResult{}, mapRevertReason(err)
	}

	if err := c.waitMined(ctx, tx); err != nil {
		return interfaces.TxResult{}, err
	}
	return interfaces.TxResult{TxHash: interfaces.TxID(tx.Hash())}, nil
}

// Verify performs a free contract call against the latest committed state.
func (c *OnchainLedgerClient) Verify(ctx context.Context, id interfaces.CertificateID, holderHash interfaces.HolderHash) (interfaces.VerificationResult, error) {
	opts := &bind.CallOpts{Context: ctx}

	out, err := c.contract.Verify(opts, id, holderHash)
	if err != nil {
		return interfaces.VerificationResult{}, fmt.Errorf("verify call failed: %w", err)
	}

	return interfaces.VerificationResult{
		Valid:     out.Valid,
		Revoked:   out.Revoked,
		IssuedAt:  out.IssuedAt.Int64(),
		ExpiresAt: out.ExpiresAt.Int64(),
		Title:     out.Title,
		Issuer:    out.Issuer,
	}, nil
}

// Revoke submits a revoke transaction and waits for it to be mined. A revert
// with the contract's "Not found" reason is mapped to interfaces.ErrNotFound.
func (c *OnchainLedgerClient) Revoke(ctx context.Context, id interfaces.CertificateID) (interfaces.TxResult, error) {
	if c.auth == nil {
		return interfaces.TxResult{}, ErrNoTransactOpts
	}

	tx, err := c.contract.Revoke(c.auth, id)
	if err != nil {
		return interfaces.TxResult{}, mapRevertReason(err)
	}

	if err := c.waitMined(ctx, tx); err != nil {
		return interfaces.TxResult{}, err
	}
	return interfaces.TxResult{TxHash: interfaces.TxID(tx.Hash())}, nil
}

// Events reconstructs the audit log from the contract's CertificateIssued
// and CertificateRevoked event logs, filtered by kind. Events are returned
// in log order; use History for display ordering.
func (c *OnchainLedgerClient) Events(ctx context.Context, filter interfaces.EventFilter) ([]interfaces.AuditEvent, error) {
	opts := &bind.FilterOpts{Context: ctx}
	var events []interfaces.AuditEvent

	if filter.Matches(interfaces.EventIssued) {
		it, err := c.contract.FilterCertificateIssued(opts, nil)
		if err != nil {
			return nil, fmt.Errorf("could not filter issued events: %w", err)
		}
		for it.Next() {
			events = append(events, interfaces.AuditEvent{
				Kind:      interfaces.EventIssued,
				ID:        it.Event.Id,
				Timestamp: it.Event.Timestamp.Int64(),
				TxHash:    interfaces.TxID(it.Event.Raw.TxHash),
			})
		}
		if err := it.Error(); err != nil {
			it.Close()
			return nil, fmt.Errorf("issued event iteration failed: %w", err)
		}
		it.Close()
	}

	if filter.Matches(interfaces.EventRevoked) {
		it, err := c.contract.FilterCertificateRevoked(opts, nil)
		if err != nil {
			return nil, fmt.Errorf("could not filter revoked events: %w", err)
		}
		for it.Next() {
			events = append(events, interfaces.AuditEvent{
				Kind:      interfaces.EventRevoked,
				ID:        it.Event.Id,
				Timestamp: it.Event.Timestamp.Int64(),
				TxHash:    interfaces.TxID(it.Event.Raw.TxHash),
			})
		}
		if err := it.Error(); err != nil {
			it.Close()
			return nil, fmt.Errorf("revoked event iteration failed: %w", err)
		}
		it.Close()
	}

	return events, nil
}

func (c *OnchainLedgerClient) waitMined(ctx context.Context, tx *types.Transaction) error {
	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return fmt.Errorf("could not await transaction %s: %w", tx.Hash(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("transaction %s reverted", tx.Hash())
	}
	return nil
}

// mapRevertReason translates contract revert reasons, surfaced during gas
// estimation, into the registry error taxonomy. Anything else passes through
// verbatim as a ledger failure.
func mapRevertReason(err error) error {
	switch {
	case strings.Contains(err.Error(), revertAlreadyIssued):
		return interfaces.ErrAlreadyIssued
	case strings.Contains(err.Error(), revertNotFound):
		return interfaces.ErrNotFound
	default:
		return err
	}
}

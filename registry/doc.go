// Package registry implements the certificate registry: the issue, verify
// and revoke state machine the ledger contract enforces, together with the
// ledger implementations that execute it.
//
// The package provides three layers:
//
//   - State, the pure state-transition logic over an injectable record store.
//     It is the authoritative description of the contract semantics and the
//     test oracle for every ledger implementation.
//
//   - MemoryLedger, a mutex-serialized in-process ledger built on State. It
//     backs tests and local development deployments where no chain is
//     available.
//
//   - OnchainLedgerClient, the interfaces.CertificateLedger implementation
//     backed by the CertificateRegistry smart contract deployed on an
//     Ethereum-compatible chain. State changes are submitted as transactions
//     and awaited until mined; verification is a free contract call; history
//     is reconstructed from CertificateIssued and CertificateRevoked event
//     logs.
//
// All state-modifying operations on the on-chain client require transaction
// signing. Before using Issue or Revoke you must call SetTransactOpts with
// transaction options holding the issuer's private key. Verify and Events
// are read-only and work immediately after creating a client.
//
// Per-ID lifecycle: Absent -> Active -> Revoked. A record, once created, is
// never deleted; revocation is the only mutation and is permanent. Revoking
// an already revoked certificate re-sets the flag without error.
package registry

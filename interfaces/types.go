// Package interfaces defines the core types and interfaces for the certificate
// registry system. It provides the contract between different components
// without implementation details.
package interfaces

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// CertificateID is the fixed-size record key addressing a certificate slot.
// It is the keccak256 digest of a human-assigned unique token (typically a
// UUID) and uniquely identifies a certificate for its whole lifetime.
type CertificateID [32]byte

// NewCertificateIDFromHex parses a certificate ID from a hex string, with or
// without a 0x prefix.
func NewCertificateIDFromHex(s string) (CertificateID, error) {
	clean := strings.TrimPrefix(s, "0x")
	if len(clean) != 64 {
		return CertificateID{}, errors.New("invalid certificate id length: hex string must be 64 characters")
	}

	raw, err := hex.DecodeString(clean)
	if err != nil {
		return CertificateID{}, fmt.Errorf("invalid hex format: %w", err)
	}

	var id CertificateID
	copy(id[:], raw)
	return id, nil
}

// String returns the hex string representation of the certificate ID.
func (id CertificateID) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// Bytes returns the raw 32-byte ID.
func (id CertificateID) Bytes() []byte {
	return id[:]
}

// HolderHash binds a certificate to a holder's identifying attributes plus a
// deployment-wide salt. It is not unique across records; several certificates
// may bind to the same holder.
type HolderHash [32]byte

// NewHolderHashFromHex parses a holder hash from a hex string, with or
// without a 0x prefix.
func NewHolderHashFromHex(s string) (HolderHash, error) {
	clean := strings.TrimPrefix(s, "0x")
	if len(clean) != 64 {
		return HolderHash{}, errors.New("invalid holder hash length: hex string must be 64 characters")
	}

	raw, err := hex.DecodeString(clean)
	if err != nil {
		return HolderHash{}, fmt.Errorf("invalid hex format: %w", err)
	}

	var h HolderHash
	copy(h[:], raw)
	return h, nil
}

// String returns the hex string representation of the holder hash.
func (h HolderHash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// ContractAddress represents an Ethereum contract address.
type ContractAddress [20]byte

// NewContractAddressFromHex creates a contract address from a hex string,
// with or without a 0x prefix.
func NewContractAddressFromHex(addr string) (ContractAddress, error) {
	clean := strings.TrimPrefix(addr, "0x")
	if len(clean) != 40 {
		return ContractAddress{}, errors.New("invalid address length: hex string must be 40 characters")
	}

	addrBytes, err := hex.DecodeString(clean)
	if err != nil {
		return ContractAddress{}, fmt.Errorf("invalid hex format: %w", err)
	}

	var res ContractAddress
	copy(res[:], addrBytes)
	return res, nil
}

// String returns the hex string representation of the contract address.
func (addr ContractAddress) String() string {
	return hex.EncodeToString(addr[:])
}

// Bytes returns the raw 20-byte address.
func (addr ContractAddress) Bytes() []byte {
	return addr[:]
}

// TxID identifies a committed ledger transaction.
type TxID [32]byte

// String returns the hex string representation of the transaction ID.
func (tx TxID) String() string {
	return "0x" + hex.EncodeToString(tx[:])
}

// CertificateRecord is the unit of truth, one per issued certificate. All
// fields except Revoked are immutable once the issuing call commits.
type CertificateRecord struct {
	ID         CertificateID
	HolderHash HolderHash
	Title      string
	Issuer     string

	// IssuedAt is stamped by the ledger at commit time, unix seconds.
	IssuedAt int64

	// ExpiresAt is an absolute unix timestamp; 0 means the certificate
	// never expires. Not validated against the current time at issuance.
	ExpiresAt int64

	// Revoked transitions false to true at most once. There is no
	// un-revoke operation.
	Revoked bool
}

// Expired reports whether the record is expired relative to now. A zero
// ExpiresAt never expires.
func (r CertificateRecord) Expired(now int64) bool {
	return r.ExpiresAt != 0 && r.ExpiresAt < now
}

// VerificationResult is the six-tuple a verify call returns. When no record
// exists for the requested ID all fields are zero-valued; callers must use
// IssuedAt == 0 together with Revoked == false as the not-found discriminator,
// since Valid == false alone is ambiguous between not-found, revoked, expired
// and holder mismatch.
type VerificationResult struct {
	Valid     bool
	Revoked   bool
	IssuedAt  int64
	ExpiresAt int64
	Title     string
	Issuer    string
}

// Found reports whether the result refers to an existing record.
func (r VerificationResult) Found() bool {
	return r.IssuedAt != 0 || r.Revoked
}

// EventKind tags the two audit event variants.
type EventKind string

const (
	// EventIssued marks a committed issue operation.
	EventIssued EventKind = "issued"

	// EventRevoked marks a committed revoke operation.
	EventRevoked EventKind = "revoked"
)

// AuditEvent is an immutable, timestamped notification appended by the ledger
// on each committed state transition. Events are derived history; the record
// mapping stays authoritative.
type AuditEvent struct {
	Kind      EventKind
	ID        CertificateID
	Timestamp int64
	TxHash    TxID
}

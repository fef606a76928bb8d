package interfaces

import (
	"context"
	"errors"
)

// Registry-level failures. Every failure is a deterministic function of state
// and input; there are no partial effects on a failed call.
var (
	// ErrAlreadyIssued is returned when issuance is attempted for an ID
	// with an existing record. Issuance is strict create-if-absent, never
	// an upsert; a retry must pick a new ID.
	ErrAlreadyIssued = errors.New("certificate already issued")

	// ErrNotFound is returned when revocation is attempted for an ID with
	// no record.
	ErrNotFound = errors.New("certificate not found")

	// ErrHashInputInvalid is reserved for malformed holder-attribute
	// input. Not expected under normal operation since all textual inputs
	// are valid.
	ErrHashInputInvalid = errors.New("invalid hash input")
)

// TxResult reports the transaction a committed state change was included in.
type TxResult struct {
	TxHash TxID
}

// EventFilter narrows an event query to a single variant. The zero value
// matches both variants.
type EventFilter struct {
	Kind EventKind
}

// Matches reports whether the filter admits events of the given kind.
func (f EventFilter) Matches(kind EventKind) bool {
	return f.Kind == "" || f.Kind == kind
}

// CertificateLedger is the boundary consumed from the ledger execution
// environment. Issue and Revoke are submit-and-wait-for-commit; Verify is a
// synchronous read of the latest committed state and never mutates. The
// ledger guarantees atomic, serialized execution per call, so the
// "does a record exist" precondition is never subject to check-then-act
// races.
//
// Clients must not cache registry state across calls: Revoked and
// expiry-relative-to-now can change between any two calls.
type CertificateLedger interface {
	// Issue creates the record for id, stamping IssuedAt with the current
	// ledger time. Fails with ErrAlreadyIssued if a record exists.
	Issue(ctx context.Context, id CertificateID, holderHash HolderHash, title, issuer string, expiresAt int64) (TxResult, error)

	// Verify resolves the six-tuple for id against the supplied holder
	// hash. A missing record is data (zero-valued result), not an error.
	Verify(ctx context.Context, id CertificateID, holderHash HolderHash) (VerificationResult, error)

	// Revoke sets the Revoked flag. Fails with ErrNotFound if no record
	// exists; re-revoking an already revoked record succeeds.
	Revoke(ctx context.Context, id CertificateID) (TxResult, error)

	// Events returns the append-only audit log, optionally filtered by
	// event kind. Ordering is ledger append order; use registry.History
	// for display ordering.
	Events(ctx context.Context, filter EventFilter) ([]AuditEvent, error)
}

// RecordStore is the injectable key-value storage the registry state machine
// runs against. Lookups are explicit (record, ok) pairs; the zero-value
// sentinel tuple exists only at the verify API edge.
type RecordStore interface {
	Get(id CertificateID) (CertificateRecord, bool)
	Put(id CertificateID, record CertificateRecord)
	Contains(id CertificateID) bool
}

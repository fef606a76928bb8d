package registry

import (
	"context"
	"encoding/binary"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/certledger/cert-registry-backend/interfaces"
)

// MemoryLedger is a simple in-process implementation of the
// interfaces.CertificateLedger interface for testing and local development
// without a blockchain connection. A single mutex serializes every call,
// matching the atomic per-call execution the on-chain environment provides.
type MemoryLedger struct {
	mutex  sync.Mutex
	state  *State
	clock  Clock
	events []interfaces.AuditEvent
	nonce  uint64
}

// NewMemoryLedger creates a ledger over a fresh in-memory store using the
// wall clock.
func NewMemoryLedger() *MemoryLedger {
	return NewMemoryLedgerWithClock(func() int64 { return time.Now().Unix() })
}

// NewMemoryLedgerWithClock creates a ledger with an injected clock, so tests
// can pin or advance the ledger time.
func NewMemoryLedgerWithClock(clock Clock) *MemoryLedger {
	return &MemoryLedger{
		state: NewState(NewMapStore(), clock),
		clock: clock,
	}
}

// Issue commits a new certificate record and appends an Issued audit event.
func (l *MemoryLedger) Issue(ctx context.Context, id interfaces.CertificateID, holderHash interfaces.HolderHash, title, issuer string, expiresAt int64) (interfaces.TxResult, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	record, err := l.state.Issue(id, holderHash, title, issuer, expiresAt)
	if err != nil {
		return interfaces.TxResult{}, err
	}

	txHash := l.nextTxHash("issue", id)
	l.events = append(l.events, interfaces.AuditEvent{
		Kind:      interfaces.EventIssued,
		ID:        id,
		Timestamp: record.IssuedAt,
		TxHash:    txHash,
	})
	return interfaces.TxResult{TxHash: txHash}, nil
}

// Verify reads the latest committed state. Never mutates, never appends an
// event.
func (l *MemoryLedger) Verify(ctx context.Context, id interfaces.CertificateID, holderHash interfaces.HolderHash) (interfaces.VerificationResult, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.state.Verify(id, holderHash), nil
}

// Revoke commits the revocation and appends a Revoked audit event. A second
// revoke of the same certificate succeeds and appends another event, as the
// on-chain contract does.
func (l *MemoryLedger) Revoke(ctx context.Context, id interfaces.CertificateID) (interfaces.TxResult, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if _, err := l.state.Revoke(id); err != nil {
		return interfaces.TxResult{}, err
	}

	txHash := l.nextTxHash("revoke", id)
	l.events = append(l.events, interfaces.AuditEvent{
		Kind:      interfaces.EventRevoked,
		ID:        id,
		Timestamp: l.clock(),
		TxHash:    txHash,
	})
	return interfaces.TxResult{TxHash: txHash}, nil
}

// Events returns a copy of the audit log in append order, filtered by kind.
func (l *MemoryLedger) Events(ctx context.Context, filter interfaces.EventFilter) ([]interfaces.AuditEvent, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	events := make([]interfaces.AuditEvent, 0, len(l.events))
	for _, ev := range l.events {
		if filter.Matches(ev.Kind) {
			events = append(events, ev)
		}
	}
	return events, nil
}

// nextTxHash fabricates a deterministic per-call transaction hash so clients
// can treat memory and on-chain backends uniformly. Callers must hold the
// mutex.
func (l *MemoryLedger) nextTxHash(op string, id interfaces.CertificateID) interfaces.TxID {
	l.nonce++
	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], l.nonce)
	return interfaces.TxID(crypto.Keccak256Hash([]byte(op), id.Bytes(), nonce[:]))
}

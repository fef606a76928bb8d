package registry

import (
	"github.com/certledger/cert-registry-backend/interfaces"
)

// Clock supplies the ledger's notion of current time, unix seconds. It must
// be monotonically non-decreasing across committed calls.
type Clock func() int64

// State is the registry state machine evaluated against an injectable record
// store. It performs no internal locking or I/O; the surrounding ledger is
// responsible for atomic, serialized execution per call.
type State struct {
	store interfaces.RecordStore
	clock Clock
}

// NewState creates a state machine over the given store and clock.
func NewState(store interfaces.RecordStore, clock Clock) *State {
	return &State{store: store, clock: clock}
}

// Issue creates the record for id. Strict create-if-absent: if any record
// exists for id the call fails with interfaces.ErrAlreadyIssued and nothing
// changes. The expiry is stored as supplied; a certificate may be issued
// already expired.
func (s *State) Issue(id interfaces.CertificateID, holderHash interfaces.HolderHash, title, issuer string, expiresAt int64) (interfaces.CertificateRecord, error) {
	if s.store.Contains(id) {
		return interfaces.CertificateRecord{}, interfaces.ErrAlreadyIssued
	}

	record := interfaces.CertificateRecord{
		ID:         id,
		HolderHash: holderHash,
		Title:      title,
		Issuer:     issuer,
		IssuedAt:   s.clock(),
		ExpiresAt:  expiresAt,
		Revoked:    false,
	}
	s.store.Put(id, record)
	return record, nil
}

// Verify resolves the six-tuple for id against the supplied holder hash.
// Missing records yield the zero-valued result; found records disclose
// title, issuer and timestamps on every branch, including holder mismatch.
func (s *State) Verify(id interfaces.CertificateID, holderHash interfaces.HolderHash) interfaces.VerificationResult {
	record, ok := s.store.Get(id)
	if !ok {
		return interfaces.VerificationResult{}
	}

	result := interfaces.VerificationResult{
		Revoked:   record.Revoked,
		IssuedAt:  record.IssuedAt,
		ExpiresAt: record.ExpiresAt,
		Title:     record.Title,
		Issuer:    record.Issuer,
	}

	switch {
	case record.HolderHash != holderHash:
	case record.Revoked:
	case record.Expired(s.clock()):
	default:
		result.Valid = true
	}
	return result
}

// Revoke sets the Revoked flag for id. Fails with interfaces.ErrNotFound if
// no record exists. Revoking an already revoked record re-sets the flag and
// succeeds; no other field changes either way.
func (s *State) Revoke(id interfaces.CertificateID) (interfaces.CertificateRecord, error) {
	record, ok := s.store.Get(id)
	if !ok {
		return interfaces.CertificateRecord{}, interfaces.ErrNotFound
	}

	record.Revoked = true
	s.store.Put(id, record)
	return record, nil
}

// mapStore is the default RecordStore, a plain in-memory map.
type mapStore struct {
	records map[interfaces.CertificateID]interfaces.CertificateRecord
}

// NewMapStore creates an empty in-memory record store.
func NewMapStore() interfaces.RecordStore {
	return &mapStore{records: make(map[interfaces.CertificateID]interfaces.CertificateRecord)}
}

func (s *mapStore) Get(id interfaces.CertificateID) (interfaces.CertificateRecord, bool) {
	record, ok := s.records[id]
	return record, ok
}

func (s *mapStore) Put(id interfaces.CertificateID, record interfaces.CertificateRecord) {
	s.records[id] = record
}

func (s *mapStore) Contains(id interfaces.CertificateID) bool {
	_, ok := s.records[id]
	return ok
}

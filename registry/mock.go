package registry

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/certledger/cert-registry-backend/interfaces"
)

// MockLedger mocks the CertificateLedger interface
type MockLedger struct {
	mock.Mock
}

// Issue mocks the Issue method
func (m *MockLedger) Issue(ctx context.Context, id interfaces.CertificateID, holderHash interfaces.HolderHash, title, issuer string, expiresAt int64) (interfaces.TxResult, error) {
	args := m.Called(ctx, id, holderHash, title, issuer, expiresAt)
	return args.Get(0).(interfaces.TxResult), args.Error(1)
}

// Verify mocks the Verify method
func (m *MockLedger) Verify(ctx context.Context, id interfaces.CertificateID, holderHash interfaces.HolderHash) (interfaces.VerificationResult, error) {
	args := m.Called(ctx, id, holderHash)
	return args.Get(0).(interfaces.VerificationResult), args.Error(1)
}

// Revoke mocks the Revoke method
func (m *MockLedger) Revoke(ctx context.Context, id interfaces.CertificateID) (interfaces.TxResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(interfaces.TxResult), args.Error(1)
}

// Events mocks the Events method
func (m *MockLedger) Events(ctx context.Context, filter interfaces.EventFilter) ([]interfaces.AuditEvent, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]interfaces.AuditEvent), args.Error(1)
}

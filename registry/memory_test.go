package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certledger/cert-registry-backend/identity"
	"github.com/certledger/cert-registry-backend/interfaces"
)

func TestMemoryLedger_IssueVerifyRevoke(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedgerWithClock(fixedClock(1700000000))

	id := identity.DeriveRecordKey("ledger-uuid-1")
	holderHash := identity.DeriveHolderHash("123", "JANE DOE", "SALT")

	issueTx, err := ledger.Issue(ctx, id, holderHash, "Blockchain Kursu", "ABC University", 0)
	require.NoError(t, err)
	assert.NotEqual(t, interfaces.TxID{}, issueTx.TxHash)

	result, err := ledger.Verify(ctx, id, holderHash)
	require.NoError(t, err)
	assert.True(t, result.Valid)

	revokeTx, err := ledger.Revoke(ctx, id)
	require.NoError(t, err)
	assert.NotEqual(t, issueTx.TxHash, revokeTx.TxHash)

	result, err = ledger.Verify(ctx, id, holderHash)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.True(t, result.Revoked)
}

func TestMemoryLedger_IssueFailureAppendsNoEvent(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedgerWithClock(fixedClock(1700000000))

	id := identity.DeriveRecordKey("ledger-uuid-2")
	holderHash := identity.DeriveHolderHash("1", "A", "S")

	_, err := ledger.Issue(ctx, id, holderHash, "Kurs", "Kurum", 0)
	require.NoError(t, err)

	_, err = ledger.Issue(ctx, id, holderHash, "Kurs", "Kurum", 0)
	require.ErrorIs(t, err, interfaces.ErrAlreadyIssued)

	events, err := ledger.Events(ctx, interfaces.EventFilter{})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestMemoryLedger_EventsFilteredByKind(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedgerWithClock(fixedClock(1700000000))

	holderHash := identity.DeriveHolderHash("1", "A", "S")
	first := identity.DeriveRecordKey("event-uuid-1")
	second := identity.DeriveRecordKey("event-uuid-2")

	_, err := ledger.Issue(ctx, first, holderHash, "Kurs", "Kurum", 0)
	require.NoError(t, err)
	_, err = ledger.Issue(ctx, second, holderHash, "Kurs", "Kurum", 0)
	require.NoError(t, err)
	_, err = ledger.Revoke(ctx, first)
	require.NoError(t, err)

	all, err := ledger.Events(ctx, interfaces.EventFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	issued, err := ledger.Events(ctx, interfaces.EventFilter{Kind: interfaces.EventIssued})
	require.NoError(t, err)
	require.Len(t, issued, 2)
	for _, ev := range issued {
		assert.Equal(t, interfaces.EventIssued, ev.Kind)
	}

	revoked, err := ledger.Events(ctx, interfaces.EventFilter{Kind: interfaces.EventRevoked})
	require.NoError(t, err)
	require.Len(t, revoked, 1)
	assert.Equal(t, first, revoked[0].ID)
}

func TestMemoryLedger_DoubleRevokeAppendsBothEvents(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedgerWithClock(fixedClock(1700000000))

	id := identity.DeriveRecordKey("double-revoke")
	holderHash := identity.DeriveHolderHash("1", "A", "S")

	_, err := ledger.Issue(ctx, id, holderHash, "Kurs", "Kurum", 0)
	require.NoError(t, err)

	_, err = ledger.Revoke(ctx, id)
	require.NoError(t, err)
	_, err = ledger.Revoke(ctx, id)
	require.NoError(t, err)

	revoked, err := ledger.Events(ctx, interfaces.EventFilter{Kind: interfaces.EventRevoked})
	require.NoError(t, err)
	assert.Len(t, revoked, 2)
}

func TestMemoryLedger_VerifyAppendsNoEvent(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedgerWithClock(fixedClock(1700000000))

	_, err := ledger.Verify(ctx, identity.DeriveRecordKey("nope"), identity.DeriveHolderHash("1", "A", "S"))
	require.NoError(t, err)

	events, err := ledger.Events(ctx, interfaces.EventFilter{})
	require.NoError(t, err)
	assert.Empty(t, events)
}

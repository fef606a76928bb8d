package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certledger/cert-registry-backend/identity"
	"github.com/certledger/cert-registry-backend/interfaces"
)

// fixedClock pins ledger time for deterministic expiry checks.
func fixedClock(now int64) Clock {
	return func() int64 { return now }
}

func newTestState(now int64) *State {
	return NewState(NewMapStore(), fixedClock(now))
}

func TestState_IssueAndVerify(t *testing.T) {
	state := newTestState(1700000000)

	id := identity.DeriveRecordKey("test-uuid-1")
	holderHash := identity.DeriveHolderHash("123", "JANE DOE", "SALT")

	record, err := state.Issue(id, holderHash, "Blockchain Kursu", "ABC University", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), record.IssuedAt)
	assert.False(t, record.Revoked)

	result := state.Verify(id, holderHash)
	assert.True(t, result.Valid)
	assert.False(t, result.Revoked)
	assert.Equal(t, "Blockchain Kursu", result.Title)
	assert.Equal(t, "ABC University", result.Issuer)
	assert.Equal(t, int64(1700000000), result.IssuedAt)
	assert.Equal(t, int64(0), result.ExpiresAt)
}

func TestState_IssueTwiceFails(t *testing.T) {
	state := newTestState(1700000000)

	id := identity.DeriveRecordKey("test-uuid-2")
	first := identity.DeriveHolderHash("1", "A", "S")
	second := identity.DeriveHolderHash("2", "B", "S")

	_, err := state.Issue(id, first, "First", "First Issuer", 0)
	require.NoError(t, err)

	_, err = state.Issue(id, second, "Second", "Second Issuer", 42)
	require.ErrorIs(t, err, interfaces.ErrAlreadyIssued)

	// The record must keep the fields of the first call.
	result := state.Verify(id, first)
	assert.True(t, result.Valid)
	assert.Equal(t, "First", result.Title)
	assert.Equal(t, "First Issuer", result.Issuer)
}

func TestState_VerifyNotFound(t *testing.T) {
	state := newTestState(1700000000)

	result := state.Verify(identity.DeriveRecordKey("never-issued"), identity.DeriveHolderHash("1", "A", "S"))
	assert.False(t, result.Valid)
	assert.False(t, result.Revoked)
	assert.Equal(t, int64(0), result.IssuedAt)
	assert.Equal(t, int64(0), result.ExpiresAt)
	assert.Empty(t, result.Title)
	assert.Empty(t, result.Issuer)
	assert.False(t, result.Found())
}

func TestState_VerifyHolderMismatch(t *testing.T) {
	state := newTestState(1700000000)

	id := identity.DeriveRecordKey("test-uuid-3")
	correct := identity.DeriveHolderHash("123", "JANE DOE", "SALT")
	wrong := identity.DeriveHolderHash("456", "JOHN ROE", "SALT")

	_, err := state.Issue(id, correct, "Kurs", "Kurum", 0)
	require.NoError(t, err)

	result := state.Verify(id, wrong)
	assert.False(t, result.Valid)
	assert.False(t, result.Revoked)
	// Title, issuer and timestamps are disclosed even on holder mismatch;
	// they are not considered secret.
	assert.Equal(t, "Kurs", result.Title)
	assert.Equal(t, "Kurum", result.Issuer)
	assert.Equal(t, int64(1700000000), result.IssuedAt)
	assert.True(t, result.Found())
}

func TestState_RevocationFinality(t *testing.T) {
	state := newTestState(1700000000)

	id := identity.DeriveRecordKey("test-uuid-4")
	holderHash := identity.DeriveHolderHash("123", "JANE DOE", "SALT")

	_, err := state.Issue(id, holderHash, "Kurs", "Kurum", 0)
	require.NoError(t, err)

	record, err := state.Revoke(id)
	require.NoError(t, err)
	assert.True(t, record.Revoked)

	result := state.Verify(id, holderHash)
	assert.False(t, result.Valid)
	assert.True(t, result.Revoked)

	// A second revoke succeeds and alters nothing else.
	again, err := state.Revoke(id)
	require.NoError(t, err)
	assert.True(t, again.Revoked)
	assert.Equal(t, record.Title, again.Title)
	assert.Equal(t, record.IssuedAt, again.IssuedAt)

	result = state.Verify(id, holderHash)
	assert.False(t, result.Valid)
	assert.True(t, result.Revoked)
}

func TestState_RevokeNotFound(t *testing.T) {
	state := newTestState(1700000000)

	_, err := state.Revoke(identity.DeriveRecordKey("non-existent"))
	require.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestState_ExpiryBoundary(t *testing.T) {
	const now = int64(1700000000)

	tests := []struct {
		name      string
		expiresAt int64
		valid     bool
	}{
		{"no expiry", 0, true},
		{"expires in the future", now + 3600, true},
		{"expires exactly now", now, true},
		{"expired one second ago", now - 1, false},
		{"issued already expired", now - 86400, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := newTestState(now)
			id := identity.DeriveRecordKey("expiry-" + tt.name)
			holderHash := identity.DeriveHolderHash("1", "A", "S")

			// Issuance never validates expiry against the current time.
			_, err := state.Issue(id, holderHash, "Kurs", "Kurum", tt.expiresAt)
			require.NoError(t, err)

			result := state.Verify(id, holderHash)
			assert.Equal(t, tt.valid, result.Valid)
			assert.False(t, result.Revoked)
		})
	}
}

func TestState_ZeroExpiryNeverExpires(t *testing.T) {
	now := int64(1700000000)
	state := NewState(NewMapStore(), func() int64 { return now })

	id := identity.DeriveRecordKey("immortal")
	holderHash := identity.DeriveHolderHash("1", "A", "S")
	_, err := state.Issue(id, holderHash, "Kurs", "Kurum", 0)
	require.NoError(t, err)

	// A century later it still verifies.
	now += 100 * 365 * 86400
	result := state.Verify(id, holderHash)
	assert.True(t, result.Valid)
}

func TestState_BoundaryStringsRoundTrip(t *testing.T) {
	state := newTestState(1700000000)
	holderHash := identity.DeriveHolderHash("1", "A", "S")

	t.Run("empty strings", func(t *testing.T) {
		id := identity.DeriveRecordKey("empty-strings")
		_, err := state.Issue(id, holderHash, "", "", 0)
		require.NoError(t, err)

		result := state.Verify(id, holderHash)
		assert.True(t, result.Valid)
		assert.Equal(t, "", result.Title)
		assert.Equal(t, "", result.Issuer)
	})

	t.Run("very long strings", func(t *testing.T) {
		long := strings.Repeat("a", 1000)
		id := identity.DeriveRecordKey("long-strings")
		_, err := state.Issue(id, holderHash, long, long, 0)
		require.NoError(t, err)

		result := state.Verify(id, holderHash)
		assert.True(t, result.Valid)
		assert.Equal(t, long, result.Title)
		assert.Equal(t, long, result.Issuer)
	})
}

// TestState_Scenario walks the full lifecycle: issue, verify, revoke, verify.
func TestState_Scenario(t *testing.T) {
	state := newTestState(1700000000)

	id := identity.DeriveRecordKey("uuid-A")
	holderHash := identity.DeriveHolderHash("123", "Jane Doe", "SALT")

	_, err := state.Issue(id, holderHash, "Blockchain Kursu", "ABC University", 0)
	require.NoError(t, err)

	result := state.Verify(id, holderHash)
	require.True(t, result.Valid)
	assert.Equal(t, "Blockchain Kursu", result.Title)
	assert.Equal(t, "ABC University", result.Issuer)

	_, err = state.Revoke(id)
	require.NoError(t, err)

	result = state.Verify(id, holderHash)
	assert.False(t, result.Valid)
	assert.True(t, result.Revoked)
}

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/certledger/cert-registry-backend/identity"
	"github.com/certledger/cert-registry-backend/interfaces"
)

func TestHistory_NewestFirst(t *testing.T) {
	a := identity.DeriveRecordKey("a")
	b := identity.DeriveRecordKey("b")

	events := []interfaces.AuditEvent{
		{Kind: interfaces.EventIssued, ID: a, Timestamp: 100},
		{Kind: interfaces.EventIssued, ID: b, Timestamp: 300},
		{Kind: interfaces.EventRevoked, ID: a, Timestamp: 200},
	}

	ordered := History(events)
	assert.Equal(t, []int64{300, 200, 100}, []int64{ordered[0].Timestamp, ordered[1].Timestamp, ordered[2].Timestamp})

	// Input is untouched.
	assert.Equal(t, int64(100), events[0].Timestamp)
}

func TestHistory_SameTimestampIssuedBeforeRevoked(t *testing.T) {
	id := identity.DeriveRecordKey("same-second")

	events := []interfaces.AuditEvent{
		{Kind: interfaces.EventRevoked, ID: id, Timestamp: 500},
		{Kind: interfaces.EventIssued, ID: id, Timestamp: 500},
	}

	ordered := History(events)
	assert.Equal(t, interfaces.EventIssued, ordered[0].Kind)
	assert.Equal(t, interfaces.EventRevoked, ordered[1].Kind)
}

func TestHistory_Empty(t *testing.T) {
	assert.Empty(t, History(nil))
}

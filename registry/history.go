package registry

import (
	"sort"

	"github.com/certledger/cert-registry-backend/interfaces"
)

// History orders audit events for display: newest first. Events sharing a
// timestamp keep issuance ahead of revocation, so a certificate issued and
// revoked in the same second reads in causal order.
func History(events []interfaces.AuditEvent) []interfaces.AuditEvent {
	ordered := make([]interfaces.AuditEvent, len(events))
	copy(ordered, events)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Timestamp != ordered[j].Timestamp {
			return ordered[i].Timestamp > ordered[j].Timestamp
		}
		return ordered[i].Kind == interfaces.EventIssued && ordered[j].Kind == interfaces.EventRevoked
	})
	return ordered
}

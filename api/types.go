// Package api defines the request and response types of the registry HTTP
// API, shared between the server handlers and the Go client.
package api

// IssueRequest creates a new certificate. Either Token or ID must be set;
// when Token is given the server derives the record key from it. The holder
// binding comes either from a precomputed HolderHash or from HolderID plus
// FullName hashed with the server's deployment salt.
type IssueRequest struct {
	Token      string `json:"token,omitempty"`
	ID         string `json:"id,omitempty"`
	HolderID   string `json:"holder_id,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	HolderHash string `json:"holder_hash,omitempty"`
	Title      string `json:"title"`
	Issuer     string `json:"issuer"`
	ExpiresAt  int64  `json:"expires_at"`
}

// IssueResponse reports the identifiers of the freshly issued certificate.
type IssueResponse struct {
	ID         string `json:"id"`
	HolderHash string `json:"holder_hash"`
	TxHash     string `json:"tx_hash"`
}

// VerifyRequest checks a certificate. ID/Token and HolderHash or
// HolderID+FullName resolve the same way as for issuance.
type VerifyRequest struct {
	Token      string `json:"token,omitempty"`
	ID         string `json:"id,omitempty"`
	HolderID   string `json:"holder_id,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	HolderHash string `json:"holder_hash,omitempty"`
}

// VerifyResponse carries the ledger's six-tuple plus an explicit Found
// discriminator, so callers are not forced to infer "not found" from the
// issued_at sentinel.
type VerifyResponse struct {
	Found     bool   `json:"found"`
	Valid     bool   `json:"valid"`
	Revoked   bool   `json:"revoked"`
	IssuedAt  int64  `json:"issued_at"`
	ExpiresAt int64  `json:"expires_at"`
	Title     string `json:"title"`
	Issuer    string `json:"issuer"`
}

// RevokeRequest revokes a certificate addressed by ID or Token.
type RevokeRequest struct {
	Token string `json:"token,omitempty"`
	ID    string `json:"id,omitempty"`
}

// RevokeResponse reports the transaction the revocation committed in.
type RevokeResponse struct {
	TxHash string `json:"tx_hash"`
}

// EventEntry is one audit log entry as exposed over HTTP.
type EventEntry struct {
	Kind      string `json:"kind"`
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	TxHash    string `json:"tx_hash"`
}

// HistoryResponse lists audit events, newest first.
type HistoryResponse struct {
	Events []EventEntry `json:"events"`
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

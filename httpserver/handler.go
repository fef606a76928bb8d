package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/certledger/cert-registry-backend/api"
	"github.com/certledger/cert-registry-backend/identity"
	"github.com/certledger/cert-registry-backend/interfaces"
	"github.com/certledger/cert-registry-backend/metrics"
	"github.com/certledger/cert-registry-backend/registry"
)

// maxBodySize is the maximum allowed request body size (1MB).
const maxBodySize = 1024 * 1024

// Handler processes HTTP requests for the certificate registry service. It
// derives record keys and holder hashes for callers that submit raw holder
// attributes, and delegates state transitions to the configured ledger.
type Handler struct {
	ledger interfaces.CertificateLedger
	salt   string
	log    *slog.Logger
}

// NewHandler creates a new HTTP request handler.
//
// The salt is the deployment-wide holder-hash parameter; it must match the
// salt used by whoever verifies certificates out of band.
func NewHandler(ledger interfaces.CertificateLedger, salt string, log *slog.Logger) *Handler {
	return &Handler{
		ledger: ledger,
		salt:   salt,
		log:    log,
	}
}

// HandleIssue processes certificate issuance requests.
//
// URL format: POST /api/certificates/issue
//
// The record key comes from the request's token (or a precomputed id); the
// holder hash from a precomputed holder_hash or from holder_id plus
// full_name salted with the deployment salt. Issuance is strict
// create-if-absent: a colliding id yields 409.
func (h *Handler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	var req api.IssueRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, err := resolveID(req.ID, req.Token)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	holderHash, err := h.resolveHolderHash(req.HolderHash, req.HolderID, req.FullName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.ledger.Issue(r.Context(), id, holderHash, req.Title, req.Issuer, req.ExpiresAt)
	if err != nil {
		h.log.Error("Issuance failed", "id", id.String(), "err", err)
		writeError(w, issueStatus(err), err)
		return
	}

	metrics.RecordIssued()
	h.log.Info("Certificate issued", "id", id.String(), "tx", result.TxHash.String())

	writeJSON(w, http.StatusCreated, api.IssueResponse{
		ID:         id.String(),
		HolderHash: holderHash.String(),
		TxHash:     result.TxHash.String(),
	})
}

// HandleVerify processes verification requests.
//
// URL format: POST /api/certificates/verify
//
// Verification is a read: a missing record is a normal 200 response with
// found=false, not an error.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req api.VerifyRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, err := resolveID(req.ID, req.Token)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	holderHash, err := h.resolveHolderHash(req.HolderHash, req.HolderID, req.FullName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.ledger.Verify(r.Context(), id, holderHash)
	if err != nil {
		h.log.Error("Verification failed", "id", id.String(), "err", err)
		writeError(w, http.StatusBadGateway, err)
		return
	}

	metrics.RecordVerification(verificationOutcome(result))

	writeJSON(w, http.StatusOK, api.VerifyResponse{
		Found:     result.Found(),
		Valid:     result.Valid,
		Revoked:   result.Revoked,
		IssuedAt:  result.IssuedAt,
		ExpiresAt: result.ExpiresAt,
		Title:     result.Title,
		Issuer:    result.Issuer,
	})
}

// HandleRevoke processes revocation requests.
//
// URL format: POST /api/certificates/revoke
//
// Revoking an unknown certificate yields 404; revoking an already revoked
// one succeeds again.
func (h *Handler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	var req api.RevokeRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, err := resolveID(req.ID, req.Token)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.ledger.Revoke(r.Context(), id)
	if err != nil {
		h.log.Error("Revocation failed", "id", id.String(), "err", err)
		writeError(w, revokeStatus(err), err)
		return
	}

	metrics.RecordRevoked()
	h.log.Info("Certificate revoked", "id", id.String(), "tx", result.TxHash.String())

	writeJSON(w, http.StatusOK, api.RevokeResponse{TxHash: result.TxHash.String()})
}

// HandleHistory returns the audit log, newest first.
//
// URL format: GET /api/certificates/history?kind=issued|revoked
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	var filter interfaces.EventFilter
	switch kind := r.URL.Query().Get("kind"); kind {
	case "":
	case string(interfaces.EventIssued):
		filter.Kind = interfaces.EventIssued
	case string(interfaces.EventRevoked):
		filter.Kind = interfaces.EventRevoked
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown event kind %q", kind))
		return
	}

	events, err := h.ledger.Events(r.Context(), filter)
	if err != nil {
		h.log.Error("Event query failed", "err", err)
		writeError(w, http.StatusBadGateway, err)
		return
	}

	ordered := registry.History(events)
	entries := make([]api.EventEntry, 0, len(ordered))
	for _, ev := range ordered {
		entries = append(entries, api.EventEntry{
			Kind:      string(ev.Kind),
			ID:        ev.ID.String(),
			Timestamp: ev.Timestamp,
			TxHash:    ev.TxHash.String(),
		})
	}

	writeJSON(w, http.StatusOK, api.HistoryResponse{Events: entries})
}

// resolveID returns the record key from an explicit hex id or derives it
// from the token.
func resolveID(idHex, token string) (interfaces.CertificateID, error) {
	if idHex != "" {
		return interfaces.NewCertificateIDFromHex(idHex)
	}
	if token == "" {
		return interfaces.CertificateID{}, errors.New("either id or token is required")
	}
	return identity.DeriveRecordKey(token), nil
}

// resolveHolderHash returns the holder binding from an explicit hex hash or
// derives it from holder attributes plus the deployment salt.
func (h *Handler) resolveHolderHash(hashHex, holderID, fullName string) (interfaces.HolderHash, error) {
	if hashHex != "" {
		return interfaces.NewHolderHashFromHex(hashHex)
	}
	if holderID == "" && fullName == "" {
		return interfaces.HolderHash{}, errors.New("either holder_hash or holder_id and full_name are required")
	}
	return identity.DeriveHolderHash(holderID, fullName, h.salt), nil
}

// verificationOutcome classifies a result for metrics only; the precedence
// mirrors the ledger's resolution order.
func verificationOutcome(result interfaces.VerificationResult) string {
	switch {
	case result.Valid:
		return metrics.OutcomeValid
	case !result.Found():
		return metrics.OutcomeNotFound
	case result.Revoked:
		return metrics.OutcomeRevoked
	case result.ExpiresAt != 0 && result.ExpiresAt < time.Now().Unix():
		return metrics.OutcomeExpired
	default:
		return metrics.OutcomeMismatch
	}
}

func issueStatus(err error) int {
	if errors.Is(err, interfaces.ErrAlreadyIssued) {
		return http.StatusConflict
	}
	return http.StatusBadGateway
}

func revokeStatus(err error) int {
	if errors.Is(err, interfaces.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func decodeRequest(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodySize)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("could not parse request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, api.ErrorResponse{Error: err.Error()})
}

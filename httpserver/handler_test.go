package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/certledger/cert-registry-backend/api"
	"github.com/certledger/cert-registry-backend/identity"
	"github.com/certledger/cert-registry-backend/interfaces"
	"github.com/certledger/cert-registry-backend/registry"
)

const testSalt = "SABIT_SALT_123"

func newTestRouter(ledger interfaces.CertificateLedger) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(ledger, testSalt, logger)

	mux := chi.NewRouter()
	mux.Post("/api/certificates/issue", handler.HandleIssue)
	mux.Post("/api/certificates/verify", handler.HandleVerify)
	mux.Post("/api/certificates/revoke", handler.HandleRevoke)
	mux.Get("/api/certificates/history", handler.HandleHistory)
	return mux
}

func doJSON(t *testing.T, mux http.Handler, method, url string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, url, &body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestHandleIssue_Success(t *testing.T) {
	ledger := registry.NewMemoryLedger()
	mux := newTestRouter(ledger)

	w := doJSON(t, mux, http.MethodPost, "/api/certificates/issue", api.IssueRequest{
		Token:     "uuid-A",
		HolderID:  "123",
		FullName:  "Jane Doe",
		Title:     "Blockchain Kursu",
		Issuer:    "ABC University",
		ExpiresAt: 0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp api.IssueResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, identity.DeriveRecordKey("uuid-A").String(), resp.ID)
	assert.Equal(t, identity.DeriveHolderHash("123", "Jane Doe", testSalt).String(), resp.HolderHash)
	assert.NotEmpty(t, resp.TxHash)
}

func TestHandleIssue_DuplicateConflict(t *testing.T) {
	ledger := registry.NewMemoryLedger()
	mux := newTestRouter(ledger)

	req := api.IssueRequest{Token: "uuid-dup", HolderID: "1", FullName: "A", Title: "T", Issuer: "I"}

	w := doJSON(t, mux, http.MethodPost, "/api/certificates/issue", req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, mux, http.MethodPost, "/api/certificates/issue", req)
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp.Error, "already issued")
}

func TestHandleIssue_MissingIdentifiers(t *testing.T) {
	mux := newTestRouter(registry.NewMemoryLedger())

	w := doJSON(t, mux, http.MethodPost, "/api/certificates/issue", api.IssueRequest{
		HolderID: "1", FullName: "A", Title: "T", Issuer: "I",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, mux, http.MethodPost, "/api/certificates/issue", api.IssueRequest{
		Token: "uuid-x", Title: "T", Issuer: "I",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleVerify_FullLifecycle(t *testing.T) {
	ledger := registry.NewMemoryLedger()
	mux := newTestRouter(ledger)

	issueReq := api.IssueRequest{
		Token:    "uuid-lifecycle",
		HolderID: "123",
		FullName: "Jane Doe",
		Title:    "Blockchain Kursu",
		Issuer:   "ABC University",
	}
	w := doJSON(t, mux, http.MethodPost, "/api/certificates/issue", issueReq)
	require.Equal(t, http.StatusCreated, w.Code)

	verifyReq := api.VerifyRequest{Token: "uuid-lifecycle", HolderID: "123", FullName: "jane doe"}
	w = doJSON(t, mux, http.MethodPost, "/api/certificates/verify", verifyReq)
	require.Equal(t, http.StatusOK, w.Code)

	var verifyResp api.VerifyResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&verifyResp))
	assert.True(t, verifyResp.Found)
	assert.True(t, verifyResp.Valid)
	assert.Equal(t, "Blockchain Kursu", verifyResp.Title)
	assert.Equal(t, "ABC University", verifyResp.Issuer)

	w = doJSON(t, mux, http.MethodPost, "/api/certificates/revoke", api.RevokeRequest{Token: "uuid-lifecycle"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, mux, http.MethodPost, "/api/certificates/verify", verifyReq)
	require.Equal(t, http.StatusOK, w.Code)
	verifyResp = api.VerifyResponse{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&verifyResp))
	assert.False(t, verifyResp.Valid)
	assert.True(t, verifyResp.Revoked)
}

func TestHandleVerify_NotFoundIsData(t *testing.T) {
	mux := newTestRouter(registry.NewMemoryLedger())

	w := doJSON(t, mux, http.MethodPost, "/api/certificates/verify", api.VerifyRequest{
		Token: "never-issued", HolderID: "1", FullName: "A",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.VerifyResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Found)
	assert.False(t, resp.Valid)
	assert.False(t, resp.Revoked)
	assert.Equal(t, int64(0), resp.IssuedAt)
}

func TestHandleVerify_PrecomputedHolderHash(t *testing.T) {
	mux := newTestRouter(registry.NewMemoryLedger())

	holderHash := identity.DeriveHolderHash("123", "Jane Doe", testSalt)
	w := doJSON(t, mux, http.MethodPost, "/api/certificates/issue", api.IssueRequest{
		Token: "uuid-prehash", HolderHash: holderHash.String(), Title: "T", Issuer: "I",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, mux, http.MethodPost, "/api/certificates/verify", api.VerifyRequest{
		Token: "uuid-prehash", HolderHash: holderHash.String(),
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.VerifyResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Valid)
}

func TestHandleRevoke_NotFound(t *testing.T) {
	mux := newTestRouter(registry.NewMemoryLedger())

	w := doJSON(t, mux, http.MethodPost, "/api/certificates/revoke", api.RevokeRequest{Token: "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleHistory(t *testing.T) {
	ledger := registry.NewMemoryLedger()
	mux := newTestRouter(ledger)

	for i := 0; i < 3; i++ {
		w := doJSON(t, mux, http.MethodPost, "/api/certificates/issue", api.IssueRequest{
			Token: fmt.Sprintf("uuid-history-%d", i), HolderID: "1", FullName: "A", Title: "T", Issuer: "I",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w := doJSON(t, mux, http.MethodPost, "/api/certificates/revoke", api.RevokeRequest{Token: "uuid-history-0"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, mux, http.MethodGet, "/api/certificates/history", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.HistoryResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Events, 4)
	for i := 1; i < len(resp.Events); i++ {
		assert.GreaterOrEqual(t, resp.Events[i-1].Timestamp, resp.Events[i].Timestamp)
	}

	w = doJSON(t, mux, http.MethodGet, "/api/certificates/history?kind=revoked", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = api.HistoryResponse{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "revoked", resp.Events[0].Kind)
}

func TestHandleHistory_UnknownKind(t *testing.T) {
	mux := newTestRouter(registry.NewMemoryLedger())

	w := doJSON(t, mux, http.MethodGet, "/api/certificates/history?kind=expired", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleVerify_LedgerFailure(t *testing.T) {
	mockLedger := new(registry.MockLedger)
	mockLedger.On("Verify", mock.Anything, mock.Anything, mock.Anything).
		Return(interfaces.VerificationResult{}, errors.New("rpc connection refused"))

	mux := newTestRouter(mockLedger)

	w := doJSON(t, mux, http.MethodPost, "/api/certificates/verify", api.VerifyRequest{
		Token: "uuid-x", HolderID: "1", FullName: "A",
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	mockLedger.AssertExpectations(t)
}

func TestHandleIssue_MalformedBody(t *testing.T) {
	mux := newTestRouter(registry.NewMemoryLedger())

	req := httptest.NewRequest(http.MethodPost, "/api/certificates/issue", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

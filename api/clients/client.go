// Package clients provides a Go HTTP client for the certificate registry
// API, used by the command line tools and by integration tests.
package clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/certledger/cert-registry-backend/api"
)

// RegistryClient talks to a certificate registry server over HTTP.
type RegistryClient struct {
	// ServerAddr is the base URL of the registry server, e.g.
	// http://127.0.0.1:8080.
	ServerAddr string

	// HTTPClient is the client used for requests. When nil,
	// http.DefaultClient is used.
	HTTPClient *http.Client
}

// Issue records a new certificate and returns its identifiers.
func (c *RegistryClient) Issue(req *api.IssueRequest) (*api.IssueResponse, error) {
	var resp api.IssueResponse
	if err := c.post("/api/certificates/issue", req, &resp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify checks a certificate against the registry.
func (c *RegistryClient) Verify(req *api.VerifyRequest) (*api.VerifyResponse, error) {
	var resp api.VerifyResponse
	if err := c.post("/api/certificates/verify", req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Revoke marks a certificate as revoked.
func (c *RegistryClient) Revoke(req *api.RevokeRequest) (*api.RevokeResponse, error) {
	var resp api.RevokeResponse
	if err := c.post("/api/certificates/revoke", req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// History fetches the audit log, newest first. The kind parameter filters by
// event kind ("issued" or "revoked"); empty means both.
func (c *RegistryClient) History(kind string) (*api.HistoryResponse, error) {
	url := c.ServerAddr + "/api/certificates/history"
	if kind != "" {
		url += "?kind=" + kind
	}

	httpResp, err := c.httpClient().Get(url)
	if err != nil {
		return nil, fmt.Errorf("could not request history endpoint: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, responseError("history", httpResp)
	}

	var resp api.HistoryResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("could not parse history response: %w", err)
	}
	return &resp, nil
}

func (c *RegistryClient) post(path string, payload, dst any, wantStatus int) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.ServerAddr+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return fmt.Errorf("could not request %s: %w", path, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != wantStatus {
		return responseError(path, httpResp)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(dst); err != nil {
		return fmt.Errorf("could not parse %s response: %w", path, err)
	}
	return nil
}

func (c *RegistryClient) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func responseError(endpoint string, resp *http.Response) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s endpoint returned non-200 response: %d", endpoint, resp.StatusCode)
	}

	var parsed api.ErrorResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err == nil && parsed.Error != "" {
		return fmt.Errorf("%s endpoint returned error %d: %s", endpoint, resp.StatusCode, parsed.Error)
	}
	return fmt.Errorf("%s endpoint returned error %d: %s", endpoint, resp.StatusCode, string(bodyBytes))
}

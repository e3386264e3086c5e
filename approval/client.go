/*
client.go - HTTP client for the approval service

PURPOSE:
  Thin client over the approval API. Authentication is a bearer token
  obtained from Login and attached to every subsequent supervisor call;
  the token is opaque to this client. Submitting a timesheet is public.

ERROR HANDLING:
  Failures come back as an error with the server's message; the caller's
  in-memory state is never touched, so the user can simply retry. No
  automatic retry happens here.
*/
package approval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/warp/timeclock-engine/timesheet"
)

// Client talks to the approval service.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs a previously obtained bearer token, restoring a
// saved supervisor session.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current bearer token, for session persistence.
func (c *Client) Token() string { return c.token }

// =============================================================================
// PUBLIC ENDPOINTS
// =============================================================================

// Health reports whether the service is reachable and healthy.
func (c *Client) Health(ctx context.Context) bool {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.request(ctx, http.MethodGet, "/api/health", nil, &resp); err != nil {
		return false
	}
	return resp.Status == "ok"
}

// Supervisors lists the registered supervisor display names.
func (c *Client) Supervisors(ctx context.Context) ([]string, error) {
	var resp struct {
		Supervisors []string `json:"supervisors"`
	}
	if err := c.request(ctx, http.MethodGet, "/api/supervisors/list", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Supervisors, nil
}

// Submit sends a timesheet for review and returns the submission id.
func (c *Client) Submit(ctx context.Context, ts *timesheet.Timesheet) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	if err := c.request(ctx, http.MethodPost, "/api/timesheets/submit", ts, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// =============================================================================
// SUPERVISOR ENDPOINTS (bearer token required)
// =============================================================================

// Login authenticates a supervisor and installs the returned token.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.request(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// Logout invalidates the session client-side.
func (c *Client) Logout(ctx context.Context) error {
	err := c.request(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	c.token = ""
	return err
}

// ListByStatus fetches submissions in one review state.
func (c *Client) ListByStatus(ctx context.Context, status Status) ([]Submission, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown status %q", status)
	}
	var subs []Submission
	if err := c.request(ctx, http.MethodGet, "/api/timesheets/"+string(status), nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// Get fetches one submission by id.
func (c *Client) Get(ctx context.Context, id string) (*Submission, error) {
	var sub Submission
	if err := c.request(ctx, http.MethodGet, "/api/timesheets/"+id, nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Approve marks a submission approved with the supervisor's signature
// image and date.
func (c *Client) Approve(ctx context.Context, id, signature, signatureDate string) error {
	body := map[string]string{
		"supervisorSignature":     signature,
		"supervisorSignatureDate": signatureDate,
	}
	return c.request(ctx, http.MethodPost, "/api/timesheets/"+id+"/approve", body, nil)
}

// Reject marks a submission rejected with a reason.
func (c *Client) Reject(ctx context.Context, id, reason string) error {
	body := map[string]string{"reason": reason}
	return c.request(ctx, http.MethodPost, "/api/timesheets/"+id+"/reject", body, nil)
}

// Delete removes a submission.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/api/timesheets/"+id, nil, nil)
}

// =============================================================================
// TRANSPORT
// =============================================================================

func (c *Client) request(ctx context.Context, method, path string, body, out any) error {
	if c.baseURL == "" {
		return fmt.Errorf("approval server URL not configured")
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, e.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

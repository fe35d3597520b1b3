// Package backend is the HTTP client for the Qiimeet REST backend. The
// backend is opaque to the console: these are thin read wrappers, all
// business logic stays server-side.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Pythra/qiimeet-admin/subadmins"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ErrUnavailable wraps every transport, status and decode failure so callers
// can tell "backend down" apart from "no data".
var ErrUnavailable = errors.New("backend unavailable")

var _ subadmins.Repo = (*Client)(nil)

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (primarily for testing
// and for callers that need custom timeouts).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

func New(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    http.DefaultClient,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

type subAdminsResponse struct {
	Success   bool                `json:"success"`
	SubAdmins []subadmins.Account `json:"subAdmins"`
}

// List fetches the current sub-admin directory. It implements subadmins.Repo
// for the authenticator's login lookup.
func (c *Client) List(ctx context.Context) ([]subadmins.Account, error) {
	var resp subAdminsResponse
	if err := c.get(ctx, "/admin/sub-admins", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, errors.Wrap(ErrUnavailable, "[Client.List] backend reported failure")
	}
	return resp.SubAdmins, nil
}

// DashboardStats mirrors GET /admin/dashboard/stats.
type DashboardStats struct {
	Users struct {
		Total   int `json:"total"`
		Active  int `json:"active"`
		Blocked int `json:"blocked"`
	} `json:"users"`
}

func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var resp struct {
		Success bool           `json:"success"`
		Stats   DashboardStats `json:"stats"`
	}
	if err := c.get(ctx, "/admin/dashboard/stats", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, errors.Wrap(ErrUnavailable, "[Client.DashboardStats] backend reported failure")
	}
	return &resp.Stats, nil
}

// Users mirrors GET /admin/users. Records stay opaque: the console only
// displays them.
func (c *Client) Users(ctx context.Context, page, limit int) ([]json.RawMessage, error) {
	var resp struct {
		Success bool              `json:"success"`
		Users   []json.RawMessage `json:"users"`
	}
	path := fmt.Sprintf("/admin/users?page=%d&limit=%d", page, limit)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, errors.Wrap(ErrUnavailable, "[Client.Users] backend reported failure")
	}
	return resp.Users, nil
}

// Transactions mirrors GET /admin/transactions.
func (c *Client) Transactions(ctx context.Context, page, limit int) ([]json.RawMessage, error) {
	var resp struct {
		Success      bool              `json:"success"`
		Transactions []json.RawMessage `json:"transactions"`
	}
	path := fmt.Sprintf("/admin/transactions?page=%d&limit=%d", page, limit)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, errors.Wrap(ErrUnavailable, "[Client.Transactions] backend reported failure")
	}
	return resp.Transactions, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "[Client.get] new request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Err(err).Str("path", path).Msg("Backend request failed")
		return errors.Wrapf(ErrUnavailable, "[Client.get] %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("Backend returned non-2xx")
		return errors.Wrapf(ErrUnavailable, "[Client.get] %s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(ErrUnavailable, "[Client.get] %s: decode: %v", path, err)
	}
	return nil
}

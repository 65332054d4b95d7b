// Package marketplace provides the HTTP client for the remote marketplace
// service: credential exchange and pending-offer listing. Every fetch
// re-authenticates; sessions are never cached across calls.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonathan/offer-dashboard/internal/config"
	"github.com/jonathan/offer-dashboard/internal/types"
)

// Marketplace endpoints and header names.
const (
	loginPath   = "/1.0/auth/login-v2"
	pendingPath = "/offer/pending-review"

	headerClient = "x-pulse-current-client"
	headerToken  = "x-pulse-token"
)

// Options configures the marketplace client.
type Options struct {
	AuthHost string
	APIHost  string
	ClientID string
	Timeout  time.Duration
}

// DefaultOptions returns sensible defaults for the marketplace client.
func DefaultOptions() *Options {
	return &Options{
		AuthHost: config.DefaultAuthHost,
		APIHost:  config.DefaultAPIHost,
		ClientID: config.DefaultClientID,
		Timeout:  config.DefaultHTTPTimeout,
	}
}

// Client talks to the marketplace auth and listing hosts.
type Client struct {
	opts *Options
	http *http.Client
}

// NewClient creates a marketplace client.
func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Timeout == 0 {
		opts.Timeout = config.DefaultHTTPTimeout
	}
	return &Client{
		opts: opts,
		http: &http.Client{Timeout: opts.Timeout},
	}
}

// loginRequest is the credential exchange payload.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	App      string `json:"app"`
}

// loginResponse mirrors the nested token envelope of the login endpoint.
type loginResponse struct {
	Data struct {
		Auth []struct {
			PermissionToken string `json:"permissionToken"`
			AuthToken       string `json:"authToken"`
		} `json:"auth"`
	} `json:"data"`
}

// offersResponse wraps the listing payload. A missing offers field is an
// empty result, not an error.
type offersResponse struct {
	Offers []types.Offer `json:"offers"`
}

// Authenticate exchanges credentials for a session. No retry; failure is
// surfaced immediately to the caller.
func (c *Client) Authenticate(ctx context.Context, email, password, app string) (*types.AuthSession, error) {
	payload, err := json.Marshal(loginRequest{Email: email, Password: password, App: app})
	if err != nil {
		return nil, &AuthenticationError{Message: "failed to encode login request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.AuthHost+loginPath, bytes.NewReader(payload))
	if err != nil {
		return nil, &AuthenticationError{Message: "failed to create login request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &AuthenticationError{Message: "login request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &AuthenticationError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &AuthenticationError{Message: "failed to read login response", Cause: err}
	}

	var parsed loginResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &AuthenticationError{Message: "malformed login response", Cause: err}
	}
	if len(parsed.Data.Auth) == 0 {
		return nil, &AuthenticationError{Message: "login response missing auth tokens"}
	}

	auth := parsed.Data.Auth[0]
	if auth.PermissionToken == "" || auth.AuthToken == "" {
		return nil, &AuthenticationError{Message: "login response missing auth tokens"}
	}

	return &types.AuthSession{
		PermissionToken: auth.PermissionToken,
		AuthToken:       auth.AuthToken,
	}, nil
}

// FetchPendingOffers lists offers awaiting review. Both session tokens travel
// as distinct headers: the permission token under a custom name, the auth
// token as the bearer credential.
func (c *Client) FetchPendingOffers(ctx context.Context, session *types.AuthSession) ([]types.Offer, error) {
	if session == nil {
		return nil, &OfferFetchError{Message: "no session"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.APIHost+pendingPath, nil)
	if err != nil {
		return nil, &OfferFetchError{Message: "failed to create listing request", Cause: err}
	}
	req.Header.Set(headerClient, c.opts.ClientID)
	req.Header.Set(headerToken, session.PermissionToken)
	req.Header.Set("Authorization", "Bearer "+session.AuthToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &OfferFetchError{Message: "listing request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &OfferFetchError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &OfferFetchError{Message: "failed to read listing response", Cause: err}
	}

	var parsed offersResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &OfferFetchError{Message: "malformed listing response", Cause: err}
	}

	// Absent offers field decodes to nil; normalize so callers can tell
	// "fetched nothing" apart from "never fetched".
	if parsed.Offers == nil {
		return []types.Offer{}, nil
	}
	return parsed.Offers, nil
}

// FetchPendingOffersForUser authenticates and then lists pending offers in
// one step. Each call performs a fresh login.
func (c *Client) FetchPendingOffersForUser(ctx context.Context, creds types.Credentials) ([]types.Offer, error) {
	session, err := c.Authenticate(ctx, creds.Email, creds.Password, creds.AppOrDefault())
	if err != nil {
		return nil, err
	}
	return c.FetchPendingOffers(ctx, session)
}

// Package client issues the console's authenticated HTTP calls against the
// CampusHub REST backend: one resource client per entity kind, plus the
// login call. Responses are decoded through the kind's descriptor so a
// malformed backend payload fails fast instead of leaking into a screen.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	api "github.com/campushub/admin-console/api/v1alpha1"
	"github.com/campushub/admin-console/internal/registry"
	"github.com/campushub/admin-console/internal/session"
	"github.com/campushub/admin-console/pkg/requestid"
)

// Client talks to one CampusHub backend on behalf of one session. It holds
// no per-kind state; Resource scopes it to a collection.
type Client struct {
	server    string
	assetBase string
	http      *http.Client
	session   *session.Session
}

// New builds a client for the given server origin. The session is read on
// every call and never mutated here.
func New(server, assetBase string, sess *session.Session) *Client {
	return &Client{
		server:    strings.TrimRight(server, "/"),
		assetBase: strings.TrimRight(assetBase, "/"),
		http:      NewHTTPClient(),
		session:   sess,
	}
}

// NewHTTPClient returns the transport used for every console call.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

// Resource scopes the client to one entity kind.
func (c *Client) Resource(d *registry.Descriptor) *ResourceClient {
	return &ResourceClient{client: c, desc: d}
}

// AssetURL resolves a stored attachment reference against the configured
// asset origin. Absolute references pass through untouched.
func (c *Client) AssetURL(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return c.assetBase + "/" + strings.TrimLeft(ref, "/")
}

// Login exchanges credentials for a bearer token at /api/auth/login. The
// role gate runs client-side too so a non-admin token is never persisted, but
// the backend remains the authority on every later call.
func (c *Client) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	body, err := json.Marshal(api.AuthRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("encoding login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.server+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	requestid.Set(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, NewErrNetwork("login", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewErrNetwork("login", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errorFromStatus("login", "session", "", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var auth api.AuthResponse
	if err := json.Unmarshal(respBody, &auth); err != nil {
		return nil, NewErrValidation("login", "malformed auth response")
	}
	if auth.Token == "" {
		return nil, NewErrValidation("login", "auth response carries no token")
	}
	if auth.Role != session.AdminRole {
		return nil, NewErrAuth("login")
	}
	return &auth, nil
}

// do runs one authenticated request and hands back the raw body of a 2xx
// response. Every failure is mapped onto the error taxonomy; there are no
// retries anywhere in the console.
func (c *Client) do(ctx context.Context, op, kind, id, method, path string, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.server+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.session != nil && c.session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}
	requestid.Set(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, NewErrNetwork(op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewErrNetwork(op, err)
	}
	zap.S().Debugw("api call", "method", method, "path", path, "status", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromStatus(op, kind, id, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return respBody, nil
}

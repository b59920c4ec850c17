package ticktick

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"tickbridge/internal/application"
	"tickbridge/internal/ports"
)

const (
	defaultOpenBaseURL    = "https://api.ticktick.com/open/v1"
	defaultSessionBaseURL = "https://api.ticktick.com/api/v2"

	webOrigin = "https://ticktick.com"
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36"
)

// Client routes calls to the correct API surface. It picks the base URL and
// header set per call from the AuthMethod, normalizes failures into the
// application error taxonomy, and is the only component that mutates the
// SessionStore.
type Client struct {
	httpClient  *http.Client
	creds       ports.CredentialSource
	store       *SessionStore
	auth        *Authenticator
	openBase    string
	sessionBase string
	logger      *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithBaseURLs overrides both surface base URLs (tests, self-hosted
// deployments).
func WithBaseURLs(open, session string) Option {
	return func(c *Client) {
		if open != "" {
			c.openBase = open
		}
		if session != "" {
			c.sessionBase = session
		}
	}
}

// NewClient creates a router over the given credential source.
func NewClient(creds ports.CredentialSource, opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		creds:       creds,
		store:       NewSessionStore(),
		openBase:    defaultOpenBaseURL,
		sessionBase: defaultSessionBaseURL,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.auth = NewAuthenticator(c.httpClient, c.sessionBase, c.logger)
	return c
}

// Store exposes the session store for tests and diagnostics.
func (c *Client) Store() *SessionStore {
	return c.store
}

// Call executes one request against the surface selected by auth. body, when
// non-nil, is JSON-encoded; query, when non-nil, is appended to the URL.
// The response body is returned raw for the caller to decode.
func (c *Client) Call(ctx context.Context, auth application.AuthMethod, method string, ep Endpoint, body any, query url.Values) ([]byte, error) {
	if ep.SessionOnly && auth != application.AuthSession {
		return nil, &application.IncompatibleProtocolError{Endpoint: ep.Path, Auth: auth}
	}

	var principal string
	base := c.openBase
	if auth == application.AuthSession {
		base = c.sessionBase
	}

	fullURL := base + ep.Path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	switch auth {
	case application.AuthToken, application.AuthOAuth2:
		token, err := c.creds.Bearer(ctx)
		if err != nil {
			return nil, err
		}
		if token == "" {
			return nil, fmt.Errorf("%s auth: %w", auth, application.ErrNoCredentials)
		}
		req.Header.Set("Authorization", "Bearer "+token)

	case application.AuthSession:
		username, password, err := c.creds.Login(ctx)
		if err != nil {
			return nil, err
		}
		if username == "" {
			return nil, fmt.Errorf("session auth: %w", application.ErrNoCredentials)
		}
		principal = username
		sess, err := c.store.Acquire(ctx, principal, func(ctx context.Context, deviceID string) (Session, error) {
			return c.auth.SignOn(ctx, username, password, deviceID)
		})
		if err != nil {
			return nil, err
		}
		if err := setSessionHeaders(req, sess.DeviceID); err != nil {
			return nil, err
		}
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: sess.Token})

	default:
		return nil, fmt.Errorf("unsupported auth method %v", auth)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, ep.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read response: %w", method, ep.Path, err)
	}

	c.logger.Debug("api call",
		zap.String("method", method),
		zap.String("endpoint", ep.Path),
		zap.Stringer("auth", auth),
		zap.Int("status", resp.StatusCode),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if auth == application.AuthSession {
			// Evict before surfacing so the next attempt signs on fresh.
			c.store.Evict(principal)
			c.logger.Debug("session evicted", zap.String("principal", principal))
			return nil, &application.AuthExpiredError{Principal: principal, Status: resp.StatusCode}
		}
		return nil, &application.APIError{Status: resp.StatusCode, Endpoint: ep.Path, Body: string(raw)}

	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s %s: %w", method, ep.Path, application.ErrNotFound)

	case resp.StatusCode >= 400:
		return nil, &application.APIError{Status: resp.StatusCode, Endpoint: ep.Path, Body: string(raw)}
	}

	return raw, nil
}

// setSessionHeaders applies the browser-style header block every
// session-surface request needs.
func setSessionHeaders(req *http.Request, deviceID string) error {
	dev, err := deviceHeader(deviceID)
	if err != nil {
		return err
	}
	req.Header.Set("X-Device", dev)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Origin", webOrigin)
	req.Header.Set("Referer", webOrigin+"/")
	return nil
}

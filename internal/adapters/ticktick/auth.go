package ticktick

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"tickbridge/internal/application"
)

// sessionCookie is the cookie carrying the session token.
const sessionCookie = "t"

// signOnResponse is what the sign-on endpoint returns. The vendor
// inconsistently puts the token in the body or only in a Set-Cookie header;
// AuthID without a token signals an unsupported two-factor challenge.
type signOnResponse struct {
	Token        string `json:"token"`
	InboxID      string `json:"inboxId"`
	UserID       string `json:"userId"`
	AuthID       string `json:"authId"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// Authenticator performs the username/password sign-on handshake against the
// session surface.
type Authenticator struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewAuthenticator creates an authenticator for the given session base URL.
func NewAuthenticator(httpClient *http.Client, baseURL string, logger *zap.Logger) *Authenticator {
	return &Authenticator{httpClient: httpClient, baseURL: baseURL, logger: logger}
}

// SignOn exchanges credentials for a session token. The supplied deviceID
// becomes the session's device fingerprint. The caller (SessionStore.Acquire)
// is responsible for caching; SignOn itself is stateless.
func (a *Authenticator) SignOn(ctx context.Context, username, password, deviceID string) (Session, error) {
	const endpoint = "/user/signon"

	body, err := encodeSpaced([]pair{
		{"username", username},
		{"password", password},
	})
	if err != nil {
		return Session{}, fmt.Errorf("encode sign-on body: %w", err)
	}

	url := a.baseURL + endpoint + "?wc=true&remember=true"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		return Session{}, fmt.Errorf("create sign-on request: %w", err)
	}
	if err := setSessionHeaders(req, deviceID); err != nil {
		return Session{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("sign-on request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Session{}, fmt.Errorf("read sign-on response: %w", err)
	}

	var sr signOnResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &sr); err != nil {
			return Session{}, &application.ProtocolError{
				Endpoint: endpoint,
				Reason:   fmt.Sprintf("malformed sign-on body: %v", err),
			}
		}
	}

	if sr.ErrorCode != "" {
		a.logger.Debug("sign-on rejected", zap.String("code", sr.ErrorCode))
		return Session{}, &application.AuthenticationFailedError{Code: sr.ErrorCode, Message: sr.ErrorMessage}
	}
	if sr.Token == "" && sr.AuthID != "" {
		// Two-factor challenge. This protocol is not supported and must
		// not be retried.
		return Session{}, fmt.Errorf("account %s: %w", username, application.ErrTwoFactorRequired)
	}
	if resp.StatusCode >= 400 {
		return Session{}, &application.APIError{Status: resp.StatusCode, Endpoint: endpoint, Body: string(raw)}
	}

	token := sr.Token
	if token == "" {
		token = cookieToken(resp.Cookies())
	}
	if token == "" {
		return Session{}, &application.ProtocolError{
			Endpoint: endpoint,
			Reason:   "no session token in response body or cookies",
		}
	}

	a.logger.Debug("signed on", zap.String("username", username), zap.String("inboxId", sr.InboxID))
	return Session{Token: token, DeviceID: deviceID, InboxID: sr.InboxID}, nil
}

// cookieToken extracts the session token from Set-Cookie headers.
func cookieToken(cookies []*http.Cookie) string {
	for _, c := range cookies {
		if c.Name == sessionCookie {
			return c.Value
		}
	}
	return ""
}

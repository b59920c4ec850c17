package ticktick

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// sessionTTL stays under the vendor's ~24h cookie lifetime with margin.
const sessionTTL = 23 * time.Hour

// Session is the ephemeral credential for the session surface. One exists
// per signed-on principal at a time; the SessionStore owns its lifecycle.
type Session struct {
	Token     string
	DeviceID  string
	InboxID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// SignOnFunc performs the sign-on handshake for a principal using the given
// device id. Implemented by Authenticator.SignOn via closure.
type SignOnFunc func(ctx context.Context, deviceID string) (Session, error)

// SessionStore caches sessions keyed by principal (account identifier).
// Refreshes are single-flighted: concurrent acquisitions for one principal
// share a single sign-on instead of racing the vendor's rate limiter.
// Device ids survive eviction so refreshed sessions keep the fingerprint.
type SessionStore struct {
	mu        sync.Mutex
	sessions  map[string]Session
	deviceIDs map[string]string
	flight    singleflight.Group

	now func() time.Time // test hook
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions:  make(map[string]Session),
		deviceIDs: make(map[string]string),
		now:       time.Now,
	}
}

// Get returns the cached session for principal if it has not expired.
// Expired entries are evicted on the way out.
func (s *SessionStore) Get(principal string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[principal]
	if !ok {
		return Session{}, false
	}
	if !s.now().Before(sess.ExpiresAt) {
		delete(s.sessions, principal)
		return Session{}, false
	}
	return sess, true
}

// Put stores a session for principal, stamping IssuedAt and ExpiresAt.
func (s *SessionStore) Put(principal string, sess Session) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess.IssuedAt = now
	sess.ExpiresAt = now.Add(sessionTTL)
	s.sessions[principal] = sess
	if sess.DeviceID != "" {
		s.deviceIDs[principal] = sess.DeviceID
	}
	return sess
}

// Evict removes the principal's session immediately. The device id is kept
// for the next sign-on.
func (s *SessionStore) Evict(principal string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, principal)
}

// Acquire returns the cached session or signs on through signOn, collapsing
// concurrent refreshes for the same principal into one call. On failure or
// cancellation nothing is written to the store.
func (s *SessionStore) Acquire(ctx context.Context, principal string, signOn SignOnFunc) (Session, error) {
	if sess, ok := s.Get(principal); ok {
		return sess, nil
	}

	v, err, _ := s.flight.Do(principal, func() (any, error) {
		// A concurrent caller may have refreshed while we waited.
		if sess, ok := s.Get(principal); ok {
			return sess, nil
		}
		sess, err := signOn(ctx, s.deviceID(principal))
		if err != nil {
			return nil, err
		}
		return s.Put(principal, sess), nil
	})
	if err != nil {
		return Session{}, err
	}
	return v.(Session), nil
}

// deviceID returns the principal's established device id, minting one on
// first use.
func (s *SessionStore) deviceID(principal string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.deviceIDs[principal]; ok {
		return id
	}
	id := NewDeviceID()
	s.deviceIDs[principal] = id
	return id
}

package ticktick

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"tickbridge/internal/application"
)

type staticCreds struct {
	token    string
	username string
	password string
}

func (c staticCreds) Bearer(ctx context.Context) (string, error) {
	return c.token, nil
}

func (c staticCreds) Login(ctx context.Context) (string, string, error) {
	return c.username, c.password, nil
}

// sessionServer fakes the session surface: sign-on plus one API endpoint.
type sessionServer struct {
	signOns    int32
	apiStatus  int32
	lastCookie atomic.Value
	lastDevice atomic.Value
}

func (s *sessionServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/user/signon") {
			atomic.AddInt32(&s.signOns, 1)
			w.Write([]byte(`{"token":"sess-tok","inboxId":"inbox-1"}`))
			return
		}
		s.lastCookie.Store(r.Header.Get("Cookie"))
		s.lastDevice.Store(r.Header.Get("X-Device"))
		if status := atomic.LoadInt32(&s.apiStatus); status != 0 {
			w.WriteHeader(int(status))
			return
		}
		w.Write([]byte(`[]`))
	}
}

func newSessionClient(t *testing.T, srv *sessionServer) *Client {
	t.Helper()
	ts := httptest.NewServer(srv.handler())
	t.Cleanup(ts.Close)
	return NewClient(
		staticCreds{username: "u1", password: "pw"},
		WithHTTPClient(ts.Client()),
		WithBaseURLs(ts.URL+"/open", ts.URL),
	)
}

func TestCall_SessionEndToEnd(t *testing.T) {
	srv := &sessionServer{}
	client := newSessionClient(t, srv)
	before := time.Now()

	_, err := client.Call(context.Background(), application.AuthSession, "GET", epHabits(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	if got := atomic.LoadInt32(&srv.signOns); got != 1 {
		t.Errorf("sign-ons = %d, want 1", got)
	}

	sess, ok := client.Store().Get("u1")
	if !ok {
		t.Fatal("no session cached for principal u1")
	}
	if sess.Token != "sess-tok" {
		t.Errorf("cached token = %q", sess.Token)
	}
	ttl := sess.ExpiresAt.Sub(before)
	if ttl < sessionTTL-time.Minute || ttl > sessionTTL+time.Minute {
		t.Errorf("session TTL = %v, want ~%v", ttl, sessionTTL)
	}

	if cookie, _ := srv.lastCookie.Load().(string); !strings.Contains(cookie, "t=sess-tok") {
		t.Errorf("request cookie = %q, want t=sess-tok", cookie)
	}
	device, _ := srv.lastDevice.Load().(string)
	if !strings.Contains(device, `"id": "`+sess.DeviceID+`"`) {
		t.Errorf("X-Device = %q does not carry stored device id %q", device, sess.DeviceID)
	}

	// Second call reuses the cached session.
	if _, err := client.Call(context.Background(), application.AuthSession, "GET", epHabits(), nil, nil); err != nil {
		t.Fatal(err)
	}
	if got := atomic.LoadInt32(&srv.signOns); got != 1 {
		t.Errorf("sign-ons after second call = %d, want 1", got)
	}
}

func TestCall_AuthExpiryEvicts(t *testing.T) {
	srv := &sessionServer{}
	client := newSessionClient(t, srv)

	// Prime the session, then make the API start rejecting it.
	if _, err := client.Call(context.Background(), application.AuthSession, "GET", epHabits(), nil, nil); err != nil {
		t.Fatal(err)
	}
	atomic.StoreInt32(&srv.apiStatus, http.StatusUnauthorized)

	_, err := client.Call(context.Background(), application.AuthSession, "GET", epHabits(), nil, nil)
	if !errors.Is(err, application.ErrAuthExpired) {
		t.Fatalf("err = %v, want ErrAuthExpired", err)
	}

	var aee *application.AuthExpiredError
	if !errors.As(err, &aee) || aee.Principal != "u1" {
		t.Fatalf("err = %#v, want AuthExpiredError for u1", err)
	}
	if _, ok := client.Store().Get("u1"); ok {
		t.Fatal("session still cached after 401")
	}
}

func TestCall_SessionOnlyRefusedOnTokenSurface(t *testing.T) {
	var called int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&called, 1)
	}))
	defer ts.Close()

	client := NewClient(staticCreds{token: "tok"}, WithHTTPClient(ts.Client()), WithBaseURLs(ts.URL, ts.URL))

	_, err := client.Call(context.Background(), application.AuthToken, "GET", epHabits(), nil, nil)

	var ipe *application.IncompatibleProtocolError
	if !errors.As(err, &ipe) {
		t.Fatalf("err = %v, want IncompatibleProtocolError", err)
	}
	if atomic.LoadInt32(&called) != 0 {
		t.Error("router hit the network for an incompatible protocol")
	}
}

func TestCall_TokenBearerHeader(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	client := NewClient(staticCreds{token: "static-tok"}, WithHTTPClient(ts.Client()), WithBaseURLs(ts.URL, ts.URL+"/v2"))

	if _, err := client.Call(context.Background(), application.AuthToken, "GET", epProjects(), nil, nil); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer static-tok" {
		t.Errorf("authorization = %q", gotAuth)
	}
}

func TestCall_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := NewClient(staticCreds{token: "tok"}, WithHTTPClient(ts.Client()), WithBaseURLs(ts.URL, ts.URL+"/v2"))

	_, err := client.Call(context.Background(), application.AuthToken, "GET", epProjects(), nil, nil)
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCall_ServerErrorKeepsDiagnostics(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream sad`))
	}))
	defer ts.Close()

	client := NewClient(staticCreds{token: "tok"}, WithHTTPClient(ts.Client()), WithBaseURLs(ts.URL, ts.URL+"/v2"))

	_, err := client.Call(context.Background(), application.AuthToken, "GET", epProjects(), nil, nil)

	var apiErr *application.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want APIError", err)
	}
	if apiErr.Status != http.StatusBadGateway || apiErr.Body != "upstream sad" {
		t.Errorf("apiErr = %+v", apiErr)
	}
	if apiErr.Endpoint != "/project" {
		t.Errorf("endpoint = %q", apiErr.Endpoint)
	}
}

func TestCall_MissingCredentials(t *testing.T) {
	client := NewClient(staticCreds{})

	_, err := client.Call(context.Background(), application.AuthToken, "GET", epProjects(), nil, nil)
	if !errors.Is(err, application.ErrNoCredentials) {
		t.Fatalf("err = %v, want ErrNoCredentials", err)
	}
}

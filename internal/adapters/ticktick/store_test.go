package ticktick

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSessionStore_TTL(t *testing.T) {
	store := NewSessionStore()
	current := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	store.Put("u1", Session{Token: "tok", DeviceID: "dev"})

	// Just under the TTL: still served.
	current = current.Add(sessionTTL - time.Minute)
	if _, ok := store.Get("u1"); !ok {
		t.Fatal("session should still be valid before TTL")
	}

	// At the TTL boundary: expired and evicted.
	current = current.Add(time.Minute)
	if _, ok := store.Get("u1"); ok {
		t.Fatal("session should be expired at TTL")
	}

	// Eviction is permanent, not just a filtered read.
	current = current.Add(-time.Hour)
	if _, ok := store.Get("u1"); ok {
		t.Fatal("expired session should have been evicted, not filtered")
	}
}

func TestSessionStore_Evict(t *testing.T) {
	store := NewSessionStore()
	store.Put("u1", Session{Token: "tok"})
	store.Evict("u1")

	if _, ok := store.Get("u1"); ok {
		t.Fatal("session present after evict")
	}
}

func TestSessionStore_SingleFlight(t *testing.T) {
	store := NewSessionStore()

	var calls int32
	release := make(chan struct{})
	signOn := func(ctx context.Context, deviceID string) (Session, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return Session{Token: "tok", DeviceID: deviceID}, nil
	}

	const callers = 8
	var wg sync.WaitGroup
	sessions := make([]Session, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessions[i], errs[i] = store.Acquire(context.Background(), "u1", signOn)
		}(i)
	}

	// Let the goroutines pile up on the in-flight sign-on before releasing.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("sign-on invoked %d times, want 1", got)
	}
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if sessions[i].Token != "tok" {
			t.Errorf("caller %d got token %q", i, sessions[i].Token)
		}
	}
}

func TestSessionStore_DeviceIDSurvivesEviction(t *testing.T) {
	store := NewSessionStore()

	var first, second string
	signOn := func(ctx context.Context, deviceID string) (Session, error) {
		return Session{Token: "tok", DeviceID: deviceID}, nil
	}

	sess, err := store.Acquire(context.Background(), "u1", signOn)
	if err != nil {
		t.Fatal(err)
	}
	first = sess.DeviceID

	store.Evict("u1")

	sess, err = store.Acquire(context.Background(), "u1", signOn)
	if err != nil {
		t.Fatal(err)
	}
	second = sess.DeviceID

	if first == "" || first != second {
		t.Errorf("device id not preserved across refresh: %q then %q", first, second)
	}
}

func TestSessionStore_NoWriteOnFailure(t *testing.T) {
	store := NewSessionStore()

	boom := errors.New("boom")
	_, err := store.Acquire(context.Background(), "u1", func(ctx context.Context, deviceID string) (Session, error) {
		return Session{}, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if _, ok := store.Get("u1"); ok {
		t.Fatal("failed sign-on must not write a session")
	}
}

func TestSessionStore_AcquireSetsExpiry(t *testing.T) {
	store := NewSessionStore()
	current := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	sess, err := store.Acquire(context.Background(), "u1", func(ctx context.Context, deviceID string) (Session, error) {
		return Session{Token: "tok", DeviceID: deviceID}, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if want := current.Add(sessionTTL); !sess.ExpiresAt.Equal(want) {
		t.Errorf("expiresAt = %v, want %v", sess.ExpiresAt, want)
	}
	if !sess.IssuedAt.Equal(current) {
		t.Errorf("issuedAt = %v, want %v", sess.IssuedAt, current)
	}
}

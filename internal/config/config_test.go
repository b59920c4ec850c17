package config

import (
	"context"
	"errors"
	"testing"

	"tickbridge/internal/application"
)

func TestMethod(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		want    application.AuthMethod
		wantErr bool
	}{
		{"explicit session", Config{AuthMethod: "session"}, application.AuthSession, false},
		{"explicit oauth2", Config{AuthMethod: "oauth2"}, application.AuthOAuth2, false},
		{"explicit token", Config{AuthMethod: "token"}, application.AuthToken, false},
		{"inferred session from login", Config{Username: "u@example.com", Password: "pw"}, application.AuthSession, false},
		{"token wins over login when both set", Config{Token: "tk", Username: "u", Password: "pw"}, application.AuthToken, false},
		{"empty config defaults to token", Config{}, application.AuthToken, false},
		{"unknown method", Config{AuthMethod: "basic"}, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.cfg.Method()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("TICKBRIDGE_TOKEN", "env-token")
	t.Setenv("TICKBRIDGE_AUTH_METHOD", "oauth2")

	cfg := Config{Token: "file-token"}
	applyEnv(&cfg)

	if cfg.Token != "env-token" {
		t.Errorf("env token should win, got %s", cfg.Token)
	}
	if cfg.AuthMethod != "oauth2" {
		t.Errorf("env auth method should win, got %s", cfg.AuthMethod)
	}
}

func TestBearerPrefersOAuthToken(t *testing.T) {
	cfg := Config{Token: "static", OAuthToken: "oauth"}
	got, err := cfg.Bearer(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "oauth" {
		t.Errorf("expected oauth token, got %s", got)
	}
}

func TestLoginRequiresBothCredentials(t *testing.T) {
	cfg := Config{Username: "u@example.com"}
	_, _, err := cfg.Login(context.Background())
	if !errors.Is(err, application.ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}
}

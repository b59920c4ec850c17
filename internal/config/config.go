package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"tickbridge/internal/application"
)

const configFileName = "config.toml"

// Config holds credentials and protocol selection. Values come from a TOML
// file under the user config dir, with TICKBRIDGE_* environment variables
// taking precedence over the file.
type Config struct {
	// AuthMethod selects the surface: "token", "oauth2" or "session".
	AuthMethod string `toml:"auth_method,omitempty"`

	// Token is a personal access token for the token surface.
	Token string `toml:"token,omitempty"`

	// OAuthToken is an OAuth2 access token; used instead of Token when set.
	OAuthToken string `toml:"oauth_token,omitempty"`

	// Username and Password drive the session sign-on handshake.
	Username string `toml:"username,omitempty"`
	Password string `toml:"password,omitempty"`

	// Base URL overrides for self-hosted deployments; empty means the
	// vendor defaults.
	OpenBaseURL    string `toml:"open_base_url,omitempty"`
	SessionBaseURL string `toml:"session_base_url,omitempty"`
}

// Load reads the config file (if present) and applies environment overrides.
// A missing file is not an error; env-only setups are fine.
func Load() (*Config, error) {
	var cfg Config

	path, err := configPath()
	if err == nil {
		if b, err := os.ReadFile(path); err == nil {
			if err := toml.Unmarshal(b, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	applyEnv(&cfg)
	return &cfg, nil
}

func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tickbridge", configFileName), nil
}

func applyEnv(cfg *Config) {
	for env, dst := range map[string]*string{
		"TICKBRIDGE_AUTH_METHOD": &cfg.AuthMethod,
		"TICKBRIDGE_TOKEN":       &cfg.Token,
		"TICKBRIDGE_OAUTH_TOKEN": &cfg.OAuthToken,
		"TICKBRIDGE_USERNAME":    &cfg.Username,
		"TICKBRIDGE_PASSWORD":    &cfg.Password,
		"TICKBRIDGE_OPEN_URL":    &cfg.OpenBaseURL,
		"TICKBRIDGE_SESSION_URL": &cfg.SessionBaseURL,
	} {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}
}

// Method resolves the configured auth method, inferring one from the
// available credentials when auth_method is unset: username/password imply
// the session surface, otherwise the token surface.
func (c *Config) Method() (application.AuthMethod, error) {
	if c.AuthMethod == "" {
		if c.Token == "" && c.OAuthToken == "" && c.Username != "" {
			return application.AuthSession, nil
		}
		return application.AuthToken, nil
	}
	return application.ParseAuthMethod(c.AuthMethod)
}

// Bearer returns the bearer token for the token surfaces. Part of the
// ports.CredentialSource contract.
func (c *Config) Bearer(_ context.Context) (string, error) {
	if c.OAuthToken != "" {
		return c.OAuthToken, nil
	}
	return c.Token, nil
}

// Login returns the username and password for the session sign-on handshake.
// Part of the ports.CredentialSource contract.
func (c *Config) Login(_ context.Context) (string, string, error) {
	if c.Username == "" || c.Password == "" {
		return "", "", fmt.Errorf("session surface: %w", application.ErrNoCredentials)
	}
	return c.Username, c.Password, nil
}

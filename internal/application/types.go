package application

import "fmt"

// AuthMethod selects which API surface and credential kind a call uses. It is
// resolved once per operation and threaded explicitly; nothing infers it
// per-call.
type AuthMethod int

const (
	// AuthToken uses a static bearer token against the official surface.
	AuthToken AuthMethod = iota
	// AuthOAuth2 uses an externally refreshed OAuth2 access token against
	// the official surface.
	AuthOAuth2
	// AuthSession uses a username/password sign-on and cookie session
	// against the internal surface.
	AuthSession
)

func (m AuthMethod) String() string {
	switch m {
	case AuthToken:
		return "token"
	case AuthOAuth2:
		return "oauth2"
	case AuthSession:
		return "session"
	default:
		return fmt.Sprintf("AuthMethod(%d)", int(m))
	}
}

// ParseAuthMethod maps a configuration string to an AuthMethod.
func ParseAuthMethod(s string) (AuthMethod, error) {
	switch s {
	case "token", "":
		return AuthToken, nil
	case "oauth2":
		return AuthOAuth2, nil
	case "session":
		return AuthSession, nil
	default:
		return 0, &ValidationError{
			Field:   "authMethod",
			Message: fmt.Sprintf("unknown auth method %q (expected token, oauth2 or session)", s),
		}
	}
}

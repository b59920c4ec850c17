package ports

import "context"

// CredentialSource supplies long-lived operator credentials. Implementations
// are the host's credential storage (here: the config package). OAuth2
// refresh is the source's responsibility; callers attach whatever Bearer
// returns.
type CredentialSource interface {
	// Bearer returns the static or OAuth2 access token for the official
	// surface.
	Bearer(ctx context.Context) (string, error)

	// Login returns the username/password pair used for session sign-on.
	Login(ctx context.Context) (username, password string, err error)
}

package auth

import "context"

// Authenticator defines the interface for unlocking the app.
// This abstraction allows swapping the passcode check for another method
// (per-device keys, OAuth, etc.) without changing the service layer code.
type Authenticator interface {
	// Authenticate verifies the credential presented by a client.
	// Returns ErrInvalidCredentials if it does not match.
	Authenticate(ctx context.Context, credential string) error
}

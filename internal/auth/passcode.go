package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid passcode")
	ErrWeakPasscode       = errors.New("passcode must be at least 4 characters")
)

// PasscodeAuthenticator checks a shared passcode against a bcrypt hash.
type PasscodeAuthenticator struct {
	hash []byte
}

var _ Authenticator = (*PasscodeAuthenticator)(nil)

// NewPasscodeAuthenticator creates an authenticator from a bcrypt hash as produced by HashPasscode.
func NewPasscodeAuthenticator(hash string) (*PasscodeAuthenticator, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("failed to parse passcode hash: %w", err)
	}
	return &PasscodeAuthenticator{hash: []byte(hash)}, nil
}

// Authenticate compares the passcode with the configured hash.
func (a *PasscodeAuthenticator) Authenticate(_ context.Context, passcode string) error {
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(passcode)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPasscode returns the bcrypt hash to put in PASSCODE_HASH.
func HashPasscode(passcode string) (string, error) {
	if len(passcode) < 4 {
		return "", ErrWeakPasscode
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passcode: %w", err)
	}
	return string(hashed), nil
}

package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned when an email/password pair is rejected.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Identity is an account verified by a Provider.
type Identity struct {
	UserID string
	Email  string
	// IDToken is the provider session token, empty for providers without one.
	IDToken string
}

// Provider verifies credentials and updates passwords.
//
// UpdatePassword must be called with an Identity freshly returned by
// SignIn so remote providers accept it as a recent login.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (Identity, error)
	UpdatePassword(ctx context.Context, identity Identity, newPassword string) error
}

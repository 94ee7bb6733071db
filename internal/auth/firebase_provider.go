package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mamadbah2/wms/pkg/clients/identity"
)

// Identity Toolkit reasons that mean the credential itself was wrong.
var rejectedReasons = map[string]bool{
	"EMAIL_NOT_FOUND":           true,
	"INVALID_PASSWORD":          true,
	"INVALID_LOGIN_CREDENTIALS": true,
	"USER_DISABLED":             true,
	"INVALID_EMAIL":             true,
}

// FirebaseProvider delegates authentication to Firebase Authentication.
type FirebaseProvider struct {
	client identity.Client
	logger *zap.Logger
}

// NewFirebaseProvider builds a provider backed by the Identity Toolkit client.
func NewFirebaseProvider(client identity.Client, logger *zap.Logger) *FirebaseProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FirebaseProvider{client: client, logger: logger}
}

// SignIn verifies the credential with accounts:signInWithPassword.
func (p *FirebaseProvider) SignIn(ctx context.Context, email, password string) (Identity, error) {
	resp, err := p.client.SignInWithPassword(ctx, email, password)
	if err != nil {
		return Identity{}, p.mapError(err)
	}
	return Identity{UserID: resp.LocalID, Email: resp.Email, IDToken: resp.IDToken}, nil
}

// UpdatePassword calls accounts:update with the identity's fresh id token.
func (p *FirebaseProvider) UpdatePassword(ctx context.Context, id Identity, newPassword string) error {
	if _, err := p.client.UpdatePassword(ctx, id.IDToken, newPassword); err != nil {
		return p.mapError(err)
	}
	return nil
}

func (p *FirebaseProvider) mapError(err error) error {
	var apiErr *identity.APIError
	if errors.As(err, &apiErr) && rejectedReasons[apiErr.Reason()] {
		p.logger.Debug("identity provider rejected credentials", zap.String("reason", apiErr.Reason()))
		return ErrInvalidCredentials
	}
	return err
}

package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/wms/internal/domain/models"
)

// UserStore is the persistence needed by LocalProvider.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUserPassword(ctx context.Context, id, passwordHash string) error
}

// LocalProvider authenticates against bcrypt hashes in the user collection.
type LocalProvider struct {
	store  UserStore
	logger *zap.Logger
}

// NewLocalProvider builds a provider backed by store.
func NewLocalProvider(store UserStore, logger *zap.Logger) *LocalProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalProvider{store: store, logger: logger}
}

// SignIn checks password against the stored bcrypt hash.
func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (Identity, error) {
	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, err
	}

	if !VerifyPassword(user.PasswordHash, password) {
		p.logger.Debug("password mismatch", zap.String("user_id", user.ID))
		return Identity{}, ErrInvalidCredentials
	}

	return Identity{UserID: user.ID, Email: user.Email}, nil
}

// UpdatePassword stores a new bcrypt hash for the identity.
func (p *LocalProvider) UpdatePassword(ctx context.Context, identity Identity, newPassword string) error {
	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return p.store.UpdateUserPassword(ctx, identity.UserID, hash)
}

package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/wms/internal/auth"
	"github.com/mamadbah2/wms/internal/domain/models"
	"github.com/mamadbah2/wms/pkg/errmsg"
)

var (
	// ErrValidation indicates a missing form field.
	ErrValidation = errors.New("please fill in all fields")
	// ErrPasswordMismatch indicates the new password and its confirmation differ.
	ErrPasswordMismatch = errors.New("new passwords do not match")
	// ErrIdentityProvider wraps provider failures other than rejected credentials.
	ErrIdentityProvider = errors.New("identity provider error")
)

// TokenIssuer signs application tokens.
type TokenIssuer interface {
	GenerateToken(identity auth.Identity) (string, error)
}

// Service handles login and password changes.
type Service struct {
	provider auth.Provider
	tokens   TokenIssuer
	logger   *zap.Logger
}

// NewService wires an account service.
func NewService(provider auth.Provider, tokens TokenIssuer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, tokens: tokens, logger: logger}
}

// Login verifies the credential and issues an application token.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return models.LoginResponse{}, ErrValidation
	}

	identity, err := s.provider.SignIn(ctx, email, req.Password)
	if err != nil {
		return models.LoginResponse{}, s.providerError("login", err)
	}

	token, err := s.tokens.GenerateToken(identity)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("user logged in", zap.String("user_id", identity.UserID))
	return models.LoginResponse{Token: token, UserID: identity.UserID, Email: identity.Email}, nil
}

// ChangePassword re-authenticates email with the current password, then
// sets the new one.
func (s *Service) ChangePassword(ctx context.Context, email string, req models.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmNewPassword == "" {
		return ErrValidation
	}
	if req.NewPassword != req.ConfirmNewPassword {
		return ErrPasswordMismatch
	}

	identity, err := s.provider.SignIn(ctx, email, req.CurrentPassword)
	if err != nil {
		return s.providerError("reauthenticate", err)
	}

	if err := s.provider.UpdatePassword(ctx, identity, req.NewPassword); err != nil {
		return s.providerError("update password", err)
	}

	s.logger.Info("password changed", zap.String("user_id", identity.UserID))
	return nil
}

func (s *Service) providerError(op string, err error) error {
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return auth.ErrInvalidCredentials
	}
	s.logger.Warn("identity provider failure", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%w: %s", ErrIdentityProvider, errmsg.Sanitize(err))
}

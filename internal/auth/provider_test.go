package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/mamadbah2/wms/internal/domain/models"
	"github.com/mamadbah2/wms/pkg/clients/identity"
)

type fakeUserStore struct {
	users   map[string]models.User
	updated map[string]string
}

func (s *fakeUserStore) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := s.users[email]
	if !ok {
		return models.User{}, models.ErrNotFound
	}
	return u, nil
}

func (s *fakeUserStore) UpdateUserPassword(_ context.Context, id, hash string) error {
	if s.updated == nil {
		s.updated = map[string]string{}
	}
	s.updated[id] = hash
	return nil
}

func TestLocalProvider(t *testing.T) {
	hash, _ := HashPassword("old-pass")
	store := &fakeUserStore{users: map[string]models.User{
		"admin@wms.test": {ID: "u1", Email: "admin@wms.test", PasswordHash: hash},
	}}
	p := NewLocalProvider(store, nil)
	ctx := context.Background()

	if _, err := p.SignIn(ctx, "nobody@wms.test", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v", err)
	}
	if _, err := p.SignIn(ctx, "admin@wms.test", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v", err)
	}

	id, err := p.SignIn(ctx, "admin@wms.test", "old-pass")
	if err != nil {
		t.Fatalf("SignIn() error: %v", err)
	}
	if id.UserID != "u1" {
		t.Fatalf("unexpected identity %+v", id)
	}

	if err := p.UpdatePassword(ctx, id, "new-pass"); err != nil {
		t.Fatalf("UpdatePassword() error: %v", err)
	}
	if !VerifyPassword(store.updated["u1"], "new-pass") {
		t.Fatal("stored hash does not match new password")
	}
}

type fakeIdentityClient struct {
	signInErr error
	updateErr error
	gotToken  string
}

func (c *fakeIdentityClient) SignInWithPassword(_ context.Context, email, _ string) (*identity.SignInResponse, error) {
	if c.signInErr != nil {
		return nil, c.signInErr
	}
	return &identity.SignInResponse{LocalID: "fb-1", Email: email, IDToken: "tok"}, nil
}

func (c *fakeIdentityClient) UpdatePassword(_ context.Context, idToken, _ string) (*identity.UpdateResponse, error) {
	c.gotToken = idToken
	if c.updateErr != nil {
		return nil, c.updateErr
	}
	return &identity.UpdateResponse{LocalID: "fb-1"}, nil
}

func TestFirebaseProviderMapsRejectedCredentials(t *testing.T) {
	client := &fakeIdentityClient{signInErr: &identity.APIError{Code: 400, Message: "INVALID_LOGIN_CREDENTIALS"}}
	p := NewFirebaseProvider(client, nil)

	if _, err := p.SignIn(context.Background(), "a@b.c", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v", err)
	}
}

func TestFirebaseProviderPassesOtherErrors(t *testing.T) {
	apiErr := &identity.APIError{Code: 400, Message: "WEAK_PASSWORD : Password should be at least 6 characters"}
	client := &fakeIdentityClient{updateErr: apiErr}
	p := NewFirebaseProvider(client, nil)

	id, err := p.SignIn(context.Background(), "a@b.c", "x")
	if err != nil {
		t.Fatalf("SignIn() error: %v", err)
	}

	err = p.UpdatePassword(context.Background(), id, "123")
	if errors.Is(err, ErrInvalidCredentials) || !errors.Is(err, apiErr) {
		t.Fatalf("got %v", err)
	}
	if client.gotToken != "tok" {
		t.Fatalf("update used token %q", client.gotToken)
	}
}

package account

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mamadbah2/wms/internal/auth"
	"github.com/mamadbah2/wms/internal/domain/models"
)

type fakeProvider struct {
	password  string
	updateErr error
	signIns   int
	updated   string
}

func (p *fakeProvider) SignIn(_ context.Context, email, password string) (auth.Identity, error) {
	p.signIns++
	if password != p.password {
		return auth.Identity{}, auth.ErrInvalidCredentials
	}
	return auth.Identity{UserID: "u1", Email: email, IDToken: "tok"}, nil
}

func (p *fakeProvider) UpdatePassword(_ context.Context, _ auth.Identity, newPassword string) error {
	if p.updateErr != nil {
		return p.updateErr
	}
	p.updated = newPassword
	return nil
}

type fakeIssuer struct{}

func (fakeIssuer) GenerateToken(identity auth.Identity) (string, error) {
	return "token-" + identity.UserID, nil
}

func TestLogin(t *testing.T) {
	svc := NewService(&fakeProvider{password: "pw"}, fakeIssuer{}, nil)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: " admin@wms.test ", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if resp.Token != "token-u1" || resp.Email != "admin@wms.test" {
		t.Fatalf("unexpected response %+v", resp)
	}

	if _, err := svc.Login(context.Background(), models.LoginRequest{Email: "admin@wms.test", Password: "bad"}); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("got %v", err)
	}
}

func TestChangePasswordValidation(t *testing.T) {
	tests := []struct {
		name string
		req  models.ChangePasswordRequest
		want error
	}{
		{"missing current", models.ChangePasswordRequest{NewPassword: "a", ConfirmNewPassword: "a"}, ErrValidation},
		{"missing confirm", models.ChangePasswordRequest{CurrentPassword: "pw", NewPassword: "a"}, ErrValidation},
		{"mismatch", models.ChangePasswordRequest{CurrentPassword: "pw", NewPassword: "a", ConfirmNewPassword: "b"}, ErrPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{password: "pw"}
			svc := NewService(provider, fakeIssuer{}, nil)

			err := svc.ChangePassword(context.Background(), "admin@wms.test", tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if provider.signIns != 0 {
				t.Fatal("provider must not be called for invalid input")
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	provider := &fakeProvider{password: "pw"}
	svc := NewService(provider, fakeIssuer{}, nil)

	req := models.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "n", ConfirmNewPassword: "n"}
	if err := svc.ChangePassword(context.Background(), "admin@wms.test", req); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("got %v", err)
	}
	if provider.updated != "" {
		t.Fatal("password must not change after failed reauthentication")
	}

	req.CurrentPassword = "pw"
	if err := svc.ChangePassword(context.Background(), "admin@wms.test", req); err != nil {
		t.Fatalf("ChangePassword() error: %v", err)
	}
	if provider.updated != "n" {
		t.Fatalf("updated = %q", provider.updated)
	}
}

func TestChangePasswordSanitizesProviderErrors(t *testing.T) {
	provider := &fakeProvider{password: "pw", updateErr: errors.New("Firebase: Password should be at least 6 characters (auth/weak-password).")}
	svc := NewService(provider, fakeIssuer{}, nil)

	err := svc.ChangePassword(context.Background(), "admin@wms.test",
		models.ChangePasswordRequest{CurrentPassword: "pw", NewPassword: "n", ConfirmNewPassword: "n"})
	if !errors.Is(err, ErrIdentityProvider) {
		t.Fatalf("got %v", err)
	}
	if strings.Contains(err.Error(), "Firebase:") || strings.Contains(err.Error(), "auth/") {
		t.Fatalf("message not sanitized: %q", err.Error())
	}
}

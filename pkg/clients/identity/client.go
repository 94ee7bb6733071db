package identity

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client exposes the Identity Toolkit operations used by the application.
type Client interface {
	SignInWithPassword(ctx context.Context, email, password string) (*SignInResponse, error)
	UpdatePassword(ctx context.Context, idToken, newPassword string) (*UpdateResponse, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds an Identity Toolkit client. baseURL is usually
// https://identitytoolkit.googleapis.com/v1.
func NewClient(baseURL, apiKey string) *APIClient {
	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetQueryParam("key", apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{httpClient: restyClient}
}

// SignInResponse mirrors accounts:signInWithPassword.
type SignInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// UpdateResponse mirrors accounts:update.
type UpdateResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

// APIError is an error payload returned by the Identity Toolkit.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("identity api error: code=%d, message=%s", e.Code, e.Message)
}

// Reason returns the error code without the detail suffix, e.g. "INVALID_PASSWORD"
// for "INVALID_PASSWORD : The password is invalid".
func (e *APIError) Reason() string {
	reason, _, _ := strings.Cut(e.Message, " ")
	return reason
}

type errorEnvelope struct {
	Error APIError `json:"error"`
}

// SignInWithPassword verifies an email/password credential.
func (c *APIClient) SignInWithPassword(ctx context.Context, email, password string) (*SignInResponse, error) {
	payload := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	result := new(SignInResponse)
	if err := c.post(ctx, "/accounts:signInWithPassword", payload, result); err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	return result, nil
}

// UpdatePassword sets a new password for the account owning idToken.
func (c *APIClient) UpdatePassword(ctx context.Context, idToken, newPassword string) (*UpdateResponse, error) {
	payload := map[string]any{
		"idToken":           idToken,
		"password":          newPassword,
		"returnSecureToken": true,
	}

	result := new(UpdateResponse)
	if err := c.post(ctx, "/accounts:update", payload, result); err != nil {
		return nil, fmt.Errorf("update password: %w", err)
	}
	return result, nil
}

func (c *APIClient) post(ctx context.Context, path string, payload, result any) error {
	apiErr := new(errorEnvelope)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(result).
		SetError(apiErr).
		Post(path)
	if err != nil {
		return err
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		e := apiErr.Error
		if e.Code == 0 {
			e.Code = resp.StatusCode()
		}
		return &e
	}
	return nil
}

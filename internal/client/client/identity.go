package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/diegorighi/yukam-front/internal/client/models"
)

// IdentityHTTPClient talks to the identity microservice over REST.
type IdentityHTTPClient struct {
	rest restClient
}

var _ Identity = (*IdentityHTTPClient)(nil)

func NewIdentityHTTPClient(baseURL string, timeout time.Duration) *IdentityHTTPClient {
	return &IdentityHTTPClient{rest: newRESTClient(baseURL, timeout)}
}

// Login exchanges credentials for an identity record.
// Endpoint: POST /api/auth/login
func (c *IdentityHTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.IdentityRecord, error) {
	var user models.IdentityRecord
	if err := c.rest.do(ctx, http.MethodPost, "/api/auth/login", nil, creds, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByPublicID loads a user (login, email, theme, twoFactorEnabled).
// Endpoint: GET /api/users/public/{publicId}
func (c *IdentityHTTPClient) GetUserByPublicID(ctx context.Context, publicID string) (*models.IdentityRecord, error) {
	if err := checkPublicID(publicID); err != nil {
		return nil, err
	}
	var user models.IdentityRecord
	if err := c.rest.do(ctx, http.MethodGet, "/api/users/public/"+url.PathEscape(publicID), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// InitiatePasswordReset asks the service to e-mail a reset link (valid for
// 15 minutes). Endpoint: POST /api/password/recuperar/{publicId}
func (c *IdentityHTTPClient) InitiatePasswordReset(ctx context.Context, publicID string) error {
	if err := checkPublicID(publicID); err != nil {
		return err
	}
	return c.rest.do(ctx, http.MethodPost, "/api/password/recuperar/"+url.PathEscape(publicID), nil, struct{}{}, nil)
}

// ManualPasswordReset sets a new password directly.
// Endpoint: POST /api/password/alterar
func (c *IdentityHTTPClient) ManualPasswordReset(ctx context.Context, publicID string, newPassword string) error {
	if err := checkPublicID(publicID); err != nil {
		return err
	}
	body := models.ManualPasswordReset{PublicID: publicID, NewPassword: newPassword}
	return c.rest.do(ctx, http.MethodPost, "/api/password/alterar", nil, body, nil)
}

// Ping reports whether the service answers HTTP at all. Any response,
// including an error status, counts as reachable.
func (c *IdentityHTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.rest.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.rest.http.Do(req)
	if err != nil {
		return mapTransportError(err)
	}
	resp.Body.Close()
	return nil
}

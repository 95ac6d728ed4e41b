package backend

import (
	"context"
	"net/http"

	"github.com/stormhq/storm-admin/internal/models"
)

// LoginResult is the success payload of /auth/login. The token is the
// opaque session credential; the client stores it in a cookie and never
// inspects it.
type LoginResult struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token. A 401 APIError may
// carry IsFirstAccess when the account still runs on a temporary password.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the session server-side. Callers clear the cookie
// regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Me resolves the session token into the caller's identity. It runs on
// every protected request; a failure means the session is not (or no
// longer) valid.
func (c *Client) Me(ctx context.Context) (*models.Identity, error) {
	var out struct {
		User models.Identity `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// ChangePassword performs an authenticated password change.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"currentPassword": current, "newPassword": next}
	return c.do(ctx, http.MethodPost, "/auth/change-password", body, nil)
}

// ForgotPassword requests a reset token delivered by email. The backend
// answers uniformly whether or not the address exists.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/forgot-password", body, nil)
}

// ResetPassword consumes a reset token and sets a new password.
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	body := map[string]string{"token": token, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/reset-password", body, nil)
}

// FirstAccessChangePassword replaces the temporary password issued at
// account creation. It authenticates with the credentials themselves, not
// a session.
func (c *Client) FirstAccessChangePassword(ctx context.Context, email, current, next string) error {
	body := map[string]string{
		"email":           email,
		"currentPassword": current,
		"newPassword":     next,
	}
	return c.do(ctx, http.MethodPost, "/auth/first-access/change-password", body, nil)
}

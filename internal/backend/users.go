package backend

import (
	"context"
	"net/http"

	"github.com/stormhq/storm-admin/internal/models"
)

// UserInput is the create/update payload for an account.
type UserInput struct {
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	RoleID     models.RoleID `json:"roleId"`
	ContractID string        `json:"contractId,omitempty"`
}

// CreatedUser is the create response. TempPassword is generated by the
// backend and returned exactly once; the client shows it once and drops
// it, it cannot be fetched again.
type CreatedUser struct {
	User         models.User `json:"user"`
	TempPassword string      `json:"tempPassword"`
}

// ListUsers fetches all accounts. Filtering happens client-side.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out struct {
		Users []models.User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) CreateUser(ctx context.Context, in UserInput) (*CreatedUser, error) {
	var out CreatedUser
	if err := c.do(ctx, http.MethodPost, "/admin/users", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, in UserInput) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/admin/users/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+id, nil, nil)
}

// SendWelcomeEmail delivers credentials to an account by email.
func (c *Client) SendWelcomeEmail(ctx context.Context, userID string) error {
	body := map[string]string{"userId": userID}
	return c.do(ctx, http.MethodPost, "/admin/users/send-welcome-email", body, nil)
}

// ListContracts fetches the contracts available for assignment.
func (c *Client) ListContracts(ctx context.Context) ([]models.Contract, error) {
	var out struct {
		Contracts []models.Contract `json:"contracts"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/contracts", nil, &out); err != nil {
		return nil, err
	}
	return out.Contracts, nil
}

// MetabaseIframe exchanges a contract id for a signed analytics embed URL.
func (c *Client) MetabaseIframe(ctx context.Context, contractID string) (string, error) {
	body := map[string]string{"contractId": contractID}
	var out struct {
		IframeURL string `json:"iframeUrl"`
	}
	if err := c.do(ctx, http.MethodPost, "/metabase/iframe", body, &out); err != nil {
		return "", err
	}
	return out.IframeURL, nil
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"studyspace/models"
)

// Login authenticates against the remote API and returns the issued token
// and user identity.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error) {
	var result models.LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/users/login", "", creds, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, reg models.Registration) (*models.LoginResult, error) {
	var result models.LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/users/save", "", reg, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CurrentUser resolves the token's account via /api/users/me.
func (c *Client) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/users/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckEmail reports whether an account already exists for the address.
func (c *Client) CheckEmail(ctx context.Context, email string) (bool, error) {
	var result struct {
		Exists bool `json:"exists"`
	}
	path := "/api/users/check-email?email=" + url.QueryEscape(email)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &result); err != nil {
		return false, err
	}
	return result.Exists, nil
}

// ListUsers returns all accounts. Admin only upstream.
func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/api/users/getAll", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser updates profile fields for the given account.
func (c *Client) UpdateUser(ctx context.Context, token string, id int, update models.UserUpdate) (*models.User, error) {
	var user models.User
	path := fmt.Sprintf("/api/users/update/%d", id)
	if err := c.do(ctx, http.MethodPut, path, token, update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account. Admin only upstream.
func (c *Client) DeleteUser(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/delete/%d", id), token, nil, nil)
}

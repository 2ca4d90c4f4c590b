package api

import (
	"context"
	"fmt"
	"net/http"

	"studyspace/models"
)

// ListSpaces returns all spaces. Public upstream.
func (c *Client) ListSpaces(ctx context.Context) ([]models.Space, error) {
	var spaces []models.Space
	if err := c.do(ctx, http.MethodGet, "/api/space/getAll", "", nil, &spaces); err != nil {
		return nil, err
	}
	return spaces, nil
}

// GetSpace returns a single space by ID.
func (c *Client) GetSpace(ctx context.Context, id int) (*models.Space, error) {
	var space models.Space
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/space/%d", id), "", nil, &space); err != nil {
		return nil, err
	}
	return &space, nil
}

// CreateSpace adds a space. Admin only upstream.
func (c *Client) CreateSpace(ctx context.Context, token string, input models.SpaceInput) (*models.Space, error) {
	var space models.Space
	if err := c.do(ctx, http.MethodPost, "/api/space/save", token, input, &space); err != nil {
		return nil, err
	}
	return &space, nil
}

// UpdateSpace updates a space. Admin only upstream.
func (c *Client) UpdateSpace(ctx context.Context, token string, id int, input models.SpaceInput) (*models.Space, error) {
	var space models.Space
	path := fmt.Sprintf("/api/space/update/%d", id)
	if err := c.do(ctx, http.MethodPut, path, token, input, &space); err != nil {
		return nil, err
	}
	return &space, nil
}

// DeleteSpace removes a space. Admin only upstream.
func (c *Client) DeleteSpace(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/space/delete/%d", id), token, nil, nil)
}

package asyncopenai

import (
	"context"
	"net/url"
)

// Model represents a single model in the models list
type Model struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	OwnedBy string `json:"owned_by"`
	Created int64  `json:"created"`
}

// ModelList represents the response from the /models endpoint
type ModelList struct {
	Object string  `json:"object"`
	Data   []Model `json:"data"`
}

// ListModels fetches GET /models
func (c *Client) ListModels(ctx context.Context) (*Response, error) {
	return c.request(ctx, MethodGet, "/models", c.endpoint("/models"), nil, nil)
}

// GetModel fetches GET /models/{model}. The id is path-escaped.
func (c *Client) GetModel(ctx context.Context, model string) (*Response, error) {
	return c.request(ctx, MethodGet, "/models/{model}", c.endpoint("/models/"+url.PathEscape(model)), nil, nil)
}

package asyncopenai

import "context"

// DefaultEmbeddingModel is used when no EmbeddingOption overrides it
const DefaultEmbeddingModel = "text-embedding-ada-002"

// EmbeddingRequest is the body of POST /embeddings
type EmbeddingRequest struct {
	Input string `json:"input"`
	Model string `json:"model"`
}

// EmbeddingOption overrides an EmbeddingRequest default
type EmbeddingOption func(*EmbeddingRequest)

// WithEmbeddingModel selects the embedding model
func WithEmbeddingModel(model string) EmbeddingOption {
	return func(r *EmbeddingRequest) { r.Model = model }
}

// Embedding is one vector in an EmbeddingList
type Embedding struct {
	Object    string    `json:"object"`
	Embedding []float64 `json:"embedding"`
	Index     int       `json:"index"`
}

// EmbeddingList is the response of POST /embeddings
type EmbeddingList struct {
	Object string      `json:"object"`
	Data   []Embedding `json:"data"`
	Model  string      `json:"model"`
	Usage  Usage       `json:"usage"`
}

// CreateEmbedding sends POST /embeddings for text
func (c *Client) CreateEmbedding(ctx context.Context, text string, opts ...EmbeddingOption) (*Response, error) {
	req := EmbeddingRequest{
		Input: text,
		Model: DefaultEmbeddingModel,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return c.request(ctx, MethodPost, "/embeddings", c.endpoint("/embeddings"), req, jsonHeaders())
}

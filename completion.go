package asyncopenai

import "context"

// Completion defaults
const (
	DefaultEngine           = "text-davinci-003"
	DefaultMaxTokens        = 200
	DefaultTemperature      = 0.0
	DefaultTopP             = 1.0
	DefaultFrequencyPenalty = 0.0
	DefaultPresencePenalty  = 0.0
)

// CompletionRequest is the body of POST /completions. Every field is always
// sent, zero values included, and none is range-checked.
type CompletionRequest struct {
	Model            string  `json:"model"`
	Prompt           string  `json:"prompt"`
	MaxTokens        int     `json:"max_tokens"`
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"top_p"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
	PresencePenalty  float64 `json:"presence_penalty"`
}

// CompletionOption overrides one CompletionRequest default
type CompletionOption func(*CompletionRequest)

func WithEngine(model string) CompletionOption {
	return func(r *CompletionRequest) { r.Model = model }
}

func WithMaxTokens(n int) CompletionOption {
	return func(r *CompletionRequest) { r.MaxTokens = n }
}

func WithTemperature(t float64) CompletionOption {
	return func(r *CompletionRequest) { r.Temperature = t }
}

func WithTopP(p float64) CompletionOption {
	return func(r *CompletionRequest) { r.TopP = p }
}

func WithFrequencyPenalty(p float64) CompletionOption {
	return func(r *CompletionRequest) { r.FrequencyPenalty = p }
}

func WithPresencePenalty(p float64) CompletionOption {
	return func(r *CompletionRequest) { r.PresencePenalty = p }
}

// NewCompletionRequest builds a request from the defaults and opts
func NewCompletionRequest(prompt string, opts ...CompletionOption) CompletionRequest {
	r := CompletionRequest{
		Model:            DefaultEngine,
		Prompt:           prompt,
		MaxTokens:        DefaultMaxTokens,
		Temperature:      DefaultTemperature,
		TopP:             DefaultTopP,
		FrequencyPenalty: DefaultFrequencyPenalty,
		PresencePenalty:  DefaultPresencePenalty,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Completion is the response of POST /completions
type Completion struct {
	ID      string             `json:"id"`
	Object  string             `json:"object"`
	Created int64              `json:"created"`
	Model   string             `json:"model"`
	Choices []CompletionChoice `json:"choices"`
	Usage   Usage              `json:"usage"`
}

// CompletionChoice is one generated text
type CompletionChoice struct {
	Text         string `json:"text"`
	Index        int    `json:"index"`
	FinishReason string `json:"finish_reason"`
}

// Usage represents token usage information
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CreateCompletion sends POST /completions for prompt
func (c *Client) CreateCompletion(ctx context.Context, prompt string, opts ...CompletionOption) (*Response, error) {
	return c.request(ctx, MethodPost, "/completions", c.endpoint("/completions"), NewCompletionRequest(prompt, opts...), jsonHeaders())
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

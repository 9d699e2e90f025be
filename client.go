// Package asyncopenai is a small client for the OpenAI HTTP API.
//
// A Client authenticates every request with a bearer key and exposes four
// operations: ListModels, GetModel, CreateCompletion and CreateEmbedding.
// Lower-level authenticated calls go through Client.Request.
//
// Calls block until the response body has been read; run them from separate
// goroutines for concurrency. Nothing is retried, queued or cached.
package asyncopenai

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"asyncopenai/internal/credentials"
	"asyncopenai/internal/httpclient"
	"asyncopenai/internal/llmclient"
	"asyncopenai/internal/logging"
	"asyncopenai/internal/observability"
)

// DefaultBaseURL is the API root every endpoint is appended to
const DefaultBaseURL = "https://api.openai.com/v1"

// DefaultSecretsFile is the secrets file read when no credentials are configured
const DefaultSecretsFile = credentials.DefaultSecretsFile

// CredentialProvider supplies the API key. It is called once per request;
// implementations are expected to cache.
type CredentialProvider interface {
	APIKey() (string, error)
}

// Client is safe for concurrent use
type Client struct {
	baseURL     string
	credentials CredentialProvider
	transport   *llmclient.Client
}

type options struct {
	baseURL     string
	credentials CredentialProvider
	secretsFile string
	httpClient  *http.Client
	timeout     time.Duration
	logger      *slog.Logger
	registerer  prometheus.Registerer
}

// Option configures a Client
type Option func(*options)

// WithBaseURL overrides DefaultBaseURL
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithCredentials sets the credential provider. It takes precedence over WithSecretsFile.
func WithCredentials(provider CredentialProvider) Option {
	return func(o *options) {
		o.credentials = provider
	}
}

// WithAPIKey authenticates with a key the caller already holds
func WithAPIKey(key string) Option {
	return WithCredentials(credentials.Static(key))
}

// WithSecretsFile reads the key from path (.json, .yaml, .yml or .env) on first use
func WithSecretsFile(path string) Option {
	return func(o *options) {
		o.secretsFile = path
	}
}

// WithHTTPClient sends requests with httpClient instead of the built-in one.
// WithTimeout has no effect when this is set.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// WithTimeout bounds each request, response body included. The default is 10 minutes.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLogOutput logs to out at level: colorized on a terminal, JSON otherwise
func WithLogOutput(out io.Writer, level slog.Level) Option {
	return WithLogger(logging.New(out, level))
}

// WithMetrics registers request metrics on reg
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// New creates a Client. Without credential options the key is read from
// DefaultSecretsFile on the first request.
func New(opts ...Option) (*Client, error) {
	o := options{
		baseURL: DefaultBaseURL,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	creds := o.credentials
	if creds == nil {
		creds = credentials.NewFileProvider(o.secretsFile, credentials.WithLogger(o.logger))
	}

	httpClient := o.httpClient
	if httpClient == nil {
		cfg := httpclient.DefaultConfig()
		if o.timeout > 0 {
			cfg.Timeout = o.timeout
		}
		httpClient = httpclient.NewHTTPClient(&cfg)
	}

	cfg := llmclient.Config{Logger: o.logger}
	if o.registerer != nil {
		metrics, err := observability.NewMetrics(o.registerer)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		cfg.Hooks = metrics.Hooks()
	}

	return &Client{
		baseURL:     strings.TrimRight(o.baseURL, "/"),
		credentials: creds,
		transport:   llmclient.NewWithHTTPClient(httpClient, cfg),
	}, nil
}

// BaseURL returns the API root the client sends to
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + path
}

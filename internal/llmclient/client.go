// Package llmclient is the transport for the API client:
// - One HTTP request per call (GET or POST), no retries
// - JSON request marshaling and response validation
// - gzip / brotli response decoding
// - Request hooks for metrics
package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"asyncopenai/internal/core"
	"asyncopenai/internal/httpclient"
)

// Method is the HTTP method of a request. Only MethodGet and MethodPost are valid;
// the zero value is not.
type Method int

const (
	MethodGet Method = iota + 1
	MethodPost
)

// String returns the HTTP verb for the method
func (m Method) String() string {
	switch m {
	case MethodGet:
		return http.MethodGet
	case MethodPost:
		return http.MethodPost
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Valid reports whether the method is one the transport can send
func (m Method) Valid() bool {
	return m == MethodGet || m == MethodPost
}

// ParseMethod converts an HTTP verb into a Method
func ParseMethod(s string) (Method, error) {
	switch s {
	case http.MethodGet:
		return MethodGet, nil
	case http.MethodPost:
		return MethodPost, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
}

// RequestInfo describes a request as seen by hooks
type RequestInfo struct {
	Method Method
	// Endpoint is the route template (e.g. "/models/{model}") or the URL path
	Endpoint string
}

// ResponseInfo describes a finished request as seen by hooks
type ResponseInfo struct {
	RequestInfo
	// StatusCode is zero when no response was received
	StatusCode int
	Duration   time.Duration
	Err        error
}

// Hooks observe requests. Either function may be nil.
type Hooks struct {
	// OnRequestStart is called before the request is sent; the returned
	// context is used for the rest of the request
	OnRequestStart func(ctx context.Context, info RequestInfo) context.Context
	// OnRequestEnd is called once per request after the body is read or the request failed
	OnRequestEnd func(ctx context.Context, info ResponseInfo)
}

// Config holds configuration for the transport
type Config struct {
	// Hooks observe every request
	Hooks Hooks

	// Logger receives debug lines for every request; nil means slog.Default()
	Logger *slog.Logger
}

// DefaultConfig returns default transport configuration
func DefaultConfig() Config {
	return Config{
		Logger: slog.Default(),
	}
}

// Client sends single HTTP requests and returns their JSON bodies
type Client struct {
	httpClient *http.Client
	config     Config
	logger     *slog.Logger
}

// New creates a new transport with the default HTTP client
func New(config Config) *Client {
	return NewWithHTTPClient(httpclient.NewDefaultHTTPClient(), config)
}

// NewWithHTTPClient creates a new transport with a custom HTTP client.
// If httpClient is nil, http.DefaultClient is used.
func NewWithHTTPClient(httpClient *http.Client, config Config) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		config:     config,
		logger:     logger,
	}
}

// Request represents an HTTP request to be made
type Request struct {
	Method Method
	URL    string
	// Route is an optional low-cardinality name for the endpoint, used by hooks and logs
	Route   string
	Body    any // Will be JSON marshaled if not nil
	Headers map[string]string
}

// Send issues exactly one HTTP request and returns the response once its body
// has been read in full and validated as JSON. The response is returned for
// any status code.
//
// Network failures are returned as *TransportError and invalid JSON as
// *DecodeError. Neither is retried.
func (c *Client) Send(ctx context.Context, req Request) (*Response, error) {
	if !req.Method.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, req.Method)
	}

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	info := RequestInfo{Method: req.Method, Endpoint: req.Route}
	if info.Endpoint == "" {
		info.Endpoint = httpReq.URL.Path
	}
	if c.config.Hooks.OnRequestStart != nil {
		ctx = c.config.Hooks.OnRequestStart(ctx, info)
		httpReq = httpReq.WithContext(ctx)
	}

	start := time.Now()
	resp, err := c.do(httpReq)
	elapsed := time.Since(start)

	end := ResponseInfo{RequestInfo: info, Duration: elapsed, Err: err}
	if resp != nil {
		end.StatusCode = resp.StatusCode
	} else if derr, ok := err.(*DecodeError); ok {
		end.StatusCode = derr.StatusCode
	}
	if c.config.Hooks.OnRequestEnd != nil {
		c.config.Hooks.OnRequestEnd(ctx, end)
	}

	if err != nil {
		c.logger.DebugContext(ctx, "api request failed",
			"request_id", core.GetRequestID(ctx),
			"method", req.Method.String(),
			"endpoint", info.Endpoint,
			"duration", elapsed,
			"error", err,
		)
		return nil, err
	}
	c.logger.DebugContext(ctx, "api request",
		"request_id", core.GetRequestID(ctx),
		"method", req.Method.String(),
		"endpoint", info.Endpoint,
		"status", resp.StatusCode,
		"bytes", len(resp.Body),
		"duration", elapsed,
	)
	return resp, nil
}

// do executes the request and reads, decodes and validates the body
func (c *Client) do(httpReq *http.Request) (*Response, error) {
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: "send request", Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read response", Err: err}
	}

	body, err := decodeContent(raw, resp.Header.Get("Content-Encoding"))
	if err != nil {
		return nil, &DecodeError{
			StatusCode:  resp.StatusCode,
			ContentType: resp.Header.Get("Content-Type"),
			Body:        snippet(raw),
			Err:         err,
		}
	}

	if !gjson.ValidBytes(body) {
		return nil, &DecodeError{
			StatusCode:  resp.StatusCode,
			ContentType: resp.Header.Get("Content-Type"),
			Body:        snippet(body),
			Err:         errInvalidJSON,
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// buildRequest creates an HTTP request from a Request
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	var bodyReader io.Reader
	if req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method.String(), req.URL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Accept-Encoding", acceptEncoding)

	// Set default content type for requests with body
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	// Apply request-specific headers
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

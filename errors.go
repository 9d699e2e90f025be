package asyncopenai

import (
	"context"

	"asyncopenai/internal/core"
	"asyncopenai/internal/llmclient"
)

type (
	// Error is returned for credential failures, network failures and, via
	// Response.Err, API error bodies
	Error = core.Error
	// ErrorType classifies an Error
	ErrorType = core.ErrorType

	// TransportError is the network failure wrapped inside an ErrorTypeOpenAI error
	TransportError = llmclient.TransportError
	// DecodeError is returned when a response body is not valid JSON
	DecodeError = llmclient.DecodeError

	// Method is MethodGet or MethodPost
	Method = llmclient.Method
	// Response is a JSON response of any status; see Response.Err
	Response = llmclient.Response
)

const (
	ErrorTypeConfiguration  = core.ErrorTypeConfiguration
	ErrorTypeOpenAI         = core.ErrorTypeOpenAI
	ErrorTypeAuthentication = core.ErrorTypeAuthentication
	ErrorTypeRateLimit      = core.ErrorTypeRateLimit
	ErrorTypeNotFound       = core.ErrorTypeNotFound
	ErrorTypeInvalidRequest = core.ErrorTypeInvalidRequest
	ErrorTypeAPI            = core.ErrorTypeAPI
)

const (
	MethodGet  = llmclient.MethodGet
	MethodPost = llmclient.MethodPost
)

// ErrUnsupportedMethod is returned for any Method other than MethodGet and MethodPost
var ErrUnsupportedMethod = llmclient.ErrUnsupportedMethod

// ParseMethod converts "GET" or "POST" into a Method
func ParseMethod(s string) (Method, error) {
	return llmclient.ParseMethod(s)
}

// IsConfigurationError reports whether err comes from loading the credential
func IsConfigurationError(err error) bool {
	return core.IsConfigurationError(err)
}

// IsOpenAIError reports whether err is a network failure during a request
func IsOpenAIError(err error) bool {
	return core.IsOpenAIError(err)
}

// WithRequestID attaches the ID sent as X-Client-Request-Id.
// IDs that are not ASCII or longer than 512 bytes are not sent.
func WithRequestID(ctx context.Context, id string) context.Context {
	return core.WithRequestID(ctx, id)
}

package asyncopenai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"asyncopenai/internal/core"
	"asyncopenai/internal/llmclient"
)

const (
	authorizationHeader = "Authorization"
	requestIDHeader     = "X-Client-Request-Id"
)

// Request sends an authenticated request to url. params, if not nil, is sent
// as the JSON body.
//
// headers is read but never modified: the request is sent with a copy that
// also carries "Authorization: Bearer <key>", replacing any Authorization
// entry the caller passed, and an X-Client-Request-Id taken from the context
// (see WithRequestID) or freshly generated.
//
// A network failure (connection error, timeout, cancellation) is returned as
// an *Error of type ErrorTypeOpenAI. Credential errors, *DecodeError and
// ErrUnsupportedMethod are returned as they are.
func (c *Client) Request(ctx context.Context, method Method, url string, params any, headers map[string]string) (*Response, error) {
	return c.request(ctx, method, "", url, params, headers)
}

func (c *Client) request(ctx context.Context, method Method, route, url string, params any, headers map[string]string) (*Response, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	key, err := c.credentials.APIKey()
	if err != nil {
		return nil, err
	}

	id := core.GetRequestID(ctx)
	if id == "" {
		id = uuid.NewString()
		ctx = core.WithRequestID(ctx, id)
	}

	resp, err := c.transport.Send(ctx, llmclient.Request{
		Method:  method,
		URL:     url,
		Route:   route,
		Body:    params,
		Headers: authorize(headers, key, id),
	})
	if err != nil {
		var transportErr *llmclient.TransportError
		if errors.As(err, &transportErr) {
			return nil, core.NewOpenAIError(fmt.Sprintf("exception during request: %v", transportErr), err)
		}
		return nil, err
	}
	return resp, nil
}

// authorize returns a copy of headers with the bearer key set. Caller entries
// for Authorization are dropped whatever their case. The request ID is added
// unless the caller set one or it cannot be sent.
func authorize(headers map[string]string, apiKey, requestID string) map[string]string {
	merged := make(map[string]string, len(headers)+2)
	hasRequestID := false
	for k, v := range headers {
		if strings.EqualFold(k, authorizationHeader) {
			continue
		}
		if strings.EqualFold(k, requestIDHeader) {
			hasRequestID = true
		}
		merged[k] = v
	}
	merged[authorizationHeader] = "Bearer " + apiKey
	if !hasRequestID && core.IsValidRequestID(requestID) {
		merged[requestIDHeader] = requestID
	}
	return merged
}

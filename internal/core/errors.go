// Package core provides the error model and request context shared by the client packages.
package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error that occurred
type ErrorType string

const (
	// ErrorTypeConfiguration indicates the credential could not be loaded
	ErrorTypeConfiguration ErrorType = "configuration_error"
	// ErrorTypeOpenAI indicates a network failure during an authenticated request
	ErrorTypeOpenAI ErrorType = "openai_error"

	// ErrorTypeAuthentication indicates an authentication error body (401/403)
	ErrorTypeAuthentication ErrorType = "authentication_error"
	// ErrorTypeRateLimit indicates a rate limit error body (429)
	ErrorTypeRateLimit ErrorType = "rate_limit_error"
	// ErrorTypeNotFound indicates a not found error body (404)
	ErrorTypeNotFound ErrorType = "not_found_error"
	// ErrorTypeInvalidRequest indicates any other 4xx error body
	ErrorTypeInvalidRequest ErrorType = "invalid_request_error"
	// ErrorTypeAPI indicates a 5xx error body
	ErrorTypeAPI ErrorType = "api_error"
)

// Error is the base error type for all client errors
type Error struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"status_code,omitempty"`
	// Code is the remote API's own error code, if it sent one
	Code string `json:"code,omitempty"`
	// Original error for debugging
	Err error `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the error unwrapping interface
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates an error for a credential that could not be loaded
func NewConfigurationError(message string, err error) *Error {
	return &Error{
		Type:    ErrorTypeConfiguration,
		Message: message,
		Err:     err,
	}
}

// NewOpenAIError creates an error for a failed network exchange with the API
func NewOpenAIError(message string, err error) *Error {
	return &Error{
		Type:    ErrorTypeOpenAI,
		Message: message,
		Err:     err,
	}
}

// IsConfigurationError reports whether err is, or wraps, a configuration error
func IsConfigurationError(err error) bool {
	return isType(err, ErrorTypeConfiguration)
}

// IsOpenAIError reports whether err is, or wraps, a network failure error
func IsOpenAIError(err error) bool {
	return isType(err, ErrorTypeOpenAI)
}

func isType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}

// ParseAPIError parses an error body returned by the remote API. It returns
// nil for 2xx status codes.
func ParseAPIError(statusCode int, body []byte) *Error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	var errorResponse struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
			Code    any    `json:"code"`
		} `json:"error"`
	}

	message := string(body)
	code := ""
	if err := json.Unmarshal(body, &errorResponse); err == nil && errorResponse.Error.Message != "" {
		message = errorResponse.Error.Message
		if errorResponse.Error.Code != nil {
			code = fmt.Sprint(errorResponse.Error.Code)
		}
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}

	var t ErrorType
	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		t = ErrorTypeAuthentication
	case statusCode == http.StatusNotFound:
		t = ErrorTypeNotFound
	case statusCode == http.StatusTooManyRequests:
		t = ErrorTypeRateLimit
	case statusCode >= 400 && statusCode < 500:
		t = ErrorTypeInvalidRequest
	default:
		t = ErrorTypeAPI
	}

	return &Error{
		Type:       t,
		Message:    message,
		StatusCode: statusCode,
		Code:       code,
	}
}

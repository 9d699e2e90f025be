package core

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "error with status code",
			err: &Error{
				Type:       ErrorTypeRateLimit,
				Message:    "slow down",
				StatusCode: http.StatusTooManyRequests,
			},
			expected: "rate_limit_error (429): slow down",
		},
		{
			name: "error without status code",
			err: &Error{
				Type:    ErrorTypeOpenAI,
				Message: "exception during request: connection refused",
			},
			expected: "openai_error: exception during request: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	err := NewOpenAIError("wrapped error", originalErr)

	if unwrapped := err.Unwrap(); unwrapped != originalErr {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, originalErr)
	}
	if !errors.Is(err, originalErr) {
		t.Error("errors.Is should find the original error")
	}
}

func TestErrorPredicates(t *testing.T) {
	cfgErr := NewConfigurationError("no secrets file", nil)
	netErr := NewOpenAIError("exception during request: timeout", nil)
	wrapped := fmt.Errorf("list models: %w", netErr)

	if !IsConfigurationError(cfgErr) {
		t.Error("IsConfigurationError(cfgErr) = false, want true")
	}
	if IsOpenAIError(cfgErr) {
		t.Error("IsOpenAIError(cfgErr) = true, want false")
	}
	if !IsOpenAIError(wrapped) {
		t.Error("IsOpenAIError(wrapped) = false, want true")
	}
	if IsConfigurationError(errors.New("plain")) {
		t.Error("IsConfigurationError(plain) = true, want false")
	}
	if IsOpenAIError(nil) {
		t.Error("IsOpenAIError(nil) = true, want false")
	}
}

func TestParseAPIError(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantNil     bool
		wantType    ErrorType
		wantMessage string
		wantCode    string
	}{
		{
			name:       "success",
			statusCode: http.StatusOK,
			body:       `{"object":"list"}`,
			wantNil:    true,
		},
		{
			name:        "invalid api key",
			statusCode:  http.StatusUnauthorized,
			body:        `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`,
			wantType:    ErrorTypeAuthentication,
			wantMessage: "Incorrect API key provided",
			wantCode:    "invalid_api_key",
		},
		{
			name:        "forbidden",
			statusCode:  http.StatusForbidden,
			body:        `{"error":{"message":"Country not supported"}}`,
			wantType:    ErrorTypeAuthentication,
			wantMessage: "Country not supported",
		},
		{
			name:        "unknown model",
			statusCode:  http.StatusNotFound,
			body:        `{"error":{"message":"The model 'gpt-3' does not exist","code":null}}`,
			wantType:    ErrorTypeNotFound,
			wantMessage: "The model 'gpt-3' does not exist",
		},
		{
			name:        "rate limit",
			statusCode:  http.StatusTooManyRequests,
			body:        `{"error":{"message":"Rate limit reached"}}`,
			wantType:    ErrorTypeRateLimit,
			wantMessage: "Rate limit reached",
		},
		{
			name:        "bad request",
			statusCode:  http.StatusBadRequest,
			body:        `{"error":{"message":"max_tokens is too large","code":400}}`,
			wantType:    ErrorTypeInvalidRequest,
			wantMessage: "max_tokens is too large",
			wantCode:    "400",
		},
		{
			name:        "server error with plain body",
			statusCode:  http.StatusBadGateway,
			body:        `upstream unavailable`,
			wantType:    ErrorTypeAPI,
			wantMessage: "upstream unavailable",
		},
		{
			name:        "server error with empty body",
			statusCode:  http.StatusServiceUnavailable,
			body:        ``,
			wantType:    ErrorTypeAPI,
			wantMessage: "Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParseAPIError(tt.statusCode, []byte(tt.body))
			if tt.wantNil {
				if err != nil {
					t.Fatalf("ParseAPIError() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ParseAPIError() = nil, want error")
			}
			if err.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", err.Type, tt.wantType)
			}
			if err.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMessage)
			}
			if err.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", err.StatusCode, tt.statusCode)
			}
			if err.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", err.Code, tt.wantCode)
			}
		})
	}
}

package llmclient

import (
	"errors"
	"fmt"
	"net"
)

// ErrUnsupportedMethod is returned when a request uses a method other than GET or POST.
// No request is sent.
var ErrUnsupportedMethod = errors.New("unsupported HTTP method")

var errInvalidJSON = errors.New("response body is not valid JSON")

// maxSnippet caps how much of a bad body is kept on a DecodeError
const maxSnippet = 512

// TransportError is a network-level failure: connection errors, timeouts,
// cancellation, or a body that could not be read.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a timeout
func (e *TransportError) Timeout() bool {
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// DecodeError is returned when a response arrived but its body could not be
// decompressed or is not valid JSON.
type DecodeError struct {
	StatusCode  int
	ContentType string
	// Body holds at most the first 512 bytes of the offending body
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response (status %d, content-type %q): %v", e.StatusCode, e.ContentType, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func snippet(b []byte) []byte {
	if len(b) > maxSnippet {
		b = b[:maxSnippet]
	}
	return append([]byte(nil), b...)
}

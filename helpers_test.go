package asyncopenai

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"asyncopenai/internal/logging"
)

// capturedRequest is what the fake API saw
type capturedRequest struct {
	Method  string
	Path    string
	Header  http.Header
	Body    string
	HasBody bool
}

// fakeAPI records every request and answers with a fixed status and body
type fakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	requests []capturedRequest
	status   int
	body     string
}

func newFakeAPI(t *testing.T, status int, body string) *fakeAPI {
	t.Helper()
	api := &fakeAPI{status: status, body: body}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		api.mu.Lock()
		api.requests = append(api.requests, capturedRequest{
			Method:  r.Method,
			Path:    r.URL.EscapedPath(),
			Header:  r.Header.Clone(),
			Body:    string(raw),
			HasBody: len(raw) > 0,
		})
		api.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(api.status)
		_, _ = w.Write([]byte(api.body))
	}))
	t.Cleanup(api.Close)
	return api
}

func (a *fakeAPI) Requests() []capturedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]capturedRequest(nil), a.requests...)
}

// only returns the single request the API received
func (a *fakeAPI) only(t *testing.T) capturedRequest {
	t.Helper()
	reqs := a.Requests()
	require.Len(t, reqs, 1, "expected exactly one request")
	return reqs[0]
}

func newTestClient(t *testing.T, api *fakeAPI, opts ...Option) *Client {
	t.Helper()
	base := []Option{
		WithBaseURL(api.URL + "/v1"),
		WithAPIKey("sk-test"),
		WithLogger(logging.Discard()),
	}
	client, err := New(append(base, opts...)...)
	require.NoError(t, err)
	return client
}

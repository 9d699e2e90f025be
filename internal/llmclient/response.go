package llmclient

import (
	"encoding/json"
	"net/http"

	"github.com/tidwall/gjson"

	"asyncopenai/internal/core"
)

// Response is a completed HTTP exchange whose body is valid JSON.
// Its shape is whatever the API returned; nothing is validated locally.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Get queries the body with a gjson path, e.g. "data.0.id"
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}

// Decode unmarshals the body into v
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Value returns the body as generic JSON values (maps, slices, float64, string, bool, nil)
func (r *Response) Value() (any, error) {
	var v any
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Err returns the API error carried by a non-2xx response, or nil
func (r *Response) Err() error {
	if apiErr := core.ParseAPIError(r.StatusCode, r.Body); apiErr != nil {
		return apiErr
	}
	return nil
}

// String returns the raw JSON body
func (r *Response) String() string {
	return string(r.Body)
}

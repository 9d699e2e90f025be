package asyncopenai

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const completionResponse = `{
	"id": "cmpl-uqkvlQyYK7bGYrRHQ0eXlWi7",
	"object": "text_completion",
	"created": 1589478378,
	"model": "text-davinci-003",
	"choices": [{"text": "\n\nThis is indeed a test", "index": 0, "logprobs": null, "finish_reason": "length"}],
	"usage": {"prompt_tokens": 5, "completion_tokens": 7, "total_tokens": 12}
}`

func TestCreateCompletion_Defaults(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, completionResponse)
	client := newTestClient(t, api)

	resp, err := client.CreateCompletion(context.Background(), "hello")
	require.NoError(t, err)

	req := api.only(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/v1/completions", req.Path)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "Bearer sk-test", req.Header.Get("Authorization"))
	assert.Equal(t,
		`{"model":"text-davinci-003","prompt":"hello","max_tokens":200,"temperature":0,"top_p":1,"frequency_penalty":0,"presence_penalty":0}`,
		req.Body)

	var completion Completion
	require.NoError(t, resp.Decode(&completion))
	require.Len(t, completion.Choices, 1)
	assert.Equal(t, "\n\nThis is indeed a test", completion.Choices[0].Text)
	assert.Equal(t, "length", completion.Choices[0].FinishReason)
	assert.Equal(t, 12, completion.Usage.TotalTokens)
}

func TestCreateCompletion_Options(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, completionResponse)
	client := newTestClient(t, api)

	_, err := client.CreateCompletion(context.Background(), "Say this is a test",
		WithEngine("davinci-002"),
		WithMaxTokens(7),
		WithTemperature(0.5),
		WithTopP(0.9),
		WithFrequencyPenalty(0.25),
		WithPresencePenalty(-0.5),
	)
	require.NoError(t, err)

	assert.Equal(t,
		`{"model":"davinci-002","prompt":"Say this is a test","max_tokens":7,"temperature":0.5,"top_p":0.9,"frequency_penalty":0.25,"presence_penalty":-0.5}`,
		api.only(t).Body)
}

func TestCreateCompletion_OutOfRangeValuesPassThrough(t *testing.T) {
	api := newFakeAPI(t, http.StatusBadRequest, `{"error":{"message":"5 is greater than the maximum of 2 - 'temperature'","type":"invalid_request_error"}}`)
	client := newTestClient(t, api)

	resp, err := client.CreateCompletion(context.Background(), "hello", WithTemperature(5), WithMaxTokens(-1))
	require.NoError(t, err, "an API error body is a response, not a transport failure")

	assert.JSONEq(t,
		`{"model":"text-davinci-003","prompt":"hello","max_tokens":-1,"temperature":5,"top_p":1,"frequency_penalty":0,"presence_penalty":0}`,
		api.only(t).Body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var apiErr *Error
	require.ErrorAs(t, resp.Err(), &apiErr)
	assert.Equal(t, ErrorTypeInvalidRequest, apiErr.Type)
}

func TestNewCompletionRequest(t *testing.T) {
	req := NewCompletionRequest("hi")

	assert.Equal(t, CompletionRequest{
		Model:            "text-davinci-003",
		Prompt:           "hi",
		MaxTokens:        200,
		Temperature:      0,
		TopP:             1,
		FrequencyPenalty: 0,
		PresencePenalty:  0,
	}, req)
}

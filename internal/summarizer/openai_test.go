package summarizer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefly/internal/summarizer"
)

// testConfig returns a summarizer configuration pointed at the given fake
// API base URL.
func testConfig(baseURL string) *summarizer.Config {
	return &summarizer.Config{
		Model:         "gpt-4o-mini",
		SentenceCount: 3,
		MaxTokens:     300,
		Temperature:   0.7,
		Timeout:       5 * time.Second,
		BaseURL:       baseURL,
	}
}

// chatCompletionResponse builds a minimal OpenAI chat completion response body.
func chatCompletionResponse(content string, usage map[string]int) map[string]interface{} {
	resp := map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]interface{}{
			{
				"index": 0,
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
	}
	if usage != nil {
		resp["usage"] = usage
	}
	return resp
}

func TestOpenAI_Summarize_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req["model"])
		assert.InDelta(t, 0.7, req["temperature"], 0.001)
		assert.InDelta(t, 300, req["max_tokens"], 0.001)

		messages := req["messages"].([]interface{})
		require.Len(t, messages, 2)
		system := messages[0].(map[string]interface{})
		assert.Equal(t, "system", system["role"])
		assert.Contains(t, system["content"], "exactly 3 sentences")
		user := messages[1].(map[string]interface{})
		assert.Equal(t, "user", user["role"])
		assert.Contains(t, user["content"], "Some long input text.")

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(chatCompletionResponse(
			"A concise summary. It has key points. Three sentences total.",
			map[string]int{"prompt_tokens": 42, "completion_tokens": 17, "total_tokens": 59},
		)))
	}))
	defer server.Close()

	openAI := summarizer.NewOpenAI("test-key", testConfig(server.URL))

	result, err := openAI.Summarize(context.Background(), "Some long input text.")

	require.NoError(t, err)
	assert.Equal(t, "A concise summary. It has key points. Three sentences total.", result.Summary)
	assert.Equal(t, summarizer.TokenUsage{
		PromptTokens:     42,
		CompletionTokens: 17,
		TotalTokens:      59,
	}, result.Usage)
}

func TestOpenAI_Summarize_MissingUsageDefaultsToZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(chatCompletionResponse("Summary text.", nil)))
	}))
	defer server.Close()

	openAI := summarizer.NewOpenAI("test-key", testConfig(server.URL))

	result, err := openAI.Summarize(context.Background(), "Input.")

	require.NoError(t, err)
	assert.Equal(t, "Summary text.", result.Summary)
	assert.Zero(t, result.Usage)
}

func TestOpenAI_Summarize_APIErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
	}{
		{
			name:       "401 unauthorized",
			statusCode: http.StatusUnauthorized,
			body:       `{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`,
		},
		{
			name:       "429 rate limit",
			statusCode: http.StatusTooManyRequests,
			body:       `{"error": {"message": "Rate limit reached", "type": "rate_limit_error"}}`,
		},
		{
			name:       "500 internal server error",
			statusCode: http.StatusInternalServerError,
			body:       `{"error": {"message": "Internal server error", "type": "server_error"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			openAI := summarizer.NewOpenAI("test-key", testConfig(server.URL))

			_, err := openAI.Summarize(context.Background(), "Input text.")

			require.Error(t, err)
			assert.Contains(t, err.Error(), "openai api error")
		})
	}
}

func TestOpenAI_Summarize_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-test", "object": "chat.completion", "choices": []}`))
	}))
	defer server.Close()

	openAI := summarizer.NewOpenAI("test-key", testConfig(server.URL))

	_, err := openAI.Summarize(context.Background(), "Input text.")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestOpenAI_Summarize_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	config := testConfig(server.URL)
	config.Timeout = 50 * time.Millisecond
	openAI := summarizer.NewOpenAI("test-key", config)

	_, err := openAI.Summarize(context.Background(), "Input text.")

	require.Error(t, err)
}

func TestOpenAI_Summarize_NoRetry(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "boom", "type": "server_error"}}`))
	}))
	defer server.Close()

	openAI := summarizer.NewOpenAI("test-key", testConfig(server.URL))

	_, err := openAI.Summarize(context.Background(), "Input text.")

	require.Error(t, err)
	assert.Equal(t, 1, calls, "a failed call must not be retried")
}

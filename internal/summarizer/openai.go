package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"briefly/internal/resilience/circuitbreaker"
	"briefly/internal/utils/text"
)

// DefaultOpenAIModel is the model used when SUMMARIZER_MODEL is unset.
const DefaultOpenAIModel = openai.GPT4oMini

// OpenAI implements the Summarizer interface using OpenAI's chat completion
// API. Calls run through a circuit breaker; failures are never retried and
// are expected to be recovered by the Fallback wrapper.
type OpenAI struct {
	client          *openai.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	config          *Config
	metricsRecorder MetricsRecorder
}

// NewOpenAI creates a new OpenAI summarizer with the given API key.
// It automatically configures the circuit breaker and metrics recording.
func NewOpenAI(apiKey string, config *Config) *OpenAI {
	clientConfig := openai.DefaultConfig(apiKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	slog.Info("Initialized OpenAI summarizer",
		slog.String("model", config.Model),
		slog.Int("sentence_count", config.SentenceCount),
		slog.Int("max_tokens", config.MaxTokens))

	return &OpenAI{
		client:          openai.NewClientWithConfig(clientConfig),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
		config:          config,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

// Summarize generates a summary of the given text using the OpenAI API.
// Any failure, including an open circuit breaker, is returned to the caller
// without retry.
func (o *OpenAI) Summarize(ctx context.Context, inputText string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
		return o.doSummarize(ctx, inputText)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			slog.Warn("openai api circuit breaker open, request rejected",
				slog.String("service", "openai-api"),
				slog.String("state", o.circuitBreaker.State().String()))
			return nil, fmt.Errorf("openai api unavailable: circuit breaker open")
		}
		return nil, err
	}

	return cbResult.(*Result), nil
}

// systemInstruction builds the fixed instruction sent as the system message.
func (o *OpenAI) systemInstruction() string {
	return fmt.Sprintf(
		"You are a summarization assistant. Produce exactly %d sentences capturing the key points of the text.",
		o.config.SentenceCount)
}

// doSummarize performs the actual API call without the circuit breaker.
func (o *OpenAI) doSummarize(ctx context.Context, inputText string) (*Result, error) {
	requestID := uuid.New().String()

	truncatedText := truncateForAPI(inputText, requestID, "openai")
	inputLength := text.CountRunes(truncatedText)

	slog.InfoContext(ctx, "Starting summarization",
		slog.String("request_id", requestID),
		slog.String("provider", "openai"),
		slog.String("model", o.config.Model),
		slog.Int("input_length", inputLength))

	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.config.Model,
		MaxTokens:   o.config.MaxTokens,
		Temperature: o.config.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: o.systemInstruction(),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Summarize the following text:\n\n%s", truncatedText),
			},
		},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Summarization failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("openai api error: %w", err)
	}

	// Safety check to prevent panic on array access.
	if len(resp.Choices) == 0 {
		slog.ErrorContext(ctx, "OpenAI API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return nil, fmt.Errorf("openai api returned empty response")
	}

	result := &Result{
		Summary: resp.Choices[0].Message.Content,
		Usage: TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}

	summaryLength := text.CountRunes(result.Summary)

	slog.InfoContext(ctx, "Summarization completed",
		slog.String("request_id", requestID),
		slog.Int("summary_length", summaryLength),
		slog.Int("total_tokens", result.Usage.TotalTokens),
		slog.Duration("duration", duration))

	o.metricsRecorder.RecordLength(summaryLength)
	o.metricsRecorder.RecordDuration(duration)
	o.metricsRecorder.RecordTokens(result.Usage)

	return result, nil
}

// truncateForAPI caps the text sent to a remote API. The cap keeps the
// request well under the context window of every supported model.
func truncateForAPI(inputText, requestID, provider string) string {
	const maxChars = 10000
	if len(inputText) <= maxChars {
		return inputText
	}

	truncated := inputText[:maxChars] + "...\n(text truncated)"
	slog.Warn("text truncated for remote api",
		slog.String("request_id", requestID),
		slog.String("provider", provider),
		slog.Int("original_length", len(inputText)),
		slog.Int("truncated_length", len(truncated)))
	return truncated
}

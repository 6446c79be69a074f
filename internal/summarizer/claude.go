package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"briefly/internal/resilience/circuitbreaker"
	"briefly/internal/utils/text"
)

// DefaultClaudeModel is the model used when SUMMARIZER_MODEL is unset.
var DefaultClaudeModel = "claude-sonnet-4-5-20250929"

// Claude implements the Summarizer interface using Anthropic's Claude API.
// Calls run through a circuit breaker; failures are never retried and are
// expected to be recovered by the Fallback wrapper.
type Claude struct {
	client          anthropic.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	config          *Config
	metricsRecorder MetricsRecorder
}

// NewClaude creates a new Claude summarizer with the given API key.
// It automatically configures the circuit breaker and metrics recording.
func NewClaude(apiKey string, config *Config) *Claude {
	// The SDK retries by default; failed calls must fall through to the
	// local strategy instead.
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	slog.Info("Initialized Claude summarizer",
		slog.String("model", config.Model),
		slog.Int("sentence_count", config.SentenceCount),
		slog.Int("max_tokens", config.MaxTokens))

	return &Claude{
		client:          anthropic.NewClient(opts...),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		config:          config,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

// Summarize generates a summary of the given text using the Claude API.
// Any failure, including an open circuit breaker, is returned to the caller
// without retry.
func (c *Claude) Summarize(ctx context.Context, inputText string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		return c.doSummarize(ctx, inputText)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			slog.Warn("claude api circuit breaker open, request rejected",
				slog.String("service", "claude-api"),
				slog.String("state", c.circuitBreaker.State().String()))
			return nil, fmt.Errorf("claude api unavailable: circuit breaker open")
		}
		return nil, err
	}

	return cbResult.(*Result), nil
}

// systemInstruction builds the fixed instruction sent as the system prompt.
func (c *Claude) systemInstruction() string {
	return fmt.Sprintf(
		"You are a summarization assistant. Produce exactly %d sentences capturing the key points of the text.",
		c.config.SentenceCount)
}

// doSummarize performs the actual API call without the circuit breaker.
func (c *Claude) doSummarize(ctx context.Context, inputText string) (*Result, error) {
	requestID := uuid.New().String()

	truncatedText := truncateForAPI(inputText, requestID, "claude")
	inputLength := text.CountRunes(truncatedText)

	slog.InfoContext(ctx, "Starting summarization",
		slog.String("request_id", requestID),
		slog.String("provider", "claude"),
		slog.String("model", c.config.Model),
		slog.Int("input_length", inputLength))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.config.Model),
		MaxTokens:   int64(c.config.MaxTokens),
		Temperature: anthropic.Float(float64(c.config.Temperature)),
		System: []anthropic.TextBlockParam{
			{Text: c.systemInstruction()},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(fmt.Sprintf("Summarize the following text:\n\n%s", truncatedText)),
			),
		},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Summarization failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		slog.ErrorContext(ctx, "Claude API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return nil, fmt.Errorf("claude api returned empty response")
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		slog.ErrorContext(ctx, "Claude API returned unexpected response type",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return nil, fmt.Errorf("claude api returned unexpected response type")
	}

	usage := TokenUsage{
		PromptTokens:     int(message.Usage.InputTokens),
		CompletionTokens: int(message.Usage.OutputTokens),
	}
	usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens

	result := &Result{
		Summary: textBlock.Text,
		Usage:   usage,
	}

	summaryLength := text.CountRunes(result.Summary)

	slog.InfoContext(ctx, "Summarization completed",
		slog.String("request_id", requestID),
		slog.Int("summary_length", summaryLength),
		slog.Int("total_tokens", result.Usage.TotalTokens),
		slog.Duration("duration", duration))

	c.metricsRecorder.RecordLength(summaryLength)
	c.metricsRecorder.RecordDuration(duration)
	c.metricsRecorder.RecordTokens(result.Usage)

	return result, nil
}

package summarizer

import (
	"fmt"
	"time"

	pkgconfig "briefly/pkg/config"
)

const (
	// minSentences is the minimum allowed sentence count for summaries.
	minSentences = 1

	// maxSentences is the maximum allowed sentence count for summaries.
	maxSentences = 10
)

// Config holds configuration parameters shared by the remote summarizers.
// Configuration is loaded from environment variables with fallback to defaults.
type Config struct {
	// Model is the API model identifier to use for summarization.
	Model string

	// SentenceCount is the number of sentences the summary should contain.
	// Valid range: 1-10. Default: 3.
	SentenceCount int

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Temperature is the sampling temperature for the API call.
	Temperature float32

	// Timeout is the maximum duration for a single summarization API call.
	Timeout time.Duration

	// BaseURL overrides the API endpoint base URL. Empty means the
	// provider's default endpoint. Used by tests to point at fake servers.
	BaseURL string
}

// Validate checks the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}

	if err := ValidateSentenceCount(c.SentenceCount); err != nil {
		return fmt.Errorf("invalid sentence count: %w", err)
	}

	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2], got %g", c.Temperature)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}

	return nil
}

// ValidateSentenceCount validates that the sentence count is within the
// valid range (1-10). Returns a descriptive error if out of range.
func ValidateSentenceCount(count int) error {
	if count < minSentences {
		return fmt.Errorf("sentence count %d is below minimum %d", count, minSentences)
	}
	if count > maxSentences {
		return fmt.Errorf("sentence count %d exceeds maximum %d", count, maxSentences)
	}
	return nil
}

// DefaultConfig returns the built-in defaults for the given model.
// The sampling temperature is fixed: it is part of the summarization
// contract, not a tuning knob.
func DefaultConfig(model string) Config {
	return Config{
		Model:         model,
		SentenceCount: 3,
		MaxTokens:     300,
		Temperature:   0.7,
		Timeout:       60 * time.Second,
	}
}

// LoadConfig loads summarizer configuration from environment variables,
// falling back to the given defaults for anything unset.
//
// Environment variables:
//   - SUMMARIZER_MODEL: API model identifier
//   - SUMMARIZER_SENTENCES: Sentence count (range: 1-10)
//   - SUMMARIZER_MAX_TOKENS: Response token cap
//   - SUMMARIZER_TIMEOUT: Per-call timeout
//
// Returns an error if the resulting configuration is invalid (fail-closed).
func LoadConfig(defaults Config) (*Config, error) {
	config := &Config{
		Model:         pkgconfig.GetEnvString("SUMMARIZER_MODEL", defaults.Model),
		SentenceCount: pkgconfig.GetEnvInt("SUMMARIZER_SENTENCES", defaults.SentenceCount),
		MaxTokens:     pkgconfig.GetEnvInt("SUMMARIZER_MAX_TOKENS", defaults.MaxTokens),
		Temperature:   defaults.Temperature,
		Timeout:       pkgconfig.GetEnvDuration("SUMMARIZER_TIMEOUT", defaults.Timeout),
		BaseURL:       defaults.BaseURL,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid summarizer configuration: %w", err)
	}

	return config, nil
}

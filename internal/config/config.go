// Package config loads the application configuration: remote API credentials
// from the environment and summarizer settings from an optional YAML file
// overridden by environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"briefly/internal/summarizer"
)

// Provider identifies which summarization backend is selected.
type Provider string

const (
	// ProviderNone means no credential is configured; only the local
	// strategy is available. This is not an error.
	ProviderNone Provider = "none"

	// ProviderOpenAI selects the OpenAI chat completion API.
	ProviderOpenAI Provider = "openai"

	// ProviderClaude selects the Anthropic Claude API.
	ProviderClaude Provider = "claude"
)

// Config is the resolved application configuration.
type Config struct {
	// Provider is the selected remote backend. OpenAI takes precedence
	// when both credentials are present.
	Provider Provider

	// APIKey is the credential for the selected provider. Empty when
	// Provider is ProviderNone.
	APIKey string

	// Summarizer holds the validated summarizer settings.
	Summarizer *summarizer.Config
}

// fileConfig is the YAML shape of the optional configuration file.
// Unset fields keep their defaults; environment variables override the file.
type fileConfig struct {
	Model     string `yaml:"model"`
	Sentences int    `yaml:"sentences"`
	MaxTokens int    `yaml:"max_tokens"`
	Timeout   string `yaml:"timeout"`
}

// Load resolves the application configuration.
//
// Credential selection: OPENAI_API_KEY selects the OpenAI backend,
// ANTHROPIC_API_KEY the Claude backend, OpenAI winning when both are set.
// Absence of both silently selects local-only behavior.
//
// Summarizer settings resolve in precedence order: environment variables,
// then the YAML file at configPath (if non-empty), then built-in defaults.
func Load(configPath string) (*Config, error) {
	provider, apiKey := selectProvider()

	defaultModel := summarizer.DefaultOpenAIModel
	if provider == ProviderClaude {
		defaultModel = summarizer.DefaultClaudeModel
	}
	defaults := summarizer.DefaultConfig(defaultModel)

	if configPath != "" {
		if err := applyFile(configPath, &defaults); err != nil {
			return nil, err
		}
	}

	summarizerConfig, err := summarizer.LoadConfig(defaults)
	if err != nil {
		return nil, err
	}

	return &Config{
		Provider:   provider,
		APIKey:     apiKey,
		Summarizer: summarizerConfig,
	}, nil
}

// selectProvider picks the remote backend from the configured credentials.
func selectProvider() (Provider, string) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return ProviderOpenAI, key
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return ProviderClaude, key
	}
	return ProviderNone, ""
}

// applyFile overlays the YAML file at path onto defaults.
func applyFile(path string, defaults *summarizer.Config) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path is a user-supplied CLI flag
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Model != "" {
		defaults.Model = fc.Model
	}
	if fc.Sentences != 0 {
		defaults.SentenceCount = fc.Sentences
	}
	if fc.MaxTokens != 0 {
		defaults.MaxTokens = fc.MaxTokens
	}
	if fc.Timeout != "" {
		timeout, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("parse config file %s: invalid timeout %q: %w", path, fc.Timeout, err)
		}
		defaults.Timeout = timeout
	}

	return nil
}

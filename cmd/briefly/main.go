// Package main provides the briefly CLI for summarizing text.
// Usage: briefly [-config path] [filepath]
//
// With a filepath argument the file contents are summarized; without one,
// text is read from standard input until end-of-input. Summarization uses a
// remote language-model API when a credential is configured (OPENAI_API_KEY
// or ANTHROPIC_API_KEY) and falls back to a local first-sentences heuristic
// otherwise or on any remote failure.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"briefly/internal/config"
	"briefly/internal/input"
	"briefly/internal/observability/logging"
	"briefly/internal/report"
	"briefly/internal/summarizer"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to optional YAML configuration file")
	flag.Parse()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	text, err := acquireInput(flag.Args())
	if err != nil {
		logger.Error("failed to read input", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if text == "" {
		fmt.Println("No text provided.")
		return 0
	}

	summ := buildSummarizer(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	logger.Info("Summarizing",
		slog.String("provider", string(cfg.Provider)),
		slog.Int("input_length", len(text)))

	result, err := summ.Summarize(ctx, text)
	if err != nil {
		logger.Error("summarize failed", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	rep := report.Build(text, result)
	if err := rep.Render(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// acquireInput returns the text to summarize: the contents of the file named
// by the first positional argument, or standard input up to end-of-input.
func acquireInput(args []string) (string, error) {
	if len(args) > 0 {
		return input.ReadFile(args[0])
	}

	fmt.Fprintln(os.Stderr, "Enter text to summarize (Ctrl-D to finish):")
	return input.ReadLines(os.Stdin)
}

// buildSummarizer assembles the strategy chain: the configured remote (if
// any) wrapped by the silent fallback to the local heuristic.
func buildSummarizer(cfg *config.Config) summarizer.Summarizer {
	var remote summarizer.Summarizer
	switch cfg.Provider {
	case config.ProviderOpenAI:
		remote = summarizer.NewOpenAI(cfg.APIKey, cfg.Summarizer)
	case config.ProviderClaude:
		remote = summarizer.NewClaude(cfg.APIKey, cfg.Summarizer)
	default:
		slog.Info("no API credential configured, using local summarization only")
	}

	return summarizer.NewFallback(remote, summarizer.NewLead(cfg.Summarizer.SentenceCount))
}

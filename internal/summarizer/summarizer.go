// Package summarizer provides text summarization strategies.
// It includes remote adapters for the OpenAI and Claude (Anthropic) chat APIs
// and a deterministic local heuristic, composed behind a common interface with
// silent fallback from remote to local on any remote failure.
package summarizer

import "context"

// TokenUsage holds the token accounting reported by a remote language-model
// call. All counters are zero when the local strategy produced the summary.
type TokenUsage struct {
	// PromptTokens is the number of tokens consumed by the request prompt.
	PromptTokens int

	// CompletionTokens is the number of tokens in the generated response.
	CompletionTokens int

	// TotalTokens is the total number of tokens billed for the call.
	TotalTokens int
}

// Result is the outcome of a summarization request.
type Result struct {
	// Summary is the generated summary text. It is non-empty whenever the
	// input text was non-empty.
	Summary string

	// Usage is the token accounting for the call that produced Summary.
	Usage TokenUsage
}

// Summarizer generates a summary for the given text.
// Implementations must not mutate shared state; a single Summarizer value
// is safe to reuse across sequential calls.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (*Result, error)
}

package summarizer

import (
	"context"
	"regexp"
	"strings"
)

// sentencePattern matches a run of non-terminator characters followed by one
// or more sentence terminators and any trailing whitespace.
var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+\s*`)

// Lead is a summarizer that takes the leading sentences of the input text.
// It is deterministic, never fails, and reports zero token usage.
// It serves as the fallback when no remote summarizer is configured or a
// remote call fails.
type Lead struct {
	sentenceCount int
}

// NewLead creates a new Lead summarizer that keeps the first count sentences.
// A non-positive count falls back to 3.
func NewLead(count int) *Lead {
	if count <= 0 {
		count = 3
	}
	return &Lead{sentenceCount: count}
}

// Summarize returns the first sentences of the text joined by single spaces.
// Text without any sentence terminator is treated as a single fragment, so
// the whole trimmed text is returned. Whitespace-only selections fall back
// to the trimmed original text.
func (l *Lead) Summarize(_ context.Context, text string) (*Result, error) {
	fragments := sentencePattern.FindAllString(text, -1)
	if len(fragments) == 0 {
		fragments = []string{text}
	}

	if len(fragments) > l.sentenceCount {
		fragments = fragments[:l.sentenceCount]
	}

	for i, fragment := range fragments {
		fragments[i] = strings.TrimSpace(fragment)
	}

	summary := strings.TrimSpace(strings.Join(fragments, " "))
	if summary == "" {
		summary = strings.TrimSpace(text)
	}

	return &Result{Summary: summary}, nil
}

// Package report computes and renders length and token-usage statistics
// for a summarization run.
package report

import (
	"fmt"
	"io"
	"math"

	"briefly/internal/summarizer"
	"briefly/internal/utils/text"
)

// Report holds the summary and the statistics derived from it and the
// original text.
type Report struct {
	Summary string

	OriginalChars int
	OriginalWords int
	SummaryChars  int
	SummaryWords  int

	// ReductionPercent is (1 - SummaryChars/OriginalChars) * 100 rounded to
	// one decimal place. Zero when OriginalChars is zero, which cannot occur
	// for a run: empty input is rejected before summarization.
	ReductionPercent float64

	Usage summarizer.TokenUsage
}

// Build computes a Report from the original text and the summarization result.
func Build(original string, result *summarizer.Result) Report {
	r := Report{
		Summary:       result.Summary,
		OriginalChars: text.CountRunes(original),
		OriginalWords: text.CountWords(original),
		SummaryChars:  text.CountRunes(result.Summary),
		SummaryWords:  text.CountWords(result.Summary),
		Usage:         result.Usage,
	}

	if r.OriginalChars > 0 {
		reduction := (1 - float64(r.SummaryChars)/float64(r.OriginalChars)) * 100
		r.ReductionPercent = math.Round(reduction*10) / 10
	}

	return r
}

// Render writes the report in its fixed human-readable layout.
func (r Report) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Summary:\n%s\n\n"+
			"Original:  %d characters, %d words\n"+
			"Summary:   %d characters, %d words\n"+
			"Reduction: %.1f%%\n\n"+
			"Token usage:\n"+
			"  Prompt:     %d\n"+
			"  Completion: %d\n"+
			"  Total:      %d\n",
		r.Summary,
		r.OriginalChars, r.OriginalWords,
		r.SummaryChars, r.SummaryWords,
		r.ReductionPercent,
		r.Usage.PromptTokens, r.Usage.CompletionTokens, r.Usage.TotalTokens)
	return err
}

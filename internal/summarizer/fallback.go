package summarizer

import (
	"context"
	"log/slog"
)

// Fallback composes an optional remote summarizer with the Lead heuristic.
// When a remote is configured it is always attempted first; any remote error
// is logged and silently recovered by the local strategy for that request
// only. Without a remote the local strategy is used directly and no network
// call is ever made.
type Fallback struct {
	remote          Summarizer
	local           *Lead
	metricsRecorder MetricsRecorder
}

// NewFallback creates a Fallback around the given remote summarizer.
// remote may be nil, which selects local-only behavior.
func NewFallback(remote Summarizer, local *Lead) *Fallback {
	return &Fallback{
		remote:          remote,
		local:           local,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

// Summarize returns the remote result when the remote call succeeds, and the
// local result otherwise. It never returns an error: the local strategy has
// no failure mode.
func (f *Fallback) Summarize(ctx context.Context, text string) (*Result, error) {
	if f.remote != nil {
		result, err := f.remote.Summarize(ctx, text)
		if err == nil {
			return result, nil
		}

		// Swallowed by contract: every remote failure degrades to the
		// local strategy without surfacing to the caller.
		slog.Warn("remote summarization failed, falling back to local strategy",
			slog.String("error", err.Error()))
		f.metricsRecorder.RecordFallback()
	}

	return f.local.Summarize(ctx, text)
}

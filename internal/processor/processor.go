package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/rename-flow/internal/sanitizer"
	"github.com/nguyentantai21042004/rename-flow/internal/summarizer"
)

// Process runs the full pipeline for one file: extract text, summarize
// it, sanitize the summary into a filename-safe string. A failure in any
// stage aborts only this file; the error carries the failing stage and
// the original path.
func (p *implProcessor) Process(ctx context.Context, path string, language string) (string, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "Processing document: %s", path)

	doc, err := p.extractor.Extract(ctx, path)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", path, err)
	}

	result, err := p.summarizer.Summarize(ctx, summarizer.Request{
		Text:      doc.Content,
		Language:  language,
		MaxLength: p.cfg.Summary.MaxLength,
		MinLength: p.cfg.Summary.MinLength,
	})
	if err != nil {
		return "", fmt.Errorf("summarize %s: %w", path, err)
	}
	if result.UsedFallback {
		p.logger.Warn(ctx, "Summary for %s came from the greedy fallback pass", path)
	}

	safeName := sanitizer.Sanitize(result.Text)

	p.logger.Info(ctx, "Processed %s in %s: %q", path, time.Since(startTime), safeName)
	return safeName, nil
}

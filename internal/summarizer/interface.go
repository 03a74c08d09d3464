package summarizer

import (
	"context"
	"errors"
)

// ErrGeneration means inference failed during the primary pass.
// Fallback-pass failures are swallowed and never carry this error.
var ErrGeneration = errors.New("summary generation failed")

// Request asks for a summary of text in the given language.
// Unrecognized language codes fall back to the English prompt.
type Request struct {
	Text      string
	Language  string
	MaxLength int
	MinLength int
}

// Result is a generated summary. UsedFallback reports whether the
// deterministic greedy pass replaced a degenerate primary result.
type Result struct {
	Text         string
	UsedFallback bool
}

// Summarizer produces a short multilingual summary of document text.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) (Result, error)
}

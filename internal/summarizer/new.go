package summarizer

import (
	"github.com/nguyentantai21042004/rename-flow/internal/genmodel"
	"github.com/nguyentantai21042004/rename-flow/internal/logger"
)

type implSummarizer struct {
	handle    *genmodel.Handle
	maxTokens int
	logger    logger.Logger
}

// New creates a Summarizer over a shared generation-model handle.
// The model is initialized lazily on the first Summarize call.
func New(handle *genmodel.Handle, maxTokens int, log logger.Logger) Summarizer {
	if maxTokens <= 0 {
		maxTokens = 512
	}
	return &implSummarizer{
		handle:    handle,
		maxTokens: maxTokens,
		logger:    log,
	}
}

package processor

import (
	"github.com/nguyentantai21042004/rename-flow/internal/config"
	"github.com/nguyentantai21042004/rename-flow/internal/extractor"
	"github.com/nguyentantai21042004/rename-flow/internal/logger"
	"github.com/nguyentantai21042004/rename-flow/internal/summarizer"
)

type implProcessor struct {
	cfg        *config.Config
	extractor  extractor.Extractor
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, ext extractor.Extractor, sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		extractor:  ext,
		summarizer: sum,
		logger:     log,
	}
}

package extractor

import (
	"context"

	"github.com/nguyentantai21042004/rename-flow/internal/logger"
)

type extractFunc func(ctx context.Context, path string) (string, error)

type implExtractor struct {
	logger     logger.Logger
	strategies map[Format]extractFunc
}

// New creates an Extractor dispatching by file extension to a
// format-specific strategy. Adding a format means adding one entry here.
func New(log logger.Logger) Extractor {
	e := &implExtractor{logger: log}
	e.strategies = map[Format]extractFunc{
		FormatText: e.extractText,
		FormatDocx: e.extractDocx,
		FormatDoc:  e.extractDoc,
	}
	return e
}

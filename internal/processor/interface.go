package processor

import "context"

// Processor turns a document file into a filename-safe summary string.
type Processor interface {
	Process(ctx context.Context, path string, language string) (string, error)
}

package extractor

import "context"

// Format identifies a supported document type.
type Format string

const (
	FormatText Format = "txt"
	FormatDocx Format = "docx"
	FormatDoc  Format = "doc"
)

// ExtractedText is the fully decoded content of a source document.
type ExtractedText struct {
	Content string
	Format  Format
}

// Extractor reads a document file and returns its plain text content.
type Extractor interface {
	Extract(ctx context.Context, path string) (ExtractedText, error)
	SupportedExtensions() []string
}

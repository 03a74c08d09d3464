package extractor

import "errors"

var (
	// ErrNotFound means the source path does not exist.
	ErrNotFound = errors.New("file does not exist")

	// ErrUnsupportedFormat means the file extension is not recognized.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrDecodeFailure means no candidate text encoding decoded the file.
	ErrDecodeFailure = errors.New("no candidate encoding decoded the file")

	// ErrInvalidDocument means the compound binary container is unreadable
	// or missing its main text stream.
	ErrInvalidDocument = errors.New("not a valid word document container")

	// ErrExtractionFailure means the zipped-XML document structure could
	// not be parsed.
	ErrExtractionFailure = errors.New("document structure could not be parsed")
)

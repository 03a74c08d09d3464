package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extract reads the file at path and returns its decoded text content.
func (e *implExtractor) Extract(ctx context.Context, path string) (ExtractedText, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ExtractedText{}, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return ExtractedText{}, fmt.Errorf("stat %s: %w", path, err)
	}

	format, err := detectFormat(path)
	if err != nil {
		return ExtractedText{}, err
	}

	e.logger.Debug(ctx, "Extracting %s document: %s", format, path)

	content, err := e.strategies[format](ctx, path)
	if err != nil {
		return ExtractedText{}, err
	}

	e.logger.Info(ctx, "Extracted %d characters from %s", len(content), path)
	return ExtractedText{Content: content, Format: format}, nil
}

// SupportedExtensions returns the file extensions this extractor handles.
func (e *implExtractor) SupportedExtensions() []string {
	return []string{".txt", ".docx", ".doc"}
}

func detectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt":
		return FormatText, nil
	case ".docx":
		return FormatDocx, nil
	case ".doc":
		return FormatDoc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

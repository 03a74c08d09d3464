package extractor

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/richardlehane/mscfb"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

const mainTextStream = "WordDocument"

var whitespaceRuns = regexp.MustCompile(`\s+`)

// extractDoc scrapes text from a legacy .doc compound binary container.
//
// This is a heuristic byte-stream scrape of the WordDocument stream, not a
// structural parse of the piece table: formatting, tables, and embedded
// objects are not reconstructed, and the output may contain fragments of
// control records for complex documents.
func (e *implExtractor) extractDoc(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := mscfb.New(f)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s", ErrInvalidDocument, path, err)
	}

	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if entry.Name != mainTextStream {
			continue
		}

		data, err := io.ReadAll(entry)
		if err != nil {
			return "", fmt.Errorf("%w: read %s stream: %s", ErrInvalidDocument, mainTextStream, err)
		}

		e.logger.Debug(ctx, "Read %d bytes from %s stream of %s", len(data), mainTextStream, path)
		return decodeDocStream(data), nil
	}

	return "", fmt.Errorf("%w: %s stream missing in %s", ErrInvalidDocument, mainTextStream, path)
}

// decodeDocStream decodes raw WordDocument stream bytes as UTF-16,
// falling back to Latin-1, then strips NULs and collapses whitespace.
func decodeDocStream(data []byte) string {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil {
		out, err = charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			out = data
		}
	}

	text := strings.ReplaceAll(string(out), "\x00", "")
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
}

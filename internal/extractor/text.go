package extractor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// textEncoding is one candidate for decoding a plain text file.
type textEncoding struct {
	name   string
	decode func(data []byte) (string, bool)
}

// textEncodings is tried in order; the first clean decode wins. Latin-1
// accepts every byte sequence, so UTF-16 is effectively a dead last resort.
// The order is deliberate and matches the tool's historical behavior.
var textEncodings = []textEncoding{
	{name: "utf-8", decode: decodeUTF8},
	{name: "gbk", decode: strictDecoder(simplifiedchinese.GBK)},
	{name: "latin-1", decode: strictDecoder(charmap.ISO8859_1)},
	{name: "utf-16", decode: strictDecoder(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM))},
}

// extractText reads a plain text file, trying candidate encodings in order.
func (e *implExtractor) extractText(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	content, name, err := decodeText(data, textEncodings)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	e.logger.Debug(ctx, "Decoded %s using encoding %s", path, name)
	return content, nil
}

// decodeText returns the content from the first candidate that decodes
// the data without error, along with the candidate's name.
func decodeText(data []byte, candidates []textEncoding) (string, string, error) {
	for _, c := range candidates {
		if content, ok := c.decode(data); ok {
			return content, c.name, nil
		}
	}
	return "", "", ErrDecodeFailure
}

func decodeUTF8(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

// strictDecoder wraps an encoding so that a decode producing replacement
// characters counts as a failure, emulating strict per-encoding decoding.
func strictDecoder(enc encoding.Encoding) func([]byte) (string, bool) {
	return func(data []byte) (string, bool) {
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", false
		}
		if bytes.ContainsRune(out, utf8.RuneError) {
			return "", false
		}
		return string(out), true
	}
}

// Package sanitizer turns generated summary text into a string safe to
// use as a file name.
package sanitizer

import (
	"regexp"
	"strings"
)

// maxFilenameLength caps the sanitized text, leaving headroom for the
// original extension the caller appends.
const maxFilenameLength = 200

var (
	// markupSpans match angle-bracket markup left over from generation.
	markupSpans = regexp.MustCompile(`<[^>]+>`)

	// forbiddenChars covers filesystem-reserved characters, shell
	// punctuation, and sentence terminators in Latin and CJK scripts.
	forbiddenChars = regexp.MustCompile("[\\\\/:*?\"<>|%#$@!^&()\\[\\]{};`,.~+=。，？！]")

	// runsOfSpaceOrHyphen collapse to a single space.
	runsOfSpaceOrHyphen = regexp.MustCompile(`[-\s]+`)
)

// Sanitize returns text with markup spans and forbidden characters
// removed, whitespace and hyphen runs collapsed, trimmed, and capped at
// 200 runes. It never fails and is idempotent. Markup removal runs
// before character filtering so partial tags cannot survive.
func Sanitize(text string) string {
	cleaned := markupSpans.ReplaceAllString(text, "")
	cleaned = forbiddenChars.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(runsOfSpaceOrHyphen.ReplaceAllString(cleaned, " "))

	if runes := []rune(cleaned); len(runes) > maxFilenameLength {
		cleaned = strings.TrimRight(string(runes[:maxFilenameLength]), " ")
	}

	return cleaned
}

package sanitizer

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"
)

const forbiddenSet = "\\/:*?\"<>|%#$@!^&()[]{};`,.~+=。，？！"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Annual water quality report", "Annual water quality report"},
		{"forbidden characters removed", `Report: "Q3/Q4" <draft>`, "Report Q3Q4"},
		{"markup spans removed first", "<extra_id_0>Summary of findings", "Summary of findings"},
		{"partial tag content kept", "a < b still text", "a b still text"},
		{"hyphen runs become spaces", "well--known  --  issue", "well known issue"},
		{"single hyphen becomes space", "follow-up", "follow up"},
		{"cjk punctuation removed", "年度总结。完成了，对吗？好！", "年度总结完成了对吗好"},
		{"leading and trailing space trimmed", "   padded result   ", "padded result"},
		{"empty input", "", ""},
		{"only forbidden characters", "***???///", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeTruncation(t *testing.T) {
	long := strings.Repeat("словослово ", 40) // > 200 runes, multibyte
	got := Sanitize(long)

	if n := utf8.RuneCountInString(got); n > 200 {
		t.Errorf("length = %d runes, want <= 200", n)
	}
	if strings.HasSuffix(got, " ") {
		t.Error("truncated result has trailing whitespace")
	}
	if !utf8.ValidString(got) {
		t.Error("truncation split a multibyte rune")
	}
}

func TestSanitizeProperties(t *testing.T) {
	// Random strings mixing letters, CJK, whitespace, and every
	// forbidden character; structural properties must always hold.
	alphabet := []rune("abc XYZ -\t\n文書要約" + forbiddenSet)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		var sb strings.Builder
		n := rng.Intn(400)
		for j := 0; j < n; j++ {
			sb.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		input := sb.String()
		got := Sanitize(input)

		if strings.ContainsAny(got, forbiddenSet) {
			t.Fatalf("forbidden character survived: %q -> %q", input, got)
		}
		if utf8.RuneCountInString(got) > 200 {
			t.Fatalf("result too long: %q", got)
		}
		if got != strings.TrimSpace(got) {
			t.Fatalf("result not trimmed: %q", got)
		}
		if strings.Contains(got, "  ") || strings.Contains(got, "-") {
			t.Fatalf("run survived collapsing: %q", got)
		}
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Annual water quality report",
		`Report: "Q3/Q4" <draft>`,
		"well--known  --  issue",
		strings.Repeat("long input 文", 50),
		"   <tag>messy -- input??   ",
	}

	for _, input := range inputs {
		once := Sanitize(input)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("not idempotent: %q -> %q -> %q", input, once, twice)
		}
	}
}

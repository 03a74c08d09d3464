package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/rename-flow/internal/genmodel"
)

// languagePrefixes steer the model toward summarizing in the requested
// language. Unknown codes use the English prefix.
var languagePrefixes = map[string]string{
	"en": "summarize English: ",
	"zh": "总结中文: ",
	"fr": "résume en français: ",
	"es": "resumir en español: ",
	"de": "fasse zusammen auf Deutsch: ",
	"ru": "сделать резюме на русском: ",
	"ja": "日本語で要約してください: ",
	"ko": "한국어로 요약: ",
	"ar": "لخص بالعربية: ",
	"it": "riassumi in italiano: ",
}

// degenerateWordCount is the quality gate: fewer words than this and the
// primary result is considered degenerate.
const degenerateWordCount = 3

// Summarize runs the primary beam-search pass and, when the result is
// degenerate, a deterministic greedy fallback pass. The fallback is
// adopted only if it yields more words than the primary result.
func (s *implSummarizer) Summarize(ctx context.Context, req Request) (Result, error) {
	prefix, ok := languagePrefixes[req.Language]
	if !ok {
		prefix = languagePrefixes["en"]
	}

	model, err := s.handle.Get()
	if err != nil {
		return Result{}, err
	}

	s.logger.Debug(ctx, "Summarizing %d characters (language: %s)", len(req.Text), req.Language)

	// Truncation to the token budget happens inside Encode, silently.
	inputIDs, err := model.Encode(ctx, prefix+req.Text, s.maxTokens)
	if err != nil {
		return Result{}, fmt.Errorf("%w: encode: %w", ErrGeneration, err)
	}

	primaryParams := genmodel.Params{
		MaxLength:         req.MaxLength,
		MinLength:         req.MinLength,
		NumBeams:          4,
		EarlyStopping:     true,
		NoRepeatNgramSize: 3,
		LengthPenalty:     2.0,
		RepetitionPenalty: 1.5,
		Temperature:       0.7,
		DoSample:          true,
	}

	text, err := s.generate(ctx, model, inputIDs, primaryParams, prefix)
	if err != nil {
		return Result{}, fmt.Errorf("%w: primary pass: %w", ErrGeneration, err)
	}

	words := len(strings.Fields(text))
	if words >= degenerateWordCount {
		return Result{Text: text}, nil
	}

	s.logger.Warn(ctx, "Summary degenerate (%d words), trying greedy fallback", words)

	fallbackParams := genmodel.Params{
		MaxLength:     req.MaxLength,
		NumBeams:      1,
		EarlyStopping: true,
	}

	fallbackText, err := s.generate(ctx, model, inputIDs, fallbackParams, prefix)
	if err != nil {
		// Fallback failures never escalate; the primary result stands.
		s.logger.Error(ctx, "Fallback generation failed: %v", err)
		return Result{Text: text}, nil
	}

	if len(strings.Fields(fallbackText)) > words {
		s.logger.Info(ctx, "Adopting fallback summary (%d words)", len(strings.Fields(fallbackText)))
		return Result{Text: fallbackText, UsedFallback: true}, nil
	}

	s.logger.Warn(ctx, "Fallback offered no improvement, keeping primary summary")
	return Result{Text: text}, nil
}

// generate runs one generation pass and decodes the output, defending
// against the model echoing the prompt prefix back.
func (s *implSummarizer) generate(ctx context.Context, model genmodel.Capability, inputIDs []int64, params genmodel.Params, prefix string) (string, error) {
	outputIDs, err := model.Generate(ctx, inputIDs, params)
	if err != nil {
		return "", err
	}

	text, err := model.Decode(ctx, outputIDs)
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, prefix) {
		text = strings.TrimSpace(strings.TrimPrefix(text, prefix))
	}
	return text, nil
}

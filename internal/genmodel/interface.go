package genmodel

import "context"

// Params mirrors the decoding controls of the underlying seq2seq model.
type Params struct {
	MaxLength         int     `json:"max_length"`
	MinLength         int     `json:"min_length,omitempty"`
	NumBeams          int     `json:"num_beams"`
	EarlyStopping     bool    `json:"early_stopping"`
	NoRepeatNgramSize int     `json:"no_repeat_ngram_size,omitempty"`
	LengthPenalty     float64 `json:"length_penalty,omitempty"`
	RepetitionPenalty float64 `json:"repetition_penalty,omitempty"`
	Temperature       float64 `json:"temperature,omitempty"`
	DoSample          bool    `json:"do_sample"`
}

// Capability is the encode/generate/decode surface of the generation
// model. Decode strips model-internal special tokens; Encode silently
// truncates to maxTokens.
type Capability interface {
	Encode(ctx context.Context, text string, maxTokens int) ([]int64, error)
	Generate(ctx context.Context, inputIDs []int64, params Params) ([]int64, error)
	Decode(ctx context.Context, outputIDs []int64) (string, error)
}

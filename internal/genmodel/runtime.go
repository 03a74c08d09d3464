package genmodel

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nguyentantai21042004/rename-flow/internal/logger"
	"github.com/nguyentantai21042004/rename-flow/pkg/executor"
)

// Config locates the model resources and the inference runner binary.
type Config struct {
	ModelPath  string
	RunnerPath string
	Device     string // empty means probe the runner for one
}

type implRuntime struct {
	cfg      Config
	device   string
	executor executor.Executor
	logger   logger.Logger
}

type request struct {
	Op        string  `json:"op"`
	Text      string  `json:"text,omitempty"`
	MaxTokens int     `json:"max_tokens,omitempty"`
	TokenIDs  []int64 `json:"token_ids,omitempty"`
	Params    *Params `json:"params,omitempty"`
}

type response struct {
	TokenIDs []int64 `json:"token_ids,omitempty"`
	Text     string  `json:"text,omitempty"`
	Device   string  `json:"device,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// New initializes a Capability backed by a local inference runner
// invoked once per operation with a JSON request on stdin. It verifies
// the model resources exist and selects a compute device; any failure
// here wraps ErrModelLoad.
func New(ctx context.Context, cfg Config, exec executor.Executor, log logger.Logger) (Capability, error) {
	if info, err := os.Stat(cfg.ModelPath); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: model resources not found at %s", ErrModelLoad, cfg.ModelPath)
	}

	r := &implRuntime{cfg: cfg, executor: exec, logger: log}

	device := cfg.Device
	if device == "" {
		resp, err := r.call(ctx, request{Op: "probe"})
		if err != nil {
			return nil, fmt.Errorf("%w: device probe: %s", ErrModelLoad, err)
		}
		device = resp.Device
		if device == "" {
			device = "cpu"
		}
	}
	r.device = device

	log.Info(ctx, "Generation model ready (path: %s, device: %s)", cfg.ModelPath, device)
	return r, nil
}

func (r *implRuntime) Encode(ctx context.Context, text string, maxTokens int) ([]int64, error) {
	resp, err := r.call(ctx, request{Op: "encode", Text: text, MaxTokens: maxTokens})
	if err != nil {
		return nil, err
	}
	return resp.TokenIDs, nil
}

func (r *implRuntime) Generate(ctx context.Context, inputIDs []int64, params Params) ([]int64, error) {
	resp, err := r.call(ctx, request{Op: "generate", TokenIDs: inputIDs, Params: &params})
	if err != nil {
		return nil, err
	}
	return resp.TokenIDs, nil
}

func (r *implRuntime) Decode(ctx context.Context, outputIDs []int64) (string, error) {
	resp, err := r.call(ctx, request{Op: "decode", TokenIDs: outputIDs})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (r *implRuntime) call(ctx context.Context, req request) (response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return response{}, fmt.Errorf("marshal %s request: %w", req.Op, err)
	}

	args := []string{"--model", r.cfg.ModelPath}
	if r.device != "" {
		args = append(args, "--device", r.device)
	}

	out, err := r.executor.ExecuteWithInput(ctx, string(payload), r.cfg.RunnerPath, args...)
	if err != nil {
		return response{}, fmt.Errorf("runner %s: %w", req.Op, err)
	}

	var resp response
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &resp); err != nil {
		return response{}, fmt.Errorf("parse %s response: %w", req.Op, err)
	}
	if resp.Error != "" {
		return response{}, fmt.Errorf("runner %s: %s", req.Op, resp.Error)
	}

	return resp, nil
}

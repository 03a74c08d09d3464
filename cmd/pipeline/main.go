package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/rename-flow/internal/config"
	"github.com/nguyentantai21042004/rename-flow/internal/extractor"
	"github.com/nguyentantai21042004/rename-flow/internal/genmodel"
	"github.com/nguyentantai21042004/rename-flow/internal/logger"
	"github.com/nguyentantai21042004/rename-flow/internal/processor"
	"github.com/nguyentantai21042004/rename-flow/internal/renamer"
	"github.com/nguyentantai21042004/rename-flow/internal/summarizer"
	"github.com/nguyentantai21042004/rename-flow/internal/watcher"
	"github.com/nguyentantai21042004/rename-flow/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Document Rename Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Model: %s (runner: %s)", cfg.Model.Path, cfg.Model.RunnerPath)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		log.Error(ctx, "Failed to create input directory: %v", err)
		os.Exit(1)
	}

	// The model handle is shared across workers and initialized lazily
	// on the first summarization.
	exec := executor.New()
	handle := genmodel.NewHandle(func() (genmodel.Capability, error) {
		return genmodel.New(ctx, genmodel.Config{
			ModelPath:  cfg.Model.Path,
			RunnerPath: cfg.Model.RunnerPath,
			Device:     cfg.Model.Device,
		}, exec, log)
	})

	ext := extractor.New(log)
	sum := summarizer.New(handle, cfg.Model.MaxTokens, log)
	proc := processor.New(cfg, ext, sum, log)

	// A model load failure is fatal for the whole batch; every other
	// per-file error is logged and the batch continues.
	fatalChan := make(chan error, 1)
	handleFile := func(ctx context.Context, path string) error {
		name, err := proc.Process(ctx, path, cfg.Summary.Language)
		if err != nil {
			if errors.Is(err, genmodel.ErrModelLoad) {
				select {
				case fatalChan <- err:
				default:
				}
			}
			return err
		}

		target, err := renamer.Rename(path, name)
		if err != nil {
			return err
		}

		log.Info(ctx, "Renamed: %s -> %s", path, target)
		return nil
	}

	w, err := watcher.New(cfg.Paths.Input, ext.SupportedExtensions(), handleFile, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Rename Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Language: %s", cfg.Summary.Language)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal, a fatal model failure, or a watcher error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-fatalChan:
		log.Error(ctx, "Model unavailable, aborting batch: %v", err)
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Rename Pipeline stopped")
}

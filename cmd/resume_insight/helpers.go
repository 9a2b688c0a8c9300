package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-insight/internal/config"
	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/logging"
	"github.com/jonathan/resume-insight/internal/pipeline"
	"github.com/jonathan/resume-insight/internal/roles"
)

// loadConfig assembles the effective configuration: file values under
// defaults, environment on top.
func loadConfig(path string) (config.Config, error) {
	cfg := config.Defaults()
	if path != "" {
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildLogger constructs the application logger from config.
func buildLogger(cfg config.Config) (*zap.Logger, error) {
	return logging.New(cfg.LogJSON, cfg.Verbose)
}

// buildPipeline wires the scoring client, role catalog, and pipeline.
// The returned cleanup func releases the scoring client. A missing API key
// yields a pipeline without a scoring client; analysis requests then surface
// ServiceUnavailable instead of failing at startup.
func buildPipeline(ctx context.Context, cfg config.Config, log *zap.Logger) (*pipeline.Pipeline, *roles.Catalog, func(), error) {
	catalog, err := roles.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load role catalog: %w", err)
	}

	var client llm.Client
	cleanup := func() {}
	if cfg.APIKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, llm.DefaultConfig().WithModel(cfg.Model), cfg.APIKey)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create scoring client: %w", err)
		}
		client = gemini
		cleanup = func() { _ = gemini.Close() }
	} else {
		log.Warn("GEMINI_API_KEY not set; analysis requests will be rejected as unavailable")
	}

	p := pipeline.New(client, catalog, log, pipeline.Options{
		MaxUploadBytes: cfg.MaxUploadBytes,
		Timeout:        cfg.AnalysisTimeout(),
	})
	return p, catalog, cleanup, nil
}

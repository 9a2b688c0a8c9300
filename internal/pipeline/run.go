// Package pipeline provides the high-level orchestration for resume analysis:
// document extraction, text normalization, the quick-score gate, the scoring
// service call, response normalization, and role-insight enrichment.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-insight/internal/analysis"
	"github.com/jonathan/resume-insight/internal/extraction"
	"github.com/jonathan/resume-insight/internal/ingestion"
	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/prescore"
	"github.com/jonathan/resume-insight/internal/roles"
)

// DefaultTimeout is the end-to-end budget for one analysis call.
const DefaultTimeout = 300 * time.Second

// Options holds configuration for the pipeline.
type Options struct {
	// MaxUploadBytes is the document size ceiling. Zero means the extraction default.
	MaxUploadBytes int
	// Timeout is the analysis time budget. Zero means DefaultTimeout.
	Timeout time.Duration
}

// ExtractedText is the outcome of document extraction plus normalization.
type ExtractedText struct {
	Text       string `json:"text"`
	PageCount  int    `json:"page_count"`
	CharCount  int    `json:"char_count"`
	QuickScore int    `json:"quick_score"`
}

// Pipeline wires the stages together. Each analysis request is independent
// and stateless; the only shared state is the read-only role catalog.
type Pipeline struct {
	client  llm.Client
	catalog *roles.Catalog
	log     *zap.Logger
	opts    Options
}

// New creates a Pipeline. client may be nil when the scoring service is
// unconfigured; extraction and scoring still work, and Analyze surfaces
// ServiceUnavailable.
func New(client llm.Client, catalog *roles.Catalog, log *zap.Logger, opts Options) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Pipeline{client: client, catalog: catalog, log: log, opts: opts}
}

// ExtractText converts document bytes into normalized plain text. Extraction
// that succeeds but yields fewer than ingestion.MinUsableLength characters
// after cleaning is reported as TooShort.
func (p *Pipeline) ExtractText(data []byte) (*ExtractedText, error) {
	result, err := extraction.Extract(data, extraction.Options{MaxBytes: p.opts.MaxUploadBytes})
	if err != nil {
		return nil, err
	}

	clean := ingestion.Normalize(result.Text)
	if len(clean) < ingestion.MinUsableLength {
		return nil, &extraction.TooShortError{Length: len(clean)}
	}

	p.log.Debug("document extracted",
		zap.Int("pages", result.PageCount),
		zap.Int("chars", len(clean)))

	return &ExtractedText{
		Text:       clean,
		PageCount:  result.PageCount,
		CharCount:  len(clean),
		QuickScore: prescore.Score(clean),
	}, nil
}

// Analyze runs the quick-score gate, the scoring-service call, and enrichment.
// The whole call is bounded by the configured timeout; expiry surfaces as a
// Timeout error, never a partial result.
func (p *Pipeline) Analyze(ctx context.Context, req analysis.Request) (*analysis.ResumeAnalysis, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if score := prescore.Score(req.ResumeText); score < prescore.MinAnalyzableScore {
		p.log.Info("quick score below threshold", zap.Int("score", score))
		return nil, &analysis.InvalidInputError{
			Field:   "resume_text",
			Message: "resume appears incomplete or improperly formatted",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	result, err := analysis.NewAnalyzer(p.client, p.log).Analyze(ctx, req)
	if err != nil {
		return nil, err
	}

	return roles.Enrich(result, req.JobRole, p.catalog), nil
}

// QuickScore exposes the deterministic pre-filter score.
func (p *Pipeline) QuickScore(text string) int {
	return prescore.Score(text)
}

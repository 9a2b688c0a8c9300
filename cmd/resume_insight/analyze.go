package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/analysis"
	"github.com/jonathan/resume-insight/internal/ingestion"
	"github.com/jonathan/resume-insight/internal/observability"
	"github.com/jonathan/resume-insight/internal/pipeline"
	"github.com/jonathan/resume-insight/internal/prescore"
)

var pdfHeader = []byte("%PDF-")

var (
	analyzeResume      string
	analyzeRole        string
	analyzeDescription string
	analyzeConfig      string
	analyzeVerbose     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a target job role",
	Long:  `Run the full analysis pipeline over a local resume file (PDF or plain text) and print the structured assessment as JSON.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResume, "resume", "", "Path to resume file (PDF or plain text)")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Target job role title")
	analyzeCmd.Flags().StringVar(&analyzeDescription, "job-description", "", "Path to a job description text file (optional)")
	analyzeCmd.Flags().StringVar(&analyzeConfig, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print detailed progress information")
	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("role")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(analyzeConfig)
	if err != nil {
		return err
	}
	if analyzeVerbose {
		cfg.Verbose = true
	}

	log, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	p, _, cleanup, err := buildPipeline(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	resumeText, err := loadResumeText(p, analyzeResume)
	if err != nil {
		return err
	}

	var description string
	if analyzeDescription != "" {
		data, err := os.ReadFile(analyzeDescription)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		description = string(data)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintQuickScore(prescore.Score(resumeText), prescore.MinAnalyzableScore)
	}

	result, err := p.Analyze(cmd.Context(), analysis.Request{
		ResumeText:     resumeText,
		JobRole:        analyzeRole,
		JobDescription: description,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintAnalysis(result)
		printer.PrintRecommendations(result)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// loadResumeText reads a resume file, routing PDFs through the extractor and
// everything else through text normalization directly.
func loadResumeText(p *pipeline.Pipeline, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}

	if bytes.HasPrefix(data, pdfHeader) {
		extracted, err := p.ExtractText(data)
		if err != nil {
			return "", err
		}
		return extracted.Text, nil
	}

	return ingestion.Normalize(string(data)), nil
}

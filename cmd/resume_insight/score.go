package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/observability"
	"github.com/jonathan/resume-insight/internal/prescore"
)

var scoreFile string

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the quick heuristic score for a resume",
	Long:  `Compute the deterministic quick score for a local resume file without calling the analysis service. Useful for checking whether a resume would clear the pre-filter gate.`,
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreFile, "file", "", "Path to resume file (PDF or plain text)")
	_ = scoreCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
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

	text, err := loadResumeText(p, scoreFile)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintQuickScore(prescore.Score(text), prescore.MinAnalyzableScore)
	return nil
}

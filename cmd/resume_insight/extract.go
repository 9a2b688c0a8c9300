package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	extractFile   string
	extractConfig string
	extractJSON   bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract normalized text from a resume file",
	Long:  `Extract text from a PDF resume, normalize it, and print the result. Use --json to also include page count and quick score.`,
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractFile, "file", "", "Path to resume file (PDF or plain text)")
	extractCmd.Flags().StringVar(&extractConfig, "config", "", "Path to JSON config file")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Emit the full extraction result as JSON")
	_ = extractCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(extractConfig)
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

	data, err := os.ReadFile(extractFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	result, err := p.ExtractText(data)
	if err != nil {
		return err
	}

	if extractJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	fmt.Println(result.Text)
	return nil
}

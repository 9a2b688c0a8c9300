// Package main provides the entry point for the Resume Insight CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_insight",
	Short: "Resume quality analysis pipeline",
	Long:  "Resume Insight scores resumes against target job roles: document text extraction, deterministic pre-filtering, AI-backed structured analysis, and role-specific enrichment.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

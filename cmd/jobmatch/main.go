// Package main provides the entry point for the job matching API server and CLI.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "jobmatch",
	Short: "Job board matching and resume analysis service",
	Long:  "jobmatch scores candidate profiles against job postings, extracts and infers skills from free text, and analyzes resumes for quality and ATS friendliness, via REST API or directly from the command line.",
}

// modelClientFromEnv returns a generative client when GEMINI_API_KEY is
// set, or nil otherwise. Commands degrade to their deterministic output
// when no client is available.
func modelClientFromEnv(ctx context.Context) llm.Client {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil
	}
	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		log.Printf("generative client unavailable, continuing without it: %v", err)
		return nil
	}
	return client
}

// commandContext returns the command's context, falling back to a
// background context when the command runs outside cobra's Execute path.
func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil {
		if ctx := cmd.Context(); ctx != nil {
			return ctx
		}
	}
	return context.Background()
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

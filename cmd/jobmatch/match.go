package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/jobmatch/internal/matching"
	"github.com/jonathan/jobmatch/internal/observability"
	"github.com/jonathan/jobmatch/internal/skills"
	"github.com/jonathan/jobmatch/internal/textnorm"
	"github.com/jonathan/jobmatch/internal/types"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a candidate against a job posting",
	Long:  "Computes the composite 0-100 match score for a candidate (skills and/or resume text) against a job posting, printing the score with its full component breakdown as JSON.",
	RunE:  runMatch,
}

var (
	matchJobPath    string
	matchResumePath string
	matchSkillsCSV  string
	matchOutput     string
	matchVerbose    bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchJobPath, "job", "j", "", "Path to job posting text file (required)")
	matchCmd.Flags().StringVarP(&matchResumePath, "resume", "r", "", "Path to resume text file (enables the vector similarity component)")
	matchCmd.Flags().StringVarP(&matchSkillsCSV, "skills", "s", "", "Comma-separated candidate skills (enables skill and keyword components)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted score breakdown to stdout")

	if err := matchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	jobText, err := readTextFile(matchJobPath)
	if err != nil {
		return err
	}

	var signals matching.Signals
	userSkills := skills.ParseSkillsCSV(nil, matchSkillsCSV)

	if matchResumePath != "" {
		resumeText, err := readTextFile(matchResumePath)
		if err != nil {
			return err
		}
		signals.ResumeVector = textnorm.VectorFromText(resumeText)
	}

	score, breakdown := matching.CompositeScore(userSkills, jobText, signals)
	result := types.MatchScore{Score: score, Breakdown: breakdown}

	if matchVerbose {
		observability.NewPrinter(os.Stdout).PrintMatchScore(&result)
	}

	return writeJSONOutput(matchOutput, result)
}

// readTextFile reads a whole text file, wrapping errors with the path for
// actionable CLI messages.
func readTextFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}

// writeJSONOutput marshals v with indentation and writes it to path, or to
// stdout when path is empty.
func writeJSONOutput(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		fmt.Println(string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

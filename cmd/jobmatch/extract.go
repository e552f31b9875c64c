package main

import (
	"fmt"
	"os"

	"github.com/jonathan/jobmatch/internal/config"
	"github.com/jonathan/jobmatch/internal/observability"
	"github.com/jonathan/jobmatch/internal/skills"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract and infer skills from free text",
	Long:  "Matches a text file against the skill vocabulary (tokens, bigrams, synonyms, optional fuzzy matching) and infers additional skills from trigger phrases, printing the combined canonical skill list as JSON.",
	RunE:  runExtract,
}

var (
	extractInputPath string
	extractCustom    []string
	extractFuzzy     bool
	extractOutput    string
	extractVerbose   bool
)

// extractResult is the JSON shape of the extract command output.
type extractResult struct {
	Skills   []string `json:"skills"`
	Inferred []string `json:"inferred,omitempty"`
}

func init() {
	extractCmd.Flags().StringVarP(&extractInputPath, "in", "i", "", "Path to input text file (required)")
	extractCmd.Flags().StringSliceVar(&extractCustom, "custom", nil, "Additional custom skill names to match beyond the built-in vocabulary")
	extractCmd.Flags().BoolVar(&extractFuzzy, "fuzzy", false, "Enable fuzzy matching of near-miss tokens")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print formatted skill lists to stdout")

	if err := extractCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	text, err := readTextFile(extractInputPath)
	if err != nil {
		return err
	}

	extractor := skills.NewPatternExtractor(nil)
	if extractFuzzy {
		extractor.FuzzyThreshold = config.DefaultFuzzyThreshold
	}

	result := extractResult{
		Skills:   extractor.ExtractSkills(text, extractCustom),
		Inferred: skills.DefaultTriggerSet().InferSkills(text),
	}
	if result.Skills == nil {
		result.Skills = []string{}
	}

	if extractVerbose {
		p := observability.NewPrinter(os.Stdout)
		p.PrintSkills("EXTRACTED SKILLS", result.Skills)
		p.PrintSkills("INFERRED SKILLS", result.Inferred)
	}

	return writeJSONOutput(extractOutput, result)
}

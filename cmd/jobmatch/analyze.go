package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jonathan/jobmatch/internal/advice"
	"github.com/jonathan/jobmatch/internal/observability"
	"github.com/jonathan/jobmatch/internal/quality"
	"github.com/jonathan/jobmatch/internal/types"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume for quality and ATS friendliness",
	Long: `Runs the pattern-based quality analyzer and the ATS friendliness checker
over a resume text file, printing both reports as JSON.

When GEMINI_API_KEY is set the findings are additionally paraphrased into a
short prose explanation; the structured reports stay authoritative.`,
	RunE: runAnalyze,
}

var (
	analyzeResumePath string
	analyzeOutput     string
	analyzeVerbose    bool
)

// analyzeResult bundles both reports for a single resume.
type analyzeResult struct {
	Quality     types.QualityReport `json:"quality"`
	ATS         types.ATSReport     `json:"ats"`
	Explanation string              `json:"explanation,omitempty"`
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumePath, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted reports to stdout")

	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)

	resumeText, err := readTextFile(analyzeResumePath)
	if err != nil {
		return err
	}

	client := modelClientFromEnv(ctx)
	if client != nil {
		defer client.Close()
	}

	result := buildAnalysis(ctx, advice.NewAdvisor(client), resumeText, client != nil)

	if analyzeVerbose {
		p := observability.NewPrinter(os.Stdout)
		p.PrintQualityReport(&result.Quality)
		p.PrintATSReport(&result.ATS)
	}

	return writeJSONOutput(analyzeOutput, result)
}

// buildAnalysis runs both analyzers and, when a model is available, asks
// the advisor to paraphrase the findings into prose. Paraphrasing failures
// leave the structured reports untouched.
func buildAnalysis(ctx context.Context, advisor *advice.Advisor, resumeText string, explain bool) analyzeResult {
	result := analyzeResult{
		Quality: quality.AnalyzeQuality(resumeText),
		ATS:     quality.AnalyzeATS(resumeText),
	}

	if explain {
		explanation, err := advisor.ExplainReports(ctx, result.Quality, result.ATS)
		if err != nil {
			log.Printf("report explanation failed, returning structured reports only: %v", err)
		} else {
			result.Explanation = explanation
		}
	}

	return result
}

package main

import (
	"fmt"
	"os"

	"github.com/jonathan/jobmatch/internal/advice"
	"github.com/jonathan/jobmatch/internal/observability"
	"github.com/jonathan/jobmatch/internal/skills"
	"github.com/spf13/cobra"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Generate career advice for a skill set",
	Long: `Produces skill gap analysis, experience-banded next steps and market
insights for a candidate skill set, printing the advice as JSON.

When GEMINI_API_KEY is set the structured advice is additionally expanded
into prose by the generative model; without it the command still produces
the full deterministic structure.`,
	RunE: runAdvise,
}

var (
	adviseSkillsCSV string
	adviseYears     int
	adviseOutput    string
	adviseVerbose   bool
)

func init() {
	adviseCmd.Flags().StringVarP(&adviseSkillsCSV, "skills", "s", "", "Comma-separated candidate skills (required)")
	adviseCmd.Flags().IntVarP(&adviseYears, "years", "y", 0, "Years of professional experience")
	adviseCmd.Flags().StringVarP(&adviseOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	adviseCmd.Flags().BoolVarP(&adviseVerbose, "verbose", "v", false, "Print formatted advice to stdout")

	if err := adviseCmd.MarkFlagRequired("skills"); err != nil {
		panic(fmt.Sprintf("failed to mark skills flag as required: %v", err))
	}

	rootCmd.AddCommand(adviseCmd)
}

func runAdvise(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)

	client := modelClientFromEnv(ctx)
	if client != nil {
		defer client.Close()
	}

	userSkills := skills.ParseSkillsCSV(nil, adviseSkillsCSV)
	result := advice.NewAdvisor(client).Advise(ctx, userSkills, adviseYears)

	if adviseVerbose {
		observability.NewPrinter(os.Stdout).PrintAdvice(&result)
	}

	return writeJSONOutput(adviseOutput, result)
}

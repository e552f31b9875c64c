package advice

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/jobmatch/internal/llm"
	"github.com/jonathan/jobmatch/internal/types"
)

// ExplainReports asks the model to paraphrase quality and ATS findings into
// short prose for display. The structured reports remain authoritative; this
// is presentation only. Returns an error when no client is configured.
func (a *Advisor) ExplainReports(ctx context.Context, quality types.QualityReport, ats types.ATSReport) (string, error) {
	if a.client == nil {
		return "", fmt.Errorf("no generative client configured")
	}

	prose, err := a.client.GenerateContent(ctx, reportPrompt(quality, ats), llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("failed to explain reports: %w", err)
	}
	return strings.TrimSpace(prose), nil
}

func reportPrompt(quality types.QualityReport, ats types.ATSReport) string {
	var sb strings.Builder
	sb.WriteString("You are a resume reviewer. Summarize the following findings as one short paragraph of friendly, specific feedback. Do not change any scores or invent findings.\n\n")
	fmt.Fprintf(&sb, "ATS score: %d/100 (%s)\n", ats.Score, ats.Summary)
	fmt.Fprintf(&sb, "Word count: %d\n", ats.WordCount)
	for _, w := range ats.Warnings {
		sb.WriteString("Warning: " + w + "\n")
	}
	for _, r := range ats.Recommendations {
		sb.WriteString("Recommendation: " + r + "\n")
	}
	for _, s := range quality.Suggestions {
		if s.Context != "" {
			fmt.Fprintf(&sb, "Writing issue near %q: %s\n", s.Context, s.Message)
		} else {
			sb.WriteString("Writing issue: " + s.Message + "\n")
		}
	}
	return sb.String()
}

// Package advice produces career advice for a profile. The structured
// portion is deterministic and never depends on a model; when a client is
// configured, the advisor additionally asks it to paraphrase the structured
// findings into prose. A model failure degrades to structure-only advice.
package advice

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/jobmatch/internal/llm"
	"github.com/jonathan/jobmatch/internal/types"
)

// highDemandSkills seed the skill-gap analysis.
var highDemandSkills = []string{
	"python", "javascript", "react", "aws", "docker", "kubernetes",
	"machine learning", "data science", "sql", "git", "agile",
}

const maxSkillGaps = 5

// Experience-year bands for next-step advice.
const (
	juniorYears = 2
	midYears    = 5
)

// Advisor generates career advice. A nil client disables prose generation.
type Advisor struct {
	client llm.Client
}

// NewAdvisor returns an Advisor. Pass a nil client to run without the
// generative layer.
func NewAdvisor(client llm.Client) *Advisor {
	return &Advisor{client: client}
}

// Advise builds structured career advice from a profile's skills and years
// of experience, then optionally expands it into prose. The numeric and
// structured fields never depend on the model.
func (a *Advisor) Advise(ctx context.Context, skills []string, experienceYears int) types.Advice {
	advice := buildAdvice(skills, experienceYears)

	if a.client != nil {
		prose, err := a.client.GenerateContent(ctx, advicePrompt(advice, skills), llm.TierStandard)
		if err != nil {
			log.Printf("advice prose generation failed, returning structured advice only: %v", err)
		} else {
			advice.Prose = strings.TrimSpace(prose)
		}
	}

	return advice
}

func buildAdvice(skills []string, experienceYears int) types.Advice {
	advice := types.Advice{}

	lower := make([]string, len(skills))
	for i, s := range skills {
		lower[i] = strings.ToLower(s)
	}

	var missing []string
	for _, want := range highDemandSkills {
		found := false
		for _, have := range lower {
			if strings.Contains(have, want) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		if len(missing) > maxSkillGaps {
			advice.SkillGaps = missing[:maxSkillGaps]
		} else {
			advice.SkillGaps = missing
		}
		top := advice.SkillGaps
		if len(top) > 3 {
			top = top[:3]
		}
		advice.Recommendations = append(advice.Recommendations,
			fmt.Sprintf("Consider learning: %s", strings.Join(top, ", ")))
	}

	switch {
	case experienceYears < juniorYears:
		advice.NextSteps = append(advice.NextSteps,
			"Focus on building a strong portfolio with personal projects",
			"Consider contributing to open source projects")
		advice.Recommendations = append(advice.Recommendations,
			"Apply for internships or entry-level positions")
	case experienceYears < midYears:
		advice.NextSteps = append(advice.NextSteps,
			"Consider specializing in a specific technology stack",
			"Start mentoring junior developers")
		advice.Recommendations = append(advice.Recommendations,
			"Look for mid-level positions with growth opportunities")
	default:
		advice.NextSteps = append(advice.NextSteps,
			"Consider leadership or senior technical roles",
			"Share your expertise through speaking or writing")
		advice.Recommendations = append(advice.Recommendations,
			"Look for senior or lead positions")
	}

	for _, insight := range []struct{ skill, message string }{
		{"python", "Python developers are in high demand, especially in data science and AI"},
		{"react", "React skills are highly valued in frontend development"},
		{"aws", "Cloud skills (AWS) are increasingly important"},
	} {
		for _, have := range lower {
			if have == insight.skill {
				advice.MarketInsights = append(advice.MarketInsights, insight.message)
				break
			}
		}
	}

	return advice
}

func advicePrompt(advice types.Advice, skills []string) string {
	var sb strings.Builder
	sb.WriteString("You are a career coach. Rewrite the following structured advice as two short, encouraging paragraphs addressed to the candidate. Do not add new recommendations or numbers.\n\n")
	sb.WriteString("Candidate skills: " + strings.Join(skills, ", ") + "\n")
	if len(advice.SkillGaps) > 0 {
		sb.WriteString("Skill gaps: " + strings.Join(advice.SkillGaps, ", ") + "\n")
	}
	if len(advice.Recommendations) > 0 {
		sb.WriteString("Recommendations: " + strings.Join(advice.Recommendations, "; ") + "\n")
	}
	if len(advice.NextSteps) > 0 {
		sb.WriteString("Next steps: " + strings.Join(advice.NextSteps, "; ") + "\n")
	}
	if len(advice.MarketInsights) > 0 {
		sb.WriteString("Market insights: " + strings.Join(advice.MarketInsights, "; ") + "\n")
	}
	return sb.String()
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobmatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchScore outputs a human-readable breakdown of a composite match score.
func (p *Printer) PrintMatchScore(score *types.MatchScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d / 100\n\n", score.Score))

	b := score.Breakdown
	if b.HasVector {
		sb.WriteString(fmt.Sprintf("Vector similarity:  %d\n", b.VectorScore))
	}
	if b.HasSkill {
		sb.WriteString(fmt.Sprintf("Skill overlap:      %d\n", b.SkillScore))
	}
	if b.HasKeyword {
		sb.WriteString(fmt.Sprintf("Keyword overlap:    %d\n", b.KeywordScore))
	}
	if b.ExperienceBonus > 0 {
		sb.WriteString(fmt.Sprintf("Experience bonus:   +%d\n", b.ExperienceBonus))
	}

	if len(b.MatchedSkills) > 0 {
		sb.WriteString("\nMatched skills:\n")
		count := min(len(b.MatchedSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", b.MatchedSkills[i]))
		}
		if len(b.MatchedSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(b.MatchedSkills)-maxItemsToShow))
		}
	}

	if b.Note != "" {
		sb.WriteString(fmt.Sprintf("\nNote: %s\n", b.Note))
	}

	p.printBox("MATCH SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedJobs outputs the top N ranked jobs with scores and matched skills.
func (p *Printer) PrintRankedJobs(ranked []types.RankedJob) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		rj := ranked[i]
		title := rj.Job.Title
		if rj.Job.Company != "" {
			title = fmt.Sprintf("%s @ %s", title, rj.Job.Company)
		}
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", rj.Score.Score))
		if len(rj.Score.Breakdown.MatchedSkills) > 0 {
			skills := strings.Join(rj.Score.Breakdown.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP RANKED JOBS", sb.String())
}

// PrintSkills outputs an extracted or inferred skill list.
func (p *Printer) PrintSkills(title string, skills []string) {
	var sb strings.Builder
	if len(skills) == 0 {
		sb.WriteString("(none)")
	} else {
		for _, s := range skills {
			sb.WriteString(fmt.Sprintf("• %s\n", s))
		}
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQualityReport outputs resume quality suggestions with their context.
func (p *Printer) PrintQualityReport(report *types.QualityReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if len(report.Suggestions) == 0 {
		sb.WriteString("No issues found.")
	} else {
		sb.WriteString(fmt.Sprintf("%d suggestion(s):\n\n", len(report.Suggestions)))
		for i, s := range report.Suggestions {
			msg := s.Message
			if len(msg) > 50 {
				msg = msg[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("• %s\n", msg))
			if s.Context != "" {
				ctx := s.Context
				if len(ctx) > 40 {
					ctx = ctx[:37] + "..."
				}
				sb.WriteString(fmt.Sprintf("  near: %q\n", ctx))
			}
			if i < len(report.Suggestions)-1 {
				sb.WriteString("\n")
			}
		}
	}

	p.printBox("RESUME QUALITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintATSReport outputs the ATS friendliness score with warnings and
// recommendations.
func (p *Printer) PrintATSReport(report *types.ATSReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:      %d / 100\n", report.Score))
	sb.WriteString(fmt.Sprintf("Contact:    %s\n", yesNo(report.HasContactInfo)))
	sb.WriteString(fmt.Sprintf("Sections:   %s\n", yesNo(report.UsesStandardSection)))
	sb.WriteString(fmt.Sprintf("Words:      %d\n", report.WordCount))

	if len(report.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, w := range report.Warnings {
			if len(w) > 50 {
				w = w[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", w))
		}
	}
	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, r := range report.Recommendations {
			if len(r) > 50 {
				r = r[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", r))
		}
	}

	sb.WriteString(fmt.Sprintf("\n%s", report.Summary))

	p.printBox("ATS FRIENDLINESS", sb.String())
}

// PrintAdvice outputs structured career advice.
func (p *Printer) PrintAdvice(advice *types.Advice) {
	if advice == nil {
		return
	}

	var sb strings.Builder

	if len(advice.SkillGaps) > 0 {
		sb.WriteString("Skill gaps:\n")
		count := min(len(advice.SkillGaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", advice.SkillGaps[i]))
		}
		sb.WriteString("\n")
	}
	if len(advice.NextSteps) > 0 {
		sb.WriteString("Next steps:\n")
		for _, s := range advice.NextSteps {
			if len(s) > 50 {
				s = s[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
		sb.WriteString("\n")
	}
	if len(advice.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		for _, r := range advice.Recommendations {
			if len(r) > 50 {
				r = r[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", r))
		}
	}

	if sb.Len() == 0 {
		sb.WriteString("No advice generated.")
	}

	p.printBox("CAREER ADVICE", strings.TrimSuffix(sb.String(), "\n"))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

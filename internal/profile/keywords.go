// Package profile derives matching inputs and insights from applicant
// profiles: the merged skill set plus term vector used by the ranking
// pipeline, and completeness scoring for profile display.
package profile

import (
	"context"
	"strings"

	"github.com/jonathan/jobmatch/internal/skills"
	"github.com/jonathan/jobmatch/internal/textnorm"
)

// ComputeResumeKeywords merges a profile's declared skills (comma-separated)
// with skills extracted from its resume text, and builds the term vector the
// vector scorer reuses across every job comparison. The vector covers both
// the merged skills and the resume text so that resume vocabulary beyond the
// canonical skill list still contributes to similarity.
func ComputeResumeKeywords(ctx context.Context, extractor skills.Extractor, skillsCSV, resumeText string) ([]string, textnorm.TermVector, error) {
	declared := skills.ParseSkillsCSV(nil, skillsCSV)

	var extracted []string
	if resumeText != "" && extractor != nil {
		var err error
		extracted, err = extractor.Extract(ctx, resumeText, nil)
		if err != nil {
			return nil, nil, err
		}
	}

	merged := skills.MergeSkillSets(nil, declared, extracted)
	vector := textnorm.VectorFromText(strings.Join(merged, " ") + " " + resumeText)
	return merged, vector, nil
}

package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/jobmatch/internal/textnorm"
	"github.com/jonathan/jobmatch/internal/types"
)

// Skill score weighting: match ratio dominates, capped density contributes
// the rest. Both constants are load-bearing for score parity.
const (
	skillMatchRatioWeight = 0.7
	skillDensityWeight    = 0.3
)

// Experience bonus values and the skill-count thresholds that unlock them
// when the matching seniority keyword is literally present in job text.
const (
	seniorBonus          = 20
	seniorSkillThreshold = 8
	midBonus             = 15
	midSkillThreshold    = 5
	entryBonus           = 10
	entrySkillThreshold  = 1
)

// Signals carries optional per-profile inputs to the composite scorer. A
// pre-built resume term vector enables the vector component; batch callers
// build it once and reuse it across jobs.
type Signals struct {
	ResumeVector textnorm.TermVector
}

// CompositeScore blends up to three component scores (vector similarity,
// skill overlap, keyword overlap) with a flat experience bonus into one
// 0-100 score. The final score is the arithmetic mean of whichever
// components were computable, plus the bonus, clamped to [0,100]; when no
// component is computable the score is 0, never an error.
func CompositeScore(userSkills []string, jobText string, signals Signals) (int, types.Breakdown) {
	var b types.Breakdown

	skills := lowerTrimmed(userSkills)
	jobLower := strings.ToLower(jobText)

	if len(signals.ResumeVector) > 0 {
		b.VectorScore = ScoreJobMatch(signals.ResumeVector, jobText)
		b.HasVector = true
	}

	if len(skills) > 0 {
		if wordCount := textnorm.WordCount(jobText); wordCount > 0 {
			b.SkillScore, b.MatchedSkills = skillScore(skills, jobLower, wordCount)
			b.HasSkill = true
		}
	}

	if len(skills) > 0 {
		if keywords := TopKeywords(jobText, topKeywordCount); len(keywords) > 0 {
			b.KeywordScore = keywordScore(skills, keywords)
			b.HasKeyword = true
		}
	}

	b.ExperienceBonus = experienceBonus(len(skills), jobLower)

	final := 0
	components, sum := 0, 0
	for _, c := range []struct {
		has   bool
		score int
	}{
		{b.HasVector, b.VectorScore},
		{b.HasSkill, b.SkillScore},
		{b.HasKeyword, b.KeywordScore},
	} {
		if c.has {
			components++
			sum += c.score
		}
	}
	if components > 0 {
		final = clampScore(int(math.Round(float64(sum)/float64(components))) + b.ExperienceBonus)
	}

	b.Note = describeBreakdown(&b)
	return final, b
}

// skillScore computes (matched/total)*0.7 + min(density,1.0)*0.3 scaled to
// 0-100, where density is matched skills per job word times 100. A skill
// matches when it appears as a substring of the lowercased job text.
func skillScore(skills []string, jobLower string, wordCount int) (int, []string) {
	matched := make([]string, 0, len(skills))
	for _, skill := range skills {
		if strings.Contains(jobLower, skill) {
			matched = append(matched, skill)
		}
	}

	ratio := float64(len(matched)) / float64(len(skills))
	density := float64(len(matched)) / float64(wordCount) * 100
	if density > 1.0 {
		density = 1.0
	}

	score := (ratio*skillMatchRatioWeight + density*skillDensityWeight) * 100
	return clampScore(int(math.Round(score))), matched
}

// keywordScore computes the overlap ratio between the job's top
// frequency-ranked keywords and the user's skill set, scaled to 0-100.
func keywordScore(skills []string, keywords []string) int {
	skillSet := make(map[string]bool, len(skills))
	for _, s := range skills {
		skillSet[s] = true
	}

	overlap := 0
	for _, kw := range keywords {
		if skillSet[kw] {
			overlap++
		}
	}

	return clampScore(int(math.Round(float64(overlap) / float64(len(keywords)) * 100)))
}

// experienceBonus returns a flat 10-20 point addend when the job text
// literally names a seniority level whose skill-count threshold the user
// crosses. Checked senior-first so a posting naming several levels grants
// the highest applicable bonus.
func experienceBonus(skillCount int, jobLower string) int {
	switch {
	case strings.Contains(jobLower, types.ExperienceSenior) && skillCount >= seniorSkillThreshold:
		return seniorBonus
	case strings.Contains(jobLower, types.ExperienceMid) && skillCount >= midSkillThreshold:
		return midBonus
	case strings.Contains(jobLower, types.ExperienceEntry) && skillCount >= entrySkillThreshold:
		return entryBonus
	}
	return 0
}

// describeBreakdown renders a short human-readable explanation of the
// component scores for ranking UI.
func describeBreakdown(b *types.Breakdown) string {
	var parts []string

	if b.HasSkill {
		switch {
		case len(b.MatchedSkills) == 0:
			parts = append(parts, "No skill matches")
		case b.SkillScore >= 70:
			parts = append(parts, fmt.Sprintf("Strong skill match (%s)", strings.Join(b.MatchedSkills, ", ")))
		case b.SkillScore >= 40:
			parts = append(parts, fmt.Sprintf("Moderate skill match (%s)", strings.Join(b.MatchedSkills, ", ")))
		default:
			parts = append(parts, fmt.Sprintf("Weak skill match (%s)", strings.Join(b.MatchedSkills, ", ")))
		}
	}

	if b.HasVector {
		switch {
		case b.VectorScore >= 60:
			parts = append(parts, "High text similarity")
		case b.VectorScore >= 30:
			parts = append(parts, "Moderate text similarity")
		default:
			parts = append(parts, "Low text similarity")
		}
	}

	if b.HasKeyword && b.KeywordScore >= 50 {
		parts = append(parts, "Good keyword overlap")
	}

	if b.ExperienceBonus > 0 {
		parts = append(parts, fmt.Sprintf("Experience bonus +%d", b.ExperienceBonus))
	}

	if len(parts) == 0 {
		return "No signals available"
	}
	return strings.Join(parts, ". ")
}

func lowerTrimmed(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

package profile

import "github.com/jonathan/jobmatch/internal/types"

// Completeness point values. Additive, max 100.
const (
	pointsSkills  = 25
	pointsResume  = 25
	pointsPicture = 10
	pointsPhone   = 10
	pointsEmail   = 10
	pointsName    = 20
)

// Market position and growth potential bands.
const (
	PositionEntry  = "entry"
	PositionMid    = "mid"
	PositionSenior = "senior"

	GrowthLow    = "low"
	GrowthMedium = "medium"
	GrowthHigh   = "high"
)

// ComputeInsights scores how complete a profile is and derives a market
// position and growth potential from the completeness score and skill
// count. Pure function of the profile.
func ComputeInsights(p types.Profile) types.ProfileInsights {
	insights := types.ProfileInsights{}

	score := 0
	if len(p.Skills) > 0 {
		score += pointsSkills
	}
	if p.ResumeText != "" {
		score += pointsResume
	}
	if p.HasPicture {
		score += pointsPicture
	}
	if p.Phone != "" {
		score += pointsPhone
	}
	if p.Email != "" {
		score += pointsEmail
	}
	if p.Name != "" {
		score += pointsName
	}
	insights.Completeness = score

	switch {
	case score >= 80:
		insights.Strengths = append(insights.Strengths, "Complete and professional profile")
		insights.MarketPosition = PositionSenior
	case score >= 60:
		insights.Strengths = append(insights.Strengths, "Good profile foundation")
		insights.MarketPosition = PositionMid
	default:
		insights.Recommendations = append(insights.Recommendations, "Complete your profile to improve visibility")
		insights.MarketPosition = PositionEntry
	}

	switch {
	case len(p.Skills) >= 10:
		insights.Strengths = append(insights.Strengths, "Diverse skill set")
		insights.GrowthPotential = GrowthHigh
	case len(p.Skills) >= 5:
		insights.Strengths = append(insights.Strengths, "Good skill foundation")
		insights.GrowthPotential = GrowthMedium
	default:
		insights.Recommendations = append(insights.Recommendations, "Add more skills to your profile")
		insights.GrowthPotential = GrowthLow
	}

	return insights
}

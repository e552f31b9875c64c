package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobmatch/internal/skills"
	"github.com/jonathan/jobmatch/internal/types"
)

func TestComputeResumeKeywords_MergesDeclaredAndExtracted(t *testing.T) {
	extractor := skills.NewPatternExtractor(nil)

	merged, vector, err := ComputeResumeKeywords(context.Background(),
		extractor, "Python, SQL", "Experienced with Django and Docker deployments.")

	require.NoError(t, err)
	assert.Equal(t, []string{"django", "docker", "python", "sql"}, merged)
	assert.Positive(t, vector["python"])
	assert.Positive(t, vector["django"])
	// Resume vocabulary outside the skill list still lands in the vector.
	assert.Positive(t, vector["deployments"])
}

func TestComputeResumeKeywords_EmptyInputs(t *testing.T) {
	merged, vector, err := ComputeResumeKeywords(context.Background(),
		skills.NewPatternExtractor(nil), "", "")

	require.NoError(t, err)
	assert.Empty(t, merged)
	assert.Empty(t, vector)
}

func TestComputeResumeKeywords_SkillsOnlyWithoutResume(t *testing.T) {
	merged, vector, err := ComputeResumeKeywords(context.Background(), nil, "go, k8s", "")

	require.NoError(t, err)
	assert.Equal(t, []string{"go", "kubernetes"}, merged)
	assert.Positive(t, vector["kubernetes"])
}

func TestComputeInsights_CompleteProfile(t *testing.T) {
	insights := ComputeInsights(types.Profile{
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		Phone:      "555-123-4567",
		Skills:     []string{"python", "sql", "go", "docker", "kubernetes", "aws", "terraform", "linux", "react", "django"},
		ResumeText: "Built analytical engines.",
		HasPicture: true,
	})

	assert.Equal(t, 100, insights.Completeness)
	assert.Equal(t, PositionSenior, insights.MarketPosition)
	assert.Equal(t, GrowthHigh, insights.GrowthPotential)
	assert.Empty(t, insights.Recommendations)
}

func TestComputeInsights_EmptyProfile(t *testing.T) {
	insights := ComputeInsights(types.Profile{})

	assert.Equal(t, 0, insights.Completeness)
	assert.Equal(t, PositionEntry, insights.MarketPosition)
	assert.Equal(t, GrowthLow, insights.GrowthPotential)
	assert.Len(t, insights.Recommendations, 2)
}

func TestComputeInsights_MidBand(t *testing.T) {
	// Skills 25 + resume 25 + name 20 = 70.
	insights := ComputeInsights(types.Profile{
		Name:       "Sam",
		Skills:     []string{"python", "sql", "go", "docker", "aws"},
		ResumeText: "resume",
	})

	assert.Equal(t, 70, insights.Completeness)
	assert.Equal(t, PositionMid, insights.MarketPosition)
	assert.Equal(t, GrowthMedium, insights.GrowthPotential)
}

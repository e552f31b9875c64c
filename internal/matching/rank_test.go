package matching

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobmatch/internal/types"
)

func makeJob(title, description string) types.Job {
	return types.Job{
		ID:          uuid.New(),
		Title:       title,
		Company:     "Acme",
		Description: description,
		IsActive:    true,
	}
}

func TestRankJobs_SortsByScoreDescending(t *testing.T) {
	skills := []string{"python", "django", "sql"}
	jobs := []types.Job{
		makeJob("Ruby role", "Looking for a Ruby on Rails developer"),
		makeJob("Python role", "Looking for a Python and Django developer with SQL experience"),
	}

	ranked, err := RankJobs(context.Background(), skills, "", jobs)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "Python role", ranked[0].Job.Title)
	assert.GreaterOrEqual(t, ranked[0].Score.Score, ranked[1].Score.Score)
}

func TestRankJobs_EmptyJobList(t *testing.T) {
	ranked, err := RankJobs(context.Background(), []string{"python"}, "", nil)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankJobs_ReusesResumeVector(t *testing.T) {
	resume := "python django sql postgres aws docker"
	jobs := make([]types.Job, 0, 30)
	for i := 0; i < 30; i++ {
		jobs = append(jobs, makeJob("role", "python django developer wanted"))
	}

	ranked, err := RankJobs(context.Background(), []string{"python"}, resume, jobs)
	require.NoError(t, err)
	require.Len(t, ranked, 30)

	// Same profile against identical jobs must score identically.
	for _, r := range ranked {
		assert.Equal(t, ranked[0].Score.Score, r.Score.Score)
		assert.True(t, r.Score.Breakdown.HasVector)
	}
}

func TestRankJobs_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []types.Job{makeJob("role", "python")}
	_, err := RankJobs(ctx, []string{"python"}, "", jobs)
	assert.Error(t, err)
}

func TestRankApplicants_SortsByScoreDescending(t *testing.T) {
	job := makeJob("Python role", "Looking for a senior Python and Django developer with SQL experience")
	profiles := []types.Profile{
		{ID: uuid.New(), Name: "Weak", Skills: []string{"ruby"}},
		{ID: uuid.New(), Name: "Strong", Skills: []string{"python", "django", "sql"}},
	}

	ranked, err := RankApplicants(context.Background(), job, profiles)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "Strong", ranked[0].Profile.Name)
	assert.Equal(t, job.ID, ranked[0].Score.JobID)
	assert.Equal(t, ranked[0].Profile.ID, ranked[0].Score.ProfileID)
}

func TestRankApplicants_ScoresAlwaysInRange(t *testing.T) {
	job := makeJob("role", "senior python entry mid")
	profiles := []types.Profile{
		{ID: uuid.New(), Skills: nil},
		{ID: uuid.New(), Skills: []string{"python"}, ResumeText: "python python python"},
		{ID: uuid.New(), Skills: []string{"a", "b", "c", "d", "e", "f", "g", "h"}},
	}

	ranked, err := RankApplicants(context.Background(), job, profiles)
	require.NoError(t, err)
	for _, r := range ranked {
		assert.GreaterOrEqual(t, r.Score.Score, 0)
		assert.LessOrEqual(t, r.Score.Score, 100)
	}
}

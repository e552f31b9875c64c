package matching

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobmatch/internal/textnorm"
	"github.com/jonathan/jobmatch/internal/types"
)

// rankConcurrency bounds the number of jobs scored in parallel during a
// batch ranking.
const rankConcurrency = 8

// RankJobs scores every job against one profile and returns them sorted by
// descending score (ties break on job ID for stable output). The resume
// term vector and skill set are computed once and reused across all jobs,
// so a batch of J jobs costs O(J) scorings rather than J re-derivations of
// the resume.
func RankJobs(ctx context.Context, skills []string, resumeText string, jobs []types.Job) ([]types.RankedJob, error) {
	signals := Signals{}
	if resumeText != "" {
		signals.ResumeVector = textnorm.VectorFromText(resumeText)
	}

	// Each goroutine writes a distinct element, so no locking is needed.
	ranked := make([]types.RankedJob, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rankConcurrency)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			score, breakdown := CompositeScore(skills, job.MatchText(), signals)
			ranked[i] = types.RankedJob{
				Job: job,
				Score: types.MatchScore{
					JobID:     job.ID,
					Score:     score,
					Breakdown: breakdown,
				},
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score.Score != ranked[j].Score.Score {
			return ranked[i].Score.Score > ranked[j].Score.Score
		}
		return ranked[i].Job.ID.String() < ranked[j].Job.ID.String()
	})
	return ranked, nil
}

// RankApplicants scores every applicant profile against one job and returns
// them sorted by descending score, for the company dashboard. The job text
// is derived once; each profile contributes its own skill set and resume
// vector.
func RankApplicants(ctx context.Context, job types.Job, profiles []types.Profile) ([]types.RankedApplicant, error) {
	jobText := job.MatchText()

	ranked := make([]types.RankedApplicant, len(profiles))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rankConcurrency)
	for i, profile := range profiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			signals := Signals{}
			if profile.ResumeText != "" {
				signals.ResumeVector = textnorm.VectorFromText(profile.ResumeText)
			}
			score, breakdown := CompositeScore(profile.Skills, jobText, signals)
			ranked[i] = types.RankedApplicant{
				Profile: profile,
				Score: types.MatchScore{
					ProfileID: profile.ID,
					JobID:     job.ID,
					Score:     score,
					Breakdown: breakdown,
				},
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score.Score != ranked[j].Score.Score {
			return ranked[i].Score.Score > ranked[j].Score.Score
		}
		return ranked[i].Profile.ID.String() < ranked[j].Profile.ID.String()
	})
	return ranked, nil
}

package matching

import (
	"math"

	"github.com/jonathan/jobmatch/internal/textnorm"
)

// similarityBoost maps raw cosine similarity onto the 0-100 scale. Raw
// cosine between a short skill list and long job text is generally low, so
// the boost compensates before clamping. The value is load-bearing for
// score parity and must not be re-derived.
const similarityBoost = 140

// ScoreJobMatch scores a pre-built resume term vector against job text,
// returning an integer in [0,100]. An empty resume vector or empty job
// text scores 0.
func ScoreJobMatch(resumeVec textnorm.TermVector, jobText string) int {
	jobVec := textnorm.VectorFromText(jobText)
	sim := textnorm.Cosine(resumeVec, jobVec)
	return clampScore(int(math.Round(sim * similarityBoost)))
}

// clampScore clamps a score to [0,100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

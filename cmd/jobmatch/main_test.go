package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/jobmatch/internal/advice"
	"github.com/jonathan/jobmatch/internal/llm"
	"github.com/jonathan/jobmatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubModelClient is a canned llm.Client for exercising model-dependent
// paths without network access.
type stubModelClient struct {
	content string
	err     error
}

func (c *stubModelClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return c.content, c.err
}

func (c *stubModelClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return c.content, c.err
}

func (c *stubModelClient) GetModel(_ llm.ModelTier) string { return "stub" }

func (c *stubModelClient) Close() error { return nil }

// writeTempFile creates a file with the given content under t.TempDir.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunMatch_WritesScoreJSON(t *testing.T) {
	jobPath := writeTempFile(t, "job.txt",
		"Backend engineer. Requires Python and SQL experience with AWS.")
	outPath := filepath.Join(t.TempDir(), "out", "score.json")

	matchJobPath = jobPath
	matchResumePath = ""
	matchSkillsCSV = "Python, SQL, AWS"
	matchOutput = outPath
	matchVerbose = false

	require.NoError(t, runMatch(nil, nil))

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var score types.MatchScore
	require.NoError(t, json.Unmarshal(content, &score))

	assert.True(t, score.Breakdown.HasSkill)
	assert.Greater(t, score.Score, 0)
	assert.Contains(t, score.Breakdown.MatchedSkills, "python")
}

func TestRunMatch_MissingJobFile(t *testing.T) {
	matchJobPath = filepath.Join(t.TempDir(), "missing.txt")
	matchResumePath = ""
	matchSkillsCSV = ""
	matchOutput = ""

	err := runMatch(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestRunAnalyze_WritesBothReports(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	resumePath := writeTempFile(t, "resume.txt",
		"John Doe john@x.com 555-123-4567. Experience: responsible for building systems. Skills: Python. Education: BS.")
	outPath := filepath.Join(t.TempDir(), "analysis.json")

	analyzeResumePath = resumePath
	analyzeOutput = outPath
	analyzeVerbose = false

	require.NoError(t, runAnalyze(nil, nil))

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var result analyzeResult
	require.NoError(t, json.Unmarshal(content, &result))

	assert.True(t, result.ATS.HasContactInfo)
	assert.NotEmpty(t, result.Quality.Suggestions)
}

func TestRunExtract_WritesSkills(t *testing.T) {
	inPath := writeTempFile(t, "text.txt",
		"Led a team shipping Python services on Kubernetes.")
	outPath := filepath.Join(t.TempDir(), "skills.json")

	extractInputPath = inPath
	extractCustom = nil
	extractFuzzy = false
	extractOutput = outPath
	extractVerbose = false

	require.NoError(t, runExtract(nil, nil))

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var result extractResult
	require.NoError(t, json.Unmarshal(content, &result))

	assert.Contains(t, result.Skills, "python")
	assert.Contains(t, result.Skills, "kubernetes")
	assert.Contains(t, result.Inferred, "leadership")
}

func TestRunAdvise_StructuredWithoutAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	outPath := filepath.Join(t.TempDir(), "advice.json")

	adviseSkillsCSV = "python, sql"
	adviseYears = 3
	adviseOutput = outPath
	adviseVerbose = false

	require.NoError(t, runAdvise(adviseCmd, nil))

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var result types.Advice
	require.NoError(t, json.Unmarshal(content, &result))

	assert.NotEmpty(t, result.NextSteps)
	assert.Empty(t, result.Prose)
}

func TestBuildAnalysis_ModelExplanation(t *testing.T) {
	advisor := advice.NewAdvisor(&stubModelClient{content: "Tighten the summary and add metrics."})

	result := buildAnalysis(context.Background(), advisor, "Experience: responsible for systems.", true)

	assert.Equal(t, "Tighten the summary and add metrics.", result.Explanation)
	assert.NotEmpty(t, result.Quality.Suggestions)
	assert.NotZero(t, result.ATS.WordCount)
}

func TestBuildAnalysis_ExplanationFailureKeepsReports(t *testing.T) {
	advisor := advice.NewAdvisor(&stubModelClient{err: errors.New("quota exhausted")})

	result := buildAnalysis(context.Background(), advisor, "Experience: built systems.", true)

	assert.Empty(t, result.Explanation)
	assert.NotZero(t, result.ATS.WordCount)
}

func TestBuildAnalysis_WithoutModel(t *testing.T) {
	result := buildAnalysis(context.Background(), advice.NewAdvisor(nil), "Experience: built systems.", false)

	assert.Empty(t, result.Explanation)
	assert.NotZero(t, result.ATS.WordCount)
}

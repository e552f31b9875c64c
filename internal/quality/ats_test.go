package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeATS_DeterministicFixture(t *testing.T) {
	// 18 repetitions of a 14-word block lands at 252 words, inside the
	// preferred range. Expected points: contact +20, sections +25,
	// length +15.
	block := "John Doe john@x.com 555-123-4567 Experience: built systems. Skills: Python, SQL, AWS. Education: BS CS. "
	text := strings.TrimSpace(strings.Repeat(block, 18))

	report := AnalyzeATS(text)

	assert.True(t, report.HasContactInfo)
	assert.True(t, report.UsesStandardSection)
	assert.Equal(t, 252, report.WordCount)
	assert.GreaterOrEqual(t, report.Score, 60)
	assert.Equal(t, 60, report.Score)
}

func TestAnalyzeATS_ContactInfoPoints(t *testing.T) {
	pad := strings.Repeat("experience education skills built developed led word word word word ", 25)

	full := AnalyzeATS("john@x.com 555-123-4567 " + pad)
	emailOnly := AnalyzeATS("john@x.com " + pad)
	neither := AnalyzeATS(pad)

	assert.True(t, full.HasContactInfo)
	assert.False(t, emailOnly.HasContactInfo)
	assert.False(t, neither.HasContactInfo)
	assert.Equal(t, 10, full.Score-emailOnly.Score)
	assert.Equal(t, 10, emailOnly.Score-neither.Score)

	require.NotEmpty(t, neither.Warnings)
	assert.Contains(t, neither.Warnings[0], "contact information")
}

func TestAnalyzeATS_SectionHeadings(t *testing.T) {
	three := AnalyzeATS("Experience here. Education there. Skills listed.")
	two := AnalyzeATS("Experience here. Education there.")
	one := AnalyzeATS("Experience here.")

	assert.True(t, three.UsesStandardSection)
	assert.True(t, two.UsesStandardSection)
	assert.False(t, one.UsesStandardSection)
	assert.Equal(t, 10, three.Score-two.Score)
}

func TestAnalyzeATS_WordCountBand(t *testing.T) {
	short := AnalyzeATS("too short")
	inRange := AnalyzeATS(strings.TrimSpace(strings.Repeat("word ", 300)))
	long := AnalyzeATS(strings.TrimSpace(strings.Repeat("word ", 700)))

	assert.Equal(t, 2, short.WordCount)
	assert.Equal(t, 15, inRange.Score-long.Score)
	assert.NotEmpty(t, short.Warnings)
	assert.NotEmpty(t, long.Warnings)
}

func TestAnalyzeATS_ActionVerbsAndQuantifiables(t *testing.T) {
	base := strings.TrimSpace(strings.Repeat("word ", 250))

	verbs := AnalyzeATS(base + " built developed led")
	noVerbs := AnalyzeATS(base)
	assert.Equal(t, 15, verbs.Score-noVerbs.Score)
	assert.NotEmpty(t, noVerbs.Recommendations)

	quant := AnalyzeATS(base + " improved throughput by 40%")
	assert.Equal(t, 10, quant.Score-noVerbs.Score)
}

func TestAnalyzeATS_ComplexLayoutPenalty(t *testing.T) {
	base := strings.TrimSpace(strings.Repeat("word ", 250))

	tabbed := AnalyzeATS(base + "\tcolumn")
	spaced := AnalyzeATS(base + " trailing  run")
	newlines := AnalyzeATS(strings.ReplaceAll(base, " ", "\n"))

	assert.Equal(t, 10, AnalyzeATS(base).Score-tabbed.Score)
	assert.Equal(t, tabbed.Score, spaced.Score)
	// Newlines alone never count as complex layout.
	assert.Equal(t, AnalyzeATS(base).Score, newlines.Score)
}

func TestAnalyzeATS_ScoreStaysInRange(t *testing.T) {
	empty := AnalyzeATS("")
	assert.Equal(t, 0, empty.Score)
	assert.GreaterOrEqual(t, empty.Score, 0)

	loaded := AnalyzeATS("john@x.com 555-123-4567 " +
		strings.TrimSpace(strings.Repeat("experience education skills projects summary objective built developed designed led optimized implemented 40% ", 20)))
	assert.LessOrEqual(t, loaded.Score, 100)
	assert.Equal(t, "This resume is well optimized for applicant tracking systems.", loaded.Summary)
}

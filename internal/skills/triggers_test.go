package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferSkills_SingleTrigger(t *testing.T) {
	ts := DefaultTriggerSet()

	got := ts.InferSkills("Mentored three junior engineers")
	assert.Contains(t, got, "leadership")
}

func TestInferSkills_MultipleLabels(t *testing.T) {
	ts := DefaultTriggerSet()

	got := ts.InferSkills("Designed and built the billing service, presented results to stakeholders")
	assert.Contains(t, got, "design")
	assert.Contains(t, got, "software development")
	assert.Contains(t, got, "communication")
}

func TestInferSkills_SubstringSemantics(t *testing.T) {
	ts := DefaultTriggerSet()

	// "led" inside "traveled" is an accepted false positive of the
	// substring semantics.
	got := ts.InferSkills("traveled extensively for client work")
	assert.Contains(t, got, "leadership")
}

func TestInferSkills_WordBoundaryOption(t *testing.T) {
	ts := DefaultTriggerSet()
	ts.WordBoundary = true

	got := ts.InferSkills("traveled extensively for client work")
	assert.NotContains(t, got, "leadership")

	got = ts.InferSkills("led the migration project")
	assert.Contains(t, got, "leadership")
}

func TestInferSkills_WordBoundaryMultiWordPhrase(t *testing.T) {
	ts := DefaultTriggerSet()
	ts.WordBoundary = true

	got := ts.InferSkills("Led a team of five engineers.")
	assert.Contains(t, got, "management")
}

func TestInferSkills_SortedOutput(t *testing.T) {
	ts := DefaultTriggerSet()

	got := ts.InferSkills("debugged and mentored and authored")
	assert.Equal(t, []string{"communication", "leadership", "problem-solving"}, got)
}

func TestInferSkills_EmptyText(t *testing.T) {
	ts := DefaultTriggerSet()
	assert.Nil(t, ts.InferSkills(""))
}

func TestInferSkills_NoTriggers(t *testing.T) {
	ts := DefaultTriggerSet()
	assert.Nil(t, ts.InferSkills("plain sentence with nothing relevant"))
}

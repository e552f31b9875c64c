// Package quality provides pattern-based resume quality analysis and ATS
// friendliness checks. All checks are pure functions of the resume text;
// no external model is involved.
package quality

import (
	"regexp"
	"strings"

	"github.com/jonathan/jobmatch/internal/types"
)

// genericPhrases are filler phrases that weaken resume bullets.
var genericPhrases = []string{
	"responsible for",
	"worked on",
	"team player",
	"duties included",
}

// actionVerbs are the strong verbs the analyzer expects at least one of.
var actionVerbs = []string{
	"built", "developed", "designed", "led", "optimized", "implemented",
}

// passiveVoiceRe flags passive-voice constructions like "was built" or
// "were implemented".
var passiveVoiceRe = regexp.MustCompile(`\b(?:was|were|is|are|been)\b\s+\w+ed\b`)

// Suggestion messages.
const (
	msgGenericPhrase = "Avoid generic phrases. Use specific action verbs to describe your impact."
	msgPassiveVoice  = "Prefer active voice ('I built X') over passive voice ('X was built')."
	msgNoActionVerbs = "Start bullet points with strong action verbs like 'developed', 'optimized', or 'led'."
)

// AnalyzeQuality checks resume text for generic filler phrases, passive
// voice and missing action verbs, producing one suggestion per finding with
// the matched substring as context. Empty text yields only the
// missing-action-verb suggestion.
func AnalyzeQuality(resumeText string) types.QualityReport {
	var suggestions []types.Suggestion
	lower := strings.ToLower(resumeText)

	for _, phrase := range genericPhrases {
		if strings.Contains(lower, phrase) {
			suggestions = append(suggestions, types.Suggestion{
				Message: msgGenericPhrase,
				Context: phrase,
			})
		}
	}

	for _, match := range passiveVoiceRe.FindAllString(lower, -1) {
		suggestions = append(suggestions, types.Suggestion{
			Message: msgPassiveVoice,
			Context: match,
		})
	}

	hasActionVerb := false
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			hasActionVerb = true
			break
		}
	}
	if !hasActionVerb {
		suggestions = append(suggestions, types.Suggestion{Message: msgNoActionVerbs})
	}

	return types.QualityReport{Suggestions: suggestions}
}

package advice

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jonathan/jobmatch/internal/llm"
	"github.com/jonathan/jobmatch/internal/skills"
)

// LLMExtractor implements skills.Extractor using the generative client, with
// the pattern extractor as fallback when the model is unavailable or returns
// an unusable reply. Model output is canonicalized through the same
// vocabulary as pattern matches, so both extractors produce interchangeable
// skill sets.
type LLMExtractor struct {
	client   llm.Client
	vocab    *skills.Vocabulary
	fallback *skills.PatternExtractor
}

// NewLLMExtractor builds an extractor over the given client. A nil
// vocabulary falls back to the default one.
func NewLLMExtractor(client llm.Client, vocab *skills.Vocabulary) *LLMExtractor {
	if vocab == nil {
		vocab = skills.DefaultVocabulary()
	}
	return &LLMExtractor{
		client:   client,
		vocab:    vocab,
		fallback: skills.NewPatternExtractor(vocab),
	}
}

// Extract implements skills.Extractor.
func (e *LLMExtractor) Extract(ctx context.Context, text string, custom []string) ([]string, error) {
	if text == "" && len(custom) == 0 {
		return nil, nil
	}
	if e.client == nil {
		return e.fallback.Extract(ctx, text, custom)
	}

	prompt := llm.BuildExtractionPrompt(llm.SkillExtractionSchema(), text)
	raw, err := e.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		log.Printf("skill extraction via model failed, falling back to pattern matching: %v", err)
		return e.fallback.Extract(ctx, text, custom)
	}

	var reply struct {
		Skills []string `json:"skills"`
	}
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		log.Printf("skill extraction reply was not valid JSON, falling back to pattern matching: %v", err)
		return e.fallback.Extract(ctx, text, custom)
	}

	// Pattern-match the custom terms so callers get identical custom-term
	// semantics from both extractors.
	patternMatched := e.fallback.ExtractSkills(text, custom)
	return skills.MergeSkillSets(e.vocab, reply.Skills, patternMatched), nil
}

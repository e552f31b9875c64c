package skills

import (
	"context"
	"sort"
	"strings"

	"github.com/jonathan/jobmatch/internal/textnorm"
)

// Extractor extracts canonical skills from free text. Implementations must
// return a deduplicated, alphabetically sorted slice of canonical skill
// names, and must treat empty input as "no signal" rather than an error.
//
// Two implementations exist: PatternExtractor (pure, vocabulary-driven) and
// the LLM-backed extractor in the advice package. Callers select one via
// configuration.
type Extractor interface {
	Extract(ctx context.Context, text string, custom []string) ([]string, error)
}

// PatternExtractor extracts skills by matching normalized tokens and
// adjacent-token bigrams against a Vocabulary. It is pure and safe for
// concurrent use.
type PatternExtractor struct {
	vocab *Vocabulary

	// FuzzyThreshold, when > 0, enables fuzzy matching of single-token
	// canonical skills whose similarity ratio to some token meets the
	// threshold. Multi-word skills are only ever exact-bigram-matched.
	FuzzyThreshold float64
}

// NewPatternExtractor returns a PatternExtractor over the given vocabulary.
// A nil vocabulary falls back to the default one.
func NewPatternExtractor(vocab *Vocabulary) *PatternExtractor {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &PatternExtractor{vocab: vocab}
}

// Extract implements Extractor. The context is unused; pattern matching
// never blocks.
func (e *PatternExtractor) Extract(_ context.Context, text string, custom []string) ([]string, error) {
	return e.ExtractSkills(text, custom), nil
}

// ExtractSkills returns the sorted set of canonical skills found in text.
// Unigram tokens and adjacent-token bigrams are canonicalized and tested
// against the vocabulary; overlapping unigram and bigram matches are all
// retained. Custom terms, when given, are canonicalized and matched as
// literal substrings of the normalized text.
func (e *PatternExtractor) ExtractSkills(text string, custom []string) []string {
	normalized := textnorm.Normalize(text)
	if normalized == "" && len(custom) == 0 {
		return nil
	}
	tokens := strings.Fields(normalized)

	found := make(map[string]bool)
	for _, tok := range tokens {
		if c := e.vocab.Canonicalize(tok); e.vocab.canonical[c] {
			found[c] = true
		}
	}

	for i := 0; i+1 < len(tokens); i++ {
		bigram := e.vocab.Canonicalize(tokens[i] + " " + tokens[i+1])
		if e.vocab.canonical[bigram] {
			found[bigram] = true
		}
	}

	for _, term := range custom {
		c := e.vocab.Canonicalize(term)
		if c == "" {
			continue
		}
		if strings.Contains(normalized, c) {
			found[c] = true
		}
	}

	if e.FuzzyThreshold > 0 {
		e.fuzzyMatch(tokens, found)
	}

	return sortedSet(found)
}

// fuzzyMatch adds single-token canonical skills whose similarity ratio to
// any token meets the threshold. Skills already found exactly are skipped.
func (e *PatternExtractor) fuzzyMatch(tokens []string, found map[string]bool) {
	for skill := range e.vocab.canonical {
		if found[skill] || strings.Contains(skill, " ") {
			continue
		}
		for _, tok := range tokens {
			if editSimilarity(skill, tok) >= e.FuzzyThreshold {
				found[skill] = true
				break
			}
		}
	}
}

func sortedSet(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// MergeSkillSets combines skill lists into one canonicalized, deduplicated,
// sorted set. Used to merge user-declared skills with extracted ones.
func MergeSkillSets(vocab *Vocabulary, lists ...[]string) []string {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	set := make(map[string]bool)
	for _, list := range lists {
		for _, s := range list {
			if c := vocab.Canonicalize(s); c != "" {
				set[c] = true
			}
		}
	}
	return sortedSet(set)
}

// ParseSkillsCSV splits a comma-separated skills field into canonicalized,
// deduplicated, sorted skills. Empty entries are dropped.
func ParseSkillsCSV(vocab *Vocabulary, csv string) []string {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	set := make(map[string]bool)
	for _, part := range strings.Split(csv, ",") {
		if c := vocab.Canonicalize(part); c != "" {
			set[c] = true
		}
	}
	return sortedSet(set)
}

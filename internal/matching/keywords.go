// Package matching computes match scores between applicant profiles and
// job postings: cosine similarity over term vectors, a composite
// multi-signal score with per-component breakdown, and batch ranking.
package matching

import (
	"sort"

	"github.com/jonathan/jobmatch/internal/textnorm"
)

// stopWords filters common English words that add noise to keyword ranking.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "high": true,
	"good": true, "able": true, "get": true, "set": true, "such": true,
}

// minKeywordLen drops tokens too short to be meaningful keywords.
const minKeywordLen = 3

// topKeywordCount is the number of frequency-ranked job keywords the
// composite scorer compares against the user's skill list.
const topKeywordCount = 20

// TopKeywords returns the n most frequent stopword-filtered tokens of text,
// most frequent first. Ties break alphabetically so output is deterministic.
func TopKeywords(text string, n int) []string {
	if n <= 0 {
		return nil
	}

	freq := make(map[string]int)
	for _, tok := range textnorm.Tokenize(text) {
		if len([]rune(tok)) < minKeywordLen || stopWords[tok] {
			continue
		}
		freq[tok]++
	}
	if len(freq) == 0 {
		return nil
	}

	keywords := make([]string, 0, len(freq))
	for kw := range freq {
		keywords = append(keywords, kw)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if freq[keywords[i]] != freq[keywords[j]] {
			return freq[keywords[i]] > freq[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return keywords
}

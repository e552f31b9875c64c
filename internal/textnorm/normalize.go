// Package textnorm provides text normalization and term-vector primitives
// shared by the skill extraction and match scoring packages.
package textnorm

import (
	"regexp"
	"strings"
)

// stripRe matches runs of characters outside the normalized alphabet.
// The alphabet keeps + . # / - so technical tokens like "c++", "c#" and
// "node.js" survive normalization intact.
var stripRe = regexp.MustCompile(`[^a-z0-9+.#/\- ]+`)

// spaceRe collapses runs of whitespace into a single space.
var spaceRe = regexp.MustCompile(`\s+`)

// Normalize lowercases text, removes characters outside [a-z0-9+.#/- ],
// collapses whitespace and trims. It is pure and idempotent; empty input
// yields empty output.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = stripRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize normalizes text and splits it into whitespace-separated tokens.
// Returns nil for text that normalizes to the empty string.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}

// WordCount returns the number of whitespace-separated words in the raw
// (un-normalized) text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

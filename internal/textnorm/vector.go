package textnorm

import "math"

// TermVector is a sparse term-frequency vector: token -> occurrence count.
// It is derived on demand from free text or a skill list and never persisted.
type TermVector map[string]int

// NewTermVector builds a term-frequency vector from a token stream.
func NewTermVector(tokens []string) TermVector {
	if len(tokens) == 0 {
		return TermVector{}
	}
	vec := make(TermVector, len(tokens))
	for _, tok := range tokens {
		vec[tok]++
	}
	return vec
}

// VectorFromText tokenizes text and builds its term-frequency vector.
func VectorFromText(text string) TermVector {
	return NewTermVector(Tokenize(text))
}

// Cosine computes the cosine similarity between two term-frequency vectors.
// Returns 0.0 when either vector is empty or has a zero norm, so callers
// never divide by zero.
func Cosine(a, b TermVector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	// Iterate the smaller vector for the dot product.
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}

	dot := 0
	for tok, count := range small {
		if other, ok := large[tok]; ok {
			dot += count * other
		}
	}

	normA := 0
	for _, count := range a {
		normA += count * count
	}
	normB := 0
	for _, count := range b {
		normB += count * count
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}

	return float64(dot) / (math.Sqrt(float64(normA)) * math.Sqrt(float64(normB)))
}

package skills

// DefaultFuzzyThreshold is the minimum similarity ratio for a token to
// fuzzy-match a single-word canonical skill. The value is calibrated on the
// matching-blocks ratio scale and must not be re-derived.
const DefaultFuzzyThreshold = 0.84

// editSimilarity returns a 0-1 similarity between two strings as the
// matching-blocks ratio 2*M / (len(a) + len(b)), where M is the total size
// of the matching blocks found by repeatedly taking the longest common
// substring and recursing on the pieces to either side. Identical strings
// score 1.0, fully distinct strings 0.0.
func editSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchingTotal(a, b)) / float64(total)
}

// matchingTotal sums the sizes of the matching blocks between a and b.
func matchingTotal(a, b string) int {
	size, ai, bi := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size + matchingTotal(a[:ai], b[:bi]) + matchingTotal(a[ai+size:], b[bi+size:])
}

// longestMatch finds the longest common substring of a and b, returning its
// size and start offsets. Ties resolve to the earliest position in a, then
// in b.
func longestMatch(a, b string) (size, ai, bi int) {
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return 0, 0, 0
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			if a[i-1] != b[j-1] {
				curr[j] = 0
				continue
			}
			curr[j] = prev[j-1] + 1
			if curr[j] > size {
				size = curr[j]
				ai = i - size
				bi = j - size
			}
		}
		prev, curr = curr, prev
		clear(curr)
	}
	return size, ai, bi
}

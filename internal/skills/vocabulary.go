// Package skills provides skill extraction from free text: vocabulary
// matching against a canonical skill list, fuzzy token matching, and
// trigger-phrase inference of soft skills.
package skills

import "strings"

// Vocabulary holds the canonical skill set and the synonym table used to
// canonicalize surface spellings. It is immutable after construction and
// safe for concurrent use.
type Vocabulary struct {
	canonical map[string]bool
	synonyms  map[string]string
}

// defaultCanonicalSkills is the built-in canonical skill list.
var defaultCanonicalSkills = []string{
	// Languages
	"python", "java", "c", "c++", "c#", ".net", "javascript", "typescript",
	"go", "ruby", "php", "swift", "kotlin",
	// Backend / Web
	"node", "node.js", "django", "flask", "spring", "spring boot",
	"fastapi", "express", "graphql", "rest",
	// Frontend
	"react", "angular", "vue", "next.js", "svelte", "html", "css",
	"tailwind", "bootstrap",
	// Mobile
	"react native", "flutter", "android", "ios",
	// Data stores
	"sql", "mysql", "postgres", "mongodb", "redis", "elasticsearch",
	// Cloud / Infra
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "linux",
	// Data / ML
	"pandas", "numpy", "scikit-learn", "sklearn", "tensorflow", "pytorch",
	"nlp", "llm", "machine learning", "deep learning", "data science",
	"etl", "airflow", "spark", "hadoop",
}

// defaultSynonyms maps surface spellings to their canonical skill name.
var defaultSynonyms = map[string]string{
	"js":           "javascript",
	"ts":           "typescript",
	"tf":           "tensorflow",
	"golang":       "go",
	"k8s":          "kubernetes",
	"ml":           "machine learning",
	"dl":           "deep learning",
	"postgresql":   "postgres",
	"scikit learn": "scikit-learn",
	"nodejs":       "node.js",
	"reactjs":      "react",
	"vuejs":        "vue",
}

// DefaultVocabulary returns the built-in vocabulary. The result shares no
// mutable state between calls beyond the package-level source tables, which
// are never written after init.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(defaultCanonicalSkills, defaultSynonyms)
}

// NewVocabulary builds a vocabulary from a canonical skill list and a
// synonym table. Skill names and synonym keys are lowercased and trimmed;
// empty entries are skipped.
func NewVocabulary(canonical []string, synonyms map[string]string) *Vocabulary {
	v := &Vocabulary{
		canonical: make(map[string]bool, len(canonical)),
		synonyms:  make(map[string]string, len(synonyms)),
	}
	for _, s := range canonical {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			v.canonical[s] = true
		}
	}
	for from, to := range synonyms {
		from = strings.ToLower(strings.TrimSpace(from))
		to = strings.ToLower(strings.TrimSpace(to))
		if from != "" && to != "" {
			v.synonyms[from] = to
		}
	}
	return v
}

// Canonicalize trims, lowercases and synonym-resolves a skill string.
// Unknown strings pass through lowercased so two surface spellings of the
// same skill can never be treated as distinct.
func (v *Vocabulary) Canonicalize(s string) string {
	t := strings.ToLower(strings.TrimSpace(s))
	if canonical, ok := v.synonyms[t]; ok {
		return canonical
	}
	return t
}

// Contains reports whether the canonicalized form of s is a canonical skill.
func (v *Vocabulary) Contains(s string) bool {
	return v.canonical[v.Canonicalize(s)]
}

// Skills returns a copy of the canonical skill set.
func (v *Vocabulary) Skills() []string {
	out := make([]string, 0, len(v.canonical))
	for s := range v.canonical {
		out = append(out, s)
	}
	return out
}

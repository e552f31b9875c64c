package skills

import (
	"sort"
	"strings"
)

// TriggerSet maps soft-skill labels to literal trigger phrases. A label is
// inferred when any of its phrases occurs in the text; phrase lists
// short-circuit per label, labels are evaluated independently.
type TriggerSet struct {
	triggers map[string][]string

	// WordBoundary anchors phrase matching on word boundaries instead of
	// raw substrings. Off by default: substring semantics accept false
	// positives ("led" inside "traveled") as a recall-oriented tradeoff,
	// and downstream behavior depends on them.
	WordBoundary bool
}

// defaultTriggers is the built-in soft-skill trigger table.
var defaultTriggers = map[string][]string{
	"management":           {"manage", "led a team", "spearheaded", "oversaw", "directed the"},
	"leadership":           {"led", "lead", "mentored", "guided", "directed", "coached"},
	"communication":        {"presented", "authored", "negotiated", "liaised", "wrote"},
	"problem-solving":      {"optimized", "resolved", "troubleshoot", "debugged", "fixed"},
	"software development": {"developed", "engineered", "built", "coded", "programmed"},
	"data analysis":        {"analyzed", "interpreted", "visualized data", "data model"},
	"design":               {"designed", "prototyped", "wireframed", "ux", "ui"},
}

// DefaultTriggerSet returns the built-in trigger table with substring
// matching semantics.
func DefaultTriggerSet() *TriggerSet {
	return NewTriggerSet(defaultTriggers)
}

// NewTriggerSet builds a TriggerSet from a label -> phrases table. Phrases
// are lowercased; empty labels and phrases are skipped.
func NewTriggerSet(table map[string][]string) *TriggerSet {
	ts := &TriggerSet{triggers: make(map[string][]string, len(table))}
	for label, phrases := range table {
		label = strings.ToLower(strings.TrimSpace(label))
		if label == "" {
			continue
		}
		kept := make([]string, 0, len(phrases))
		for _, p := range phrases {
			p = strings.ToLower(strings.TrimSpace(p))
			if p != "" {
				kept = append(kept, p)
			}
		}
		if len(kept) > 0 {
			ts.triggers[label] = kept
		}
	}
	return ts
}

// InferSkills returns the sorted set of soft-skill labels whose trigger
// phrases occur in the lowercased text. Empty text yields nil.
func (ts *TriggerSet) InferSkills(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	found := make(map[string]bool)
	for label, phrases := range ts.triggers {
		for _, phrase := range phrases {
			if ts.matches(lower, phrase) {
				found[label] = true
				break
			}
		}
	}

	out := make([]string, 0, len(found))
	for label := range found {
		out = append(out, label)
	}
	sort.Strings(out)
	if len(out) == 0 {
		return nil
	}
	return out
}

func (ts *TriggerSet) matches(lowerText, phrase string) bool {
	if !ts.WordBoundary {
		return strings.Contains(lowerText, phrase)
	}
	// Pad with spaces so phrases only match on whole-word boundaries.
	hay := " " + strings.Join(strings.FieldsFunc(lowerText, isNonWord), " ") + " "
	return strings.Contains(hay, " "+phrase+" ")
}

func isNonWord(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return false
	}
	return true
}

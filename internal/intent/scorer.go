// Package intent scores email text against the weighted intent term
// dictionary.
package intent

import (
	"sort"
	"strings"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/rules"
)

// Scorer computes per-category intent scores and matched-term evidence.
// It holds only the immutable dictionary, so a single Scorer is safe for
// concurrent use.
type Scorer struct {
	dict *rules.Dictionary
}

// NewScorer creates a scorer over the given dictionary.
func NewScorer(dict *rules.Dictionary) *Scorer {
	return &Scorer{dict: dict}
}

// ScoreIntents matches subject and body against every intent category.
// A category's score is its weight times the number of distinct matched
// terms; evidence lists those terms sorted ascending. Every category is
// present in both results even when nothing matched.
func (s *Scorer) ScoreIntents(subject, body string) (core.IntentScores, core.IntentEvidence) {
	text := strings.ToLower(subject + "\n" + body)

	scores := make(core.IntentScores, len(s.dict.Intents))
	evidence := make(core.IntentEvidence, len(s.dict.Intents))

	for _, rule := range s.dict.Intents {
		scores[rule.Category] = 0
		evidence[rule.Category] = []string{}

		seen := make(map[string]struct{}, len(rule.Terms))
		var hits []string
		for _, term := range rule.Terms {
			if _, dup := seen[term]; dup {
				continue
			}
			if strings.Contains(text, strings.ToLower(term)) {
				seen[term] = struct{}{}
				hits = append(hits, term)
			}
		}

		if len(hits) > 0 {
			sort.Strings(hits)
			scores[rule.Category] = rule.Weight * len(hits)
			evidence[rule.Category] = hits
		}
	}

	return scores, evidence
}

// Package engine combines intent scores and extracted features through a
// layered risk model to select a handling action for an email.
package engine

import (
	"math"
	"strings"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/feature"
	"github.com/mikey/email-triage/internal/intent"
	"github.com/mikey/email-triage/internal/rules"
	"github.com/mikey/email-triage/internal/textextract"
)

// Risk model weights and action thresholds.
const (
	mAndARiskFactor    = 1.2
	securityRiskFactor = 1.3
	legalRiskFactor    = 1.1

	roleRisk    = 4.0
	urgencyRisk = 2.0
	moneyRisk   = 3.0

	freeDomainPenalty        = 2.0
	manyURLsPenalty          = 2.0
	phoneWithSecurityPenalty = 2.0

	blockSecurityScore = 10
	blockTrustPenalty  = 3.0
	escalateMAndAScore = 5
	escalateLegalScore = 8
	escalateTotalRisk  = 10.0
)

// Engine is the scoring-and-decision core. It composes the intent scorer
// and feature extractor over one immutable dictionary; every decision is a
// pure function of the email, so a single Engine is safe for concurrent use.
type Engine struct {
	dict      *rules.Dictionary
	scorer    *intent.Scorer
	extractor *feature.Extractor
}

// New creates an engine over the given dictionary.
func New(dict *rules.Dictionary) *Engine {
	return &Engine{
		dict:      dict,
		scorer:    intent.NewScorer(dict),
		extractor: feature.NewExtractor(dict),
	}
}

// ScoreIntents exposes the intent scorer.
func (e *Engine) ScoreIntents(subject, body string) (core.IntentScores, core.IntentEvidence) {
	return e.scorer.ScoreIntents(subject, body)
}

// ExtractFeatures exposes the feature extractor.
func (e *Engine) ExtractFeatures(email core.Email) core.Features {
	return e.extractor.ExtractFeatures(email)
}

// DecideAction triages one email. It never fails: empty or non-matching
// input produces zero scores, empty feature sets and an AUTO_REPLY.
func (e *Engine) DecideAction(email core.Email) core.Decision {
	scores, evidence := e.scorer.ScoreIntents(email.Subject, email.Body)
	features := e.extractor.ExtractFeatures(email)

	// A support ticket that mentions security words incidentally is not a
	// security signal unless a strong security term backs it up. Evidence
	// keeps the original matches so the suppression stays auditable.
	text := strings.ToLower(email.Subject + "\n" + email.Body)
	if scores[rules.CategorySupport] >= 1 && scores[rules.CategorySecurity] > 0 &&
		!textextract.ContainsAny(text, e.dict.StrongSecurityTerms) {
		scores[rules.CategorySecurity] = 0
	}

	strategicRisk := float64(scores[rules.CategoryMAndA]) * mAndARiskFactor
	if features.MentionsRoles {
		strategicRisk += roleRisk
	}
	if features.MentionsUrgency {
		strategicRisk += urgencyRisk
	}
	if len(features.MoneyMentions) > 0 {
		strategicRisk += moneyRisk
	}

	operationalRisk := float64(scores[rules.CategorySecurity])*securityRiskFactor +
		float64(scores[rules.CategoryLegal])*legalRiskFactor

	trustPenalty := 0.0
	if features.SenderIsFreeDomain {
		trustPenalty += freeDomainPenalty
	}
	if len(features.URLs) >= 2 {
		trustPenalty += manyURLsPenalty
	}
	if len(features.Phones) >= 1 && scores[rules.CategorySecurity] > 0 {
		trustPenalty += phoneWithSecurityPenalty
	}

	totalRisk := strategicRisk + operationalRisk + trustPenalty

	// Ordered priority list, first matching rule wins.
	var action core.Action
	switch {
	case scores[rules.CategorySecurity] >= blockSecurityScore && trustPenalty >= blockTrustPenalty:
		action = core.ActionBlock
	case scores[rules.CategoryMAndA] >= escalateMAndAScore || scores[rules.CategoryLegal] >= escalateLegalScore:
		action = core.ActionEscalateHuman
	case features.MentionsRoles && features.MentionsUrgency && len(features.MoneyMentions) > 0:
		action = core.ActionEscalateHuman
	case totalRisk >= escalateTotalRisk:
		action = core.ActionEscalateHuman
	default:
		action = core.ActionAutoReply
	}

	return core.Decision{
		Action:         action,
		Risk:           math.Round(totalRisk*100) / 100,
		IntentScores:   scores,
		IntentEvidence: evidence,
		Features:       features,
	}
}

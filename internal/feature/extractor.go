// Package feature derives the structured feature bundle for an email from
// its sender address and text.
package feature

import (
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/rules"
	"github.com/mikey/email-triage/internal/textextract"
)

// Extractor builds a Features record from an email. It holds only the
// immutable dictionary and is safe for concurrent use.
type Extractor struct {
	dict *rules.Dictionary
}

// NewExtractor creates an extractor over the given dictionary.
func NewExtractor(dict *rules.Dictionary) *Extractor {
	return &Extractor{dict: dict}
}

// ExtractFeatures derives sender and content signals from the email.
// An unparseable sender yields an empty domain and is treated as a free
// domain, so untrusted-by-default. Length counts characters, not bytes.
func (e *Extractor) ExtractFeatures(email core.Email) core.Features {
	domain := textextract.ExtractEmailDomain(email.Sender)
	isFree := true
	if domain != "" {
		isFree = e.dict.IsFreeDomain(domain)
	}

	text := email.Subject + "\n" + email.Body

	// Informational only: the detected language never feeds a decision
	// rule, it is reported for human review alongside the evidence.
	lang := whatlanggo.Detect(text)

	return core.Features{
		SenderDomain:       domain,
		SenderIsFreeDomain: isFree,
		MentionsRoles:      textextract.ContainsAny(text, e.dict.RoleTerms),
		RoleHits:           textextract.CountAny(text, e.dict.RoleTerms),
		MentionsUrgency:    textextract.ContainsAny(text, e.dict.UrgencyTerms),
		UrgencyHits:        textextract.CountAny(text, e.dict.UrgencyTerms),
		MoneyMentions:      textextract.FindMoney(text),
		URLs:               textextract.FindURLs(text),
		Phones:             textextract.FindPhones(text),
		Length:             utf8.RuneCountInString(text),
		Language:           whatlanggo.LangToString(lang.Lang),
	}
}

package filter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mikey/email-triage/internal/core"
)

// RenderDecision writes a human-readable triage report. Categories are
// printed in dictionary declaration order.
func RenderDecision(w io.Writer, decision *core.Decision, categories []string) {
	fmt.Fprintf(w, "\n--- Decision ---\n")
	fmt.Fprintf(w, "Action: %s\n", decision.Action)
	fmt.Fprintf(w, "Risk score: %.2f\n", decision.Risk)

	fmt.Fprintf(w, "\n--- Intent scores ---\n")
	for _, category := range categories {
		fmt.Fprintf(w, "%s: %d\n", category, decision.IntentScores[category])
	}

	fmt.Fprintf(w, "\n--- Evidence (matched signals) ---\n")
	for _, category := range categories {
		if terms := decision.IntentEvidence[category]; len(terms) > 0 {
			fmt.Fprintf(w, "%s: %s\n", category, strings.Join(terms, ", "))
		}
	}

	f := decision.Features
	fmt.Fprintf(w, "\n--- Extracted features ---\n")
	fmt.Fprintf(w, "sender_domain: %s\n", f.SenderDomain)
	fmt.Fprintf(w, "sender_is_free_domain: %t\n", f.SenderIsFreeDomain)
	fmt.Fprintf(w, "mentions_roles: %t\n", f.MentionsRoles)
	fmt.Fprintf(w, "mentions_urgency: %t\n", f.MentionsUrgency)
	fmt.Fprintf(w, "money_mentions: %v\n", f.MoneyMentions)
	fmt.Fprintf(w, "urls: %v\n", f.URLs)
	fmt.Fprintf(w, "phones: %v\n", f.Phones)
	fmt.Fprintf(w, "language: %s\n", f.Language)
}

// RenderDecisionJSON writes the decision as indented JSON for pipeline use.
func RenderDecisionJSON(w io.Writer, decision *core.Decision) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(decision)
}

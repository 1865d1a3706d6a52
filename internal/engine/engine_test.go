package engine

import (
	"reflect"
	"testing"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/rules"
)

func TestDecideActionScenarios(t *testing.T) {
	eng := New(rules.Default())

	tests := []struct {
		name       string
		email      core.Email
		wantAction core.Action
		wantRisk   float64
	}{
		{
			name: "plain support ticket auto-replies at zero risk",
			email: core.Email{
				Sender:  "user@corporate.com",
				Subject: "password reset issue",
				Body:    "I have a problem, my password reset doesn't work",
			},
			wantAction: core.ActionAutoReply,
			wantRisk:   0,
		},
		{
			name: "friendly note from webmail",
			email: core.Email{
				Sender:  "random@gmail.com",
				Subject: "hi",
				Body:    "just checking in",
			},
			wantAction: core.ActionAutoReply,
			wantRisk:   2,
		},
		{
			name: "acquisition offer escalates",
			email: core.Email{
				Sender:  "ceo@bigcorp.com",
				Subject: "Urgent: Acquisition proposal",
				Body:    "Our CEO wants to acquire your company for $50 million immediately",
			},
			wantAction: core.ActionEscalateHuman,
			wantRisk:   21,
		},
		{
			name: "executive plus urgency plus money escalates without intent hits",
			email: core.Email{
				Sender:  "friend@partner.org",
				Subject: "Our CEO needs the budget today",
				Body:    "$500 for the offsite",
			},
			wantAction: core.ActionEscalateHuman,
			wantRisk:   9,
		},
		{
			name: "accumulated risk crosses the escalation threshold",
			email: core.Email{
				Sender:  "x@gmail.com",
				Subject: "please sign the contract today",
				Body:    "fee is $200",
			},
			wantAction: core.ActionEscalateHuman,
			wantRisk:   11.4,
		},
		{
			name: "credential phish from webmail with links and phone is blocked",
			email: core.Email{
				Sender:  "attacker@gmail.com",
				Subject: "Security breach: password reset required",
				Body: "We detected a hack and phishing attempt. Your login needs 2fa " +
					"authentication reset immediately. Verify at http://evil.example/reset " +
					"and http://evil.example/verify or call +1 555 123 4567.",
			},
			wantAction: core.ActionBlock,
			wantRisk:   60,
		},
		{
			name:       "empty email auto-replies",
			email:      core.Email{},
			wantAction: core.ActionAutoReply,
			wantRisk:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := eng.DecideAction(tt.email)
			if decision.Action != tt.wantAction {
				t.Errorf("action: got %s, want %s", decision.Action, tt.wantAction)
			}
			if decision.Risk != tt.wantRisk {
				t.Errorf("risk: got %v, want %v", decision.Risk, tt.wantRisk)
			}
		})
	}
}

func TestDecideActionSupportSuppressionKeepsEvidence(t *testing.T) {
	eng := New(rules.Default())

	decision := eng.DecideAction(core.Email{
		Sender:  "user@corporate.com",
		Subject: "password reset issue",
		Body:    "I have a problem, my password reset doesn't work",
	})

	if got := decision.IntentScores[rules.CategorySecurity]; got != 0 {
		t.Errorf("SECURITY score: got %d, want 0 after suppression", got)
	}
	if got := decision.IntentScores[rules.CategorySupport]; got != 3 {
		t.Errorf("SUPPORT score: got %d, want 3", got)
	}
	// The matched terms stay in the report so the override is auditable.
	wantEvidence := []string{"password", "reset"}
	if got := decision.IntentEvidence[rules.CategorySecurity]; !reflect.DeepEqual(got, wantEvidence) {
		t.Errorf("SECURITY evidence: got %v, want %v", got, wantEvidence)
	}
}

func TestDecideActionStrongTermDefeatsSuppression(t *testing.T) {
	eng := New(rules.Default())

	decision := eng.DecideAction(core.Email{
		Sender:  "user@corporate.com",
		Subject: "problem with the wire transfer",
		Body:    "please help",
	})

	if got := decision.IntentScores[rules.CategorySecurity]; got != 5 {
		t.Errorf("SECURITY score: got %d, want 5", got)
	}
	if decision.Action != core.ActionAutoReply {
		t.Errorf("action: got %s, want %s", decision.Action, core.ActionAutoReply)
	}
	if decision.Risk != 6.5 {
		t.Errorf("risk: got %v, want 6.5", decision.Risk)
	}
}

func TestDecideActionBlockReport(t *testing.T) {
	eng := New(rules.Default())

	decision := eng.DecideAction(core.Email{
		Sender:  "attacker@gmail.com",
		Subject: "Security breach: password reset required",
		Body: "We detected a hack and phishing attempt. Your login needs 2fa " +
			"authentication reset immediately. Verify at http://evil.example/reset " +
			"and http://evil.example/verify or call +1 555 123 4567.",
	})

	if got := decision.IntentScores[rules.CategorySecurity]; got != 40 {
		t.Errorf("SECURITY score: got %d, want 40", got)
	}
	if !decision.Features.SenderIsFreeDomain {
		t.Errorf("expected free sender domain")
	}
	if got := len(decision.Features.URLs); got != 2 {
		t.Errorf("urls: got %d, want 2", got)
	}
	if got := len(decision.Features.Phones); got != 1 {
		t.Errorf("phones: got %d, want 1", got)
	}
	wantEvidence := []string{"2fa", "authentication", "breach", "hack", "login", "password", "phishing", "reset"}
	if got := decision.IntentEvidence[rules.CategorySecurity]; !reflect.DeepEqual(got, wantEvidence) {
		t.Errorf("SECURITY evidence: got %v, want %v", got, wantEvidence)
	}
}

func TestDecideActionDeterministic(t *testing.T) {
	eng := New(rules.Default())
	email := core.Email{
		Sender:  "ceo@bigcorp.com",
		Subject: "Urgent: Acquisition proposal",
		Body:    "Our CEO wants to acquire your company for $50 million immediately",
	}

	first := eng.DecideAction(email)
	second := eng.DecideAction(email)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated decisions differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

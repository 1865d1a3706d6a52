package core

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

type stubEngine struct {
	decision Decision
	lastSeen Email
}

func (s *stubEngine) ScoreIntents(subject, body string) (IntentScores, IntentEvidence) {
	return s.decision.IntentScores, s.decision.IntentEvidence
}

func (s *stubEngine) ExtractFeatures(email Email) Features {
	return s.decision.Features
}

func (s *stubEngine) DecideAction(email Email) Decision {
	s.lastSeen = email
	return s.decision
}

type stubTrust struct {
	trusted bool
}

func (s *stubTrust) IsTrusted(sender string) bool { return s.trusted }

type upperSanitizer struct {
	lastMaxSize int
}

func (s *upperSanitizer) ProcessText(text string, maxSize int) string {
	s.lastMaxSize = maxSize
	return strings.ToUpper(text)
}

func TestTriageEmailSanitizesBodyOnly(t *testing.T) {
	engine := &stubEngine{decision: Decision{Action: ActionAutoReply}}
	sanitizer := &upperSanitizer{}
	service := NewTriageService(engine, &stubTrust{}, sanitizer, zap.NewNop(), 512)

	service.TriageEmail(&Email{Sender: "a@b.org", Subject: "hello", Body: "world"})

	if engine.lastSeen.Body != "WORLD" {
		t.Errorf("body not sanitized: got %q", engine.lastSeen.Body)
	}
	if engine.lastSeen.Subject != "hello" || engine.lastSeen.Sender != "a@b.org" {
		t.Errorf("sender and subject must pass through unchanged: %+v", engine.lastSeen)
	}
	if sanitizer.lastMaxSize != 512 {
		t.Errorf("max body size: got %d, want 512", sanitizer.lastMaxSize)
	}
}

func TestTriageEmailTrustedBypass(t *testing.T) {
	engine := &stubEngine{decision: Decision{
		Action:       ActionBlock,
		Risk:         42.5,
		IntentScores: IntentScores{"SECURITY": 40},
		Features:     Features{SenderDomain: "partner.com"},
	}}
	service := NewTriageService(engine, &stubTrust{trusted: true}, &upperSanitizer{}, zap.NewNop(), 0)

	decision := service.TriageEmail(&Email{Sender: "alice@partner.com", Body: "x"})

	if decision.Action != ActionAutoReply {
		t.Errorf("action: got %s, want %s", decision.Action, ActionAutoReply)
	}
	if decision.Risk != 0 {
		t.Errorf("risk: got %v, want 0", decision.Risk)
	}
	// Scores and features survive the override for auditing.
	if decision.IntentScores["SECURITY"] != 40 {
		t.Errorf("scores were dropped by the bypass: %+v", decision.IntentScores)
	}
	if decision.Features.SenderDomain != "partner.com" {
		t.Errorf("features were dropped by the bypass: %+v", decision.Features)
	}
}

func TestTriageEmailUntrustedKeepsDecision(t *testing.T) {
	engine := &stubEngine{decision: Decision{Action: ActionEscalateHuman, Risk: 11.4}}
	service := NewTriageService(engine, &stubTrust{}, &upperSanitizer{}, zap.NewNop(), 0)

	decision := service.TriageEmail(&Email{Sender: "x@gmail.com", Body: "x"})

	if decision.Action != ActionEscalateHuman || decision.Risk != 11.4 {
		t.Errorf("decision was altered: %+v", decision)
	}
}

package core

import (
	"go.uber.org/zap"
)

// TriageService is the application-level wrapper around the decision
// engine. It sanitizes incoming text, applies the trusted-domain bypass and
// logs every decision.
type TriageService struct {
	engine      TriageEngine
	trusted     TrustChecker
	sanitizer   TextSanitizer
	logger      *zap.Logger
	maxBodySize int
}

// NewTriageService creates a new triage service.
func NewTriageService(
	engine TriageEngine,
	trusted TrustChecker,
	sanitizer TextSanitizer,
	logger *zap.Logger,
	maxBodySize int,
) *TriageService {
	return &TriageService{
		engine:      engine,
		trusted:     trusted,
		sanitizer:   sanitizer,
		logger:      logger,
		maxBodySize: maxBodySize,
	}
}

// TriageEmail runs one decision. Mail from a trusted domain keeps its full
// score and feature report for auditability but is forced to AUTO_REPLY
// with zero risk.
func (s *TriageService) TriageEmail(email *Email) *Decision {
	sanitized := Email{
		Sender:  email.Sender,
		Subject: email.Subject,
		Body:    s.sanitizer.ProcessText(email.Body, s.maxBodySize),
	}

	decision := s.engine.DecideAction(sanitized)

	if s.trusted != nil && s.trusted.IsTrusted(email.Sender) {
		s.logger.Info("Sender domain is trusted, overriding action",
			zap.String("sender", email.Sender),
			zap.String("original_action", string(decision.Action)),
			zap.String("action", "trusted_bypass"))
		decision.Action = ActionAutoReply
		decision.Risk = 0
		return &decision
	}

	s.logger.Info("Triaged email",
		zap.String("sender_domain", decision.Features.SenderDomain),
		zap.String("decision", string(decision.Action)),
		zap.Float64("risk", decision.Risk))

	return &decision
}

package ports

import (
	"context"

	"github.com/mikey/email-triage/internal/core"
)

// EmailFilter defines the interface for email triage front-ends
type EmailFilter interface {
	// ProcessEmail triages a single email and renders the decision
	ProcessEmail(ctx context.Context, email *core.Email) (*core.Decision, error)

	// Run drives one triage session end to end
	Run(ctx context.Context) error
}

// Package trust implements the trusted-domain bypass check.
package trust

import (
	"strings"

	"go.uber.org/zap"

	"github.com/mikey/email-triage/internal/textextract"
)

// Checker reports whether a sender's domain is on the trusted list.
type Checker struct {
	domains []string
	logger  *zap.Logger
}

// NewChecker creates a new trust checker.
func NewChecker(domains []string, logger *zap.Logger) *Checker {
	normalized := make([]string, len(domains))
	for i, domain := range domains {
		normalized[i] = strings.ToLower(strings.TrimSpace(domain))
	}

	if len(normalized) > 0 && logger != nil {
		logger.Info("Initialized trusted-domain checker", zap.Strings("domains", normalized))
	}

	return &Checker{
		domains: normalized,
		logger:  logger,
	}
}

// IsTrusted checks if the sender's domain is in the trusted list. Senders
// without an address-like substring are never trusted.
func (c *Checker) IsTrusted(sender string) bool {
	if len(c.domains) == 0 {
		return false
	}

	domain := textextract.ExtractEmailDomain(sender)
	if domain == "" {
		return false
	}

	for _, trusted := range c.domains {
		if domain == trusted {
			if c.logger != nil {
				c.logger.Debug("Sender domain is trusted",
					zap.String("domain", domain),
					zap.String("sender", sender))
			}
			return true
		}
	}

	return false
}

// Package eml maps RFC 822 messages onto the triage input record.
package eml

import (
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-message/mail"

	"github.com/mikey/email-triage/internal/core"
)

// Parse reads a message and extracts sender, subject and the first
// text/plain body part. HTML-only messages fall back to the first text/html
// part so there is always something to analyze. A message with neither a
// From header nor any body text is rejected; there is nothing to triage.
func Parse(r io.Reader) (*core.Email, error) {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}

	email := &core.Email{
		Sender: mr.Header.Get("From"),
	}
	if subject, err := mr.Header.Subject(); err == nil {
		email.Subject = subject
	}

	var htmlBody string
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		switch h := p.Header.(type) {
		case *mail.InlineHeader:
			ct, _, _ := h.ContentType()
			body, _ := io.ReadAll(p.Body)

			if strings.HasPrefix(ct, "text/plain") && email.Body == "" {
				email.Body = string(body)
			} else if strings.HasPrefix(ct, "text/html") && htmlBody == "" {
				htmlBody = string(body)
			}
		}
	}

	if email.Body == "" {
		email.Body = htmlBody
	}

	if email.Sender == "" && email.Body == "" {
		return nil, fmt.Errorf("message has no sender and no body")
	}

	return email, nil
}

package filter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/mikey/email-triage/internal/adapters/eml"
	"github.com/mikey/email-triage/internal/core"
	"go.uber.org/zap"
)

// EmlFilter reads one RFC 822 message from a file (or stdin when no file is
// configured), triages it and prints a text or JSON report.
type EmlFilter struct {
	service    *core.TriageService
	logger     *zap.Logger
	categories []string
	inputFile  string
	jsonOutput bool
	out        io.Writer
}

// NewEmlFilter creates a new one-shot message filter.
func NewEmlFilter(
	service *core.TriageService,
	logger *zap.Logger,
	categories []string,
	inputFile string,
	jsonOutput bool,
	out io.Writer,
) (*EmlFilter, error) {
	return &EmlFilter{
		service:    service,
		logger:     logger,
		categories: categories,
		inputFile:  inputFile,
		jsonOutput: jsonOutput,
		out:        out,
	}, nil
}

// Run parses the configured message and triages it.
func (f *EmlFilter) Run(ctx context.Context) error {
	var reader io.Reader
	if f.inputFile != "" {
		file, err := os.Open(f.inputFile)
		if err != nil {
			return fmt.Errorf("failed to open input file: %w", err)
		}
		defer file.Close()
		reader = file
		f.logger.Info("Reading email from file", zap.String("file", f.inputFile))
	} else {
		reader = os.Stdin
		f.logger.Info("Reading email from stdin")
	}

	email, err := eml.Parse(bufio.NewReader(reader))
	if err != nil {
		return fmt.Errorf("failed to parse email: %w", err)
	}

	_, err = f.ProcessEmail(ctx, email)
	return err
}

// ProcessEmail triages an email and prints the report.
func (f *EmlFilter) ProcessEmail(ctx context.Context, email *core.Email) (*core.Decision, error) {
	f.logger.Debug("Processing email", zap.String("sender", email.Sender))

	decision := f.service.TriageEmail(email)

	if f.jsonOutput {
		if err := RenderDecisionJSON(f.out, decision); err != nil {
			return nil, fmt.Errorf("failed to encode decision: %w", err)
		}
		return decision, nil
	}

	fmt.Fprintf(f.out, "\n=== Email Summary ===\n")
	fmt.Fprintf(f.out, "From: %s\n", email.Sender)
	fmt.Fprintf(f.out, "Subject: %s\n", email.Subject)
	// Characters, not bytes, matching the length feature in the report.
	fmt.Fprintf(f.out, "Body length: %d characters\n", utf8.RuneCountInString(email.Body))

	RenderDecision(f.out, decision, f.categories)

	return decision, nil
}

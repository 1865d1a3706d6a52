package filter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mikey/email-triage/internal/core"
	"go.uber.org/zap"
)

// ConsoleFilter implements an interactive terminal front-end: it prompts
// for sender, subject and body, triages the email and prints the report.
type ConsoleFilter struct {
	service    *core.TriageService
	logger     *zap.Logger
	categories []string
	in         *bufio.Scanner
	out        io.Writer
}

// NewConsoleFilter creates a new console filter reading from in and
// writing to out.
func NewConsoleFilter(
	service *core.TriageService,
	logger *zap.Logger,
	categories []string,
	in io.Reader,
	out io.Writer,
) (*ConsoleFilter, error) {
	return &ConsoleFilter{
		service:    service,
		logger:     logger,
		categories: categories,
		in:         bufio.NewScanner(in),
		out:        out,
	}, nil
}

// Run prompts for one email and triages it.
func (f *ConsoleFilter) Run(ctx context.Context) error {
	fmt.Fprintf(f.out, "\n=== Email Triage ===\n\n")

	sender, err := f.readLine("Sender (e.g., john@company.com): ")
	if err != nil {
		return err
	}
	subject, err := f.readLine("Subject: ")
	if err != nil {
		return err
	}
	body, err := f.readMultiline("Paste email body (finish with an empty line):")
	if err != nil {
		return err
	}

	email := &core.Email{
		Sender:  strings.TrimSpace(sender),
		Subject: strings.TrimSpace(subject),
		Body:    body,
	}

	_, err = f.ProcessEmail(ctx, email)
	return err
}

// ProcessEmail triages an email and prints the report.
func (f *ConsoleFilter) ProcessEmail(ctx context.Context, email *core.Email) (*core.Decision, error) {
	f.logger.Debug("Processing email", zap.String("sender", email.Sender))

	decision := f.service.TriageEmail(email)
	RenderDecision(f.out, decision, f.categories)

	return decision, nil
}

// readLine prints a prompt and reads a single line.
func (f *ConsoleFilter) readLine(prompt string) (string, error) {
	fmt.Fprint(f.out, prompt)
	if !f.in.Scan() {
		if err := f.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.ErrUnexpectedEOF
	}
	return f.in.Text(), nil
}

// readMultiline reads lines until an empty line or EOF.
func (f *ConsoleFilter) readMultiline(prompt string) (string, error) {
	fmt.Fprintln(f.out, prompt)
	var lines []string
	for f.in.Scan() {
		line := f.in.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := f.in.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.Join(lines, "\n"), nil
}

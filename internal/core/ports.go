package core

// TriageEngine defines the scoring-and-decision surface the service drives.
type TriageEngine interface {
	// ScoreIntents produces per-category scores and matched-term evidence
	ScoreIntents(subject, body string) (IntentScores, IntentEvidence)

	// ExtractFeatures derives the feature bundle for an email
	ExtractFeatures(email Email) Features

	// DecideAction triages one email end to end
	DecideAction(email Email) Decision
}

// TrustChecker reports whether a sender is on the trusted-domain list.
type TrustChecker interface {
	IsTrusted(sender string) bool
}

// TextSanitizer prepares raw body text before analysis.
type TextSanitizer interface {
	// ProcessText truncates text to maxSize bytes (0 means unlimited) and
	// strips invalid UTF-8
	ProcessText(text string, maxSize int) string
}

// Package textextract provides stateless pattern extractors that turn raw
// email text into structured signals. All patterns are compiled once at
// package init; every function is a pure text-in/strings-out operation that
// never fails.
package textextract

import (
	"regexp"
	"sort"
	"strings"
)

var (
	// An "@" followed by a dot-separated host with a top-level label of at
	// least two letters.
	domainRegex = regexp.MustCompile(`@([A-Za-z0-9.-]+\.[A-Za-z]{2,})`)

	// Currency-symbol-prefixed numbers, bare numbers followed by magnitude
	// words, and numbers with trailing currency symbols. The patterns are
	// independent and may overlap; distinct matched strings are all kept.
	moneyRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)€\s?\d[\d.,]*\b`),
		regexp.MustCompile(`(?i)\$\s?\d[\d.,]*\b`),
		regexp.MustCompile(`(?i)\b\d[\d.,]*\s?(?:m|million|millones|b|billion|mil)\b`),
		regexp.MustCompile(`(?i)\b\d{2,}\s?€\b`),
		regexp.MustCompile(`(?i)\b\d{2,}\s?\$\b`),
	}

	urlRegex = regexp.MustCompile(`(?i)https?://\S+|www\.\S+`)

	// At least 9 characters of digits, spaces, parentheses, dots and
	// hyphens, optionally preceded by "+", starting and ending with a
	// digit. Intentionally permissive: dates and reference numbers are a
	// known false-positive source, absorbed by the decision thresholds.
	phoneRegex = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)
)

// ExtractEmailDomain returns the lower-cased domain of the first
// address-like substring in sender, or "" when none is found.
func ExtractEmailDomain(sender string) string {
	m := domainRegex.FindStringSubmatch(sender)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}

// ContainsAny reports whether any of the terms occurs in text,
// case-insensitively, as a substring.
func ContainsAny(text string, terms []string) bool {
	t := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(t, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// CountAny returns how many distinct terms occur in text,
// case-insensitively, as substrings.
func CountAny(text string, terms []string) int {
	t := strings.ToLower(text)
	count := 0
	for _, term := range terms {
		if strings.Contains(t, strings.ToLower(term)) {
			count++
		}
	}
	return count
}

// FindMoney returns the deduplicated money mentions in text, sorted
// ascending. Blank matches are discarded.
func FindMoney(text string) []string {
	var found []string
	for _, re := range moneyRegexes {
		found = append(found, re.FindAllString(text, -1)...)
	}
	return dedupe(found, true)
}

// FindURLs returns the deduplicated http(s) and www URLs in text, sorted
// ascending. A URL extends to the next whitespace.
func FindURLs(text string) []string {
	return dedupe(urlRegex.FindAllString(text, -1), false)
}

// FindPhones returns the deduplicated phone-like sequences in text, sorted
// ascending.
func FindPhones(text string) []string {
	return dedupe(phoneRegex.FindAllString(text, -1), false)
}

// dedupe returns the distinct entries of matches sorted ascending,
// optionally dropping blank strings. The result is never nil.
func dedupe(matches []string, skipBlank bool) []string {
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if skipBlank && strings.TrimSpace(m) == "" {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

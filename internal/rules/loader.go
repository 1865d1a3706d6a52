package rules

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML dictionary file and validates it. The file replaces
// the built-in dictionary wholesale; partial overrides are not supported.
func LoadFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}

	var dict Dictionary
	if err := yaml.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary file %s: %w", path, err)
	}

	if err := Validate(&dict); err != nil {
		return nil, fmt.Errorf("invalid dictionary file %s: %w", path, err)
	}

	return &dict, nil
}

// Validate checks a dictionary for required lists and safe values.
func Validate(d *Dictionary) error {
	if d == nil {
		return fmt.Errorf("dictionary is nil")
	}

	if len(d.Intents) == 0 {
		return fmt.Errorf("at least one intent rule must be defined")
	}

	seen := make(map[string]struct{}, len(d.Intents))
	for _, rule := range d.Intents {
		name := strings.TrimSpace(rule.Category)
		if name == "" {
			return fmt.Errorf("intent rule with empty category")
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate intent category %q", name)
		}
		seen[name] = struct{}{}

		if rule.Weight < 1 {
			return fmt.Errorf("intent %q has weight %d, must be >= 1", name, rule.Weight)
		}
		if len(rule.Terms) == 0 {
			return fmt.Errorf("intent %q has no terms", name)
		}
		for _, term := range rule.Terms {
			if strings.TrimSpace(term) == "" {
				return fmt.Errorf("intent %q contains an empty term", name)
			}
		}
	}

	if len(d.RoleTerms) == 0 {
		return fmt.Errorf("role_terms must not be empty")
	}
	if len(d.UrgencyTerms) == 0 {
		return fmt.Errorf("urgency_terms must not be empty")
	}
	if len(d.StrongSecurityTerms) == 0 {
		return fmt.Errorf("strong_security_terms must not be empty")
	}
	if len(d.FreeDomains) == 0 {
		return fmt.Errorf("free_domains must not be empty")
	}

	return nil
}

package rules

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultDictionaryIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("built-in dictionary failed validation: %v", err)
	}
}

func TestCategoriesOrder(t *testing.T) {
	want := []string{CategoryMAndA, CategoryLegal, CategorySecurity, CategorySales, CategorySupport}
	if got := Default().Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIsFreeDomain(t *testing.T) {
	dict := Default()

	if !dict.IsFreeDomain("gmail.com") {
		t.Errorf("gmail.com should be a free domain")
	}
	if dict.IsFreeDomain("bigcorp.com") {
		t.Errorf("bigcorp.com should not be a free domain")
	}
	// Callers pass lower-cased domains; matching is exact.
	if dict.IsFreeDomain("GMAIL.COM") {
		t.Errorf("matching must be exact, not case-folded")
	}
}

func TestStrongTermsAreSecurityTerms(t *testing.T) {
	dict := Default()

	var security []string
	for _, rule := range dict.Intents {
		if rule.Category == CategorySecurity {
			security = rule.Terms
		}
	}

	for _, strong := range dict.StrongSecurityTerms {
		found := false
		for _, term := range security {
			if term == strong {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("strong term %q is not in the SECURITY term list", strong)
		}
	}
}

const validDictYAML = `intents:
  - category: PHISHING
    weight: 5
    terms: ["verify your account", "suspended"]
  - category: BILLING
    weight: 2
    terms: ["invoice", "payment due"]
role_terms: ["ceo", "cfo"]
urgency_terms: ["urgent"]
strong_security_terms: ["verify your account"]
free_domains: ["gmail.com"]
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.yaml")
	if err := os.WriteFile(path, []byte(validDictYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	dict, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if want := []string{"PHISHING", "BILLING"}; !reflect.DeepEqual(dict.Categories(), want) {
		t.Errorf("categories: got %v, want %v", dict.Categories(), want)
	}
	if dict.Intents[0].Weight != 5 {
		t.Errorf("weight: got %d, want 5", dict.Intents[0].Weight)
	}
	if !dict.IsFreeDomain("gmail.com") {
		t.Errorf("free_domains not loaded")
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "not yaml",
			yaml:    "intents: [:::",
			wantErr: "failed to parse",
		},
		{
			name:    "no intents",
			yaml:    "role_terms: [ceo]\nurgency_terms: [urgent]\nstrong_security_terms: [breach]\nfree_domains: [gmail.com]\n",
			wantErr: "at least one intent",
		},
		{
			name: "duplicate category",
			yaml: "intents:\n" +
				"  - {category: A, weight: 1, terms: [x]}\n" +
				"  - {category: A, weight: 2, terms: [y]}\n" +
				"role_terms: [ceo]\nurgency_terms: [urgent]\nstrong_security_terms: [breach]\nfree_domains: [gmail.com]\n",
			wantErr: "duplicate intent category",
		},
		{
			name: "zero weight",
			yaml: "intents:\n" +
				"  - {category: A, weight: 0, terms: [x]}\n" +
				"role_terms: [ceo]\nurgency_terms: [urgent]\nstrong_security_terms: [breach]\nfree_domains: [gmail.com]\n",
			wantErr: "must be >= 1",
		},
		{
			name: "missing role terms",
			yaml: "intents:\n" +
				"  - {category: A, weight: 1, terms: [x]}\n" +
				"urgency_terms: [urgent]\nstrong_security_terms: [breach]\nfree_domains: [gmail.com]\n",
			wantErr: "role_terms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "dict.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

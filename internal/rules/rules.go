package rules

// Intent category names, in dictionary declaration order.
const (
	CategoryMAndA    = "M_AND_A"
	CategoryLegal    = "LEGAL"
	CategorySecurity = "SECURITY"
	CategorySales    = "SALES"
	CategorySupport  = "SUPPORT"
)

// IntentRule binds one intent category to its weighted term list.
// Term matching is case-insensitive substring containment, so a term may
// match inside a larger word.
type IntentRule struct {
	Category string   `yaml:"category"`
	Weight   int      `yaml:"weight"`
	Terms    []string `yaml:"terms"`
}

// Dictionary holds every term list the triage engine matches against.
// A Dictionary is built once at startup and never mutated afterwards, which
// keeps the scorer and feature extractor trivially reentrant.
type Dictionary struct {
	// Intents are evaluated in declaration order.
	Intents []IntentRule `yaml:"intents"`

	RoleTerms    []string `yaml:"role_terms"`
	UrgencyTerms []string `yaml:"urgency_terms"`

	// StrongSecurityTerms is the hand-picked subset of security terms
	// unambiguous enough to override the support-suppression rule. Its
	// membership is load-bearing and deliberately not derived from the
	// SECURITY term list.
	StrongSecurityTerms []string `yaml:"strong_security_terms"`

	// FreeDomains are well-known public webmail domains.
	FreeDomains []string `yaml:"free_domains"`
}

var securityTerms = []string{
	"password", "reset", "2fa", "authentication", "login", "breach", "hack", "phishing",
	"contraseña", "acceso", "intrusión", "hackeo", "suplantación", "phishing",
	"wire transfer", "bank details", "change payment", "invoice change",
	"transferencia", "cambiar pago", "cambio de cuenta", "datos bancarios",
}

// Default returns the built-in English/Spanish term dictionary.
func Default() *Dictionary {
	return &Dictionary{
		Intents: []IntentRule{
			{
				Category: CategoryMAndA,
				Weight:   5,
				Terms: []string{
					"acquire", "acquisition", "buy your company", "purchase your company", "merger", "m&a",
					"investment proposal", "valuation", "term sheet", "due diligence", "equity", "stake",
					"adquirir", "compra de la empresa", "comprar la compañía", "fusión", "adquisición",
					"oferta de compra", "valoración", "participación", "inversión",
				},
			},
			{
				Category: CategoryLegal,
				Weight:   4,
				Terms: []string{
					"contract", "agreement", "nda", "gdpr", "compliance", "lawsuit", "legal notice",
					"contrato", "acuerdo", "nda", "rgpd", "cumplimiento", "demanda", "notificación legal",
				},
			},
			{
				Category: CategorySecurity,
				Weight:   5,
				Terms:    securityTerms,
			},
			{
				Category: CategorySales,
				Weight:   2,
				Terms: []string{
					"pricing", "quote", "proposal", "demo", "partnership", "reseller",
					"precio", "presupuesto", "propuesta", "demostración", "colaboración",
				},
			},
			{
				Category: CategorySupport,
				Weight:   1,
				Terms: []string{
					"help", "issue", "bug", "problem", "doesn't work", "error",
					"ayuda", "incidencia", "fallo", "no funciona", "problema",
				},
			},
		},
		RoleTerms: []string{
			"ceo", "cfo", "coo", "cto", "chairman", "board", "director", "vp", "vice president",
			"general counsel", "legal counsel", "head of", "founder", "owner", "president",
			"dirección", "director", "consejo", "presidente", "propietario", "fundador", "asesoría jurídica",
		},
		UrgencyTerms: []string{
			"urgent", "asap", "immediately", "today", "right away", "time-sensitive", "confidential",
			"urgente", "inmediato", "hoy", "confidencial", "reservado",
		},
		StrongSecurityTerms: []string{
			"breach", "hack", "phishing", "wire transfer", "bank details", "datos bancarios", "transferencia",
		},
		FreeDomains: []string{
			"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "live.com", "icloud.com", "proton.me", "protonmail.com",
		},
	}
}

// Categories returns the intent category names in declaration order.
func (d *Dictionary) Categories() []string {
	names := make([]string, len(d.Intents))
	for i, rule := range d.Intents {
		names[i] = rule.Category
	}
	return names
}

// IsFreeDomain reports whether the given lower-cased domain is a known
// public webmail domain.
func (d *Dictionary) IsFreeDomain(domain string) bool {
	for _, free := range d.FreeDomains {
		if domain == free {
			return true
		}
	}
	return false
}

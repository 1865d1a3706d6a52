package core

// Action is the recommended handling for a triaged email.
type Action string

const (
	ActionAutoReply     Action = "AUTO_REPLY"
	ActionEscalateHuman Action = "ESCALATE_HUMAN"
	ActionBlock         Action = "BLOCK"
)

// Email represents an inbound email message. Sender is a free-form string
// that usually, but not necessarily, contains an email address.
type Email struct {
	Sender  string
	Subject string
	Body    string
}

// IntentScores maps every intent category to its integer score. All
// categories declared in the dictionary are present, defaulting to 0.
type IntentScores map[string]int

// IntentEvidence maps every intent category to the distinct terms that
// matched, sorted ascending. Categories with no match carry an empty slice.
type IntentEvidence map[string][]string

// Features is the bundle of sender and content signals extracted from one
// email. Money/URL/phone slices are deduplicated and sorted.
type Features struct {
	SenderDomain       string   `json:"sender_domain"`
	SenderIsFreeDomain bool     `json:"sender_is_free_domain"`
	MentionsRoles      bool     `json:"mentions_roles"`
	RoleHits           int      `json:"role_hits"`
	MentionsUrgency    bool     `json:"mentions_urgency"`
	UrgencyHits        int      `json:"urgency_hits"`
	MoneyMentions      []string `json:"money_mentions"`
	URLs               []string `json:"urls"`
	Phones             []string `json:"phones"`
	Length             int      `json:"length"`
	Language           string   `json:"language,omitempty"`
}

// Decision is the result of triaging one email.
type Decision struct {
	Action         Action         `json:"action"`
	Risk           float64        `json:"risk"`
	IntentScores   IntentScores   `json:"intent_scores"`
	IntentEvidence IntentEvidence `json:"intent_evidence"`
	Features       Features       `json:"features"`
}

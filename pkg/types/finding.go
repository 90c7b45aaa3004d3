package types

// Finding severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Object type tags for findings.
const (
	ObjectPerson = "Person"
	ObjectFamily = "Family"
)

// Finding is one reported anomaly produced by a single rule against a
// single subject. RuleID is the rule's stable identity: its type code plus
// its constructor parameters, so a threshold change yields a different
// identity and naturally invalidates acknowledgments tied to the old one.
type Finding struct {
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	GrampsID   string `json:"gramps_id"`
	Name       string `json:"name"`
	ObjectType string `json:"object_type"`
	RuleID     string `json:"rule_id"`
	Handle     Handle `json:"handle"`
}

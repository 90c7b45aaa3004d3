package types

// Gender values for a person.
const (
	GenderMale    = "male"
	GenderFemale  = "female"
	GenderUnknown = "unknown"
)

// Event reference roles. RolePrimary marks an event as belonging to the
// person or family itself; other roles (witness, clergy, custom) attach the
// record to someone else's event and are skipped by typed date lookups.
const (
	RolePrimary = "primary"
	RoleWitness = "witness"
	RoleCustom  = "custom"
)

// Name is one name borne by a person. Surname comparisons between spouses
// use the primary name only.
type Name struct {
	Given   string `json:"given,omitempty"`
	Surname string `json:"surname,omitempty"`
}

// Display returns "Surname, Given" with either part omitted when empty.
func (n Name) Display() string {
	switch {
	case n.Surname == "":
		return n.Given
	case n.Given == "":
		return n.Surname
	default:
		return n.Surname + ", " + n.Given
	}
}

// EventRef attaches an event to a person or family, tagged with the role
// the subject plays in the event.
type EventRef struct {
	Role  string `json:"role"`
	Event Handle `json:"event"`
}

// Person is one individual. Relationships are handle-based references:
// parent and spousal families refer to Family records, event references
// refer to Event records. Dangling references are treated as missing by
// all derivation code, never as an error.
type Person struct {
	Handle         Handle     `json:"handle"`
	GrampsID       string     `json:"gramps_id"`
	Gender         string     `json:"gender"`
	Name           Name       `json:"name"`
	AlternateNames []Name     `json:"alternate_names,omitempty"`
	EventRefs      []EventRef `json:"event_refs,omitempty"`
	// Distinguished references to the person's own birth and death events.
	BirthRef *EventRef `json:"birth_ref,omitempty"`
	DeathRef *EventRef `json:"death_ref,omitempty"`
	// A person can carry more than one parent family; that is itself a
	// checkable anomaly, not a modeling error.
	ParentFamilies []Handle `json:"parent_families,omitempty"`
	SpouseFamilies []Handle `json:"spouse_families,omitempty"`
}

// DisplayName returns the primary name rendered for reports.
func (p *Person) DisplayName() string {
	return p.Name.Display()
}

package types

// Event types. Custom types are carried verbatim in Event.Type; the
// constants below are the ones the verification rules care about.
const (
	EventBirth       = "birth"
	EventDeath       = "death"
	EventBaptism     = "baptism"
	EventChristening = "christening"
	EventBurial      = "burial"
	EventCremation   = "cremation"
	EventMarriage    = "marriage"
	EventDivorce     = "divorce"
	EventResidence   = "residence"
	EventOccupation  = "occupation"
	EventCustom      = "custom"
)

// Event is a dated occurrence referenced by persons and families.
type Event struct {
	Handle      Handle `json:"handle"`
	GrampsID    string `json:"gramps_id"`
	Type        string `json:"event_type"`
	Date        Date   `json:"date"`
	Place       string `json:"place,omitempty"`
	Description string `json:"description,omitempty"`
}

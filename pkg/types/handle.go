package types

import "github.com/google/uuid"

// Handle is the opaque, stable identifier of a record. It is assigned once
// at creation, never reused, and never mutated; all cross-references between
// records are handle-based.
//
// The gramps ID (e.g. "I0001") is a separate, human-facing identifier kept
// on each record. It may be reformatted or reassigned on merge without
// affecting reference integrity.
type Handle string

// NewHandle generates a fresh Handle as a UUID v7 string.
func NewHandle() Handle {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails.
		return Handle(uuid.New().String())
	}
	return Handle(id.String())
}

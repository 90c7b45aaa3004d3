package types

import "errors"

// Repository is the read surface the verification engine depends on,
// independent of storage. Lookups for a nonexistent handle return
// ErrNotFound; they never panic and never mutate state. Any other error is
// a storage-layer defect and is propagated as fatal by callers.
//
// The repository is read-only for the duration of a verification pass, so
// concurrent read calls are safe.
type Repository interface {
	// Person returns the person with the given handle, or ErrNotFound.
	Person(handle Handle) (*Person, error)

	// Family returns the family with the given handle, or ErrNotFound.
	Family(handle Handle) (*Family, error)

	// Event returns the event with the given handle, or ErrNotFound.
	Event(handle Handle) (*Event, error)

	// PersonHandles returns every person handle in a deterministic order
	// chosen by the implementation (e.g. insertion order, gramps ID order).
	PersonHandles() ([]Handle, error)

	// FamilyHandles returns every family handle, same ordering contract.
	FamilyHandles() ([]Handle, error)

	// NumPeople and NumFamilies report record counts. They exist for
	// progress reporting only; no behavior depends on them.
	NumPeople() (int, error)
	NumFamilies() (int, error)
}

// Repository and record errors.
var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidHandle = errors.New("invalid record handle")
	ErrInvalidData   = errors.New("invalid record data")
	ErrStoreDetached = errors.New("store is detached")
	ErrAlreadyOpen   = errors.New("store is already attached")
)

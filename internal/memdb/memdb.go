// Package memdb implements the Repository contract in memory. Iteration
// follows insertion order, which keeps verification passes deterministic
// without any storage engine underneath. It backs the unit tests of the
// fact derivation and rule packages and is usable by embedders that build
// a record set programmatically.
package memdb

import (
	"sync"

	"github.com/ancestral-tools/lineage/pkg/types"
)

// Store is an in-memory Repository. Writes and reads are safe for
// concurrent use; during a verification pass the store is read-only by
// convention, matching the Repository contract.
type Store struct {
	mu          sync.RWMutex
	people      map[types.Handle]*types.Person
	families    map[types.Handle]*types.Family
	events      map[types.Handle]*types.Event
	personOrder []types.Handle
	familyOrder []types.Handle
}

var _ types.Repository = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		people:   make(map[types.Handle]*types.Person),
		families: make(map[types.Handle]*types.Family),
		events:   make(map[types.Handle]*types.Event),
	}
}

// AddPerson inserts or replaces a person. An empty handle gets a fresh one.
// Returns the handle used.
func (s *Store) AddPerson(p *types.Person) types.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Handle == "" {
		p.Handle = types.NewHandle()
	}
	if _, exists := s.people[p.Handle]; !exists {
		s.personOrder = append(s.personOrder, p.Handle)
	}
	s.people[p.Handle] = p
	return p.Handle
}

// AddFamily inserts or replaces a family. An empty handle gets a fresh one.
func (s *Store) AddFamily(f *types.Family) types.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.Handle == "" {
		f.Handle = types.NewHandle()
	}
	if _, exists := s.families[f.Handle]; !exists {
		s.familyOrder = append(s.familyOrder, f.Handle)
	}
	s.families[f.Handle] = f
	return f.Handle
}

// AddEvent inserts or replaces an event. An empty handle gets a fresh one.
func (s *Store) AddEvent(e *types.Event) types.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.Handle == "" {
		e.Handle = types.NewHandle()
	}
	s.events[e.Handle] = e
	return e.Handle
}

// Person returns the person with the given handle, or ErrNotFound.
func (s *Store) Person(handle types.Handle) (*types.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.people[handle]
	if !ok {
		return nil, types.ErrNotFound
	}
	return p, nil
}

// Family returns the family with the given handle, or ErrNotFound.
func (s *Store) Family(handle types.Handle) (*types.Family, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.families[handle]
	if !ok {
		return nil, types.ErrNotFound
	}
	return f, nil
}

// Event returns the event with the given handle, or ErrNotFound.
func (s *Store) Event(handle types.Handle) (*types.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[handle]
	if !ok {
		return nil, types.ErrNotFound
	}
	return e, nil
}

// PersonHandles returns person handles in insertion order.
func (s *Store) PersonHandles() ([]types.Handle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Handle, len(s.personOrder))
	copy(out, s.personOrder)
	return out, nil
}

// FamilyHandles returns family handles in insertion order.
func (s *Store) FamilyHandles() ([]types.Handle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Handle, len(s.familyOrder))
	copy(out, s.familyOrder)
	return out, nil
}

// NumPeople returns the number of person records.
func (s *Store) NumPeople() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.people), nil
}

// NumFamilies returns the number of family records.
func (s *Store) NumFamilies() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.families), nil
}

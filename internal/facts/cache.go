// Package facts derives verification-relevant facts (birth and death dates,
// ages, marriage dates, child counts) from the record repository, resolving
// handle indirections along the way. Every function degrades to a zero
// value when a reference does not resolve; only repository defects surface
// as errors. See docs/ARCHITECTURE.md § Fact Derivation.
package facts

import (
	"errors"

	"github.com/ancestral-tools/lineage/pkg/types"
)

// Cache memoizes repository lookups for the duration of one verification
// subject. Missing records are memoized too, as nil entries, so a dangling
// reference costs one repository call at most. A Cache must not be shared
// across subjects or goroutines; call Reset between subjects to bound its
// size to the records one subject's rule set touches.
type Cache struct {
	repo     types.Repository
	people   map[types.Handle]*types.Person
	families map[types.Handle]*types.Family
	events   map[types.Handle]*types.Event
}

// NewCache creates a cache over the given repository.
func NewCache(repo types.Repository) *Cache {
	c := &Cache{repo: repo}
	c.Reset()
	return c
}

// Reset discards all memoized lookups.
func (c *Cache) Reset() {
	c.people = make(map[types.Handle]*types.Person)
	c.families = make(map[types.Handle]*types.Family)
	c.events = make(map[types.Handle]*types.Event)
}

// Person resolves a person handle. A missing or empty handle yields
// (nil, nil); a repository defect yields the error unchanged.
func (c *Cache) Person(handle types.Handle) (*types.Person, error) {
	if handle == "" {
		return nil, nil
	}
	if p, ok := c.people[handle]; ok {
		return p, nil
	}
	p, err := c.repo.Person(handle)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			c.people[handle] = nil
			return nil, nil
		}
		return nil, err
	}
	c.people[handle] = p
	return p, nil
}

// Family resolves a family handle with the same absent/defect semantics
// as Person.
func (c *Cache) Family(handle types.Handle) (*types.Family, error) {
	if handle == "" {
		return nil, nil
	}
	if f, ok := c.families[handle]; ok {
		return f, nil
	}
	f, err := c.repo.Family(handle)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			c.families[handle] = nil
			return nil, nil
		}
		return nil, err
	}
	c.families[handle] = f
	return f, nil
}

// Event resolves an event handle with the same absent/defect semantics
// as Person.
func (c *Cache) Event(handle types.Handle) (*types.Event, error) {
	if handle == "" {
		return nil, nil
	}
	if e, ok := c.events[handle]; ok {
		return e, nil
	}
	e, err := c.repo.Event(handle)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			c.events[handle] = nil
			return nil, nil
		}
		return nil, err
	}
	c.events[handle] = e
	return e, nil
}

package facts

import (
	"sort"

	"github.com/ancestral-tools/lineage/pkg/types"
)

// YearsFromDays converts a day count in sort-value units to whole years
// using truncating division by 365. Exactly N*365 days is N years, so an
// age threshold of N is not exceeded at the boundary.
func YearsFromDays(days int) int {
	return days / 365
}

// EventDate returns the sort value of the event with the given handle, or
// 0 when the handle is empty, dangling, or the event has no resolvable
// date.
func EventDate(c *Cache, handle types.Handle) (int, error) {
	ev, err := c.Event(handle)
	if err != nil {
		return 0, err
	}
	if ev == nil {
		return 0, nil
	}
	return ev.Date.SortValue(), nil
}

// TypedEventDate scans a person's primary-role event references and
// returns the date of the first event matching any of the given types,
// or 0 when none is found.
func TypedEventDate(c *Cache, p *types.Person, eventTypes ...string) (int, error) {
	for _, ref := range p.EventRefs {
		if ref.Role != types.RolePrimary {
			continue
		}
		ev, err := c.Event(ref.Event)
		if err != nil {
			return 0, err
		}
		if ev == nil {
			continue
		}
		for _, et := range eventTypes {
			if ev.Type == et {
				return ev.Date.SortValue(), nil
			}
		}
	}
	return 0, nil
}

// BirthDate returns the person's birth date in sort-value units. The
// distinguished birth reference wins; when it is absent or undated and
// estimate is true, the first baptism or christening date substitutes.
// Without estimation the result is never affected by baptism events.
func BirthDate(c *Cache, p *types.Person, estimate bool) (int, error) {
	var birth int
	if p.BirthRef != nil {
		d, err := EventDate(c, p.BirthRef.Event)
		if err != nil {
			return 0, err
		}
		birth = d
	}
	if birth == 0 && estimate {
		return TypedEventDate(c, p, types.EventBaptism, types.EventChristening)
	}
	return birth, nil
}

// DeathDate is the symmetric counterpart of BirthDate, substituting the
// first burial or cremation date when estimating.
func DeathDate(c *Cache, p *types.Person, estimate bool) (int, error) {
	var death int
	if p.DeathRef != nil {
		d, err := EventDate(c, p.DeathRef.Event)
		if err != nil {
			return 0, err
		}
		death = d
	}
	if death == 0 && estimate {
		return TypedEventDate(c, p, types.EventBurial, types.EventCremation)
	}
	return death, nil
}

// AgeAtDeath returns death minus birth in sort-value (day) units, or 0
// when either endpoint is unresolved. The guard keeps partial data from
// producing negative or nonsensical ages.
func AgeAtDeath(c *Cache, p *types.Person, estimate bool) (int, error) {
	birth, err := BirthDate(c, p, estimate)
	if err != nil {
		return 0, err
	}
	death, err := DeathDate(c, p, estimate)
	if err != nil {
		return 0, err
	}
	if birth == 0 || death == 0 {
		return 0, nil
	}
	return death - birth, nil
}

// MarriageDate returns the date of the family's first marriage event, or 0
// when the family has none.
func MarriageDate(c *Cache, f *types.Family) (int, error) {
	for _, ref := range f.EventRefs {
		if ref.Role != types.RolePrimary {
			continue
		}
		ev, err := c.Event(ref.Event)
		if err != nil {
			return 0, err
		}
		if ev != nil && ev.Type == types.EventMarriage {
			return ev.Date.SortValue(), nil
		}
	}
	return 0, nil
}

// ChildrenBirthDates returns the resolved birth dates of a family's
// children in ascending order. Unresolved dates are excluded entirely; a
// zero in the list would corrupt span and gap computations.
func ChildrenBirthDates(c *Cache, f *types.Family, estimate bool) ([]int, error) {
	var dates []int
	for _, ref := range f.ChildRefs {
		child, err := c.Person(ref.Child)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		d, err := BirthDate(c, child, estimate)
		if err != nil {
			return nil, err
		}
		if d > 0 {
			dates = append(dates, d)
		}
	}
	sort.Ints(dates)
	return dates, nil
}

// ChildCount sums child-reference counts across all of the person's
// spousal families. Dangling family handles contribute nothing.
func ChildCount(c *Cache, p *types.Person) (int, error) {
	count := 0
	for _, fh := range p.SpouseFamilies {
		fam, err := c.Family(fh)
		if err != nil {
			return 0, err
		}
		if fam != nil {
			count += len(fam.ChildRefs)
		}
	}
	return count, nil
}

// Father resolves a family's father handle, nil when unset or dangling.
func Father(c *Cache, f *types.Family) (*types.Person, error) {
	return c.Person(f.Father)
}

// Mother resolves a family's mother handle, nil when unset or dangling.
func Mother(c *Cache, f *types.Family) (*types.Person, error) {
	return c.Person(f.Mother)
}

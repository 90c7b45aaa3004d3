package facts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ancestral-tools/lineage/internal/memdb"
	"github.com/ancestral-tools/lineage/pkg/types"
)

// addEvent stores an event of the given type dated to the given year and
// returns its handle.
func addEvent(s *memdb.Store, eventType string, year int) types.Handle {
	return s.AddEvent(&types.Event{
		Type: eventType,
		Date: types.Date{Year: year, Month: 1, Day: 1},
	})
}

func day(year int) int {
	return types.Date{Year: year, Month: 1, Day: 1}.SortValue()
}

func TestEventDate(t *testing.T) {
	s := memdb.New()
	c := NewCache(s)

	dated := addEvent(s, types.EventBirth, 1900)
	undated := s.AddEvent(&types.Event{Type: types.EventBirth})

	got, err := EventDate(c, dated)
	require.NoError(t, err)
	assert.Equal(t, day(1900), got)

	got, err = EventDate(c, undated)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = EventDate(c, "dangling")
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = EventDate(c, "")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestTypedEventDateSkipsNonPrimaryRoles(t *testing.T) {
	s := memdb.New()
	c := NewCache(s)

	witnessed := addEvent(s, types.EventBaptism, 1880)
	own := addEvent(s, types.EventBaptism, 1900)
	p := &types.Person{
		EventRefs: []types.EventRef{
			{Role: types.RoleWitness, Event: witnessed},
			{Role: types.RolePrimary, Event: own},
		},
	}

	got, err := TypedEventDate(c, p, types.EventBaptism)
	require.NoError(t, err)
	assert.Equal(t, day(1900), got)

	got, err = TypedEventDate(c, p, types.EventBurial)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestBirthDateEstimation(t *testing.T) {
	s := memdb.New()
	c := NewCache(s)

	bapt := addEvent(s, types.EventBaptism, 1902)
	withBaptOnly := &types.Person{
		EventRefs: []types.EventRef{{Role: types.RolePrimary, Event: bapt}},
	}

	// Without estimation the baptism event must not leak into the birth date.
	got, err := BirthDate(c, withBaptOnly, false)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = BirthDate(c, withBaptOnly, true)
	require.NoError(t, err)
	assert.Equal(t, day(1902), got)

	// A resolved birth reference wins over any baptism date.
	birth := addEvent(s, types.EventBirth, 1901)
	withBirth := &types.Person{
		BirthRef:  &types.EventRef{Role: types.RolePrimary, Event: birth},
		EventRefs: []types.EventRef{{Role: types.RolePrimary, Event: bapt}},
	}
	got, err = BirthDate(c, withBirth, true)
	require.NoError(t, err)
	assert.Equal(t, day(1901), got)

	// A dangling birth reference degrades to unknown, then estimates.
	withDangling := &types.Person{
		BirthRef:  &types.EventRef{Role: types.RolePrimary, Event: "gone"},
		EventRefs: []types.EventRef{{Role: types.RolePrimary, Event: bapt}},
	}
	got, err = BirthDate(c, withDangling, false)
	require.NoError(t, err)
	assert.Zero(t, got)
	got, err = BirthDate(c, withDangling, true)
	require.NoError(t, err)
	assert.Equal(t, day(1902), got)
}

func TestDeathDateEstimation(t *testing.T) {
	s := memdb.New()
	c := NewCache(s)

	burial := addEvent(s, types.EventBurial, 1970)
	p := &types.Person{
		EventRefs: []types.EventRef{{Role: types.RolePrimary, Event: burial}},
	}

	got, err := DeathDate(c, p, false)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = DeathDate(c, p, true)
	require.NoError(t, err)
	assert.Equal(t, day(1970), got)
}

func TestAgeAtDeath(t *testing.T) {
	s := memdb.New()
	c := NewCache(s)

	birth := addEvent(s, types.EventBirth, 1900)
	death := addEvent(s, types.EventDeath, 1970)

	full := &types.Person{
		BirthRef: &types.EventRef{Role: types.RolePrimary, Event: birth},
		DeathRef: &types.EventRef{Role: types.RolePrimary, Event: death},
	}
	got, err := AgeAtDeath(c, full, false)
	require.NoError(t, err)
	assert.Equal(t, day(1970)-day(1900), got)

	// Either endpoint unresolved yields zero, never a negative age.
	birthOnly := &types.Person{
		BirthRef: &types.EventRef{Role: types.RolePrimary, Event: birth},
	}
	got, err = AgeAtDeath(c, birthOnly, false)
	require.NoError(t, err)
	assert.Zero(t, got)

	deathOnly := &types.Person{
		DeathRef: &types.EventRef{Role: types.RolePrimary, Event: death},
	}
	got, err = AgeAtDeath(c, deathOnly, false)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestMarriageDate(t *testing.T) {
	s := memdb.New()
	c := NewCache(s)

	divorce := addEvent(s, types.EventDivorce, 1950)
	marriage := addEvent(s, types.EventMarriage, 1940)
	f := &types.Family{
		EventRefs: []types.EventRef{
			{Role: types.RolePrimary, Event: divorce},
			{Role: types.RolePrimary, Event: marriage},
		},
	}

	got, err := MarriageDate(c, f)
	require.NoError(t, err)
	assert.Equal(t, day(1940), got)

	got, err = MarriageDate(c, &types.Family{})
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestChildrenBirthDates(t *testing.T) {
	s := memdb.New()
	c := NewCache(s)

	mkChild := func(year int) types.Handle {
		birth := addEvent(s, types.EventBirth, year)
		return s.AddPerson(&types.Person{
			BirthRef: &types.EventRef{Role: types.RolePrimary, Event: birth},
		})
	}
	undated := s.AddPerson(&types.Person{})

	f := &types.Family{
		ChildRefs: []types.ChildRef{
			{Child: mkChild(1965)},
			{Child: mkChild(1960)},
			{Child: undated},
			{Child: "dangling"},
			{Child: mkChild(1980)},
		},
	}

	dates, err := ChildrenBirthDates(c, f, false)
	require.NoError(t, err)
	assert.Equal(t, []int{day(1960), day(1965), day(1980)}, dates)
}

func TestChildCount(t *testing.T) {
	s := memdb.New()
	c := NewCache(s)

	f1 := s.AddFamily(&types.Family{ChildRefs: []types.ChildRef{{Child: "a"}, {Child: "b"}}})
	f2 := s.AddFamily(&types.Family{ChildRefs: []types.ChildRef{{Child: "c"}}})

	p := &types.Person{SpouseFamilies: []types.Handle{f1, f2, "dangling"}}
	got, err := ChildCount(c, p)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestFatherMother(t *testing.T) {
	s := memdb.New()
	c := NewCache(s)

	fh := s.AddPerson(&types.Person{Gender: types.GenderMale})
	f := &types.Family{Father: fh, Mother: "dangling"}

	father, err := Father(c, f)
	require.NoError(t, err)
	require.NotNil(t, father)
	assert.Equal(t, types.GenderMale, father.Gender)

	mother, err := Mother(c, f)
	require.NoError(t, err)
	assert.Nil(t, mother)

	noParents, err := Father(c, &types.Family{})
	require.NoError(t, err)
	assert.Nil(t, noParents)
}

func TestCacheMemoizesAndResets(t *testing.T) {
	s := memdb.New()
	c := NewCache(s)

	h := s.AddPerson(&types.Person{GrampsID: "I0001"})
	p, err := c.Person(h)
	require.NoError(t, err)
	require.Equal(t, "I0001", p.GrampsID)

	// The cache holds the first resolution until Reset.
	s.AddPerson(&types.Person{Handle: h, GrampsID: "I9999"})
	p, err = c.Person(h)
	require.NoError(t, err)
	assert.Equal(t, "I0001", p.GrampsID)

	c.Reset()
	p, err = c.Person(h)
	require.NoError(t, err)
	assert.Equal(t, "I9999", p.GrampsID)
}

func TestYearsFromDaysTruncates(t *testing.T) {
	assert.Equal(t, 0, YearsFromDays(364))
	assert.Equal(t, 1, YearsFromDays(365))
	assert.Equal(t, 1, YearsFromDays(729))
	assert.Equal(t, 90, YearsFromDays(90*365))
}

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ancestral-tools/lineage/internal/facts"
	"github.com/ancestral-tools/lineage/internal/memdb"
	"github.com/ancestral-tools/lineage/pkg/types"
)

func addEvent(s *memdb.Store, eventType string, year int) types.Handle {
	return s.AddEvent(&types.Event{
		Type: eventType,
		Date: types.Date{Year: year, Month: 1, Day: 1},
	})
}

func primaryRef(h types.Handle) types.EventRef {
	return types.EventRef{Role: types.RolePrimary, Event: h}
}

// evaluate runs a single rule with a fresh cache over the store.
func evaluate(t *testing.T, s *memdb.Store, r Rule) Result {
	t.Helper()
	res, err := r.Evaluate(facts.NewCache(s))
	require.NoError(t, err)
	return res
}

func TestBaptismBeforeBirth(t *testing.T) {
	s := memdb.New()

	mk := func(birthYear, baptYear int) *types.Person {
		birth := addEvent(s, types.EventBirth, birthYear)
		bapt := addEvent(s, types.EventBaptism, baptYear)
		return &types.Person{
			BirthRef:  &types.EventRef{Role: types.RolePrimary, Event: birth},
			EventRefs: []types.EventRef{primaryRef(bapt)},
		}
	}

	ordered := evaluate(t, s, baptismBeforeBirth{person: mk(1900, 1901)})
	assert.False(t, ordered.Violated)

	inverted := evaluate(t, s, baptismBeforeBirth{person: mk(1901, 1900)})
	assert.True(t, inverted.Violated)
	assert.Equal(t, types.SeverityError, inverted.Severity)
	assert.Equal(t, "Baptism before birth", inverted.Message)

	// A missing endpoint never fires the rule.
	birthOnly := &types.Person{
		BirthRef: &types.EventRef{Role: types.RolePrimary, Event: addEvent(s, types.EventBirth, 1900)},
	}
	assert.False(t, evaluate(t, s, baptismBeforeBirth{person: birthOnly}).Violated)
}

func TestChronologyRulesNeverEstimate(t *testing.T) {
	s := memdb.New()

	// Only a baptism is recorded. With estimation the birth would equal the
	// baptism date; the chronology rules must compare raw dates and stay quiet.
	bapt := addEvent(s, types.EventBaptism, 1900)
	p := &types.Person{EventRefs: []types.EventRef{primaryRef(bapt)}}

	assert.False(t, evaluate(t, s, baptismBeforeBirth{person: p}).Violated)
	assert.False(t, evaluate(t, s, deathBeforeBaptism{person: p}).Violated)
}

func TestDeathBeforeBirth(t *testing.T) {
	s := memdb.New()

	birth := addEvent(s, types.EventBirth, 1950)
	death := addEvent(s, types.EventDeath, 1940)
	p := &types.Person{
		BirthRef: &types.EventRef{Role: types.RolePrimary, Event: birth},
		DeathRef: &types.EventRef{Role: types.RolePrimary, Event: death},
	}

	res := evaluate(t, s, deathBeforeBirth{person: p})
	assert.True(t, res.Violated)
	assert.Equal(t, types.SeverityError, res.Severity)
}

func TestBurialBeforeDeath(t *testing.T) {
	s := memdb.New()

	death := addEvent(s, types.EventDeath, 1970)
	bury := addEvent(s, types.EventBurial, 1969)
	p := &types.Person{
		DeathRef:  &types.EventRef{Role: types.RolePrimary, Event: death},
		EventRefs: []types.EventRef{primaryRef(bury)},
	}

	assert.True(t, evaluate(t, s, burialBeforeDeath{person: p}).Violated)
}

func TestOldAge(t *testing.T) {
	s := memdb.New()

	mk := func(birthYear, deathYear int) *types.Person {
		birth := addEvent(s, types.EventBirth, birthYear)
		death := addEvent(s, types.EventDeath, deathYear)
		return &types.Person{
			BirthRef: &types.EventRef{Role: types.RolePrimary, Event: birth},
			DeathRef: &types.EventRef{Role: types.RolePrimary, Event: death},
		}
	}

	old := evaluate(t, s, oldAge{person: mk(1800, 1895), maxAge: 90})
	assert.True(t, old.Violated)
	assert.Equal(t, types.SeverityWarning, old.Severity)

	// Exactly at the threshold is not a violation.
	atLimit := evaluate(t, s, oldAge{person: mk(1800, 1890), maxAge: 90})
	assert.False(t, atLimit.Violated)
}

func TestUnknownGender(t *testing.T) {
	s := memdb.New()

	assert.True(t, evaluate(t, s, unknownGender{person: &types.Person{}}).Violated)
	assert.False(t, evaluate(t, s, unknownGender{person: &types.Person{Gender: types.GenderMale}}).Violated)
	assert.False(t, evaluate(t, s, unknownGender{person: &types.Person{Gender: types.GenderFemale}}).Violated)
}

func TestMarriedOften(t *testing.T) {
	s := memdb.New()

	fams := []types.Handle{"f1", "f2", "f3", "f4"}
	p := &types.Person{SpouseFamilies: fams}

	assert.True(t, evaluate(t, s, marriedOften{person: p, maxSpouses: 3}).Violated)
	assert.False(t, evaluate(t, s, marriedOften{person: p, maxSpouses: 4}).Violated)
}

func TestOldUnmarriedSkipsMarried(t *testing.T) {
	s := memdb.New()

	birth := addEvent(s, types.EventBirth, 1800)
	death := addEvent(s, types.EventDeath, 1910)
	p := &types.Person{
		BirthRef:       &types.EventRef{Role: types.RolePrimary, Event: birth},
		DeathRef:       &types.EventRef{Role: types.RolePrimary, Event: death},
		SpouseFamilies: []types.Handle{"f1"},
	}

	assert.False(t, evaluate(t, s, oldUnmarried{person: p, maxAge: 99}).Violated)

	p.SpouseFamilies = nil
	assert.True(t, evaluate(t, s, oldUnmarried{person: p, maxAge: 99}).Violated)
}

func TestTooManyChildrenByGender(t *testing.T) {
	s := memdb.New()

	fam := s.AddFamily(&types.Family{ChildRefs: []types.ChildRef{
		{Child: "c1"}, {Child: "c2"}, {Child: "c3"},
	}})

	mk := func(gender string) *types.Person {
		return &types.Person{Gender: gender, SpouseFamilies: []types.Handle{fam}}
	}
	rule := func(p *types.Person) tooManyChildren {
		return tooManyChildren{person: p, maxMother: 2, maxFather: 5}
	}

	// Three children exceed the mother limit but not the father limit.
	assert.True(t, evaluate(t, s, rule(mk(types.GenderFemale))).Violated)
	assert.False(t, evaluate(t, s, rule(mk(types.GenderMale))).Violated)

	// Unknown gender means neither limit applies.
	assert.False(t, evaluate(t, s, rule(mk(types.GenderUnknown))).Violated)
}

func TestPersonCatalogIdentity(t *testing.T) {
	p := &types.Person{}
	th := DefaultThresholds()

	a := PersonCatalog(th, p)
	b := PersonCatalog(th, p)
	require.Len(t, a, 12)

	// Equal thresholds yield equal identities, and identities are unique
	// within one catalog.
	seen := map[string]bool{}
	for i := range a {
		assert.Equal(t, a[i].ID(), b[i].ID())
		assert.False(t, seen[a[i].ID()], "duplicate rule id %s", a[i].ID())
		seen[a[i].ID()] = true
	}

	// Changing one parameter changes only the affected rule's identity.
	th2 := th
	th2.MaxAge = 80
	c := PersonCatalog(th2, p)
	for i := range a {
		if a[i].ID() == "old-age:max_age=90,estimate=false" {
			assert.Equal(t, "old-age:max_age=80,estimate=false", c[i].ID())
		} else {
			assert.Equal(t, a[i].ID(), c[i].ID())
		}
	}
}

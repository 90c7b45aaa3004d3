package rules

import (
	"fmt"

	"github.com/ancestral-tools/lineage/internal/facts"
	"github.com/ancestral-tools/lineage/pkg/types"
)

// The six chronology rules compare raw recorded dates and never estimate:
// substituting baptism-for-birth would make the baptism comparisons
// tautological.

type baptismBeforeBirth struct {
	person *types.Person
}

func (r baptismBeforeBirth) ID() string { return "baptism-before-birth" }

func (r baptismBeforeBirth) Evaluate(c *facts.Cache) (Result, error) {
	birth, err := facts.BirthDate(c, r.person, false)
	if err != nil {
		return Result{}, err
	}
	bapt, err := facts.TypedEventDate(c, r.person, types.EventBaptism, types.EventChristening)
	if err != nil {
		return Result{}, err
	}
	if birth > 0 && bapt > 0 && birth > bapt {
		return Result{Violated: true, Severity: types.SeverityError, Message: "Baptism before birth"}, nil
	}
	return Result{}, nil
}

type deathBeforeBaptism struct {
	person *types.Person
}

func (r deathBeforeBaptism) ID() string { return "death-before-baptism" }

func (r deathBeforeBaptism) Evaluate(c *facts.Cache) (Result, error) {
	bapt, err := facts.TypedEventDate(c, r.person, types.EventBaptism, types.EventChristening)
	if err != nil {
		return Result{}, err
	}
	death, err := facts.DeathDate(c, r.person, false)
	if err != nil {
		return Result{}, err
	}
	if bapt > 0 && death > 0 && bapt > death {
		return Result{Violated: true, Severity: types.SeverityError, Message: "Death before baptism"}, nil
	}
	return Result{}, nil
}

type burialBeforeBirth struct {
	person *types.Person
}

func (r burialBeforeBirth) ID() string { return "burial-before-birth" }

func (r burialBeforeBirth) Evaluate(c *facts.Cache) (Result, error) {
	birth, err := facts.BirthDate(c, r.person, false)
	if err != nil {
		return Result{}, err
	}
	bury, err := facts.TypedEventDate(c, r.person, types.EventBurial, types.EventCremation)
	if err != nil {
		return Result{}, err
	}
	if birth > 0 && bury > 0 && birth > bury {
		return Result{Violated: true, Severity: types.SeverityError, Message: "Burial before birth"}, nil
	}
	return Result{}, nil
}

type burialBeforeDeath struct {
	person *types.Person
}

func (r burialBeforeDeath) ID() string { return "burial-before-death" }

func (r burialBeforeDeath) Evaluate(c *facts.Cache) (Result, error) {
	death, err := facts.DeathDate(c, r.person, false)
	if err != nil {
		return Result{}, err
	}
	bury, err := facts.TypedEventDate(c, r.person, types.EventBurial, types.EventCremation)
	if err != nil {
		return Result{}, err
	}
	if death > 0 && bury > 0 && death > bury {
		return Result{Violated: true, Severity: types.SeverityError, Message: "Burial before death"}, nil
	}
	return Result{}, nil
}

type deathBeforeBirth struct {
	person *types.Person
}

func (r deathBeforeBirth) ID() string { return "death-before-birth" }

func (r deathBeforeBirth) Evaluate(c *facts.Cache) (Result, error) {
	birth, err := facts.BirthDate(c, r.person, false)
	if err != nil {
		return Result{}, err
	}
	death, err := facts.DeathDate(c, r.person, false)
	if err != nil {
		return Result{}, err
	}
	if birth > 0 && death > 0 && birth > death {
		return Result{Violated: true, Severity: types.SeverityError, Message: "Death before birth"}, nil
	}
	return Result{}, nil
}

type burialBeforeBaptism struct {
	person *types.Person
}

func (r burialBeforeBaptism) ID() string { return "burial-before-baptism" }

func (r burialBeforeBaptism) Evaluate(c *facts.Cache) (Result, error) {
	bapt, err := facts.TypedEventDate(c, r.person, types.EventBaptism, types.EventChristening)
	if err != nil {
		return Result{}, err
	}
	bury, err := facts.TypedEventDate(c, r.person, types.EventBurial, types.EventCremation)
	if err != nil {
		return Result{}, err
	}
	if bapt > 0 && bury > 0 && bapt > bury {
		return Result{Violated: true, Severity: types.SeverityError, Message: "Burial before baptism"}, nil
	}
	return Result{}, nil
}

type oldAge struct {
	person   *types.Person
	maxAge   int
	estimate bool
}

func (r oldAge) ID() string {
	return ruleID("old-age",
		fmt.Sprintf("max_age=%d", r.maxAge),
		fmt.Sprintf("estimate=%t", r.estimate))
}

func (r oldAge) Evaluate(c *facts.Cache) (Result, error) {
	age, err := facts.AgeAtDeath(c, r.person, r.estimate)
	if err != nil {
		return Result{}, err
	}
	if age > 0 && facts.YearsFromDays(age) > r.maxAge {
		return Result{Violated: true, Severity: types.SeverityWarning, Message: "Old age at death"}, nil
	}
	return Result{}, nil
}

type unknownGender struct {
	person *types.Person
}

func (r unknownGender) ID() string { return "unknown-gender" }

func (r unknownGender) Evaluate(*facts.Cache) (Result, error) {
	if r.person.Gender != types.GenderMale && r.person.Gender != types.GenderFemale {
		return Result{Violated: true, Severity: types.SeverityWarning, Message: "Unknown gender"}, nil
	}
	return Result{}, nil
}

type multipleParentFamilies struct {
	person *types.Person
}

func (r multipleParentFamilies) ID() string { return "multiple-parent-families" }

func (r multipleParentFamilies) Evaluate(*facts.Cache) (Result, error) {
	if len(r.person.ParentFamilies) > 1 {
		return Result{Violated: true, Severity: types.SeverityWarning, Message: "Multiple parent families"}, nil
	}
	return Result{}, nil
}

type marriedOften struct {
	person     *types.Person
	maxSpouses int
}

func (r marriedOften) ID() string {
	return ruleID("married-often", fmt.Sprintf("max_spouses=%d", r.maxSpouses))
}

func (r marriedOften) Evaluate(*facts.Cache) (Result, error) {
	if len(r.person.SpouseFamilies) > r.maxSpouses {
		return Result{Violated: true, Severity: types.SeverityWarning, Message: "Married often"}, nil
	}
	return Result{}, nil
}

type oldUnmarried struct {
	person   *types.Person
	maxAge   int
	estimate bool
}

func (r oldUnmarried) ID() string {
	return ruleID("old-unmarried",
		fmt.Sprintf("max_age=%d", r.maxAge),
		fmt.Sprintf("estimate=%t", r.estimate))
}

func (r oldUnmarried) Evaluate(c *facts.Cache) (Result, error) {
	if len(r.person.SpouseFamilies) > 0 {
		return Result{}, nil
	}
	age, err := facts.AgeAtDeath(c, r.person, r.estimate)
	if err != nil {
		return Result{}, err
	}
	if age > 0 && facts.YearsFromDays(age) > r.maxAge {
		return Result{Violated: true, Severity: types.SeverityWarning, Message: "Old and unmarried"}, nil
	}
	return Result{}, nil
}

// tooManyChildren compares the person's child count against the
// gender-specific maximum. Persons of unknown gender are skipped: neither
// threshold applies to them.
type tooManyChildren struct {
	person    *types.Person
	maxMother int
	maxFather int
}

func (r tooManyChildren) ID() string {
	return ruleID("too-many-children",
		fmt.Sprintf("max_mother=%d", r.maxMother),
		fmt.Sprintf("max_father=%d", r.maxFather))
}

func (r tooManyChildren) Evaluate(c *facts.Cache) (Result, error) {
	var limit int
	switch r.person.Gender {
	case types.GenderMale:
		limit = r.maxFather
	case types.GenderFemale:
		limit = r.maxMother
	default:
		return Result{}, nil
	}
	count, err := facts.ChildCount(c, r.person)
	if err != nil {
		return Result{}, err
	}
	if count > limit {
		return Result{Violated: true, Severity: types.SeverityWarning, Message: "Too many children"}, nil
	}
	return Result{}, nil
}

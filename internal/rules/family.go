package rules

import (
	"fmt"

	"github.com/ancestral-tools/lineage/internal/facts"
	"github.com/ancestral-tools/lineage/pkg/types"
)

type sameSexPartners struct {
	family *types.Family
}

func (r sameSexPartners) ID() string { return "same-sex-partners" }

func (r sameSexPartners) Evaluate(c *facts.Cache) (Result, error) {
	father, err := facts.Father(c, r.family)
	if err != nil {
		return Result{}, err
	}
	mother, err := facts.Mother(c, r.family)
	if err != nil {
		return Result{}, err
	}
	if father == nil || mother == nil {
		return Result{}, nil
	}
	// Unknown-gender pairs are covered by the unknown-gender person rule.
	if father.Gender == mother.Gender &&
		(father.Gender == types.GenderMale || father.Gender == types.GenderFemale) {
		return Result{Violated: true, Severity: types.SeverityWarning, Message: "Same sex marriage"}, nil
	}
	return Result{}, nil
}

type femaleHusband struct {
	family *types.Family
}

func (r femaleHusband) ID() string { return "female-husband" }

func (r femaleHusband) Evaluate(c *facts.Cache) (Result, error) {
	father, err := facts.Father(c, r.family)
	if err != nil {
		return Result{}, err
	}
	if father != nil && father.Gender == types.GenderFemale {
		return Result{Violated: true, Severity: types.SeverityWarning, Message: "Female husband"}, nil
	}
	return Result{}, nil
}

type maleWife struct {
	family *types.Family
}

func (r maleWife) ID() string { return "male-wife" }

func (r maleWife) Evaluate(c *facts.Cache) (Result, error) {
	mother, err := facts.Mother(c, r.family)
	if err != nil {
		return Result{}, err
	}
	if mother != nil && mother.Gender == types.GenderMale {
		return Result{Violated: true, Severity: types.SeverityWarning, Message: "Male wife"}, nil
	}
	return Result{}, nil
}

type sameSurname struct {
	family *types.Family
}

func (r sameSurname) ID() string { return "same-surname" }

func (r sameSurname) Evaluate(c *facts.Cache) (Result, error) {
	father, err := facts.Father(c, r.family)
	if err != nil {
		return Result{}, err
	}
	mother, err := facts.Mother(c, r.family)
	if err != nil {
		return Result{}, err
	}
	if father == nil || mother == nil {
		return Result{}, nil
	}
	if father.Name.Surname != "" && father.Name.Surname == mother.Name.Surname {
		return Result{Violated: true, Severity: types.SeverityWarning, Message: "Husband and wife with the same surname"}, nil
	}
	return Result{}, nil
}

type largeAgeGap struct {
	family   *types.Family
	maxGap   int
	estimate bool
}

func (r largeAgeGap) ID() string {
	return ruleID("large-age-gap",
		fmt.Sprintf("max_gap=%d", r.maxGap),
		fmt.Sprintf("estimate=%t", r.estimate))
}

func (r largeAgeGap) Evaluate(c *facts.Cache) (Result, error) {
	fb, mb, err := r.spouseBirthDates(c)
	if err != nil {
		return Result{}, err
	}
	if fb == 0 || mb == 0 {
		return Result{}, nil
	}
	gap := fb - mb
	if gap < 0 {
		gap = -gap
	}
	if facts.YearsFromDays(gap) > r.maxGap {
		return Result{Violated: true, Severity: types.SeverityWarning, Message: "Large age difference between spouses"}, nil
	}
	return Result{}, nil
}

func (r largeAgeGap) spouseBirthDates(c *facts.Cache) (int, int, error) {
	father, err := facts.Father(c, r.family)
	if err != nil {
		return 0, 0, err
	}
	mother, err := facts.Mother(c, r.family)
	if err != nil {
		return 0, 0, err
	}
	var fb, mb int
	if father != nil {
		if fb, err = facts.BirthDate(c, father, r.estimate); err != nil {
			return 0, 0, err
		}
	}
	if mother != nil {
		if mb, err = facts.BirthDate(c, mother, r.estimate); err != nil {
			return 0, 0, err
		}
	}
	return fb, mb, nil
}

// spouseDates bundles the lookups shared by the marriage-timing rules.
// The father side is resolved first, so when both sides violate a check
// the father variant is the one reported.
type spouseDates struct {
	fatherBirth, fatherDeath int
	motherBirth, motherDeath int
}

func familySpouseDates(c *facts.Cache, f *types.Family, estimate bool) (spouseDates, error) {
	var d spouseDates
	father, err := facts.Father(c, f)
	if err != nil {
		return d, err
	}
	mother, err := facts.Mother(c, f)
	if err != nil {
		return d, err
	}
	if father != nil {
		if d.fatherBirth, err = facts.BirthDate(c, father, estimate); err != nil {
			return d, err
		}
		if d.fatherDeath, err = facts.DeathDate(c, father, estimate); err != nil {
			return d, err
		}
	}
	if mother != nil {
		if d.motherBirth, err = facts.BirthDate(c, mother, estimate); err != nil {
			return d, err
		}
		if d.motherDeath, err = facts.DeathDate(c, mother, estimate); err != nil {
			return d, err
		}
	}
	return d, nil
}

type marriageBeforeBirth struct {
	family   *types.Family
	estimate bool
}

func (r marriageBeforeBirth) ID() string {
	return ruleID("marriage-before-birth", fmt.Sprintf("estimate=%t", r.estimate))
}

func (r marriageBeforeBirth) Evaluate(c *facts.Cache) (Result, error) {
	marr, err := facts.MarriageDate(c, r.family)
	if err != nil {
		return Result{}, err
	}
	if marr == 0 {
		return Result{}, nil
	}
	d, err := familySpouseDates(c, r.family, r.estimate)
	if err != nil {
		return Result{}, err
	}
	if d.fatherBirth > 0 && marr < d.fatherBirth {
		return Result{Violated: true, Severity: types.SeverityError, Message: "Marriage before husband's birth"}, nil
	}
	if d.motherBirth > 0 && marr < d.motherBirth {
		return Result{Violated: true, Severity: types.SeverityError, Message: "Marriage before wife's birth"}, nil
	}
	return Result{}, nil
}

type marriageAfterDeath struct {
	family   *types.Family
	estimate bool
}

func (r marriageAfterDeath) ID() string {
	return ruleID("marriage-after-death", fmt.Sprintf("estimate=%t", r.estimate))
}

func (r marriageAfterDeath) Evaluate(c *facts.Cache) (Result, error) {
	marr, err := facts.MarriageDate(c, r.family)
	if err != nil {
		return Result{}, err
	}
	if marr == 0 {
		return Result{}, nil
	}
	d, err := familySpouseDates(c, r.family, r.estimate)
	if err != nil {
		return Result{}, err
	}
	if d.fatherDeath > 0 && marr > d.fatherDeath {
		return Result{Violated: true, Severity: types.SeverityError, Message: "Marriage after husband's death"}, nil
	}
	if d.motherDeath > 0 && marr > d.motherDeath {
		return Result{Violated: true, Severity: types.SeverityError, Message: "Marriage after wife's death"}, nil
	}
	return Result{}, nil
}

type earlyMarriage struct {
	family   *types.Family
	minAge   int
	estimate bool
}

func (r earlyMarriage) ID() string {
	return ruleID("early-marriage",
		fmt.Sprintf("min_age=%d", r.minAge),
		fmt.Sprintf("estimate=%t", r.estimate))
}

func (r earlyMarriage) Evaluate(c *facts.Cache) (Result, error) {
	marr, err := facts.MarriageDate(c, r.family)
	if err != nil {
		return Result{}, err
	}
	if marr == 0 {
		return Result{}, nil
	}
	d, err := familySpouseDates(c, r.family, r.estimate)
	if err != nil {
		return Result{}, err
	}
	// A marriage preceding the birth entirely is marriage-before-birth
	// territory, not an early marriage.
	if d.fatherBirth > 0 && marr >= d.fatherBirth && facts.YearsFromDays(marr-d.fatherBirth) < r.minAge {
		return Result{Violated: true, Severity: types.SeverityWarning, Message: "Early marriage of husband"}, nil
	}
	if d.motherBirth > 0 && marr >= d.motherBirth && facts.YearsFromDays(marr-d.motherBirth) < r.minAge {
		return Result{Violated: true, Severity: types.SeverityWarning, Message: "Early marriage of wife"}, nil
	}
	return Result{}, nil
}

type lateMarriage struct {
	family   *types.Family
	maxAge   int
	estimate bool
}

func (r lateMarriage) ID() string {
	return ruleID("late-marriage",
		fmt.Sprintf("max_age=%d", r.maxAge),
		fmt.Sprintf("estimate=%t", r.estimate))
}

func (r lateMarriage) Evaluate(c *facts.Cache) (Result, error) {
	marr, err := facts.MarriageDate(c, r.family)
	if err != nil {
		return Result{}, err
	}
	if marr == 0 {
		return Result{}, nil
	}
	d, err := familySpouseDates(c, r.family, r.estimate)
	if err != nil {
		return Result{}, err
	}
	if d.fatherBirth > 0 && facts.YearsFromDays(marr-d.fatherBirth) > r.maxAge {
		return Result{Violated: true, Severity: types.SeverityWarning, Message: "Late marriage of husband"}, nil
	}
	if d.motherBirth > 0 && facts.YearsFromDays(marr-d.motherBirth) > r.maxAge {
		return Result{Violated: true, Severity: types.SeverityWarning, Message: "Late marriage of wife"}, nil
	}
	return Result{}, nil
}

type oldParent struct {
	family    *types.Family
	maxFather int
	maxMother int
	estimate  bool
}

func (r oldParent) ID() string {
	return ruleID("old-parent",
		fmt.Sprintf("max_father=%d", r.maxFather),
		fmt.Sprintf("max_mother=%d", r.maxMother),
		fmt.Sprintf("estimate=%t", r.estimate))
}

func (r oldParent) Evaluate(c *facts.Cache) (Result, error) {
	births, err := facts.ChildrenBirthDates(c, r.family, r.estimate)
	if err != nil {
		return Result{}, err
	}
	if len(births) == 0 {
		return Result{}, nil
	}
	d, err := familySpouseDates(c, r.family, r.estimate)
	if err != nil {
		return Result{}, err
	}
	for _, cb := range births {
		if d.fatherBirth > 0 && facts.YearsFromDays(cb-d.fatherBirth) > r.maxFather {
			return Result{Violated: true, Severity: types.SeverityWarning, Message: "Old father"}, nil
		}
		if d.motherBirth > 0 && facts.YearsFromDays(cb-d.motherBirth) > r.maxMother {
			return Result{Violated: true, Severity: types.SeverityWarning, Message: "Old mother"}, nil
		}
	}
	return Result{}, nil
}

type youngParent struct {
	family    *types.Family
	minFather int
	minMother int
	estimate  bool
}

func (r youngParent) ID() string {
	return ruleID("young-parent",
		fmt.Sprintf("min_father=%d", r.minFather),
		fmt.Sprintf("min_mother=%d", r.minMother),
		fmt.Sprintf("estimate=%t", r.estimate))
}

func (r youngParent) Evaluate(c *facts.Cache) (Result, error) {
	births, err := facts.ChildrenBirthDates(c, r.family, r.estimate)
	if err != nil {
		return Result{}, err
	}
	if len(births) == 0 {
		return Result{}, nil
	}
	d, err := familySpouseDates(c, r.family, r.estimate)
	if err != nil {
		return Result{}, err
	}
	// Children born before the parent are unborn-parent territory.
	for _, cb := range births {
		if d.fatherBirth > 0 && cb >= d.fatherBirth && facts.YearsFromDays(cb-d.fatherBirth) < r.minFather {
			return Result{Violated: true, Severity: types.SeverityWarning, Message: "Young father"}, nil
		}
		if d.motherBirth > 0 && cb >= d.motherBirth && facts.YearsFromDays(cb-d.motherBirth) < r.minMother {
			return Result{Violated: true, Severity: types.SeverityWarning, Message: "Young mother"}, nil
		}
	}
	return Result{}, nil
}

type unbornParent struct {
	family   *types.Family
	estimate bool
}

func (r unbornParent) ID() string {
	return ruleID("unborn-parent", fmt.Sprintf("estimate=%t", r.estimate))
}

func (r unbornParent) Evaluate(c *facts.Cache) (Result, error) {
	births, err := facts.ChildrenBirthDates(c, r.family, r.estimate)
	if err != nil {
		return Result{}, err
	}
	if len(births) == 0 {
		return Result{}, nil
	}
	d, err := familySpouseDates(c, r.family, r.estimate)
	if err != nil {
		return Result{}, err
	}
	for _, cb := range births {
		if d.fatherBirth > 0 && d.fatherBirth > cb {
			return Result{Violated: true, Severity: types.SeverityError, Message: "Father born after child"}, nil
		}
		if d.motherBirth > 0 && d.motherBirth > cb {
			return Result{Violated: true, Severity: types.SeverityError, Message: "Mother born after child"}, nil
		}
	}
	return Result{}, nil
}

type deadParent struct {
	family   *types.Family
	estimate bool
}

func (r deadParent) ID() string {
	return ruleID("dead-parent", fmt.Sprintf("estimate=%t", r.estimate))
}

func (r deadParent) Evaluate(c *facts.Cache) (Result, error) {
	births, err := facts.ChildrenBirthDates(c, r.family, r.estimate)
	if err != nil {
		return Result{}, err
	}
	if len(births) == 0 {
		return Result{}, nil
	}
	d, err := familySpouseDates(c, r.family, r.estimate)
	if err != nil {
		return Result{}, err
	}
	for _, cb := range births {
		if d.fatherDeath > 0 && d.fatherDeath < cb {
			return Result{Violated: true, Severity: types.SeverityError, Message: "Father died before child's birth"}, nil
		}
		if d.motherDeath > 0 && d.motherDeath < cb {
			return Result{Violated: true, Severity: types.SeverityError, Message: "Mother died before child's birth"}, nil
		}
	}
	return Result{}, nil
}

type largeChildrenSpan struct {
	family   *types.Family
	maxSpan  int
	estimate bool
}

func (r largeChildrenSpan) ID() string {
	return ruleID("large-children-span",
		fmt.Sprintf("max_span=%d", r.maxSpan),
		fmt.Sprintf("estimate=%t", r.estimate))
}

func (r largeChildrenSpan) Evaluate(c *facts.Cache) (Result, error) {
	births, err := facts.ChildrenBirthDates(c, r.family, r.estimate)
	if err != nil {
		return Result{}, err
	}
	if len(births) < 2 {
		return Result{}, nil
	}
	span := births[len(births)-1] - births[0]
	if facts.YearsFromDays(span) > r.maxSpan {
		return Result{Violated: true, Severity: types.SeverityWarning, Message: "Large year span for all children"}, nil
	}
	return Result{}, nil
}

type largeChildrenGap struct {
	family   *types.Family
	maxGap   int
	estimate bool
}

func (r largeChildrenGap) ID() string {
	return ruleID("large-children-gap",
		fmt.Sprintf("max_gap=%d", r.maxGap),
		fmt.Sprintf("estimate=%t", r.estimate))
}

func (r largeChildrenGap) Evaluate(c *facts.Cache) (Result, error) {
	births, err := facts.ChildrenBirthDates(c, r.family, r.estimate)
	if err != nil {
		return Result{}, err
	}
	for i := 1; i < len(births); i++ {
		if facts.YearsFromDays(births[i]-births[i-1]) > r.maxGap {
			return Result{Violated: true, Severity: types.SeverityWarning, Message: "Large age differences between children"}, nil
		}
	}
	return Result{}, nil
}

package rules

import "github.com/ancestral-tools/lineage/pkg/types"

// PersonCatalog binds the full set of person-level rules to one person.
// Catalog order is the report order for that person's findings.
func PersonCatalog(th Thresholds, p *types.Person) []Rule {
	return []Rule{
		baptismBeforeBirth{person: p},
		deathBeforeBaptism{person: p},
		burialBeforeBirth{person: p},
		burialBeforeDeath{person: p},
		deathBeforeBirth{person: p},
		burialBeforeBaptism{person: p},
		oldAge{person: p, maxAge: th.MaxAge, estimate: th.EstimateDates},
		unknownGender{person: p},
		multipleParentFamilies{person: p},
		marriedOften{person: p, maxSpouses: th.MaxSpouses},
		oldUnmarried{person: p, maxAge: th.MaxAgeUnmarried, estimate: th.EstimateDates},
		tooManyChildren{person: p, maxMother: th.MaxChildrenMother, maxFather: th.MaxChildrenFather},
	}
}

// FamilyCatalog binds the full set of family-level rules to one family.
func FamilyCatalog(th Thresholds, f *types.Family) []Rule {
	return []Rule{
		sameSexPartners{family: f},
		femaleHusband{family: f},
		maleWife{family: f},
		sameSurname{family: f},
		largeAgeGap{family: f, maxGap: th.MaxHusbandWifeGap, estimate: th.EstimateDates},
		marriageBeforeBirth{family: f, estimate: th.EstimateDates},
		marriageAfterDeath{family: f, estimate: th.EstimateDates},
		earlyMarriage{family: f, minAge: th.MinMarriageAge, estimate: th.EstimateDates},
		lateMarriage{family: f, maxAge: th.MaxMarriageAge, estimate: th.EstimateDates},
		oldParent{family: f, maxFather: th.MaxFatherAge, maxMother: th.MaxMotherAge, estimate: th.EstimateDates},
		youngParent{family: f, minFather: th.MinFatherAge, minMother: th.MinMotherAge, estimate: th.EstimateDates},
		unbornParent{family: f, estimate: th.EstimateDates},
		deadParent{family: f, estimate: th.EstimateDates},
		largeChildrenSpan{family: f, maxSpan: th.MaxChildrenSpan, estimate: th.EstimateDates},
		largeChildrenGap{family: f, maxGap: th.MaxChildrenGap, estimate: th.EstimateDates},
	}
}

package rules

import (
	"errors"
	"fmt"
)

// Threshold validation errors.
var (
	ErrNegativeThreshold = errors.New("threshold must not be negative")
	ErrInvertedRange     = errors.New("minimum threshold exceeds maximum")
)

// Thresholds is the flat configuration surface of the rule catalog. All
// ages and gaps are whole years. The struct is consumed once at pass start;
// there is no hot reload.
type Thresholds struct {
	MaxAge            int `json:"max_age" mapstructure:"max_age"`
	MaxSpouses        int `json:"max_spouses" mapstructure:"max_spouses"`
	MaxAgeUnmarried   int `json:"max_age_unmarried" mapstructure:"max_age_unmarried"`
	MaxChildrenMother int `json:"max_children_mother" mapstructure:"max_children_mother"`
	MaxChildrenFather int `json:"max_children_father" mapstructure:"max_children_father"`
	MaxHusbandWifeGap int `json:"max_husband_wife_gap" mapstructure:"max_husband_wife_gap"`
	MaxChildrenSpan   int `json:"max_children_span" mapstructure:"max_children_span"`
	MaxChildrenGap    int `json:"max_children_gap" mapstructure:"max_children_gap"`
	MinMarriageAge    int `json:"min_marriage_age" mapstructure:"min_marriage_age"`
	MaxMarriageAge    int `json:"max_marriage_age" mapstructure:"max_marriage_age"`
	MinMotherAge      int `json:"min_mother_age" mapstructure:"min_mother_age"`
	MaxMotherAge      int `json:"max_mother_age" mapstructure:"max_mother_age"`
	MinFatherAge      int `json:"min_father_age" mapstructure:"min_father_age"`
	MaxFatherAge      int `json:"max_father_age" mapstructure:"max_father_age"`
	// MaxWidowhood is carried for configuration compatibility; no rule
	// consumes it yet.
	MaxWidowhood int `json:"max_widowhood" mapstructure:"max_widowhood"`
	// EstimateDates substitutes baptism-for-birth and burial-for-death
	// when the primary date is unresolved.
	EstimateDates bool `json:"estimate_dates" mapstructure:"estimate_dates"`
}

// DefaultThresholds returns the stock configuration.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxAge:            90,
		MaxSpouses:        3,
		MaxAgeUnmarried:   99,
		MaxChildrenMother: 12,
		MaxChildrenFather: 15,
		MaxHusbandWifeGap: 30,
		MaxChildrenSpan:   25,
		MaxChildrenGap:    8,
		MinMarriageAge:    17,
		MaxMarriageAge:    50,
		MinMotherAge:      17,
		MaxMotherAge:      48,
		MinFatherAge:      18,
		MaxFatherAge:      65,
		MaxWidowhood:      30,
	}
}

// Validate rejects malformed thresholds before a pass starts. Negative
// values and inverted min/max pairs are configuration errors, not
// per-subject concerns.
func (t Thresholds) Validate() error {
	named := []struct {
		name  string
		value int
	}{
		{"max_age", t.MaxAge},
		{"max_spouses", t.MaxSpouses},
		{"max_age_unmarried", t.MaxAgeUnmarried},
		{"max_children_mother", t.MaxChildrenMother},
		{"max_children_father", t.MaxChildrenFather},
		{"max_husband_wife_gap", t.MaxHusbandWifeGap},
		{"max_children_span", t.MaxChildrenSpan},
		{"max_children_gap", t.MaxChildrenGap},
		{"min_marriage_age", t.MinMarriageAge},
		{"max_marriage_age", t.MaxMarriageAge},
		{"min_mother_age", t.MinMotherAge},
		{"max_mother_age", t.MaxMotherAge},
		{"min_father_age", t.MinFatherAge},
		{"max_father_age", t.MaxFatherAge},
		{"max_widowhood", t.MaxWidowhood},
	}
	for _, n := range named {
		if n.value < 0 {
			return fmt.Errorf("%s: %w", n.name, ErrNegativeThreshold)
		}
	}

	ranges := []struct {
		name     string
		min, max int
	}{
		{"marriage_age", t.MinMarriageAge, t.MaxMarriageAge},
		{"mother_age", t.MinMotherAge, t.MaxMotherAge},
		{"father_age", t.MinFatherAge, t.MaxFatherAge},
	}
	for _, r := range ranges {
		if r.min > r.max {
			return fmt.Errorf("%s: %w", r.name, ErrInvertedRange)
		}
	}
	return nil
}

// Package rules implements the anomaly-detection rule catalog run against
// persons and families. Each rule is a small, single-use value bound to one
// subject at construction; evaluation is read-only and returns an atomic
// Result so message selection for asymmetric checks (old father vs old
// mother) happens at evaluation time. See docs/ARCHITECTURE.md § Rule Engine.
package rules

import (
	"strings"

	"github.com/ancestral-tools/lineage/internal/facts"
)

// Rule is one anomaly check bound to a single subject.
type Rule interface {
	// ID returns the rule's stable identity: its type code plus its
	// configuration parameters. Two rules of the same type with the same
	// parameters have equal IDs; changing any parameter changes the ID.
	// The ID keys acknowledgment state across verification passes.
	ID() string

	// Evaluate runs the check. The returned error is non-nil only for
	// repository defects; data-quality problems are findings, not errors.
	Evaluate(c *facts.Cache) (Result, error)
}

// Result is the outcome of one rule evaluation. Message and Severity are
// meaningful only when Violated is true.
type Result struct {
	Violated bool
	Severity string
	Message  string
}

// ruleID builds "code" or "code:param,param,..." identity strings.
func ruleID(code string, params ...string) string {
	if len(params) == 0 {
		return code
	}
	return code + ":" + strings.Join(params, ",")
}

// Package verify drives a full verification pass over a Repository: every
// person, then every family, against the configured rule catalog. The pass
// is read-only with respect to the repository and reports violations through
// a Sink. See docs/ARCHITECTURE.md § Verification Pass.
package verify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ancestral-tools/lineage/internal/facts"
	"github.com/ancestral-tools/lineage/internal/rules"
	"github.com/ancestral-tools/lineage/pkg/types"
)

// Sink receives findings as they are produced, in pass order.
type Sink interface {
	Add(types.Finding)
}

// SliceSink collects findings into a slice.
type SliceSink struct {
	Findings []types.Finding
}

func (s *SliceSink) Add(f types.Finding) {
	s.Findings = append(s.Findings, f)
}

// Runner holds the fixed inputs of one verification pass.
type Runner struct {
	Repo       types.Repository
	Thresholds rules.Thresholds
	Sink       Sink

	// Progress, when set, is called after each subject with the number of
	// subjects finished and the total subject count.
	Progress func(done, total int)

	// Logger, when set, receives per-pass summary records. Rule outcomes
	// are findings, not log lines.
	Logger *slog.Logger
}

// Run verifies every person and then every family. Records removed between
// handle listing and lookup are skipped; any other repository error aborts
// the pass. Cancellation is honored between subjects, so a canceled pass
// still leaves the sink with complete per-subject results.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.Thresholds.Validate(); err != nil {
		return fmt.Errorf("thresholds: %w", err)
	}

	people, err := r.Repo.PersonHandles()
	if err != nil {
		return fmt.Errorf("listing people: %w", err)
	}
	families, err := r.Repo.FamilyHandles()
	if err != nil {
		return fmt.Errorf("listing families: %w", err)
	}
	total := len(people) + len(families)
	done := 0

	cache := facts.NewCache(r.Repo)
	for _, h := range people {
		if err := ctx.Err(); err != nil {
			return err
		}
		cache.Reset()
		p, err := cache.Person(h)
		if err != nil {
			return fmt.Errorf("person %s: %w", h, err)
		}
		if p != nil {
			if err := r.runPerson(cache, p); err != nil {
				return fmt.Errorf("person %s: %w", h, err)
			}
		}
		done++
		if r.Progress != nil {
			r.Progress(done, total)
		}
	}

	for _, h := range families {
		if err := ctx.Err(); err != nil {
			return err
		}
		cache.Reset()
		f, err := cache.Family(h)
		if err != nil {
			return fmt.Errorf("family %s: %w", h, err)
		}
		if f != nil {
			if err := r.runFamily(cache, f); err != nil {
				return fmt.Errorf("family %s: %w", h, err)
			}
		}
		done++
		if r.Progress != nil {
			r.Progress(done, total)
		}
	}

	if r.Logger != nil {
		r.Logger.Info("verification pass complete",
			"people", len(people), "families", len(families))
	}
	return nil
}

func (r *Runner) runPerson(cache *facts.Cache, p *types.Person) error {
	for _, rule := range rules.PersonCatalog(r.Thresholds, p) {
		res, err := rule.Evaluate(cache)
		if err != nil {
			return fmt.Errorf("rule %s: %w", rule.ID(), err)
		}
		if !res.Violated {
			continue
		}
		r.Sink.Add(types.Finding{
			Severity:   res.Severity,
			Message:    res.Message,
			GrampsID:   p.GrampsID,
			Name:       p.DisplayName(),
			ObjectType: types.ObjectPerson,
			RuleID:     rule.ID(),
			Handle:     p.Handle,
		})
	}
	return nil
}

func (r *Runner) runFamily(cache *facts.Cache, f *types.Family) error {
	name, err := familyName(cache, f)
	if err != nil {
		return err
	}
	for _, rule := range rules.FamilyCatalog(r.Thresholds, f) {
		res, err := rule.Evaluate(cache)
		if err != nil {
			return fmt.Errorf("rule %s: %w", rule.ID(), err)
		}
		if !res.Violated {
			continue
		}
		r.Sink.Add(types.Finding{
			Severity:   res.Severity,
			Message:    res.Message,
			GrampsID:   f.GrampsID,
			Name:       name,
			ObjectType: types.ObjectFamily,
			RuleID:     rule.ID(),
			Handle:     f.Handle,
		})
	}
	return nil
}

// familyName labels a family by its resolvable spouses.
func familyName(cache *facts.Cache, f *types.Family) (string, error) {
	father, err := facts.Father(cache, f)
	if err != nil {
		return "", err
	}
	mother, err := facts.Mother(cache, f)
	if err != nil {
		return "", err
	}
	switch {
	case father != nil && mother != nil:
		return father.DisplayName() + " and " + mother.DisplayName(), nil
	case father != nil:
		return father.DisplayName(), nil
	case mother != nil:
		return mother.DisplayName(), nil
	}
	return "", nil
}

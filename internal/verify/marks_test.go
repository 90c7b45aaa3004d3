package verify

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ancestral-tools/lineage/internal/memdb"
	"github.com/ancestral-tools/lineage/internal/rules"
	"github.com/ancestral-tools/lineage/pkg/types"
)

func TestMarksRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marks.jsonl")

	m := NewMarks()
	m.Add("h1", "unknown-gender")
	m.Add("h2", "old-age:max_age=90,estimate=false")
	m.Add("h1", "unknown-gender") // adding twice is one mark
	require.NoError(t, m.Save(path))

	loaded, err := LoadMarks(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())
	assert.True(t, loaded.Contains("h1", "unknown-gender"))
	assert.True(t, loaded.Contains("h2", "old-age:max_age=90,estimate=false"))
	assert.False(t, loaded.Contains("h1", "old-age:max_age=90,estimate=false"))

	loaded.Remove("h1", "unknown-gender")
	assert.False(t, loaded.Contains("h1", "unknown-gender"))
	loaded.Remove("h1", "unknown-gender") // absent mark, no-op
	assert.Equal(t, 1, loaded.Len())
}

func TestLoadMarksMissingFile(t *testing.T) {
	m, err := LoadMarks(filepath.Join(t.TempDir(), "absent.jsonl"))
	require.NoError(t, err)
	assert.Zero(t, m.Len())
}

// Acknowledging a finding hides it from the filtered view but has no effect
// on what a pass computes.
func TestMarksFilterWithoutSuppressingEvaluation(t *testing.T) {
	s := memdb.New()
	populate(t, s)

	before := runPass(t, s)
	require.NotEmpty(t, before)

	m := NewMarks()
	m.Add(before[0].Handle, before[0].RuleID)

	after := runPass(t, s)
	assert.Equal(t, before, after, "marks must not change pass output")

	visible := m.Filter(after)
	assert.Len(t, visible, len(after)-1)
	for _, f := range visible {
		assert.False(t, m.Contains(f.Handle, f.RuleID))
	}
}

func TestThresholdChangeInvalidatesMark(t *testing.T) {
	s := memdb.New()

	birth := s.AddEvent(&types.Event{Type: types.EventBirth, Date: types.Date{Year: 1800, Month: 1, Day: 1}})
	death := s.AddEvent(&types.Event{Type: types.EventDeath, Date: types.Date{Year: 1895, Month: 1, Day: 1}})
	s.AddPerson(&types.Person{
		Gender:         types.GenderMale,
		BirthRef:       &types.EventRef{Role: types.RolePrimary, Event: birth},
		DeathRef:       &types.EventRef{Role: types.RolePrimary, Event: death},
		SpouseFamilies: []types.Handle{"f1"},
	})

	run := func(th rules.Thresholds) []types.Finding {
		sink := &SliceSink{}
		r := &Runner{Repo: s, Thresholds: th, Sink: sink}
		require.NoError(t, r.Run(context.Background()))
		return sink.Findings
	}

	th := rules.DefaultThresholds()
	findings := run(th)
	require.Len(t, findings, 1)
	assert.Equal(t, "Old age at death", findings[0].Message)

	m := NewMarks()
	m.Add(findings[0].Handle, findings[0].RuleID)
	assert.Empty(t, m.Filter(findings))

	// Tightening the threshold changes the rule identity, so the old mark
	// no longer covers the new finding.
	th.MaxAge = 80
	refindings := run(th)
	require.Len(t, refindings, 1)
	assert.NotEqual(t, findings[0].RuleID, refindings[0].RuleID)
	assert.Len(t, m.Filter(refindings), 1)
}

package verify

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/ancestral-tools/lineage/internal/jsonl"
	"github.com/ancestral-tools/lineage/pkg/types"
)

// Mark is one acknowledged finding, keyed by subject handle and rule
// identity. Marks hide findings from default reports; they never stop the
// rules from being evaluated.
type Mark struct {
	Handle types.Handle `json:"handle"`
	RuleID string       `json:"rule_id"`
}

// Marks is the set of acknowledged findings.
type Marks struct {
	set map[Mark]struct{}
}

// NewMarks creates an empty mark set.
func NewMarks() *Marks {
	return &Marks{set: make(map[Mark]struct{})}
}

// LoadMarks reads a mark set from a JSONL file. A missing file is an empty
// set, not an error.
func LoadMarks(path string) (*Marks, error) {
	m := NewMarks()
	records, err := jsonl.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m, nil
		}
		return nil, err
	}
	for _, rec := range records {
		var mark Mark
		if err := json.Unmarshal(rec, &mark); err != nil {
			continue
		}
		if mark.Handle == "" || mark.RuleID == "" {
			continue
		}
		m.set[mark] = struct{}{}
	}
	return m, nil
}

// Save writes the mark set to a JSONL file, sorted for stable output.
func (m *Marks) Save(path string) error {
	marks := make([]Mark, 0, len(m.set))
	for mark := range m.set {
		marks = append(marks, mark)
	}
	sort.Slice(marks, func(i, j int) bool {
		if marks[i].Handle != marks[j].Handle {
			return marks[i].Handle < marks[j].Handle
		}
		return marks[i].RuleID < marks[j].RuleID
	})

	records := make([]json.RawMessage, 0, len(marks))
	for _, mark := range marks {
		rec, err := json.Marshal(mark)
		if err != nil {
			return fmt.Errorf("encoding mark: %w", err)
		}
		records = append(records, rec)
	}
	return jsonl.Write(path, records)
}

// Add marks a finding as acknowledged.
func (m *Marks) Add(handle types.Handle, ruleID string) {
	m.set[Mark{Handle: handle, RuleID: ruleID}] = struct{}{}
}

// Remove clears an acknowledgment. Removing an absent mark is a no-op.
func (m *Marks) Remove(handle types.Handle, ruleID string) {
	delete(m.set, Mark{Handle: handle, RuleID: ruleID})
}

// Contains reports whether the finding is acknowledged.
func (m *Marks) Contains(handle types.Handle, ruleID string) bool {
	_, ok := m.set[Mark{Handle: handle, RuleID: ruleID}]
	return ok
}

// Len returns the number of marks.
func (m *Marks) Len() int {
	return len(m.set)
}

// Filter returns the findings not covered by the mark set, preserving
// order. The input is left untouched.
func (m *Marks) Filter(findings []types.Finding) []types.Finding {
	out := make([]types.Finding, 0, len(findings))
	for _, f := range findings {
		if m.Contains(f.Handle, f.RuleID) {
			continue
		}
		out = append(out, f)
	}
	return out
}

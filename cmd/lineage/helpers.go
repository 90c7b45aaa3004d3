// Shared helpers for lineage CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ancestral-tools/lineage/internal/sqlite"
	"github.com/ancestral-tools/lineage/pkg/types"
)

// Record kind names accepted by add, get, and list.
const (
	kindPerson = "person"
	kindFamily = "family"
	kindEvent  = "event"
)

var validKinds = strings.Join([]string{kindPerson, kindFamily, kindEvent}, ", ")

// Verification artifact file names in the data directory.
const (
	findingsFile = "findings.jsonl"
	marksFile    = "marks.jsonl"
)

// attachStore resolves the data directory, creates a SQLite store, and
// attaches it. The caller must defer store.Detach().
func attachStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	store := sqlite.NewStore()
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	return store, nil
}

// findingsPath returns the findings file location in the data directory.
func findingsPath() (string, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return filepath.Join(dataDir, findingsFile), nil
}

// marksPath returns the acknowledgment file location in the data directory.
func marksPath() (string, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return filepath.Join(dataDir, marksFile), nil
}

// parseRecordJSON unmarshals JSON data into the entity struct for the given
// record kind.
func parseRecordJSON(kind string, data []byte) (any, error) {
	switch kind {
	case kindPerson:
		var p types.Person
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return &p, nil
	case kindFamily:
		var f types.Family
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return &f, nil
	case kindEvent:
		var e types.Event
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return &e, nil
	default:
		return nil, fmt.Errorf("unknown record kind %q (valid: %s)", kind, validKinds)
	}
}

// printJSON writes any value as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ancestral-tools/lineage/internal/jsonl"
)

// recordKey is the subset of every record document the loader indexes on.
type recordKey struct {
	Handle   string `json:"handle"`
	GrampsID string `json:"gramps_id"`
	Type     string `json:"event_type"`
}

// jsonlTableMapping maps JSONL filenames to their SQLite tables.
var jsonlTableMapping = []struct {
	file  string
	table string
}{
	{peopleFile, "people"},
	{familiesFile, "families"},
	{eventsFile, "events"},
}

// initJSONLFiles creates empty JSONL files for any that do not exist, so a
// fresh data directory is immediately loadable.
func initJSONLFiles(dataDir string) error {
	for _, mapping := range jsonlTableMapping {
		path := filepath.Join(dataDir, mapping.file)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("checking %s: %w", mapping.file, err)
		}
		if err := jsonl.Write(path, nil); err != nil {
			return fmt.Errorf("initializing %s: %w", mapping.file, err)
		}
	}
	return nil
}

// loadAllJSONL reads each JSONL file from dataDir and inserts records into
// the corresponding tables. Loading is transactional: all files load or the
// database stays empty. Records without a handle are skipped; unknown fields
// in a document are preserved verbatim in the doc column.
func loadAllJSONL(db *sql.DB, dataDir string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	// Disable foreign keys during loading, re-enable after.
	if _, err := tx.Exec("PRAGMA foreign_keys = OFF"); err != nil {
		return fmt.Errorf("disabling foreign keys for load: %w", err)
	}

	for _, mapping := range jsonlTableMapping {
		path := filepath.Join(dataDir, mapping.file)
		records, err := jsonl.Read(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", mapping.file, err)
		}
		if len(records) == 0 {
			continue
		}
		if err := insertRecords(tx, mapping.table, records); err != nil {
			return fmt.Errorf("loading %s into %s: %w", mapping.file, mapping.table, err)
		}
	}

	if _, err := tx.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("re-enabling foreign keys: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// insertRecords inserts parsed JSONL records into a table. A later record
// with a duplicate handle replaces the earlier one.
func insertRecords(tx *sql.Tx, table string, records []json.RawMessage) error {
	var insertSQL string
	if table == "events" {
		insertSQL = "INSERT OR REPLACE INTO events (handle, gramps_id, event_type, doc) VALUES (?, ?, ?, ?)"
	} else {
		insertSQL = fmt.Sprintf("INSERT OR REPLACE INTO %s (handle, gramps_id, doc) VALUES (?, ?, ?)", table)
	}
	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert for %s: %w", table, err)
	}
	defer stmt.Close()

	for _, rec := range records {
		var key recordKey
		if err := json.Unmarshal(rec, &key); err != nil {
			continue
		}
		if key.Handle == "" {
			continue
		}
		var execErr error
		if table == "events" {
			_, execErr = stmt.Exec(key.Handle, key.GrampsID, key.Type, string(rec))
		} else {
			_, execErr = stmt.Exec(key.Handle, key.GrampsID, string(rec))
		}
		if execErr != nil {
			return fmt.Errorf("inserting into %s: %w", table, execErr)
		}
	}
	return nil
}

package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/ancestral-tools/lineage/internal/jsonl"
	"github.com/ancestral-tools/lineage/pkg/types"
)

// JSONL file names in the data directory.
const (
	peopleFile   = "people.jsonl"
	familiesFile = "families.jsonl"
	eventsFile   = "events.jsonl"
	dbFile       = "lineage.db"
)

// Store implements the Repository contract plus the mutation surface using
// SQLite as the query engine and JSONL files as the source of truth. The
// database file is rebuilt from the JSONL files on every Attach.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

var _ types.Repository = (*Store)(nil)

// NewStore creates a new SQLite store instance. The store is not attached;
// call Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach initializes the store with the given configuration. Creates the
// data directory and empty JSONL files if needed, rebuilds the SQLite
// schema, and loads the JSONL records. Returns ErrAlreadyOpen if attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyOpen
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	// The database is a rebuildable cache of the JSONL files; start fresh.
	dbPath := filepath.Join(dataDir, dbFile)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating indexes: %w", err)
		}
	}

	if err := initJSONLFiles(dataDir); err != nil {
		db.Close()
		return err
	}
	if err := loadAllJSONL(db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	s.db = db
	s.config = config
	s.attached = true
	return nil
}

// Detach closes the SQLite connection. After Detach all operations return
// ErrStoreDetached. Detach is idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	s.attached = false
	return nil
}

func (s *Store) dataDir() string {
	if s.config.DataDir == "" {
		return "."
	}
	return s.config.DataDir
}

// getDoc fetches and decodes one record's JSON document.
func getDoc(db *sql.DB, table string, handle types.Handle, out any) error {
	if handle == "" {
		return types.ErrInvalidHandle
	}
	var doc string
	query := fmt.Sprintf("SELECT doc FROM %s WHERE handle = ?", table)
	err := db.QueryRow(query, string(handle)).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("querying %s: %w", table, err)
	}
	if err := json.Unmarshal([]byte(doc), out); err != nil {
		return fmt.Errorf("%w: decoding %s record %s: %v", types.ErrInvalidData, table, handle, err)
	}
	return nil
}

// Person returns the person with the given handle, or ErrNotFound.
func (s *Store) Person(handle types.Handle) (*types.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	var p types.Person
	if err := getDoc(s.db, "people", handle, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Family returns the family with the given handle, or ErrNotFound.
func (s *Store) Family(handle types.Handle) (*types.Family, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	var f types.Family
	if err := getDoc(s.db, "families", handle, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Event returns the event with the given handle, or ErrNotFound.
func (s *Store) Event(handle types.Handle) (*types.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	var e types.Event
	if err := getDoc(s.db, "events", handle, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// listHandles returns a table's handles ordered by Gramps ID, then handle,
// so repeated passes over the same data visit subjects in the same order.
func listHandles(db *sql.DB, table string) ([]types.Handle, error) {
	query := fmt.Sprintf("SELECT handle FROM %s ORDER BY gramps_id, handle", table)
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", table, err)
	}
	defer rows.Close()

	var handles []types.Handle
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("scanning %s handle: %w", table, err)
		}
		handles = append(handles, types.Handle(h))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", table, err)
	}
	return handles, nil
}

// PersonHandles returns all person handles in Gramps ID order.
func (s *Store) PersonHandles() ([]types.Handle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	return listHandles(s.db, "people")
}

// FamilyHandles returns all family handles in Gramps ID order.
func (s *Store) FamilyHandles() ([]types.Handle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	return listHandles(s.db, "families")
}

func countRows(db *sql.DB, table string) (int, error) {
	var n int
	if err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}

// NumPeople returns the number of person records.
func (s *Store) NumPeople() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return 0, types.ErrStoreDetached
	}
	return countRows(s.db, "people")
}

// NumFamilies returns the number of family records.
func (s *Store) NumFamilies() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return 0, types.ErrStoreDetached
	}
	return countRows(s.db, "families")
}

// putDoc inserts or replaces one record and persists the table to its JSONL
// file. The caller must hold the write lock.
func (s *Store) putDoc(table, file, grampsID, eventType string, handle types.Handle, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s record: %w", table, err)
	}
	if table == "events" {
		_, err = s.db.Exec(
			"INSERT OR REPLACE INTO events (handle, gramps_id, event_type, doc) VALUES (?, ?, ?, ?)",
			string(handle), grampsID, eventType, string(raw))
	} else {
		_, err = s.db.Exec(
			fmt.Sprintf("INSERT OR REPLACE INTO %s (handle, gramps_id, doc) VALUES (?, ?, ?)", table),
			string(handle), grampsID, string(raw))
	}
	if err != nil {
		return fmt.Errorf("storing %s record: %w", table, err)
	}
	return s.persistTable(table, file)
}

// PutPerson inserts or replaces a person. An empty handle gets a fresh one.
// Returns the handle used.
func (s *Store) PutPerson(p *types.Person) (types.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return "", types.ErrStoreDetached
	}
	if p.Handle == "" {
		p.Handle = types.NewHandle()
	}
	return p.Handle, s.putDoc("people", peopleFile, p.GrampsID, "", p.Handle, p)
}

// PutFamily inserts or replaces a family. An empty handle gets a fresh one.
func (s *Store) PutFamily(f *types.Family) (types.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return "", types.ErrStoreDetached
	}
	if f.Handle == "" {
		f.Handle = types.NewHandle()
	}
	return f.Handle, s.putDoc("families", familiesFile, f.GrampsID, "", f.Handle, f)
}

// PutEvent inserts or replaces an event. An empty handle gets a fresh one.
func (s *Store) PutEvent(e *types.Event) (types.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return "", types.ErrStoreDetached
	}
	if e.Handle == "" {
		e.Handle = types.NewHandle()
	}
	return e.Handle, s.putDoc("events", eventsFile, e.GrampsID, e.Type, e.Handle, e)
}

// deleteDoc removes one record and persists the table. The caller must hold
// the write lock.
func (s *Store) deleteDoc(table, file string, handle types.Handle) error {
	if handle == "" {
		return types.ErrInvalidHandle
	}
	res, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE handle = ?", table), string(handle))
	if err != nil {
		return fmt.Errorf("deleting %s record: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return s.persistTable(table, file)
}

// DeletePerson removes a person. Returns ErrNotFound for an absent handle.
func (s *Store) DeletePerson(handle types.Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return types.ErrStoreDetached
	}
	return s.deleteDoc("people", peopleFile, handle)
}

// DeleteFamily removes a family. Returns ErrNotFound for an absent handle.
func (s *Store) DeleteFamily(handle types.Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return types.ErrStoreDetached
	}
	return s.deleteDoc("families", familiesFile, handle)
}

// DeleteEvent removes an event. Returns ErrNotFound for an absent handle.
func (s *Store) DeleteEvent(handle types.Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return types.ErrStoreDetached
	}
	return s.deleteDoc("events", eventsFile, handle)
}

// persistTable writes a table's documents back to its JSONL file atomically,
// in iteration order.
func (s *Store) persistTable(table, file string) error {
	query := fmt.Sprintf("SELECT doc FROM %s ORDER BY gramps_id, handle", table)
	rows, err := s.db.Query(query)
	if err != nil {
		return fmt.Errorf("reading %s for persist: %w", table, err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return fmt.Errorf("scanning %s doc: %w", table, err)
		}
		records = append(records, json.RawMessage(doc))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating %s for persist: %w", table, err)
	}
	return jsonl.Write(filepath.Join(s.dataDir(), file), records)
}

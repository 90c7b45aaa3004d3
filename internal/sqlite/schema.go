// Package sqlite implements the SQLite storage backend for lineage records.
// SQLite is the query engine; the JSONL files in the data directory are the
// source of truth and are reloaded on every Attach.
// See docs/ARCHITECTURE.md § SQLite Backend.
package sqlite

// Each record table carries the full JSON document plus the columns the
// Repository contract queries: the handle for lookups and the Gramps ID for
// deterministic iteration order.
const (
	createPeople = `CREATE TABLE people (
    handle TEXT PRIMARY KEY,
    gramps_id TEXT NOT NULL,
    doc TEXT NOT NULL
);`

	createFamilies = `CREATE TABLE families (
    handle TEXT PRIMARY KEY,
    gramps_id TEXT NOT NULL,
    doc TEXT NOT NULL
);`

	createEvents = `CREATE TABLE events (
    handle TEXT PRIMARY KEY,
    gramps_id TEXT NOT NULL,
    event_type TEXT NOT NULL,
    doc TEXT NOT NULL
);`
)

const (
	idxPeopleGrampsID   = `CREATE INDEX idx_people_gramps_id ON people(gramps_id);`
	idxFamiliesGrampsID = `CREATE INDEX idx_families_gramps_id ON families(gramps_id);`
	idxEventsGrampsID   = `CREATE INDEX idx_events_gramps_id ON events(gramps_id);`
	idxEventsType       = `CREATE INDEX idx_events_type ON events(event_type);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createPeople,
	createFamilies,
	createEvents,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxPeopleGrampsID,
	idxFamiliesGrampsID,
	idxEventsGrampsID,
	idxEventsType,
}

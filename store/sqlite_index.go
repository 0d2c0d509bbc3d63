package store

import (
	"database/sql"
	"encoding/json"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lesfleursdelanuitdev/famtree/types"
)

// SQLiteIndex is an optional read-through cache for GetTreeDatum-style
// lookups on graphs too large to comfortably scan in memory on every
// call; the Person Graph itself remains the source of truth, and the
// index is rebuilt from it rather than mutated independently.
type SQLiteIndex struct {
	db *sql.DB
}

// NewSQLiteIndex opens (or creates) a SQLite database at path and
// ensures its schema exists. Pass ":memory:" for a process-local index.
func NewSQLiteIndex(path string) (*SQLiteIndex, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, types.WrapError(types.ErrorTypeInternal, types.SeverityFatal, err, "store.NewSQLiteIndex")
	}
	const schema = `CREATE TABLE IF NOT EXISTS persons (
		id TEXT PRIMARY KEY,
		data TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		return nil, types.WrapError(types.ErrorTypeInternal, types.SeverityFatal, err, "store.NewSQLiteIndex")
	}
	return &SQLiteIndex{db: db}, nil
}

// Close releases the underlying database handle.
func (idx *SQLiteIndex) Close() error {
	return idx.db.Close()
}

// Rebuild replaces the index's contents with every person in g.
func (idx *SQLiteIndex) Rebuild(g *types.PersonGraph) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return types.WrapError(types.ErrorTypeInternal, types.SeverityError, err, "store.SQLiteIndex.Rebuild")
	}
	if _, err := tx.Exec("DELETE FROM persons"); err != nil {
		tx.Rollback()
		return types.WrapError(types.ErrorTypeInternal, types.SeverityError, err, "store.SQLiteIndex.Rebuild")
	}
	stmt, err := tx.Prepare("INSERT INTO persons (id, data) VALUES (?, ?)")
	if err != nil {
		tx.Rollback()
		return types.WrapError(types.ErrorTypeInternal, types.SeverityError, err, "store.SQLiteIndex.Rebuild")
	}
	defer stmt.Close()
	for _, p := range g.All() {
		data, err := json.Marshal(p)
		if err != nil {
			tx.Rollback()
			return types.WrapError(types.ErrorTypeInternal, types.SeverityError, err, "store.SQLiteIndex.Rebuild")
		}
		if _, err := stmt.Exec(p.ID, data); err != nil {
			tx.Rollback()
			return types.WrapError(types.ErrorTypeInternal, types.SeverityError, err, "store.SQLiteIndex.Rebuild")
		}
	}
	return tx.Commit()
}

// Get returns the indexed person for id, or (nil, false) if absent.
func (idx *SQLiteIndex) Get(id string) (*types.Person, bool) {
	row := idx.db.QueryRow("SELECT data FROM persons WHERE id = ?", id)
	var data string
	if err := row.Scan(&data); err != nil {
		return nil, false
	}
	var p types.Person
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, false
	}
	return &p, true
}

// Package index maintains an ephemeral SQLite search index over the JSON
// state files.
//
// The JSON files stay the source of truth; the index is derived and can be
// rebuilt at any time. It lives as a single flat file in the state root,
// following the same no-nested-directories convention as the state files.
package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cyrusae/pbjson/internal/state"
	"github.com/cyrusae/pbjson/internal/store"
	_ "modernc.org/sqlite"
)

// DBFile is the index database file name within the state root.
const DBFile = "pbjson-index.db"

// DBPath returns the index database path within the state root.
func DBPath(root string) string {
	return filepath.Join(root, DBFile)
}

// Exists reports whether an index database has been built in root.
func Exists(root string) bool {
	info, err := os.Stat(DBPath(root))
	return err == nil && !info.IsDir()
}

// DB wraps the SQLite connection for the search index.
type DB struct {
	db *sql.DB
}

// Open opens or creates the index database at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating index schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE VIRTUAL TABLE IF NOT EXISTS entries_fts USING fts5(
			subsystem,
			field,
			entry
		);
	`
	_, err := db.Exec(schema)
	return err
}

// Match is one search hit.
type Match struct {
	Subsystem string `json:"subsystem,omitempty"`
	Field     string `json:"field"`
	Entry     string `json:"entry"`
}

// Rebuild clears the index and reindexes every state file found in root.
// Returns the number of entries indexed.
func (d *DB) Rebuild(root string) (int, error) {
	files, err := scanStateFiles(root)
	if err != nil {
		return 0, err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries_fts"); err != nil {
		return 0, fmt.Errorf("clearing index: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO entries_fts (subsystem, field, entry) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for _, f := range files {
		for _, field := range state.Fields {
			for _, entry := range *f.doc.Field(field) {
				if _, err := stmt.Exec(f.subsystem, field, entry); err != nil {
					return 0, fmt.Errorf("indexing entry: %w", err)
				}
				count++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing rebuild: %w", err)
	}

	return count, nil
}

// Search returns indexed entries matching term, newest-best-first by FTS rank.
// Field and subsystem narrow the results when non-empty; limit of 0 means all.
// The term matches whole tokens, with the final token treated as a prefix.
func (d *DB) Search(term, field, subsystem string, limit int) ([]Match, error) {
	query := "SELECT subsystem, field, entry FROM entries_fts WHERE entries_fts MATCH ?"
	args := []interface{}{matchExpr(term)}

	if field != "" {
		query += " AND field = ?"
		args = append(args, field)
	}
	if subsystem != "" {
		query += " AND subsystem = ?"
		args = append(args, subsystem)
	}

	query += " ORDER BY rank"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.Subsystem, &m.Field, &m.Entry); err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		matches = append(matches, m)
	}

	return matches, rows.Err()
}

// matchExpr builds an FTS5 expression restricted to the entry column:
// the term as a quoted phrase with prefix matching on its last token.
func matchExpr(term string) string {
	escaped := strings.ReplaceAll(term, `"`, `""`)
	return `entry: "` + escaped + `"*`
}

// stateFile pairs a loaded document with the subsystem it belongs to.
type stateFile struct {
	subsystem string
	doc       *state.Document
}

// scanStateFiles finds project.json and every *-state.json directly in root
// and loads each one. Parse failures surface as store.MalformedStateError.
func scanStateFiles(root string) ([]stateFile, error) {
	dirents, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading state root: %w", err)
	}

	var files []stateFile
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}

		var subsystem string
		switch name := de.Name(); {
		case name == store.DefaultFile:
			subsystem = ""
		case strings.HasSuffix(name, store.SubsystemSuffix):
			subsystem = strings.TrimSuffix(name, store.SubsystemSuffix)
			if subsystem == "" {
				continue
			}
		default:
			continue
		}

		doc, err := store.Load(root, subsystem)
		if err != nil {
			return nil, err
		}
		files = append(files, stateFile{subsystem: subsystem, doc: doc})
	}

	return files, nil
}

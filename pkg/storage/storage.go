//Package storage persists per-video analysis results in an embedded SQLite
//database so the HTTP API can serve them without re-running the pipeline.
package storage

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

//DB wraps a sql.DB for the analysis result store
type DB struct {
	conn *sql.DB
}

//Open opens (or creates) the SQLite database at the given path and applies the schema
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

//Close closes the underlying connection
func (db *DB) Close() error {
	return db.conn.Close()
}

package blob

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/jobdeck/jobdeck/pkg/types"
)

// sqliteFileName is the database file created inside the data dir.
const sqliteFileName = "jobdeck.db"

// blobSchema holds the single-row table the blob lives in. The row id is
// fixed so Write is a plain upsert.
const blobSchema = `
CREATE TABLE IF NOT EXISTS table_blob (
    id   INTEGER PRIMARY KEY CHECK (id = 1),
    data BLOB NOT NULL
);
`

// SQLiteBackend stores the table blob as one row in a local SQLite
// database. The upsert runs in a single implicit transaction, which
// provides the atomic-write guarantee.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLiteBackend opens (or creates) the database under dataDir and
// ensures the blob table exists.
func OpenSQLiteBackend(dataDir string) (*SQLiteBackend, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, sqliteFileName))
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if _, err := db.Exec(blobSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing blob schema: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

// Read returns the stored blob, or ErrBlobNotFound when the row has never
// been written.
func (b *SQLiteBackend) Read() ([]byte, error) {
	var data []byte
	err := b.db.QueryRow("SELECT data FROM table_blob WHERE id = 1").Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading blob row: %w", err)
	}
	return data, nil
}

// Write upserts the blob row.
func (b *SQLiteBackend) Write(data []byte) error {
	_, err := b.db.Exec(`
		INSERT INTO table_blob (id, data) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data
	`, data)
	if err != nil {
		return fmt.Errorf("writing blob row: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

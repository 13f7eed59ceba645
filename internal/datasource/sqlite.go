package datasource

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vanderheijden86/conceptscope/pkg/model"
)

// SQLiteReader provides read access to a snapshot catalogue database with a
// single table:
//
//	CREATE TABLE snapshots (
//	    name       TEXT PRIMARY KEY,
//	    created_at TEXT NOT NULL,
//	    data       TEXT NOT NULL   -- snapshot JSON document
//	)
type SQLiteReader struct {
	db   *sql.DB
	path string
}

// SnapshotInfo describes one catalogued snapshot.
type SnapshotInfo struct {
	Name      string
	CreatedAt time.Time
}

// NewSQLiteReader opens a snapshot catalogue for reading.
func NewSQLiteReader(path string) (*SQLiteReader, error) {
	// Open in read-only mode; the catalogue is written by the pipeline,
	// never by cv.
	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot open catalogue: %w", err)
	}

	return &SQLiteReader{db: db, path: path}, nil
}

// Close closes the database connection.
func (r *SQLiteReader) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ListSnapshots returns the catalogued snapshots, newest first.
func (r *SQLiteReader) ListSnapshots() ([]SnapshotInfo, error) {
	rows, err := r.db.Query(`SELECT name, created_at FROM snapshots ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var out []SnapshotInfo
	for rows.Next() {
		var info SnapshotInfo
		var created string
		if err := rows.Scan(&info.Name, &created); err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			info.CreatedAt = t
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// LoadSnapshot decodes the named snapshot. An empty name loads the newest.
func (r *SQLiteReader) LoadSnapshot(name string) (*model.Dataset, error) {
	var data []byte
	var err error
	if name == "" {
		err = r.db.QueryRow(`SELECT data FROM snapshots ORDER BY created_at DESC LIMIT 1`).Scan(&data)
	} else {
		err = r.db.QueryRow(`SELECT data FROM snapshots WHERE name = ?`, name).Scan(&data)
	}
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("snapshot %q not found in catalogue", name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %q: %w", name, err)
	}
	return model.Parse(data)
}

package gallery

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Entry is one picture known to the media index.
type Entry struct {
	ID      int64
	Path    string
	Width   int
	Height  int
	SavedAt time.Time
	Session string
}

var ErrNotIndexed = errors.New("picture not in index")

// Index is the media index: a small SQLite catalog of saved pictures.
type Index struct {
	db      *sql.DB
	session string
}

// OpenIndex opens (and creates when needed) the index database at path.
func OpenIndex(path string) (*Index, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create index directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open index %s: %w", path, err)
	}
	idx := &Index{db: db, session: uuid.NewString()}
	if err := idx.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return idx, nil
}

func (idx *Index) createTables() error {
	const picturesTable = `
	CREATE TABLE IF NOT EXISTS pictures (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL UNIQUE,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		saved_at DATETIME NOT NULL,
		session TEXT NOT NULL
	);`
	if _, err := idx.db.Exec(picturesTable); err != nil {
		return fmt.Errorf("create pictures table: %w", err)
	}
	return nil
}

// Session identifies the process that wrote an entry.
func (idx *Index) Session() string { return idx.session }

func (idx *Index) Close() error { return idx.db.Close() }

// Scan records e, replacing any entry for the same path.
func (idx *Index) Scan(e Entry) error {
	if e.SavedAt.IsZero() {
		e.SavedAt = time.Now()
	}
	_, err := idx.db.Exec(`
		INSERT INTO pictures (path, width, height, saved_at, session)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			width = excluded.width,
			height = excluded.height,
			saved_at = excluded.saved_at,
			session = excluded.session
	`, e.Path, e.Width, e.Height, e.SavedAt.UTC(), idx.session)
	return err
}

// List returns every entry, newest first.
func (idx *Index) List() ([]Entry, error) {
	rows, err := idx.db.Query(`
		SELECT id, path, width, height, saved_at, session
		FROM pictures ORDER BY saved_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Path, &e.Width, &e.Height, &e.SavedAt, &e.Session); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (idx *Index) Lookup(id int64) (Entry, error) {
	var e Entry
	err := idx.db.QueryRow(`
		SELECT id, path, width, height, saved_at, session
		FROM pictures WHERE id = ?`, id).
		Scan(&e.ID, &e.Path, &e.Width, &e.Height, &e.SavedAt, &e.Session)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: id %d", ErrNotIndexed, id)
	}
	return e, err
}

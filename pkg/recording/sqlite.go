package recording

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	seq         INTEGER PRIMARY KEY,
	hash        TEXT NOT NULL UNIQUE,
	parent_hash TEXT,
	data        TEXT NOT NULL,
	received_at INTEGER NOT NULL
);`

// SQLiteStorer persists a recording in a SQLite database.
type SQLiteStorer struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLiteStorer opens (or creates) the database at path. Use ":memory:"
// for a throwaway database.
func NewSQLiteStorer(path string) (*SQLiteStorer, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Every pooled connection to ":memory:" would be its own database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStorer{db: db}, nil
}

func (s *SQLiteStorer) Append(ctx context.Context, data string, at time.Time) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	parent, err := scanRecord(tx.QueryRowContext(ctx,
		`SELECT seq, hash, parent_hash, data, received_at FROM records ORDER BY seq DESC LIMIT 1`))
	if err != nil && !isNotFound(err) {
		return nil, err
	}

	r := NewRecord(data, parent, at)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO records (seq, hash, parent_hash, data, received_at) VALUES (?, ?, ?, ?, ?)`,
		r.Seq, r.Hash, r.ParentHash, r.Data, r.ReceivedAt.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return r, nil
}

func (s *SQLiteStorer) Get(ctx context.Context, hash string) (*Record, error) {
	r, err := scanRecord(s.db.QueryRowContext(ctx,
		`SELECT seq, hash, parent_hash, data, received_at FROM records WHERE hash = ?`, hash))
	if isNotFound(err) {
		return nil, ErrNotFound{Hash: hash}
	}
	return r, err
}

func (s *SQLiteStorer) Head(ctx context.Context) (*Record, error) {
	return scanRecord(s.db.QueryRowContext(ctx,
		`SELECT seq, hash, parent_hash, data, received_at FROM records ORDER BY seq DESC LIMIT 1`))
}

func (s *SQLiteStorer) List(ctx context.Context) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, hash, parent_hash, data, received_at FROM records ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStorer) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

func (s *SQLiteStorer) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("reset records: %w", err)
	}
	return nil
}

func (s *SQLiteStorer) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		r          Record
		parentHash sql.NullString
		receivedAt int64
	)
	err := row.Scan(&r.Seq, &r.Hash, &parentHash, &r.Data, &receivedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound{}
	}
	if err != nil {
		return nil, fmt.Errorf("scan record: %w", err)
	}

	if parentHash.Valid {
		r.ParentHash = &parentHash.String
	}
	r.ReceivedAt = time.Unix(0, receivedAt)
	return &r, nil
}

func isNotFound(err error) bool {
	var nf ErrNotFound
	return errors.As(err, &nf)
}

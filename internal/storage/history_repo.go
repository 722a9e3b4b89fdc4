package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// HistoryKey is the KV entry holding the JSON-encoded record list. The
// value is a bare array of {date, count} objects with no version field.
const HistoryKey = "jobApplicationHistory"

// metaSavedKey records when the history was last written.
const metaSavedKey = "lastSavedAt"

type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// LoadResult carries the decoded history, plus a warning when the
// stored value was unreadable and had to be discarded.
type LoadResult struct {
	History History
	Warning string
}

// Load reads the persisted history. A missing entry is a normal first
// run and yields an empty history. A value that fails to decode also
// yields an empty history, with Warning set for the caller to report.
// Neither case is an error; only the query failing is.
func (r *HistoryRepo) Load(ctx context.Context) (*LoadResult, error) {
	raw, found, err := r.Raw(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return &LoadResult{History: History{}}, nil
	}

	var h History
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return &LoadResult{
			History: History{},
			Warning: fmt.Sprintf("stored history is unreadable, starting fresh: %v", err),
		}, nil
	}
	if h == nil {
		h = History{}
	}
	return &LoadResult{History: h}, nil
}

// Save persists the full history as a single JSON value, together with
// the lastSavedAt meta entry, in one transaction.
func (r *HistoryRepo) Save(ctx context.Context, h History) error {
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("history encode: %w", err)
	}

	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := putTx(ctx, tx, HistoryKey, string(data)); err != nil {
			return fmt.Errorf("history put: %w", err)
		}
		if err := putTx(ctx, tx, metaSavedKey, time.Now().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("meta put: %w", err)
		}
		return nil
	})
}

// Raw returns the stored history value exactly as persisted.
func (r *HistoryRepo) Raw(ctx context.Context) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, HistoryKey)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("history get: %w", err)
	}
	return raw, true, nil
}

// LastSavedAt returns the time of the most recent Save, or the zero
// time if nothing has been written yet.
func (r *HistoryRepo) LastSavedAt(ctx context.Context) (time.Time, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, metaSavedKey)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("meta get: %w", err)
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, nil
	}
	return ts, nil
}

func putTx(ctx context.Context, tx *sql.Tx, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

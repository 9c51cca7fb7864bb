package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

// Entry is one recorded expiry episode.
type Entry struct {
	ID         string
	TimerID    string
	Label      string
	Mode       string
	FinishedAt time.Time
}

// Log is the SQLite-backed expiry history. Writes are best effort; the
// in-memory timer state never depends on it.
type Log struct {
	db *sql.DB
}

func Open(path string) (*Log, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	log, err := NewLog(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return log, nil
}

func NewLog(db *sql.DB) (*Log, error) {
	if db == nil {
		return nil, errors.New("history: nil db")
	}
	if err := MigrateUp(db); err != nil {
		return nil, err
	}
	return &Log{db: db}, nil
}

func (l *Log) Close() error {
	return l.db.Close()
}

func (l *Log) Record(ctx context.Context, in Entry) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO expiries (id, timer_id, label, mode, finished_at)
		VALUES (?, ?, ?, ?, ?)`,
		in.ID, in.TimerID, in.Label, in.Mode, in.FinishedAt.UTC().Format(sqliteTimeLayout),
	)
	return err
}

// Recent returns up to limit entries, newest first.
func (l *Log) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, timer_id, label, mode, finished_at
		FROM expiries ORDER BY finished_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0)
	for rows.Next() {
		var entry Entry
		var finished string
		if err := rows.Scan(&entry.ID, &entry.TimerID, &entry.Label, &entry.Mode, &finished); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(sqliteTimeLayout, finished)
		if err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		entry.FinishedAt = parsed
		out = append(out, entry)
	}
	return out, rows.Err()
}

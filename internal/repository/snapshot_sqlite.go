package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	errorvalues "github.com/limbo/rexfit/internal/error_values"
	"github.com/limbo/rexfit/pkg/cleanup"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS snapshots (
	key TEXT PRIMARY KEY,
	data BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);`

type SQLiteSnapshotRepo struct {
	db *sql.DB
}

func NewSQLiteSnapshotRepo(path string) (*SQLiteSnapshotRepo, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating snapshots table: %w", err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite",
		F:    db.Close,
	})
	return &SQLiteSnapshotRepo{db: db}, nil
}

func (r *SQLiteSnapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE key = ?;`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrSnapshotNotFound
		}
		return nil, errors.New("loading snapshot error: " + err.Error())
	}
	return data, nil
}

func (r *SQLiteSnapshotRepo) Save(ctx context.Context, key string, data []byte) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, unixepoch())
ON CONFLICT (key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at;`, key, data)
	if err != nil {
		var sqliteErr *msqlite.Error
		if errors.As(err, &sqliteErr) {
			switch sqliteErr.Code() {
			case sqlite3lib.SQLITE_FULL, sqlite3lib.SQLITE_TOOBIG:
				return errorvalues.ErrQuotaExceeded
			}
		}
		return errors.New("saving snapshot error: " + err.Error())
	}
	return nil
}

func (r *SQLiteSnapshotRepo) Close() error {
	return r.db.Close()
}

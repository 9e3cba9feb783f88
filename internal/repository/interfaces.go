package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type SnapshotReaderI interface {
	// Returns the raw document stored under key, or ErrSnapshotNotFound
	Load(ctx context.Context, key string) ([]byte, error)
}

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mock.go -package=mocks
type SnapshotRepositoryI interface {
	SnapshotReaderI
	// Replaces the document stored under key. A full store gives ErrQuotaExceeded
	Save(ctx context.Context, key string, data []byte) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/rexfit/internal/error_values"
	"github.com/limbo/rexfit/pkg/cleanup"
)

type PostgresSnapshotRepo struct {
	conn PgConnection
}

func NewPostgresSnapshotRepo(cfg DBConfig) (*PostgresSnapshotRepo, error) {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating connection for snapshotRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		pool.Close()
		return nil, errors.New("error while pinging connection for snapshotRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &PostgresSnapshotRepo{
		conn: pool,
	}, nil
}

func NewPostgresSnapshotRepoWithConn(conn PgConnection) (*PostgresSnapshotRepo, error) {
	err := conn.Ping(context.Background())
	if err != nil {
		return nil, errors.New("error while pinging connection for snapshotRepo: " + err.Error())
	}
	return &PostgresSnapshotRepo{
		conn: conn,
	}, nil
}

func (r *PostgresSnapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	row := r.conn.QueryRow(ctx, `SELECT data FROM snapshots WHERE key = $1;`, key)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSnapshotNotFound
		}
		return nil, errors.New("loading snapshot error: " + err.Error())
	}
	return data, nil
}

func (r *PostgresSnapshotRepo) Save(ctx context.Context, key string, data []byte) error {
	_, err := r.conn.Exec(ctx, `INSERT INTO snapshots (key, data, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at;`, key, data)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// disk_full, program_limit_exceeded
			case "53100", "54000":
				return errorvalues.ErrQuotaExceeded
			}
		}
		return errors.New("saving snapshot error: " + err.Error())
	}
	return nil
}

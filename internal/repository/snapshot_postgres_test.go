package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/rexfit/internal/error_values"
	"github.com/limbo/rexfit/internal/repository"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const snapshotKey = "footsafe_tracker_v1"

func TestPostgresLoad(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo, err := repository.NewPostgresSnapshotRepoWithConn(mock)
	require.NoError(t, err)
	query := regexp.QuoteMeta(`SELECT data FROM snapshots WHERE key = $1;`)
	stored := []byte(`{"wallet":12}`)
	testCases := []struct {
		Desc            string
		Error           error
		Want            []byte
		MockPrepareFunc func()
	}{
		{
			Desc: "found",
			Want: stored,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(snapshotKey).WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow(stored))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrSnapshotNotFound,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(snapshotKey).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("loading snapshot error: connection reset"),
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(snapshotKey).WillReturnError(errors.New("connection reset"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			data, err := repo.Load(ctx, snapshotKey)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Want, data)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSave(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo, err := repository.NewPostgresSnapshotRepoWithConn(mock)
	require.NoError(t, err)
	query := regexp.QuoteMeta(`INSERT INTO snapshots (key, data, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at;`)
	data := []byte(`{"wallet":3}`)
	testCases := []struct {
		Desc            string
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc: "saved",
			MockPrepareFunc: func() {
				mock.ExpectExec(query).WithArgs(snapshotKey, data).WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc:  "disk full",
			Error: errorvalues.ErrQuotaExceeded,
			MockPrepareFunc: func() {
				mock.ExpectExec(query).WithArgs(snapshotKey, data).WillReturnError(&pgconn.PgError{Code: "53100"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("any"),
			MockPrepareFunc: func() {
				mock.ExpectExec(query).WithArgs(snapshotKey, data).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			err := repo.Save(ctx, snapshotKey, data)
			switch {
			case tc.Error == nil:
				assert.NoError(t, err)
			case errors.Is(tc.Error, errorvalues.ErrQuotaExceeded):
				assert.ErrorIs(t, err, tc.Error)
			default:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, errorvalues.ErrQuotaExceeded)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestPostgresSnapshotIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	repo, err := repository.NewPostgresSnapshotRepo(setupSnapshotsTestDB(t))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.Load(ctx, snapshotKey)
	assert.ErrorIs(t, err, errorvalues.ErrSnapshotNotFound)

	require.NoError(t, repo.Save(ctx, snapshotKey, []byte(`{"wallet": 1}`)))
	require.NoError(t, repo.Save(ctx, snapshotKey, []byte(`{"wallet": 2}`)))
	data, err := repo.Load(ctx, snapshotKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"wallet": 2}`, string(data))
}

func setupSnapshotsTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("rex"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}

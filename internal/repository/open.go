package repository

import (
	"fmt"
	"log/slog"
)

const (
	DriverBadger   = "badger"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Options struct {
	Driver     string
	BadgerPath string
	SQLitePath string
	Postgres   DBConfig
	Logger     *slog.Logger
}

// Open builds the snapshot store selected by opts.Driver. Closing it is left
// to the cleanup jobs.
func Open(opts Options) (SnapshotRepositoryI, error) {
	var (
		repo SnapshotRepositoryI
		err  error
	)
	switch opts.Driver {
	case DriverBadger, "":
		repo, err = NewBadgerSnapshotRepo(BadgerConfig{Path: opts.BadgerPath, SyncWrites: true, Logger: opts.Logger})
	case DriverSQLite:
		repo, err = NewSQLiteSnapshotRepo(opts.SQLitePath)
	case DriverPostgres:
		if opts.Postgres == nil {
			return nil, fmt.Errorf("postgres driver needs connection settings")
		}
		repo, err = NewPostgresSnapshotRepo(opts.Postgres)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}
	return repo, nil
}

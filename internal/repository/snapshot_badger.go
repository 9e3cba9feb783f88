package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	errorvalues "github.com/limbo/rexfit/internal/error_values"
	"github.com/limbo/rexfit/pkg/cleanup"
)

type BadgerConfig struct {
	// Directory for the database files. Ignored when InMemory is set.
	Path     string
	InMemory bool
	// Fsync every write.
	SyncWrites bool
	// Nil silences badger's own logging.
	Logger *slog.Logger
}

func InMemoryBadgerConfig() BadgerConfig {
	return BadgerConfig{InMemory: true}
}

type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

type BadgerSnapshotRepo struct {
	db *badger.DB
}

func NewBadgerSnapshotRepo(cfg BadgerConfig) (*BadgerSnapshotRepo, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("badger path is required for a persistent store")
	}
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("creating badger directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger database: %w", err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing badger",
		F:    db.Close,
	})
	return &BadgerSnapshotRepo{db: db}, nil
}

func (r *BadgerSnapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, errorvalues.ErrSnapshotNotFound
		}
		return nil, errors.New("loading snapshot error: " + err.Error())
	}
	return data, nil
}

func (r *BadgerSnapshotRepo) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		if errors.Is(err, badger.ErrTxnTooBig) {
			return errorvalues.ErrQuotaExceeded
		}
		return errors.New("saving snapshot error: " + err.Error())
	}
	return nil
}

func (r *BadgerSnapshotRepo) Close() error {
	return r.db.Close()
}

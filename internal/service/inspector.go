package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/limbo/rexfit/internal/catalog"
	errorvalues "github.com/limbo/rexfit/internal/error_values"
	"github.com/limbo/rexfit/internal/repository"
	"github.com/limbo/rexfit/internal/tracker"
	"github.com/limbo/rexfit/pkg/entity"
)

// Inspector is a read-only view of the stored document for tools that run
// next to the server. The day rollover happens in memory only and nothing is
// ever saved, so the server stays the single writer.
type Inspector struct {
	repo   repository.SnapshotReaderI
	now    func() time.Time
	loc    *time.Location
	key    string
	logger *slog.Logger
}

// NewInspector accepts the TrackerService options; the ones about writing
// and delivering are ignored.
func NewInspector(repo repository.SnapshotReaderI, opts ...Option) *Inspector {
	if repo == nil {
		log.Fatal("provided nil snapshot reader")
	}
	s := &TrackerService{
		now:    time.Now,
		loc:    time.Local,
		key:    catalog.StorageKey,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return &Inspector{repo: repo, now: s.now, loc: s.loc, key: s.key, logger: s.logger}
}

func (i *Inspector) read(ctx context.Context) (*entity.AppState, time.Time, error) {
	now := i.now().In(i.loc)
	doc, err := readDocument(ctx, i.repo, i.key, now)
	switch {
	case errors.Is(err, errorvalues.ErrSnapshotNotFound):
		i.logger.Info("no stored snapshot, showing defaults")
	case err != nil:
		return nil, now, err
	}
	doc, _ = tracker.Reconcile(doc, now)
	return doc, now, nil
}

// State reads the stored document as of today.
func (i *Inspector) State(ctx context.Context) (*Snapshot, error) {
	doc, now, err := i.read(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{State: doc, Summary: tracker.Summarize(doc, now)}, nil
}

func (i *Inspector) Export(ctx context.Context) ([]byte, error) {
	doc, _, err := i.read(ctx)
	if err != nil {
		return nil, err
	}
	return tracker.Encode(doc)
}

// PendingNotifications lists the reminders the server would deliver right
// now, without stamping them.
func (i *Inspector) PendingNotifications(ctx context.Context) ([]tracker.Decision, error) {
	doc, now, err := i.read(ctx)
	if err != nil {
		return nil, err
	}
	return tracker.EvaluateNotifications(doc, now), nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/rexfit/internal/catalog"
	errorvalues "github.com/limbo/rexfit/internal/error_values"
	"github.com/limbo/rexfit/internal/imaging"
	"github.com/limbo/rexfit/internal/notify"
	"github.com/limbo/rexfit/internal/repository"
	"github.com/limbo/rexfit/internal/tracker"
	"github.com/limbo/rexfit/pkg/entity"
	"github.com/limbo/rexfit/pkg/metrics"
)

const (
	WelcomeTitle = "Workout with Rex"
	WelcomeBody  = "Notifications enabled! I'll keep you updated. 🐶"
)

type Option func(*TrackerService)

func WithClock(now func() time.Time) Option {
	return func(s *TrackerService) { s.now = now }
}

// WithLocation sets the zone whose calendar decides dates and weekdays.
func WithLocation(loc *time.Location) Option {
	return func(s *TrackerService) { s.loc = loc }
}

// WithQuota rejects snapshots larger than maxBytes. Zero disables the check.
func WithQuota(maxBytes int) Option {
	return func(s *TrackerService) { s.quota = maxBytes }
}

// WithNotifier enables reminders. Without one, enabling them fails with
// ErrNotificationsUnsupported.
func WithNotifier(n notify.Notifier) Option {
	return func(s *TrackerService) { s.notifier = n }
}

func WithCompressor(c imaging.Compressor) Option {
	return func(s *TrackerService) { s.images = c }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *TrackerService) { s.logger = logger }
}

func WithStorageKey(key string) Option {
	return func(s *TrackerService) { s.key = key }
}

// TrackerService owns the one live document. Every change goes through its
// mutex, so HTTP handlers and the notification scheduler never race.
type TrackerService struct {
	mu       sync.Mutex
	doc      *entity.AppState
	repo     repository.SnapshotRepositoryI
	notifier notify.Notifier
	images   imaging.Compressor
	now      func() time.Time
	loc      *time.Location
	quota    int
	key      string
	logger   *slog.Logger
}

func NewTrackerService(repo repository.SnapshotRepositoryI, opts ...Option) *TrackerService {
	if repo == nil {
		log.Fatal("provided nil snapshot repo")
	}
	s := &TrackerService{
		repo:   repo,
		images: imaging.NewJPEGCompressor(),
		now:    time.Now,
		loc:    time.Local,
		key:    catalog.StorageKey,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.doc = tracker.Default(s.clock())
	return s
}

func (s *TrackerService) clock() time.Time {
	return s.now().In(s.loc)
}

// Load replaces the live document with the stored one. Missing or broken
// snapshots fall back to defaults; problems are only logged.
func (s *TrackerService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock()
	doc, err := readDocument(ctx, s.repo, s.key, now)
	switch {
	case errors.Is(err, errorvalues.ErrSnapshotNotFound):
		s.logger.Info("no stored snapshot, starting fresh")
	case errors.Is(err, errorvalues.ErrCorruptSnapshot):
		s.logger.Error("stored snapshot is unreadable, using defaults", slog.String("error", err.Error()))
	case err != nil:
		s.logger.Error("loading snapshot failed, using defaults", slog.String("error", err.Error()))
	}
	doc, changed := tracker.Reconcile(doc, now)
	s.doc = doc
	metrics.Wallet.Set(float64(doc.Wallet))
	if changed {
		if err := s.persistLocked(ctx); err != nil {
			s.logger.Warn("persisting reconciled snapshot failed", slog.String("error", err.Error()))
		}
	}
}

// readDocument always returns a usable document: the default one when the
// error is not nil.
func readDocument(ctx context.Context, repo repository.SnapshotReaderI, key string, now time.Time) (*entity.AppState, error) {
	data, err := repo.Load(ctx, key)
	if err != nil {
		return tracker.Default(now), err
	}
	doc, err := tracker.Decode(data, now)
	if err != nil {
		return tracker.Default(now), err
	}
	return doc, nil
}

func (s *TrackerService) snapshotLocked(now time.Time) *Snapshot {
	return &Snapshot{
		State:   s.doc.Clone(),
		Summary: tracker.Summarize(s.doc, now),
	}
}

func (s *TrackerService) persistLocked(ctx context.Context) error {
	start := time.Now()
	data, err := tracker.Encode(s.doc)
	if err != nil {
		return fmt.Errorf("%w: %w", errorvalues.ErrPersistFailed, err)
	}
	if s.quota > 0 && len(data) > s.quota {
		metrics.PersistDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("%w: %w: %d of %d bytes", errorvalues.ErrPersistFailed, errorvalues.ErrQuotaExceeded, len(data), s.quota)
	}
	if err := s.repo.Save(ctx, s.key, data); err != nil {
		metrics.PersistDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("%w: %w", errorvalues.ErrPersistFailed, err)
	}
	metrics.PersistDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
	metrics.SnapshotBytes.Set(float64(len(data)))
	metrics.Wallet.Set(float64(s.doc.Wallet))
	return nil
}

// mutate reconciles the day, applies f and persists the outcome. A rejected
// change leaves the document as reconciled.
func (s *TrackerService) mutate(ctx context.Context, op string, f func(doc *entity.AppState, now time.Time) (*entity.AppState, error)) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock()
	doc, _ := tracker.Reconcile(s.doc, now)
	s.doc = doc
	next, err := f(doc, now)
	if err != nil {
		metrics.Operations.WithLabelValues(op, "rejected").Inc()
		return nil, err
	}
	s.doc = next
	snap := s.snapshotLocked(now)
	if err := s.persistLocked(ctx); err != nil {
		metrics.Operations.WithLabelValues(op, "error").Inc()
		s.logger.Error("persisting snapshot failed", slog.String("op", op), slog.String("error", err.Error()))
		return snap, err
	}
	metrics.Operations.WithLabelValues(op, "ok").Inc()
	return snap, nil
}

func pure(f func(doc *entity.AppState) *entity.AppState) func(*entity.AppState, time.Time) (*entity.AppState, error) {
	return func(doc *entity.AppState, _ time.Time) (*entity.AppState, error) {
		return f(doc), nil
	}
}

func (s *TrackerService) State(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock()
	doc, changed := tracker.Reconcile(s.doc, now)
	s.doc = doc
	snap := s.snapshotLocked(now)
	if changed {
		if err := s.persistLocked(ctx); err != nil {
			return snap, err
		}
	}
	return snap, nil
}

func (s *TrackerService) Export(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tracker.Encode(s.doc)
}

func (s *TrackerService) CycleRoutine(ctx context.Context) (*Snapshot, error) {
	return s.mutate(ctx, "cycle_routine", func(doc *entity.AppState, now time.Time) (*entity.AppState, error) {
		return tracker.CycleRoutine(doc, now), nil
	})
}

func (s *TrackerService) UpdateSchedule(ctx context.Context, req *ScheduleRequest) (*Snapshot, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "update_schedule", func(doc *entity.AppState, now time.Time) (*entity.AppState, error) {
		next, err := tracker.UpdateSchedule(doc, req.Day, req.Routine)
		if err != nil {
			return nil, err
		}
		// a change to today's entry takes effect right away
		next, _ = tracker.Reconcile(next, now)
		return next, nil
	})
}

func (s *TrackerService) ToggleExercise(ctx context.Context, exerciseID string) (*ExerciseResult, error) {
	var completed bool
	snap, err := s.mutate(ctx, "toggle_exercise", func(doc *entity.AppState, _ time.Time) (*entity.AppState, error) {
		next, done, err := tracker.ToggleExercise(doc, exerciseID)
		completed = done
		return next, err
	})
	if snap == nil {
		return nil, err
	}
	res := &ExerciseResult{Snapshot: snap, Completed: completed}
	if completed {
		res.Phrase = catalog.RandomPhrase()
	}
	return res, err
}

func (s *TrackerService) ToggleRestDayActivity(ctx context.Context) (*Snapshot, error) {
	return s.mutate(ctx, "toggle_rest_activity", pure(tracker.ToggleRestDayActivity))
}

func (s *TrackerService) AddWater(ctx context.Context, req *WaterRequest) (*Snapshot, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "add_water", pure(func(doc *entity.AppState) *entity.AppState {
		return tracker.AddWater(doc, req.DeltaMl)
	}))
}

func (s *TrackerService) AddWeight(ctx context.Context, req *WeightRequest) (*Snapshot, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "add_weight", func(doc *entity.AppState, now time.Time) (*entity.AppState, error) {
		return tracker.AddWeight(doc, req.Weight, now), nil
	})
}

func (s *TrackerService) SetHeight(ctx context.Context, req *HeightRequest) (*Snapshot, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "set_height", pure(func(doc *entity.AppState) *entity.AppState {
		return tracker.SetHeight(doc, req.Height)
	}))
}

func (s *TrackerService) SaveMood(ctx context.Context, req *MoodRequest) (*CheckInResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var paid bool
	snap, err := s.mutate(ctx, "save_mood", func(doc *entity.AppState, now time.Time) (*entity.AppState, error) {
		next, bonus := tracker.SaveMood(doc, req.Mood, now)
		paid = bonus
		return next, nil
	})
	if snap == nil {
		return nil, err
	}
	return &CheckInResult{Snapshot: snap, BonusPaid: paid, Quote: catalog.RandomQuote()}, err
}

func (s *TrackerService) DeleteMood(ctx context.Context, date string) (*Snapshot, error) {
	if _, ok := tracker.ParseDate(date); !ok || len(date) != len(time.DateOnly) {
		return nil, fmt.Errorf("%w: date %q", errorvalues.ErrInvalidInput, date)
	}
	return s.mutate(ctx, "delete_mood", func(doc *entity.AppState, _ time.Time) (*entity.AppState, error) {
		return tracker.DeleteMood(doc, date)
	})
}

func (s *TrackerService) AddPhoto(ctx context.Context, image io.Reader) (*Snapshot, error) {
	dataURL, err := s.images.Compress(image, imaging.JournalOptions)
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	return s.mutate(ctx, "add_photo", func(doc *entity.AppState, now time.Time) (*entity.AppState, error) {
		return tracker.AddPhoto(doc, id, dataURL, now), nil
	})
}

func (s *TrackerService) DeletePhoto(ctx context.Context, id string) (*Snapshot, error) {
	return s.mutate(ctx, "delete_photo", func(doc *entity.AppState, _ time.Time) (*entity.AppState, error) {
		return tracker.DeletePhoto(doc, id)
	})
}

func (s *TrackerService) SetUserName(ctx context.Context, req *NameRequest) (*Snapshot, error) {
	trimmed := NameRequest{Name: strings.TrimSpace(req.Name)}
	if err := validateRequest(&trimmed); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "set_user_name", pure(func(doc *entity.AppState) *entity.AppState {
		return tracker.SetUserName(doc, trimmed.Name)
	}))
}

func (s *TrackerService) SetUserPhoto(ctx context.Context, image io.Reader) (*Snapshot, error) {
	dataURL, err := s.images.Compress(image, imaging.ProfileOptions)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, "set_user_photo", pure(func(doc *entity.AppState) *entity.AppState {
		return tracker.SetUserPhoto(doc, dataURL)
	}))
}

func (s *TrackerService) RemoveUserPhoto(ctx context.Context) (*Snapshot, error) {
	return s.mutate(ctx, "remove_user_photo", pure(func(doc *entity.AppState) *entity.AppState {
		return tracker.SetUserPhoto(doc, "")
	}))
}

func (s *TrackerService) Buy(ctx context.Context, itemID string) (*PurchaseResult, error) {
	var item entity.StoreItem
	snap, err := s.mutate(ctx, "buy", func(doc *entity.AppState, _ time.Time) (*entity.AppState, error) {
		next, bought, err := tracker.Buy(doc, itemID)
		item = bought
		return next, err
	})
	if snap == nil {
		return nil, err
	}
	return &PurchaseResult{Snapshot: snap, Item: item}, err
}

func (s *TrackerService) ToggleEquip(ctx context.Context, itemID string) (*EquipResult, error) {
	var equipped bool
	snap, err := s.mutate(ctx, "toggle_equip", func(doc *entity.AppState, _ time.Time) (*entity.AppState, error) {
		next, on, err := tracker.ToggleEquip(doc, itemID)
		equipped = on
		return next, err
	})
	if snap == nil {
		return nil, err
	}
	return &EquipResult{Snapshot: snap, Equipped: equipped}, err
}

func (s *TrackerService) EnableNotifications(ctx context.Context) (*Snapshot, error) {
	if s.notifier == nil {
		return nil, errorvalues.ErrNotificationsUnsupported
	}
	perm, err := s.notifier.RequestPermission(ctx)
	if err != nil {
		return nil, err
	}
	if perm != notify.PermissionGranted {
		return nil, errorvalues.ErrPermissionDenied
	}
	snap, err := s.mutate(ctx, "enable_notifications", pure(func(doc *entity.AppState) *entity.AppState {
		return tracker.SetNotificationsEnabled(doc, true)
	}))
	if snap == nil {
		return nil, err
	}
	if nerr := s.notifier.Notify(ctx, WelcomeTitle, WelcomeBody); nerr != nil {
		s.logger.Warn("welcome notification failed", slog.String("error", nerr.Error()))
	}
	return snap, err
}

func (s *TrackerService) DisableNotifications(ctx context.Context) (*Snapshot, error) {
	return s.mutate(ctx, "disable_notifications", pure(func(doc *entity.AppState) *entity.AppState {
		return tracker.SetNotificationsEnabled(doc, false)
	}))
}

// CheckNotifications delivers every due reminder. A window is stamped only
// after its message went out, so failed deliveries are retried on the next
// check.
func (s *TrackerService) CheckNotifications(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock()
	doc, changed := tracker.Reconcile(s.doc, now)
	s.doc = doc
	if s.notifier == nil || s.notifier.Permission() != notify.PermissionGranted {
		if changed {
			return s.persistLocked(ctx)
		}
		return nil
	}
	var errs []error
	for _, d := range tracker.EvaluateNotifications(doc, now) {
		if err := s.notifier.Notify(ctx, d.Title, d.Body); err != nil {
			errs = append(errs, fmt.Errorf("%s notification: %w", d.Window, err))
			continue
		}
		metrics.NotificationsSent.WithLabelValues(string(d.Window)).Inc()
		s.doc = tracker.StampNotification(s.doc, d.Window, tracker.DateKey(now))
		changed = true
	}
	if changed {
		if err := s.persistLocked(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var _ TrackerServiceI = (*TrackerService)(nil)

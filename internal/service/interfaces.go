package service

import (
	"context"
	"io"

	"github.com/limbo/rexfit/internal/tracker"
	"github.com/limbo/rexfit/pkg/entity"
)

type ScheduleRequest struct {
	Day     int                `json:"day" validate:"gte=0,lte=6"`
	Routine entity.RoutineType `json:"routine" validate:"required,routine"`
}

type WaterRequest struct {
	DeltaMl int `json:"delta_ml" validate:"ne=0,gte=-5000,lte=5000"`
}

type WeightRequest struct {
	Weight float64 `json:"weight" validate:"gte=40,lte=300"`
}

type HeightRequest struct {
	Height float64 `json:"height" validate:"gt=50,lt=300"`
}

type MoodRequest struct {
	Mood entity.Mood `json:"mood" validate:"required,mood"`
}

type NameRequest struct {
	Name string `json:"name" validate:"required,max=40"`
}

// Snapshot is the document together with everything derived from it.
type Snapshot struct {
	State   *entity.AppState `json:"state"`
	Summary tracker.Summary  `json:"summary"`
}

type ExerciseResult struct {
	*Snapshot
	Completed bool   `json:"completed"`
	Phrase    string `json:"phrase,omitempty"`
}

type CheckInResult struct {
	*Snapshot
	BonusPaid bool   `json:"bonus_paid"`
	Quote     string `json:"quote"`
}

type PurchaseResult struct {
	*Snapshot
	Item entity.StoreItem `json:"item"`
}

type EquipResult struct {
	*Snapshot
	Equipped bool `json:"equipped"`
}

// Every mutation reconciles the day first and persists afterwards. When only
// persisting fails, the result is returned together with an error wrapping
// ErrPersistFailed and the change stays in memory.
//
//go:generate mockgen -source=interfaces.go -destination=mocks/service_mock.go -package=mocks
type TrackerServiceI interface {
	// Current document after day reconciliation
	State(ctx context.Context) (*Snapshot, error)
	// Encoded document, as stored
	Export(ctx context.Context) ([]byte, error)

	CycleRoutine(ctx context.Context) (*Snapshot, error)
	UpdateSchedule(ctx context.Context, req *ScheduleRequest) (*Snapshot, error)
	ToggleExercise(ctx context.Context, exerciseID string) (*ExerciseResult, error)
	ToggleRestDayActivity(ctx context.Context) (*Snapshot, error)
	AddWater(ctx context.Context, req *WaterRequest) (*Snapshot, error)

	AddWeight(ctx context.Context, req *WeightRequest) (*Snapshot, error)
	SetHeight(ctx context.Context, req *HeightRequest) (*Snapshot, error)
	SaveMood(ctx context.Context, req *MoodRequest) (*CheckInResult, error)
	DeleteMood(ctx context.Context, date string) (*Snapshot, error)
	AddPhoto(ctx context.Context, image io.Reader) (*Snapshot, error)
	DeletePhoto(ctx context.Context, id string) (*Snapshot, error)
	SetUserName(ctx context.Context, req *NameRequest) (*Snapshot, error)
	SetUserPhoto(ctx context.Context, image io.Reader) (*Snapshot, error)
	RemoveUserPhoto(ctx context.Context) (*Snapshot, error)

	Buy(ctx context.Context, itemID string) (*PurchaseResult, error)
	ToggleEquip(ctx context.Context, itemID string) (*EquipResult, error)

	// Asks the notifier for permission and greets on success
	EnableNotifications(ctx context.Context) (*Snapshot, error)
	DisableNotifications(ctx context.Context) (*Snapshot, error)
	// Delivers due reminders and stamps their windows
	CheckNotifications(ctx context.Context) error
}

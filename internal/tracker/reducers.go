// Package tracker holds the state transitions of the fitness document. Every
// function here is pure: it takes the current document and returns a new one,
// leaving the input untouched. Storage and clocks live with the caller.
package tracker

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/limbo/rexfit/internal/catalog"
	errorvalues "github.com/limbo/rexfit/internal/error_values"
	"github.com/limbo/rexfit/pkg/entity"
)

const (
	ExerciseReward = 1
	CheckInReward  = 10
)

// ScheduledRoutine is the routine the schedule assigns to now's weekday.
func ScheduledRoutine(doc *entity.AppState, now time.Time) entity.RoutineType {
	routine := doc.Schedule[now.Weekday()]
	if !routine.Valid() {
		return entity.RoutineRest
	}
	return routine
}

// Reconcile aligns today's progress with the calendar and the schedule. A new
// date starts a fresh progress record. An edited schedule on the same date
// clears completed exercises, since ids differ between routines, but keeps the
// water intake. The second result reports whether anything changed.
func Reconcile(doc *entity.AppState, now time.Time) (*entity.AppState, bool) {
	today := DateKey(now)
	scheduled := ScheduledRoutine(doc, now)
	switch {
	case doc.Progress.Date != today:
		next := doc.Clone()
		next.CurrentRoutine = scheduled
		next.Progress = entity.DailyProgress{
			Date:                 today,
			RoutineID:            scheduled,
			CompletedExerciseIDs: []string{},
		}
		return next, true
	case doc.Progress.RoutineID != scheduled:
		next := doc.Clone()
		next.CurrentRoutine = scheduled
		next.Progress.RoutineID = scheduled
		next.Progress.CompletedExerciseIDs = []string{}
		return next, true
	case doc.CurrentRoutine != scheduled:
		next := doc.Clone()
		next.CurrentRoutine = scheduled
		return next, true
	}
	return doc, false
}

// NextRoutine is the manual cycle A → B → Rest → A.
func NextRoutine(current entity.RoutineType) entity.RoutineType {
	switch current {
	case entity.RoutineA:
		return entity.RoutineB
	case entity.RoutineB:
		return entity.RoutineRest
	}
	return entity.RoutineA
}

// CycleRoutine advances today's routine and rewrites today's schedule entry.
func CycleRoutine(doc *entity.AppState, now time.Time) *entity.AppState {
	next := doc.Clone()
	routine := NextRoutine(doc.CurrentRoutine)
	next.CurrentRoutine = routine
	next.Schedule[now.Weekday()] = routine
	next.Progress.RoutineID = routine
	next.Progress.CompletedExerciseIDs = []string{}
	next.Progress.RestDayActivity = false
	return next
}

// UpdateSchedule assigns a routine to a weekday. Reconcile picks the change up
// when it concerns today.
func UpdateSchedule(doc *entity.AppState, weekday int, routine entity.RoutineType) (*entity.AppState, error) {
	if weekday < 0 || weekday > 6 {
		return doc, fmt.Errorf("%w: weekday %d", errorvalues.ErrInvalidInput, weekday)
	}
	if !routine.Valid() {
		return doc, fmt.Errorf("%w: routine %q", errorvalues.ErrInvalidInput, routine)
	}
	next := doc.Clone()
	next.Schedule[weekday] = routine
	return next, nil
}

// ToggleExercise marks an exercise of today's routine done or undone. Each
// completion earns a bone and each undo takes one back, never below zero.
func ToggleExercise(doc *entity.AppState, exerciseID string) (*entity.AppState, bool, error) {
	routine, ok := catalog.Routine(doc.Progress.RoutineID)
	if !ok || !slices.ContainsFunc(routine.Exercises, func(e entity.Exercise) bool { return e.ID == exerciseID }) {
		return doc, false, fmt.Errorf("%w: %q", errorvalues.ErrUnknownExercise, exerciseID)
	}
	next := doc.Clone()
	idx := slices.Index(next.Progress.CompletedExerciseIDs, exerciseID)
	if idx >= 0 {
		next.Progress.CompletedExerciseIDs = slices.Delete(next.Progress.CompletedExerciseIDs, idx, idx+1)
		next.Wallet = max(0, next.Wallet-ExerciseReward)
		return next, false, nil
	}
	next.Progress.CompletedExerciseIDs = append(next.Progress.CompletedExerciseIDs, exerciseID)
	next.Wallet += ExerciseReward
	return next, true, nil
}

func ToggleRestDayActivity(doc *entity.AppState) *entity.AppState {
	next := doc.Clone()
	next.Progress.RestDayActivity = !doc.Progress.RestDayActivity
	return next
}

// AddWater applies a signed delta to today's intake, floored at zero, and
// mirrors the total into the water history.
func AddWater(doc *entity.AppState, deltaMl int) *entity.AppState {
	next := doc.Clone()
	next.Progress.WaterIntakeMl = max(0, doc.Progress.WaterIntakeMl+deltaMl)
	if deltaMl > 0 {
		next.WaterAdds++
	}
	entry := entity.WaterEntry{Date: doc.Progress.Date, Ml: next.Progress.WaterIntakeMl}
	next.WaterHistory = upsert(next.WaterHistory, entry, func(e entity.WaterEntry) bool { return e.Date == entry.Date })
	return next
}

// AddWeight records today's weight, replacing an earlier entry of the same day.
func AddWeight(doc *entity.AppState, weightKg float64, now time.Time) *entity.AppState {
	next := doc.Clone()
	entry := entity.WeightEntry{Date: DateKey(now), Weight: weightKg}
	next.WeightHistory = upsert(next.WeightHistory, entry, func(e entity.WeightEntry) bool { return e.Date == entry.Date })
	return next
}

func SetHeight(doc *entity.AppState, heightCm float64) *entity.AppState {
	next := doc.Clone()
	next.Height = heightCm
	return next
}

// SaveMood records today's check-in. The bonus is paid only when today had no
// check-in before this write. The second result reports whether it was paid.
func SaveMood(doc *entity.AppState, mood entity.Mood, now time.Time) (*entity.AppState, bool) {
	today := DateKey(now)
	first := !slices.ContainsFunc(doc.MoodHistory, func(e entity.MoodEntry) bool { return e.Date == today })
	next := doc.Clone()
	entry := entity.MoodEntry{
		Date:      today,
		Mood:      mood,
		RoutineID: doc.Progress.RoutineID,
		LoggedAt:  now.Format(time.RFC3339),
	}
	next.MoodHistory = upsert(next.MoodHistory, entry, func(e entity.MoodEntry) bool { return e.Date == today })
	if first {
		next.Wallet += CheckInReward
	}
	return next, first
}

func DeleteMood(doc *entity.AppState, date string) (*entity.AppState, error) {
	idx := slices.IndexFunc(doc.MoodHistory, func(e entity.MoodEntry) bool { return e.Date == date })
	if idx < 0 {
		return doc, fmt.Errorf("%w: %s", errorvalues.ErrMoodNotFound, date)
	}
	next := doc.Clone()
	next.MoodHistory = slices.Delete(next.MoodHistory, idx, idx+1)
	return next, nil
}

// AddPhoto puts a new journal entry in front of the older ones.
func AddPhoto(doc *entity.AppState, id, dataURL string, now time.Time) *entity.AppState {
	next := doc.Clone()
	entry := entity.PhotoEntry{ID: id, Date: now.Format(time.RFC3339), DataURL: dataURL}
	next.PhotoJournal = append([]entity.PhotoEntry{entry}, next.PhotoJournal...)
	return next
}

func DeletePhoto(doc *entity.AppState, id string) (*entity.AppState, error) {
	idx := slices.IndexFunc(doc.PhotoJournal, func(e entity.PhotoEntry) bool { return e.ID == id })
	if idx < 0 {
		return doc, fmt.Errorf("%w: %s", errorvalues.ErrPhotoNotFound, id)
	}
	next := doc.Clone()
	next.PhotoJournal = slices.Delete(next.PhotoJournal, idx, idx+1)
	return next, nil
}

func SetUserName(doc *entity.AppState, name string) *entity.AppState {
	next := doc.Clone()
	next.UserName = strings.TrimSpace(name)
	return next
}

// SetUserPhoto replaces the profile photo. An empty data URL removes it.
func SetUserPhoto(doc *entity.AppState, dataURL string) *entity.AppState {
	next := doc.Clone()
	next.UserPhoto = dataURL
	return next
}

// Buy spends bones on a market item. Food is eaten on the spot and can be
// bought again; everything else goes to the inventory once.
func Buy(doc *entity.AppState, itemID string) (*entity.AppState, entity.StoreItem, error) {
	item, ok := catalog.Item(itemID)
	if !ok {
		return doc, item, fmt.Errorf("%w: %q", errorvalues.ErrUnknownItem, itemID)
	}
	if doc.Wallet < item.Cost {
		return doc, item, fmt.Errorf("%w: have %d, need %d", errorvalues.ErrInsufficientFunds, doc.Wallet, item.Cost)
	}
	if !item.Consumable() && slices.Contains(doc.Inventory, item.ID) {
		return doc, item, fmt.Errorf("%w: %q", errorvalues.ErrItemOwned, item.ID)
	}
	next := doc.Clone()
	next.Wallet -= item.Cost
	if !item.Consumable() {
		next.Inventory = append(next.Inventory, item.ID)
	}
	return next, item, nil
}

// ToggleEquip puts an owned item on Rex or takes it off. Putting an item on
// takes off whatever else occupies the same slot.
func ToggleEquip(doc *entity.AppState, itemID string) (*entity.AppState, bool, error) {
	item, ok := catalog.Item(itemID)
	if !ok {
		return doc, false, fmt.Errorf("%w: %q", errorvalues.ErrUnknownItem, itemID)
	}
	if item.Consumable() {
		return doc, false, fmt.Errorf("%w: %q", errorvalues.ErrNotEquippable, itemID)
	}
	if !slices.Contains(doc.Inventory, item.ID) {
		return doc, false, fmt.Errorf("%w: %q", errorvalues.ErrItemNotOwned, itemID)
	}
	next := doc.Clone()
	if slices.Contains(next.EquippedItems, item.ID) {
		next.EquippedItems = slices.DeleteFunc(next.EquippedItems, func(id string) bool { return id == item.ID })
		return next, false, nil
	}
	next.EquippedItems = slices.DeleteFunc(next.EquippedItems, func(id string) bool {
		other, ok := catalog.Item(id)
		return ok && other.Type == item.Type
	})
	next.EquippedItems = append(next.EquippedItems, item.ID)
	return next, true, nil
}

func SetNotificationsEnabled(doc *entity.AppState, enabled bool) *entity.AppState {
	next := doc.Clone()
	next.Notifications.Enabled = enabled
	return next
}

// upsert drops the entries matching same and appends entry.
func upsert[T any](entries []T, entry T, same func(T) bool) []T {
	return append(slices.DeleteFunc(entries, same), entry)
}

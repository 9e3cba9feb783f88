package tracker

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/rexfit/internal/catalog"
	errorvalues "github.com/limbo/rexfit/internal/error_values"
	"github.com/limbo/rexfit/pkg/entity"
)

// Default builds the document a fresh install starts with.
func Default(now time.Time) *entity.AppState {
	today := DateKey(now)
	routine := catalog.DefaultSchedule[now.Weekday()]
	return &entity.AppState{
		WeightHistory:  []entity.WeightEntry{{Date: today, Weight: catalog.InitialWeightKg}},
		PhotoJournal:   []entity.PhotoEntry{},
		MoodHistory:    []entity.MoodEntry{},
		WaterHistory:   []entity.WaterEntry{},
		CurrentRoutine: routine,
		Schedule:       catalog.DefaultSchedule,
		Progress: entity.DailyProgress{
			Date:                 today,
			RoutineID:            routine,
			CompletedExerciseIDs: []string{},
		},
		Height:        catalog.DefaultHeightCm,
		Inventory:     []string{},
		EquippedItems: []string{},
	}
}

// Encode serializes the whole document.
func Encode(doc *entity.AppState) ([]byte, error) {
	data, err := sonic.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

// Decode merges a stored snapshot over the default document. Every top-level
// field is decoded on its own: a malformed field keeps its default and a
// malformed list element is dropped. Only a snapshot that isn't a JSON object
// at all fails, and even then the default document is returned with the error.
func Decode(data []byte, now time.Time) (*entity.AppState, error) {
	doc := Default(now)
	var raw map[string]json.RawMessage
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return doc, fmt.Errorf("%w: %w", errorvalues.ErrCorruptSnapshot, err)
	}
	if raw == nil {
		return doc, fmt.Errorf("%w: document is null", errorvalues.ErrCorruptSnapshot)
	}

	decodeList(raw["weightHistory"], &doc.WeightHistory, func(e entity.WeightEntry) bool {
		_, ok := ParseDate(e.Date)
		return ok && e.Weight > 0
	})
	decodeList(raw["photoJournal"], &doc.PhotoJournal, func(e entity.PhotoEntry) bool {
		return e.ID != "" && e.DataURL != ""
	})
	decodeList(raw["moodHistory"], &doc.MoodHistory, func(e entity.MoodEntry) bool {
		_, ok := ParseDate(e.Date)
		return ok && e.Mood.Valid() && (e.RoutineID == "" || e.RoutineID.Valid())
	})
	decodeList(raw["waterHistory"], &doc.WaterHistory, func(e entity.WaterEntry) bool {
		_, ok := ParseDate(e.Date)
		return ok && e.Ml >= 0
	})
	decodeList(raw["inventory"], &doc.Inventory, func(id string) bool { return id != "" })
	decodeList(raw["equippedItems"], &doc.EquippedItems, func(id string) bool { return id != "" })

	decodeValue(raw["waterAdds"], &doc.WaterAdds, func(n int) bool { return n >= 0 })
	decodeValue(raw["currentRoutine"], &doc.CurrentRoutine, entity.RoutineType.Valid)
	decodeValue(raw["height"], &doc.Height, func(h float64) bool { return h > 0 })
	decodeValue(raw["userName"], &doc.UserName, nil)
	decodeValue(raw["userPhoto"], &doc.UserPhoto, nil)
	decodeValue(raw["wallet"], &doc.Wallet, nil)

	if v, ok := raw["schedule"]; ok {
		schedule := doc.Schedule
		if err := sonic.Unmarshal(v, &schedule); err == nil {
			doc.Schedule = schedule
		}
	}
	if v, ok := raw["notifications"]; ok {
		decodeNotifications(v, &doc.Notifications)
	}
	if v, ok := raw["progress"]; ok {
		decodeProgress(v, &doc.Progress)
	}

	Normalize(doc)
	return doc, nil
}

func decodeNotifications(data json.RawMessage, dst *entity.NotificationState) {
	var raw map[string]json.RawMessage
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return
	}
	decodeValue(raw["enabled"], &dst.Enabled, nil)
	decodeValue(raw["morningSentDate"], &dst.MorningSentDate, nil)
	decodeValue(raw["afternoonSentDate"], &dst.AfternoonSentDate, nil)
	decodeValue(raw["eveningSentDate"], &dst.EveningSentDate, nil)
}

func decodeProgress(data json.RawMessage, dst *entity.DailyProgress) {
	var raw map[string]json.RawMessage
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return
	}
	decodeValue(raw["date"], &dst.Date, func(s string) bool {
		_, ok := ParseDate(s)
		return ok
	})
	decodeValue(raw["routineId"], &dst.RoutineID, entity.RoutineType.Valid)
	decodeList(raw["completedExerciseIds"], &dst.CompletedExerciseIDs, func(id string) bool { return id != "" })
	decodeValue(raw["waterIntakeMl"], &dst.WaterIntakeMl, nil)
	decodeValue(raw["restDayActivity"], &dst.RestDayActivity, nil)
}

// decodeValue overwrites dst only when data holds a valid T.
func decodeValue[T any](data json.RawMessage, dst *T, valid func(T) bool) {
	if len(data) == 0 {
		return
	}
	var v T
	if err := sonic.Unmarshal(data, &v); err != nil {
		return
	}
	if valid != nil && !valid(v) {
		return
	}
	*dst = v
}

// decodeList replaces dst with the valid elements of data when data is an array.
func decodeList[T any](data json.RawMessage, dst *[]T, valid func(T) bool) {
	if len(data) == 0 {
		return
	}
	var items []json.RawMessage
	if err := sonic.Unmarshal(data, &items); err != nil || items == nil {
		return
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		var v T
		if err := sonic.Unmarshal(item, &v); err != nil {
			continue
		}
		if valid != nil && !valid(v) {
			continue
		}
		out = append(out, v)
	}
	*dst = out
}

// Normalize re-establishes the document invariants in place: one history
// entry per date (the later write wins), no negative wallet or water, unique
// inventory, and at most one equipped item per slot. History dates stored as
// timestamps are cut down to their calendar date first.
func Normalize(doc *entity.AppState) {
	for i := range doc.WeightHistory {
		doc.WeightHistory[i].Date = dateOnly(doc.WeightHistory[i].Date)
	}
	for i := range doc.MoodHistory {
		doc.MoodHistory[i].Date = dateOnly(doc.MoodHistory[i].Date)
	}
	for i := range doc.WaterHistory {
		doc.WaterHistory[i].Date = dateOnly(doc.WaterHistory[i].Date)
	}
	doc.WeightHistory = dedupeByDate(doc.WeightHistory, func(e entity.WeightEntry) string { return e.Date })
	doc.MoodHistory = dedupeByDate(doc.MoodHistory, func(e entity.MoodEntry) string { return e.Date })
	doc.WaterHistory = dedupeByDate(doc.WaterHistory, func(e entity.WaterEntry) string { return e.Date })
	if doc.PhotoJournal == nil {
		doc.PhotoJournal = []entity.PhotoEntry{}
	}
	if doc.Wallet < 0 {
		doc.Wallet = 0
	}
	if doc.WaterAdds < 0 {
		doc.WaterAdds = 0
	}
	if doc.Progress.WaterIntakeMl < 0 {
		doc.Progress.WaterIntakeMl = 0
	}
	doc.Progress.CompletedExerciseIDs = dedupe(doc.Progress.CompletedExerciseIDs)

	inventory := make([]string, 0, len(doc.Inventory))
	for _, id := range dedupe(doc.Inventory) {
		if item, ok := catalog.Item(id); ok && item.Consumable() {
			continue
		}
		inventory = append(inventory, id)
	}
	doc.Inventory = inventory

	equipped := dedupe(doc.EquippedItems)
	slots := make(map[entity.ItemType]bool)
	kept := make([]string, 0, len(equipped))
	for i := len(equipped) - 1; i >= 0; i-- {
		item, ok := catalog.Item(equipped[i])
		if ok {
			if item.Consumable() || slots[item.Type] {
				continue
			}
			slots[item.Type] = true
		}
		kept = append(kept, equipped[i])
	}
	slices.Reverse(kept)
	doc.EquippedItems = kept
}

func dateOnly(s string) string {
	if d, ok := ParseDate(s); ok {
		return DateKey(d)
	}
	return s
}

func dedupeByDate[T any](entries []T, date func(T) string) []T {
	seen := make(map[string]bool, len(entries))
	out := make([]T, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		d := date(entries[i])
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, entries[i])
	}
	slices.Reverse(out)
	return out
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

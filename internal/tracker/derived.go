package tracker

import (
	"math"
	"slices"
	"time"

	"github.com/limbo/rexfit/internal/catalog"
	"github.com/limbo/rexfit/pkg/entity"
)

const (
	WeighInIntervalDays = 7
	CheckInsPerLevel    = 5
	// noWeighInDays is reported when the weight history is empty.
	noWeighInDays = 100
)

// CompletionPercent is today's progress: the share of the routine's exercises
// done, or all-or-nothing on the rest day activity.
func CompletionPercent(doc *entity.AppState) int {
	if doc.Progress.RoutineID == entity.RoutineRest {
		if doc.Progress.RestDayActivity {
			return 100
		}
		return 0
	}
	routine, ok := catalog.Routine(doc.Progress.RoutineID)
	if !ok || len(routine.Exercises) == 0 {
		return 0
	}
	ratio := float64(len(doc.Progress.CompletedExerciseIDs)) / float64(len(routine.Exercises))
	return int(math.Round(ratio * 100))
}

// LatestWeight is the most recently dated entry. Entries sharing a date can't
// exist, so the order of the history doesn't matter.
func LatestWeight(history []entity.WeightEntry) (entity.WeightEntry, bool) {
	if len(history) == 0 {
		return entity.WeightEntry{}, false
	}
	latest := history[0]
	for _, e := range history[1:] {
		if e.Date >= latest.Date {
			latest = e
		}
	}
	return latest, true
}

func DaysSinceLastWeighIn(doc *entity.AppState, now time.Time) int {
	latest, ok := LatestWeight(doc.WeightHistory)
	if !ok {
		return noWeighInDays
	}
	last, ok := ParseDate(latest.Date)
	if !ok {
		return noWeighInDays
	}
	days := daysBetween(last, civilDate(now))
	if days < 0 {
		return -days
	}
	return days
}

func NeedsWeighIn(doc *entity.AppState, now time.Time) bool {
	return DaysSinceLastWeighIn(doc, now) >= WeighInIntervalDays
}

// Streak counts consecutive ISO weeks with at least one check-in, ending with
// the latest such week. The streak is broken when the latest such week is
// neither the current week nor the one before it.
func Streak(history []entity.MoodEntry, now time.Time) int {
	seen := make(map[time.Time]bool)
	weeks := make([]time.Time, 0, len(history))
	for _, e := range history {
		d, ok := ParseDate(e.Date)
		if !ok {
			continue
		}
		ws := weekStart(d)
		if seen[ws] {
			continue
		}
		seen[ws] = true
		weeks = append(weeks, ws)
	}
	if len(weeks) == 0 {
		return 0
	}
	slices.SortFunc(weeks, func(a, b time.Time) int { return a.Compare(b) })

	current := weekStart(civilDate(now))
	last := weeks[len(weeks)-1]
	if daysBetween(last, current) > 7 {
		return 0
	}
	streak := 1
	for i := len(weeks) - 1; i > 0; i-- {
		gap := daysBetween(weeks[i-1], weeks[i])
		if gap < 6 || gap > 8 {
			break
		}
		streak++
	}
	return streak
}

// Level derives the level and the percentage towards the next one from the
// total number of check-ins.
func Level(checkIns int) (int, float64) {
	level := checkIns/CheckInsPerLevel + 1
	progress := float64(checkIns%CheckInsPerLevel) / CheckInsPerLevel * 100
	return level, progress
}

// HydrationPercent is today's intake against the daily goal, capped at 100.
func HydrationPercent(doc *entity.AppState) int {
	p := int(math.Round(float64(doc.Progress.WaterIntakeMl) / catalog.DailyWaterGoalMl * 100))
	return min(p, 100)
}

type BodyStats struct {
	CurrentWeight float64 `json:"current_weight"`
	TotalLoss     float64 `json:"total_loss"`
	BMI           float64 `json:"bmi"`
	BMILabel      string  `json:"bmi_label"`
}

func Body(doc *entity.AppState) BodyStats {
	current := catalog.InitialWeightKg
	if latest, ok := LatestWeight(doc.WeightHistory); ok {
		current = latest.Weight
	}
	stats := BodyStats{
		CurrentWeight: current,
		TotalLoss:     catalog.InitialWeightKg - current,
	}
	if doc.Height > 0 {
		m := doc.Height / 100
		stats.BMI = current / (m * m)
		stats.BMILabel = BMICategory(stats.BMI)
	}
	return stats
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Healthy"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// TodayMood returns today's check-in, if any.
func TodayMood(doc *entity.AppState, now time.Time) (entity.Mood, bool) {
	today := DateKey(now)
	for _, e := range doc.MoodHistory {
		if e.Date == today {
			return e.Mood, true
		}
	}
	return "", false
}

func CheckedInToday(doc *entity.AppState, now time.Time) bool {
	_, ok := TodayMood(doc, now)
	return ok
}

// Summary bundles every derived value a view needs. It is never stored.
type Summary struct {
	CompletionPercent    int                    `json:"completion_percent"`
	HydrationPercent     int                    `json:"hydration_percent"`
	DaysSinceLastWeighIn int                    `json:"days_since_last_weigh_in"`
	NeedsWeighIn         bool                   `json:"needs_weigh_in"`
	Streak               int                    `json:"streak"`
	TotalCheckIns        int                    `json:"total_check_ins"`
	Level                int                    `json:"level"`
	LevelProgress        float64                `json:"level_progress"`
	TodayMood            entity.Mood            `json:"today_mood,omitempty"`
	Body                 BodyStats              `json:"body"`
	Routine              *entity.WorkoutRoutine `json:"routine,omitempty"`
	Achievements         []AchievementStatus    `json:"achievements"`
	UnlockedAchievements int                    `json:"unlocked_achievements"`
}

func Summarize(doc *entity.AppState, now time.Time) Summary {
	level, progress := Level(len(doc.MoodHistory))
	achievements := EvaluateAchievements(doc)
	unlocked := 0
	for _, a := range achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	mood, _ := TodayMood(doc, now)
	routine, _ := catalog.Routine(doc.Progress.RoutineID)
	return Summary{
		CompletionPercent:    CompletionPercent(doc),
		HydrationPercent:     HydrationPercent(doc),
		DaysSinceLastWeighIn: DaysSinceLastWeighIn(doc, now),
		NeedsWeighIn:         NeedsWeighIn(doc, now),
		Streak:               Streak(doc.MoodHistory, now),
		TotalCheckIns:        len(doc.MoodHistory),
		Level:                level,
		LevelProgress:        progress,
		TodayMood:            mood,
		Body:                 Body(doc),
		Routine:              routine,
		Achievements:         achievements,
		UnlockedAchievements: unlocked,
	}
}

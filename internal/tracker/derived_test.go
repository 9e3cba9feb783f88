package tracker_test

import (
	"testing"
	"time"

	"github.com/limbo/rexfit/internal/tracker"
	"github.com/limbo/rexfit/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t.Add(12 * time.Hour)
}

func moods(dates ...string) []entity.MoodEntry {
	out := make([]entity.MoodEntry, 0, len(dates))
	for _, d := range dates {
		out = append(out, entity.MoodEntry{Date: d, Mood: entity.MoodGood})
	}
	return out
}

func TestStreak(t *testing.T) {
	testCases := []struct {
		Desc    string
		History []entity.MoodEntry
		Now     time.Time
		Want    int
	}{
		{Desc: "no check-ins", History: nil, Now: day("2024-01-16"), Want: 0},
		{Desc: "three consecutive weeks", History: moods("2024-01-01", "2024-01-08", "2024-01-15"), Now: day("2024-01-16"), Want: 3},
		{Desc: "several check-ins in one week count once", History: moods("2024-01-08", "2024-01-09", "2024-01-14", "2024-01-15"), Now: day("2024-01-15"), Want: 2},
		{Desc: "gap breaks the run", History: moods("2024-01-01", "2024-01-15"), Now: day("2024-01-16"), Want: 1},
		{Desc: "last week still counts", History: moods("2024-01-01", "2024-01-08"), Now: day("2024-01-17"), Want: 2},
		{Desc: "two weeks ago is broken", History: moods("2024-01-01", "2024-01-08"), Now: day("2024-01-22"), Want: 0},
		{Desc: "history order doesn't matter", History: moods("2024-01-15", "2024-01-01", "2024-01-08"), Now: day("2024-01-21"), Want: 3},
		{Desc: "malformed dates are ignored", History: moods("someday", "2024-01-15"), Now: day("2024-01-16"), Want: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Want, tracker.Streak(tc.History, tc.Now))
		})
	}
}

func TestLevel(t *testing.T) {
	testCases := []struct {
		CheckIns     int
		WantLevel    int
		WantProgress float64
	}{
		{CheckIns: 0, WantLevel: 1, WantProgress: 0},
		{CheckIns: 4, WantLevel: 1, WantProgress: 80},
		{CheckIns: 5, WantLevel: 2, WantProgress: 0},
		{CheckIns: 7, WantLevel: 2, WantProgress: 40},
		{CheckIns: 45, WantLevel: 10, WantProgress: 0},
	}
	for _, tc := range testCases {
		level, progress := tracker.Level(tc.CheckIns)
		assert.Equal(t, tc.WantLevel, level, "check-ins %d", tc.CheckIns)
		assert.InDelta(t, tc.WantProgress, progress, 1e-9, "check-ins %d", tc.CheckIns)
	}
}

func TestWeighIn(t *testing.T) {
	doc := tracker.Default(day("2024-01-01"))
	doc.WeightHistory = []entity.WeightEntry{{Date: "2024-01-01", Weight: 99}}

	assert.Equal(t, 6, tracker.DaysSinceLastWeighIn(doc, day("2024-01-07")))
	assert.False(t, tracker.NeedsWeighIn(doc, day("2024-01-07")))
	assert.Equal(t, 7, tracker.DaysSinceLastWeighIn(doc, day("2024-01-08")))
	assert.True(t, tracker.NeedsWeighIn(doc, day("2024-01-08")))

	// Late evening and early morning are still one calendar day apart.
	late := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	doc = tracker.AddWeight(doc, 98, late)
	assert.Equal(t, 1, tracker.DaysSinceLastWeighIn(doc, time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC)))

	doc.WeightHistory = nil
	assert.Equal(t, 100, tracker.DaysSinceLastWeighIn(doc, day("2024-01-08")))
	assert.True(t, tracker.NeedsWeighIn(doc, day("2024-01-08")))
}

func TestCompletionPercent(t *testing.T) {
	doc := tracker.Default(day("2024-01-01"))
	doc.Progress.RoutineID = entity.RoutineRest
	assert.Equal(t, 0, tracker.CompletionPercent(doc))
	doc = tracker.ToggleRestDayActivity(doc)
	assert.Equal(t, 100, tracker.CompletionPercent(doc))

	doc.Progress.RoutineID = entity.RoutineA
	doc.Progress.CompletedExerciseIDs = []string{"wu-1"}
	assert.Equal(t, 7, tracker.CompletionPercent(doc))
	doc.Progress.CompletedExerciseIDs = []string{"wu-1", "wu-2", "wu-3", "wu-4", "wu-5", "a-1", "a-2"}
	assert.Equal(t, 50, tracker.CompletionPercent(doc))
}

func TestHydrationPercent(t *testing.T) {
	doc := tracker.Default(day("2024-01-01"))
	doc = tracker.AddWater(doc, 1500)
	assert.Equal(t, 50, tracker.HydrationPercent(doc))
	doc = tracker.AddWater(doc, 2000)
	assert.Equal(t, 100, tracker.HydrationPercent(doc))
}

func TestBody(t *testing.T) {
	doc := tracker.Default(day("2024-01-01"))
	doc = tracker.AddWeight(doc, 90, day("2024-01-08"))
	doc = tracker.AddWeight(doc, 95, day("2024-01-05"))

	stats := tracker.Body(doc)
	assert.Equal(t, 90.0, stats.CurrentWeight)
	assert.Equal(t, 10.0, stats.TotalLoss)
	assert.InDelta(t, 30.07, stats.BMI, 0.01)
	assert.Equal(t, "Obese", stats.BMILabel)

	assert.Equal(t, "Underweight", tracker.BMICategory(18))
	assert.Equal(t, "Healthy", tracker.BMICategory(22))
	assert.Equal(t, "Overweight", tracker.BMICategory(27.5))
}

func TestSummarize(t *testing.T) {
	now := day("2024-01-15")
	doc := tracker.Default(now)
	doc.MoodHistory = moods("2024-01-01", "2024-01-08", "2024-01-15")
	doc = tracker.AddWater(doc, 1000)

	s := tracker.Summarize(doc, now)
	assert.Equal(t, 3, s.Streak)
	assert.Equal(t, 3, s.TotalCheckIns)
	assert.Equal(t, 1, s.Level)
	assert.InDelta(t, 60.0, s.LevelProgress, 1e-9)
	assert.Equal(t, entity.MoodGood, s.TodayMood)
	assert.Equal(t, 33, s.HydrationPercent)
	assert.Equal(t, 0, s.DaysSinceLastWeighIn)
	assert.Len(t, s.Achievements, len(tracker.Achievements))
	assert.NotNil(t, s.Routine)
	assert.Equal(t, entity.RoutineA, s.Routine.ID)
}

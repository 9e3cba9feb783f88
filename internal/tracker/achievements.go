package tracker

import (
	"slices"
	"strings"
	"time"

	"github.com/limbo/rexfit/internal/catalog"
	"github.com/limbo/rexfit/pkg/entity"
)

// Achievement is unlocked while its condition holds. Nothing about unlocks is
// stored, so deleting history can lock an achievement again.
type Achievement struct {
	ID          string                      `json:"id"`
	Title       string                      `json:"title"`
	Description string                      `json:"description"`
	Icon        string                      `json:"icon"`
	Condition   func(*entity.AppState) bool `json:"-"`
}

type AchievementStatus struct {
	Achievement
	Unlocked bool `json:"unlocked"`
}

func EvaluateAchievements(doc *entity.AppState) []AchievementStatus {
	out := make([]AchievementStatus, len(Achievements))
	for i, a := range Achievements {
		out[i] = AchievementStatus{Achievement: a, Unlocked: a.Condition(doc)}
	}
	return out
}

func checkIns(n int) func(*entity.AppState) bool {
	return func(s *entity.AppState) bool { return len(s.MoodHistory) >= n }
}

func photos(n int) func(*entity.AppState) bool {
	return func(s *entity.AppState) bool { return len(s.PhotoJournal) >= n }
}

func weighIns(n int) func(*entity.AppState) bool {
	return func(s *entity.AppState) bool { return len(s.WeightHistory) >= n }
}

func lostAtLeast(kg float64) func(*entity.AppState) bool {
	return func(s *entity.AppState) bool {
		latest, ok := LatestWeight(s.WeightHistory)
		return ok && catalog.InitialWeightKg-latest.Weight >= kg
	}
}

func below(kg float64) func(*entity.AppState) bool {
	return func(s *entity.AppState) bool {
		latest, ok := LatestWeight(s.WeightHistory)
		return ok && latest.Weight < kg
	}
}

func moodCount(mood entity.Mood, n int) func(*entity.AppState) bool {
	return func(s *entity.AppState) bool {
		count := 0
		for _, e := range s.MoodHistory {
			if e.Mood == mood {
				count++
			}
		}
		return count >= n
	}
}

func checkedInOn(days ...time.Weekday) func(*entity.AppState) bool {
	return func(s *entity.AppState) bool {
		return slices.ContainsFunc(s.MoodHistory, func(e entity.MoodEntry) bool {
			d, ok := ParseDate(e.Date)
			return ok && slices.Contains(days, d.Weekday())
		})
	}
}

// finishedRoutine looks at the routine stamped on each check-in. Check-ins
// recorded before stamping fall back to the schedule of their weekday.
func finishedRoutine(routine entity.RoutineType) func(*entity.AppState) bool {
	return func(s *entity.AppState) bool {
		return slices.ContainsFunc(s.MoodHistory, func(e entity.MoodEntry) bool {
			if e.RoutineID != "" {
				return e.RoutineID == routine
			}
			d, ok := ParseDate(e.Date)
			return ok && s.Schedule[d.Weekday()] == routine
		})
	}
}

func loggedAt(match func(hour int) bool) func(*entity.AppState) bool {
	return func(s *entity.AppState) bool {
		return slices.ContainsFunc(s.MoodHistory, func(e entity.MoodEntry) bool {
			t, err := time.Parse(time.RFC3339, e.LoggedAt)
			return err == nil && match(t.Hour())
		})
	}
}

func completedOfType(kind entity.ExerciseType, n int) func(*entity.AppState) bool {
	return func(s *entity.AppState) bool {
		routine, ok := catalog.Routine(s.Progress.RoutineID)
		if !ok {
			return false
		}
		count := 0
		for _, ex := range routine.Exercises {
			if ex.Type == kind && slices.Contains(s.Progress.CompletedExerciseIDs, ex.ID) {
				count++
			}
		}
		return count >= n
	}
}

func workoutCompletion(percent int) func(*entity.AppState) bool {
	return func(s *entity.AppState) bool {
		return s.Progress.RoutineID.IsWorkout() && CompletionPercent(s) >= percent
	}
}

func waterToday(ml int) func(*entity.AppState) bool {
	return func(s *entity.AppState) bool { return s.Progress.WaterIntakeMl >= ml }
}

var Achievements = []Achievement{
	// Consistency
	{ID: "start", Title: "Puppy Steps", Description: "Complete your first workout.", Icon: "🏁", Condition: checkIns(1)},
	{ID: "w5", Title: "High Five", Description: "Complete 5 workouts.", Icon: "🖐️", Condition: checkIns(5)},
	{ID: "w10", Title: "Double Digits", Description: "Complete 10 workouts.", Icon: "🔟", Condition: checkIns(10)},
	{ID: "w20", Title: "Habit Former", Description: "Complete 20 workouts.", Icon: "📅", Condition: checkIns(20)},
	{ID: "w30", Title: "Monthly Warrior", Description: "Complete 30 workouts.", Icon: "⚔️", Condition: checkIns(30)},
	{ID: "w50", Title: "Golden Dog", Description: "Complete 50 workouts.", Icon: "🏆", Condition: checkIns(50)},
	{ID: "w75", Title: "Diamond Dog", Description: "Complete 75 workouts.", Icon: "💎", Condition: checkIns(75)},
	{ID: "w100", Title: "Centurion", Description: "Complete 100 workouts.", Icon: "💯", Condition: checkIns(100)},
	{ID: "level_5", Title: "Level 5", Description: "Reach Level 5.", Icon: "⭐", Condition: checkIns((5 - 1) * CheckInsPerLevel)},
	{ID: "level_10", Title: "Level 10", Description: "Reach Level 10.", Icon: "👑", Condition: checkIns((10 - 1) * CheckInsPerLevel)},

	// Routines
	{ID: "routine_a", Title: "A-Game", Description: "Finish Routine A.", Icon: "🅰️", Condition: finishedRoutine(entity.RoutineA)},
	{ID: "routine_b", Title: "Plan B", Description: "Finish Routine B.", Icon: "🅱️", Condition: finishedRoutine(entity.RoutineB)},
	{ID: "flexible", Title: "Flexible", Description: "Do a workout on the weekend.", Icon: "🧘", Condition: checkedInOn(time.Saturday, time.Sunday)},
	{ID: "early_bird", Title: "Early Bird", Description: "Log a workout before 10 AM.", Icon: "🌅", Condition: loggedAt(func(h int) bool { return h < 10 })},
	{ID: "night_owl", Title: "Night Owl", Description: "Log a workout after 8 PM.", Icon: "🦉", Condition: loggedAt(func(h int) bool { return h >= 20 })},

	// Weight loss
	{ID: "loss_1", Title: "Drop It!", Description: "Lose your first 1kg.", Icon: "🔻", Condition: lostAtLeast(1)},
	{ID: "loss_2", Title: "2kg Down", Description: "Lose 2kg total.", Icon: "📉", Condition: lostAtLeast(2)},
	{ID: "loss_5", Title: "Bag of Rice", Description: "Lose 5kg total.", Icon: "🍚", Condition: lostAtLeast(5)},
	{ID: "loss_7", Title: "Feeling Light", Description: "Lose 7.5kg total.", Icon: "🎈", Condition: lostAtLeast(7.5)},
	{ID: "loss_10", Title: "Transformation", Description: "Lose 10kg total.", Icon: "✨", Condition: lostAtLeast(10)},
	{ID: "loss_15", Title: "Heavy Lifter", Description: "Lose 15kg total.", Icon: "🎒", Condition: lostAtLeast(15)},
	{ID: "loss_20", Title: "New You", Description: "Lose 20kg total.", Icon: "🌟", Condition: lostAtLeast(20)},
	{ID: "sub_100", Title: "Double Digits Club", Description: "Reach below 100kg.", Icon: "🎯", Condition: below(100)},
	{ID: "sub_95", Title: "Cruising", Description: "Reach below 95kg.", Icon: "🛳️", Condition: below(95)},
	{ID: "sub_90", Title: "Nineties Kid", Description: "Reach below 90kg.", Icon: "📼", Condition: below(90)},

	// Journaling
	{ID: "photo_1", Title: "Selfie", Description: "Take 1 progress photo.", Icon: "📸", Condition: photos(1)},
	{ID: "photo_3", Title: "Pose", Description: "Take 3 progress photos.", Icon: "🤳", Condition: photos(3)},
	{ID: "photo_5", Title: "Model", Description: "Take 5 progress photos.", Icon: "🖼️", Condition: photos(5)},
	{ID: "photo_10", Title: "Timeline", Description: "Take 10 progress photos.", Icon: "🎞️", Condition: photos(10)},
	{ID: "mood_great", Title: "Feeling Good", Description: `Log an "Amazing" workout.`, Icon: "🤩", Condition: moodCount(entity.MoodAmazing, 1)},
	{ID: "mood_hard", Title: "Tough Cookie", Description: `Push through a "Hard" workout.`, Icon: "🍪", Condition: moodCount(entity.MoodHard, 1)},
	{ID: "mood_streak", Title: "On Fire", Description: `Log 3 "Amazing" workouts.`, Icon: "🔥", Condition: moodCount(entity.MoodAmazing, 3)},
	{ID: "tracker", Title: "Data Nerd", Description: "Log weight 5 times.", Icon: "📊", Condition: weighIns(5)},
	{ID: "tracker_10", Title: "Scientist", Description: "Log weight 10 times.", Icon: "🔬", Condition: weighIns(10)},
	{ID: "consistent_log", Title: "Journalist", Description: "Have 5 journal entries.", Icon: "📓", Condition: photos(5)},

	// Hydration
	{ID: "water_1", Title: "Thirsty", Description: "Drink 1L of water in a session.", Icon: "💧", Condition: waterToday(1000)},
	{ID: "water_2", Title: "Hydrated", Description: "Hit daily goal (3L).", Icon: "🌊", Condition: waterToday(catalog.DailyWaterGoalMl)},
	{ID: "water_3", Title: "Aquaman", Description: "Hit daily goal 5 times.", Icon: "🔱", Condition: func(s *entity.AppState) bool {
		days := 0
		for _, e := range s.WaterHistory {
			if e.Ml >= catalog.DailyWaterGoalMl {
				days++
			}
		}
		return days >= 5
	}},
	{ID: "water_add", Title: "Glug Glug", Description: "Add water 10 times.", Icon: "🚰", Condition: func(s *entity.AppState) bool { return s.WaterAdds >= 10 }},
	{ID: "no_soda", Title: "Pure Life", Description: "Track water only (implied).", Icon: "🥛", Condition: waterToday(1)},

	// Miscellaneous
	{ID: "rich", Title: "Big Spender", Description: "Have 100 Bones in wallet.", Icon: "🦴", Condition: func(s *entity.AppState) bool { return s.Wallet >= 100 }},
	{ID: "fashion", Title: "Fashionista", Description: "Own 3 items.", Icon: "🧣", Condition: func(s *entity.AppState) bool { return len(s.Inventory) >= 3 }},
	{ID: "halfway", Title: "Halfway There", Description: "Complete 50% of a routine.", Icon: "🌗", Condition: workoutCompletion(50)},
	{ID: "finisher", Title: "Finisher", Description: "Complete 100% of a routine.", Icon: "🏁", Condition: workoutCompletion(100)},
	{ID: "weekend_warrior", Title: "Weekend Warrior", Description: "Workout on a Saturday.", Icon: "🎉", Condition: checkedInOn(time.Saturday)},
	{ID: "monday_motivation", Title: "Monday Motivation", Description: "Never miss a Monday.", Icon: "📅", Condition: checkedInOn(time.Monday)},
	{ID: "hump_day", Title: "Hump Day", Description: "Workout on a Wednesday.", Icon: "🐫", Condition: checkedInOn(time.Wednesday)},
	{ID: "stretchy", Title: "Rubber Dog", Description: "Do all warmups.", Icon: "🧘‍♂️", Condition: completedOfType(entity.ExerciseWarmup, 5)},
	{ID: "cool_cat", Title: "Cool Dog", Description: "Do all cooldowns.", Icon: "🧊", Condition: completedOfType(entity.ExerciseCooldown, 4)},
	{ID: "strong", Title: "Hercules", Description: "Do all strength exercises.", Icon: "🏋️", Condition: completedOfType(entity.ExerciseStrength, 4)},
}

// AchievementByID is used by views that open a single badge.
func AchievementByID(id string) (Achievement, bool) {
	idx := slices.IndexFunc(Achievements, func(a Achievement) bool { return strings.EqualFold(a.ID, id) })
	if idx < 0 {
		return Achievement{}, false
	}
	return Achievements[idx], true
}

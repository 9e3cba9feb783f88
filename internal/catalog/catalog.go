// Package catalog holds the static data the tracker is built around: the two
// workout routines, Rex's market and the motivational copy.
package catalog

import (
	"math/rand/v2"

	"github.com/limbo/rexfit/pkg/entity"
)

const (
	DailyWaterGoalMl = 3000
	InitialWeightKg  = 100.0
	DefaultHeightCm  = 173.0

	// StorageKey is the fixed key the document is stored under.
	StorageKey = "footsafe_tracker_v1"
)

var DefaultSchedule = entity.WeeklySchedule{
	entity.RoutineRest, // Sunday
	entity.RoutineA,
	entity.RoutineRest,
	entity.RoutineB,
	entity.RoutineRest,
	entity.RoutineA,
	entity.RoutineRest,
}

var commonWarmup = []entity.Exercise{
	{ID: "wu-1", Name: "Elliptical or Stationary Bike", Type: entity.ExerciseWarmup, Duration: "5 Mins",
		Instruction: "Low impact, moderate pace. Avoid treadmill running."},
	{ID: "wu-2", Name: "Leg Swings", Type: entity.ExerciseWarmup, Reps: "10 each side",
		Instruction: "Forward/backward and side-to-side. Hold onto wall for balance."},
	{ID: "wu-3", Name: "Arm Circles", Type: entity.ExerciseWarmup, Reps: "10 reps",
		Instruction: "Large circles forward and backward."},
	{ID: "wu-4", Name: "Ankle Rocks", Type: entity.ExerciseWarmup, Reps: "10 reps",
		Instruction: "Split stance, rock knee forward over toe and back.",
		Precaution:  "Crucial for your foot history."},
	{ID: "wu-5", Name: "Thoracic Rotations", Type: entity.ExerciseWarmup, Reps: "10 reps",
		Instruction: "Feet wide, arms out, twist torso left and right."},
}

var commonCardio = []entity.Exercise{
	{ID: "cardio-1", Name: "Incline Walking OR Cycling", Type: entity.ExerciseCardio, Duration: "20 Mins",
		Instruction: "Incline: 5-10%, Speed: 3.5-4.5 km/h. Cycling: Moderate resistance (Zone 2).",
		Precaution:  "Low impact to protect foot. Do not run."},
}

var commonCooldown = []entity.Exercise{
	{ID: "cd-1", Name: "Hamstring Stretch", Type: entity.ExerciseCooldown, Duration: "30s hold",
		Instruction: "Heel on low bench, lean forward gently."},
	{ID: "cd-2", Name: "Quad Stretch", Type: entity.ExerciseCooldown, Duration: "30s hold",
		Instruction: "Hold wall, grab ankle, pull heel to glute."},
	{ID: "cd-3", Name: "Chest Opener", Type: entity.ExerciseCooldown, Duration: "30s hold",
		Instruction: "Arm against wall, rotate body away."},
	{ID: "cd-4", Name: "Calf Stretch", Type: entity.ExerciseCooldown, Duration: "30s hold",
		Instruction: "Push against wall, one leg back, heel down.",
		Precaution:  "Vital for ankle health."},
}

func assemble(strength ...entity.Exercise) []entity.Exercise {
	out := make([]entity.Exercise, 0, len(commonWarmup)+len(strength)+len(commonCardio)+len(commonCooldown))
	out = append(out, commonWarmup...)
	out = append(out, strength...)
	out = append(out, commonCardio...)
	return append(out, commonCooldown...)
}

var WorkoutA = entity.WorkoutRoutine{
	ID:   entity.RoutineA,
	Name: "Workout A",
	Exercises: assemble(
		entity.Exercise{ID: "a-1", Name: "Goblet Squat", Type: entity.ExerciseStrength, Sets: "3", Reps: "10-12",
			Instruction: "Hold dumbbell at chest. Sit back like in a chair. Drive up through heels.",
			FormCue:     "Elbows inside knees at the bottom.",
			Precaution:  "If foot hurts, switch to Leg Press."},
		entity.Exercise{ID: "a-2", Name: "Dumbbell Bench Press", Type: entity.ExerciseStrength, Sets: "3", Reps: "10-12",
			Instruction: "Press dumbbells over chest, elbows at 45-degree angle.",
			FormCue:     "Keep elbows tucked slightly like an arrow, not a T."},
		entity.Exercise{ID: "a-3", Name: "Lat Pulldown", Type: entity.ExerciseStrength, Sets: "3", Reps: "10-12",
			Instruction: "Grip wider than shoulders. Pull bar to upper chest.",
			FormCue:     "Drive elbows into back pockets.",
			Precaution:  "Do not swing body."},
		entity.Exercise{ID: "a-4", Name: "Plank", Type: entity.ExerciseStrength, Sets: "3", Duration: "30-45s",
			Instruction: "Forearms on ground, body in straight line.",
			FormCue:     "Squeeze glutes, belly button to spine."},
	),
}

var WorkoutB = entity.WorkoutRoutine{
	ID:   entity.RoutineB,
	Name: "Workout B",
	Exercises: assemble(
		entity.Exercise{ID: "b-1", Name: "Dumbbell Romanian Deadlift", Type: entity.ExerciseStrength, Sets: "3", Reps: "10-12",
			Instruction: "Slight knee bend, hinge at hips, keep back flat.",
			FormCue:     "Shave your legs with the dumbbells.",
			Precaution:  "Do not round back. Reduce ROM if foot hurts."},
		entity.Exercise{ID: "b-2", Name: "Seated Cable Row", Type: entity.ExerciseStrength, Sets: "3", Reps: "10-12",
			Instruction: "Pull handle to stomach, squeeze shoulder blades.",
			FormCue:     "Chest out, shoulders down."},
		entity.Exercise{ID: "b-3", Name: "Standing Overhead Press", Type: entity.ExerciseStrength, Sets: "3", Reps: "10-12",
			Instruction: "Press dumbbells from shoulder height straight up.",
			FormCue:     "Biceps by ears at the top.",
			Precaution:  "Squeeze abs to protect lower back."},
		entity.Exercise{ID: "b-4", Name: "Face Pulls", Type: entity.ExerciseStrength, Sets: "3", Reps: "15",
			Instruction: "Pull rope to forehead, pulling hands apart.",
			FormCue:     "Thumbs backward."},
	),
}

// Routine returns the exercises for a workout variant. Rest has none.
func Routine(id entity.RoutineType) (*entity.WorkoutRoutine, bool) {
	switch id {
	case entity.RoutineA:
		return &WorkoutA, true
	case entity.RoutineB:
		return &WorkoutB, true
	}
	return nil, false
}

var market = []entity.StoreItem{
	{ID: "treat", Name: "Tasty Treat", Type: entity.ItemFood, Cost: 5, Icon: "🥩", Description: "Give Rex a delicious snack!"},
	{ID: "blue_bandana", Name: "Blue Bandana", Type: entity.ItemNeck, Cost: 15, Icon: "🧣", Description: "A stylish blue scarf."},
	{ID: "gold_chain", Name: "Gold Chain", Type: entity.ItemNeck, Cost: 50, Icon: "⛓️", Description: "For the top dog."},
	{ID: "shades", Name: "Cool Shades", Type: entity.ItemGlasses, Cost: 40, Icon: "😎", Description: "The future is bright."},
	{ID: "nerd_glasses", Name: "Smart Specs", Type: entity.ItemGlasses, Cost: 25, Icon: "🤓", Description: "Calculated gains."},
	{ID: "party_hat", Name: "Party Hat", Type: entity.ItemHat, Cost: 30, Icon: "🎉", Description: "Celebration time!"},
	{ID: "crown", Name: "King Crown", Type: entity.ItemHat, Cost: 100, Icon: "👑", Description: "Bow to the King."},
	{ID: "tennis_ball", Name: "Tennis Ball", Type: entity.ItemToy, Cost: 20, Icon: "🎾", Description: "Rex's favorite."},
	{ID: "kettlebell", Name: "Kettlebell", Type: entity.ItemToy, Cost: 60, Icon: "🏋️", Description: "Heavy lifting toy."},
}

// Market lists every purchasable item in display order.
func Market() []entity.StoreItem {
	out := make([]entity.StoreItem, len(market))
	copy(out, market)
	return out
}

func Item(id string) (entity.StoreItem, bool) {
	for _, item := range market {
		if item.ID == id {
			return item, true
		}
	}
	return entity.StoreItem{}, false
}

var InspirationalQuotes = []string{
	"Ruff day? Shake it off and lift!",
	"Who's a good lifter? You are!",
	"Dig deep for that bone... I mean, rep!",
	"Don't stop when you're tired, stop when you're done!",
	"Your only competition is the dog in the mirror.",
	"Unleash the beast!",
	"Every walk counts, every rep counts.",
	"Stay pawsitive and keep grinding.",
	"Sweat is just fat crying.",
	"Let's crush this like a new chew toy!",
}

var MotivationalPhrases = []string{
	"Top Dog! 🐶",
	"Pawsome work! 🐾",
	"Tail-wagging good! 🐕",
	"Beast Mode! 🦁",
	"Crushing it! 🔥",
	"Wow! Such strength! 🐕",
	"Keep it up! 🚀",
	"Barking mad gains! 💪",
}

func RandomQuote() string {
	return InspirationalQuotes[rand.IntN(len(InspirationalQuotes))]
}

func RandomPhrase() string {
	return MotivationalPhrases[rand.IntN(len(MotivationalPhrases))]
}

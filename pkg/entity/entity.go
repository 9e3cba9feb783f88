package entity

import (
	"encoding/json"
	"slices"
	"strconv"

	"github.com/bytedance/sonic"
)

type RoutineType string

const (
	RoutineA    RoutineType = "A"
	RoutineB    RoutineType = "B"
	RoutineRest RoutineType = "Rest"
)

func (r RoutineType) Valid() bool {
	return r == RoutineA || r == RoutineB || r == RoutineRest
}

func (r RoutineType) IsWorkout() bool {
	return r == RoutineA || r == RoutineB
}

type Mood string

const (
	MoodAmazing Mood = "amazing"
	MoodGood    Mood = "good"
	MoodOkay    Mood = "okay"
	MoodHard    Mood = "hard"
	MoodPain    Mood = "pain"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodAmazing, MoodGood, MoodOkay, MoodHard, MoodPain:
		return true
	}
	return false
}

type ExerciseType string

const (
	ExerciseWarmup   ExerciseType = "warmup"
	ExerciseStrength ExerciseType = "strength"
	ExerciseCardio   ExerciseType = "cardio"
	ExerciseCooldown ExerciseType = "cooldown"
)

type Exercise struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        ExerciseType `json:"type"`
	Sets        string       `json:"sets,omitempty"`
	Reps        string       `json:"reps,omitempty"`
	Duration    string       `json:"duration,omitempty"`
	Instruction string       `json:"instruction,omitempty"`
	FormCue     string       `json:"formCue,omitempty"`
	Precaution  string       `json:"precaution,omitempty"`
}

type WorkoutRoutine struct {
	ID        RoutineType `json:"id"`
	Name      string      `json:"name"`
	Exercises []Exercise  `json:"exercises"`
}

// ItemType is the slot a cosmetic occupies. Food is consumable and has no slot.
type ItemType string

const (
	ItemFood    ItemType = "food"
	ItemHat     ItemType = "hat"
	ItemGlasses ItemType = "glasses"
	ItemNeck    ItemType = "neck"
	ItemToy     ItemType = "toy"
)

type StoreItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        ItemType `json:"type"`
	Cost        int      `json:"cost"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
}

func (i StoreItem) Consumable() bool {
	return i.Type == ItemFood
}

type WeightEntry struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type PhotoEntry struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	DataURL string `json:"dataUrl"`
	Note    string `json:"note,omitempty"`
}

type MoodEntry struct {
	Date      string      `json:"date"`
	Mood      Mood        `json:"mood"`
	RoutineID RoutineType `json:"routineId,omitempty"`
	LoggedAt  string      `json:"loggedAt,omitempty"`
}

type WaterEntry struct {
	Date string `json:"date"`
	Ml   int    `json:"ml"`
}

type DailyProgress struct {
	Date                 string      `json:"date"`
	RoutineID            RoutineType `json:"routineId"`
	CompletedExerciseIDs []string    `json:"completedExerciseIds"`
	WaterIntakeMl        int         `json:"waterIntakeMl"`
	RestDayActivity      bool        `json:"restDayActivity,omitempty"`
}

type NotificationState struct {
	Enabled           bool   `json:"enabled"`
	MorningSentDate   string `json:"morningSentDate"`
	AfternoonSentDate string `json:"afternoonSentDate"`
	EveningSentDate   string `json:"eveningSentDate"`
}

// WeeklySchedule maps weekday (0 = Sunday) to a routine. It is stored as a JSON
// object keyed "0".."6"; days missing or malformed in the input keep the value
// already held by the receiver.
type WeeklySchedule [7]RoutineType

func (s WeeklySchedule) MarshalJSON() ([]byte, error) {
	m := make(map[string]RoutineType, len(s))
	for day, routine := range s {
		m[strconv.Itoa(day)] = routine
	}
	return sonic.Marshal(m)
}

func (s *WeeklySchedule) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, value := range raw {
		day, err := strconv.Atoi(key)
		if err != nil || day < 0 || day > 6 {
			continue
		}
		var routine RoutineType
		if err := sonic.Unmarshal(value, &routine); err != nil || !routine.Valid() {
			continue
		}
		s[day] = routine
	}
	return nil
}

type AppState struct {
	WeightHistory  []WeightEntry     `json:"weightHistory"`
	PhotoJournal   []PhotoEntry      `json:"photoJournal"`
	MoodHistory    []MoodEntry       `json:"moodHistory"`
	WaterHistory   []WaterEntry      `json:"waterHistory"`
	WaterAdds      int               `json:"waterAdds"`
	CurrentRoutine RoutineType       `json:"currentRoutine"`
	Schedule       WeeklySchedule    `json:"schedule"`
	Notifications  NotificationState `json:"notifications"`
	Progress       DailyProgress     `json:"progress"`
	Height         float64           `json:"height"`
	UserName       string            `json:"userName"`
	UserPhoto      string            `json:"userPhoto"`
	Wallet         int               `json:"wallet"`
	Inventory      []string          `json:"inventory"`
	EquippedItems  []string          `json:"equippedItems"`
}

// Clone returns a copy that shares no slices with s.
func (s *AppState) Clone() *AppState {
	c := *s
	c.WeightHistory = slices.Clone(s.WeightHistory)
	c.PhotoJournal = slices.Clone(s.PhotoJournal)
	c.MoodHistory = slices.Clone(s.MoodHistory)
	c.WaterHistory = slices.Clone(s.WaterHistory)
	c.Progress.CompletedExerciseIDs = slices.Clone(s.Progress.CompletedExerciseIDs)
	c.Inventory = slices.Clone(s.Inventory)
	c.EquippedItems = slices.Clone(s.EquippedItems)
	return &c
}

package tracker

import (
	"time"

	"github.com/limbo/rexfit/pkg/entity"
)

type Window string

const (
	WindowMorning   Window = "morning"
	WindowAfternoon Window = "afternoon"
	WindowEvening   Window = "evening"
)

// WindowSpec is a daily slot [StartHour, EndHour) in local time.
type WindowSpec struct {
	Window    Window
	StartHour int
	EndHour   int
}

func (w WindowSpec) Contains(now time.Time) bool {
	h := now.Hour()
	return h >= w.StartHour && h < w.EndHour
}

var Windows = []WindowSpec{
	{Window: WindowMorning, StartHour: 8, EndHour: 9},
	{Window: WindowAfternoon, StartHour: 15, EndHour: 16},
	{Window: WindowEvening, StartHour: 22, EndHour: 23},
}

// Decision tells the caller to deliver a message and stamp its window as
// handled for today.
type Decision struct {
	Window Window `json:"window"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// EvaluateNotifications decides which reminders are due at now. Each window
// yields at most one decision per date, tracked by the sent stamps in the
// document. Permission to deliver is the caller's concern.
func EvaluateNotifications(doc *entity.AppState, now time.Time) []Decision {
	if !doc.Notifications.Enabled {
		return nil
	}
	today := DateKey(now)
	routine := ScheduledRoutine(doc, now)
	workoutDay := routine.IsWorkout()
	completed := CheckedInToday(doc, now)

	var out []Decision
	for _, w := range Windows {
		if !w.Contains(now) || sentDate(doc, w.Window) == today {
			continue
		}
		switch w.Window {
		case WindowMorning:
			if workoutDay {
				out = append(out, Decision{
					Window: w.Window,
					Title:  "Rex: Time to Rise!",
					Body:   "Today is Workout " + string(routine) + " day. Let's get after it! 🐶",
				})
			}
		case WindowAfternoon:
			if workoutDay && !completed {
				out = append(out, Decision{
					Window: w.Window,
					Title:  "Rex: Don't Forget!",
					Body:   "I'm waiting! You haven't worked out yet. There's still time to crush it! 💪",
				})
			}
		case WindowEvening:
			switch {
			case completed:
				out = append(out, Decision{
					Window: w.Window,
					Title:  "Rex: Great Job!",
					Body:   "You crushed today's workout! Rest up for tomorrow. 🌙",
				})
			case workoutDay:
				out = append(out, Decision{
					Window: w.Window,
					Title:  "Rex: Rest Up",
					Body:   "You missed today's workout, but that's okay. Tomorrow is a new day! 💤",
				})
			}
		}
	}
	return out
}

// StampNotification records that a window was handled on date.
func StampNotification(doc *entity.AppState, window Window, date string) *entity.AppState {
	next := doc.Clone()
	switch window {
	case WindowMorning:
		next.Notifications.MorningSentDate = date
	case WindowAfternoon:
		next.Notifications.AfternoonSentDate = date
	case WindowEvening:
		next.Notifications.EveningSentDate = date
	}
	return next
}

func sentDate(doc *entity.AppState, window Window) string {
	switch window {
	case WindowMorning:
		return doc.Notifications.MorningSentDate
	case WindowAfternoon:
		return doc.Notifications.AfternoonSentDate
	case WindowEvening:
		return doc.Notifications.EveningSentDate
	}
	return ""
}

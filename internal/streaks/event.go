package streaks

import (
	"time"
)

// Weekday is the schedule day label used by the mobile calendar form. An
// event recurs weekly on its Day; the date part of Start/End is informational
// and only the time of day is used for matching occurrences.
type Weekday string

const (
	Sun Weekday = "Sun"
	Mon Weekday = "Mon"
	Tue Weekday = "Tue"
	Wed Weekday = "Wed"
	Thu Weekday = "Thu"
	Fri Weekday = "Fri"
	Sat Weekday = "Sat"
)

// indexed by time.Weekday (Sunday == 0)
var weekdayLabels = [...]Weekday{Sun, Mon, Tue, Wed, Thu, Fri, Sat}

func WeekdayOf(t time.Time) Weekday {
	return weekdayLabels[int(t.Weekday())]
}

func (d Weekday) String() string {
	return string(d)
}

func (d Weekday) IsValid() bool {
	switch d {
	case Sun, Mon, Tue, Wed, Thu, Fri, Sat:
		return true
	default:
		return false
	}
}

// Kind can be one of:
//   - Workout
//   - Classes
type Kind string

const (
	KindWorkout Kind = "Workout"
	KindClasses Kind = "Classes"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindWorkout, KindClasses:
		return true
	default:
		return false
	}
}

// Event (DB level type) is one weekly recurring calendar entry of a user.
type Event struct {
	ID             int       `json:"id"`
	OwnerID        string    `json:"ownerId"`
	Day            Weekday   `json:"day"`
	Kind           Kind      `json:"kind"`
	Title          string    `json:"title"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Completed      bool      `json:"completed"`
	ExternalSyncID string    `json:"externalSyncId,omitempty"`
}

// WindowOn projects the event's stored start/end time of day onto the date
// of day, in day's location.
func (e Event) WindowOn(day time.Time) (start, end time.Time) {
	y, m, d := day.Date()
	loc := day.Location()
	start = time.Date(y, m, d, e.Start.Hour(), e.Start.Minute(), e.Start.Second(), 0, loc)
	end = time.Date(y, m, d, e.End.Hour(), e.End.Minute(), e.End.Second(), 0, loc)
	return start, end
}

// ActiveAt reports whether the event's occurrence is running at now:
// the day label matches now's weekday and now falls within the projected
// [start, end] window, bounds inclusive.
func (e Event) ActiveAt(now time.Time) bool {
	if e.Day != WeekdayOf(now) {
		return false
	}
	start, end := e.WindowOn(now)
	return !now.Before(start) && !now.After(end)
}

// ElapsedAt reports whether the event's occurrence on now's date is already
// over (projected end before now).
func (e Event) ElapsedAt(now time.Time) bool {
	_, end := e.WindowOn(now)
	return end.Before(now)
}

// EventInput is what the calendar form sends when creating a new event.
type EventInput struct {
	Day   Weekday   `json:"day"`
	Kind  Kind      `json:"kind"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (in EventInput) Validate() error {
	var reasons []string
	if !in.Day.IsValid() {
		reasons = append(reasons, "unknown day: "+string(in.Day))
	}
	if !in.Kind.IsValid() {
		reasons = append(reasons, "unknown kind: "+string(in.Kind))
	}
	if in.Title == "" {
		reasons = append(reasons, "title empty")
	}
	if in.Start.IsZero() || in.End.IsZero() {
		reasons = append(reasons, "start or end missing")
	} else if !in.Start.Before(in.End) {
		reasons = append(reasons, "start not before end")
	}

	if len(reasons) > 0 {
		return &ValidationError{Reasons: reasons}
	}
	return nil
}

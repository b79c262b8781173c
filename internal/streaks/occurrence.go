package streaks

import "time"

// TodayStatus is the result of resolving the weekly schedule against a
// concrete point in time.
type TodayStatus struct {
	// Active is the event whose occurrence is running at the evaluated
	// moment, nil when there is none.
	Active *Event  `json:"active,omitempty"`
	Todays []Event `json:"todays"`
}

// ResolveToday filters events down to those scheduled on now's weekday and
// picks the one (if any) whose projected [start, end] window contains now.
//
// When overlapping entries make more than one event active at once (the
// calendar form does not prevent that), the one with the earliest projected
// start wins. That tie-break is a display policy, not a correctness
// requirement.
//
// Pure function over its inputs; no side effects, safe to call repeatedly.
func ResolveToday(events []Event, now time.Time) TodayStatus {
	todayLabel := WeekdayOf(now)

	var todays []Event
	for _, e := range events {
		if e.Day == todayLabel {
			todays = append(todays, e)
		}
	}

	var active *Event
	var activeStart time.Time
	for i := range todays {
		if !todays[i].ActiveAt(now) {
			continue
		}
		start, _ := todays[i].WindowOn(now)
		if active == nil || start.Before(activeStart) {
			candidate := todays[i]
			active = &candidate
			activeStart = start
		}
	}

	return TodayStatus{
		Active: active,
		Todays: todays,
	}
}

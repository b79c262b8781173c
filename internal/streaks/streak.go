package streaks

import "time"

// Counters is the streak/aggregate state kept on the user profile.
type Counters struct {
	StreakCount    int `json:"streakCount"`
	WeeklyWorkouts int `json:"weeklyWorkouts"`
	// LastStreakUpdate is the time of the last StreakCount mutation; the
	// zero value means the streak was never touched.
	LastStreakUpdate time.Time `json:"lastStreakUpdate"`
}

// Delta holds the counter fields a single evaluation wants to change.
// Nil fields stay untouched.
type Delta struct {
	StreakCount      *int
	WeeklyWorkouts   *int
	LastStreakUpdate *time.Time
}

func (d Delta) Empty() bool {
	return d.StreakCount == nil && d.WeeklyWorkouts == nil && d.LastStreakUpdate == nil
}

func (d Delta) ApplyTo(c *Counters) {
	if d.StreakCount != nil {
		c.StreakCount = *d.StreakCount
	}
	if d.WeeklyWorkouts != nil {
		c.WeeklyWorkouts = *d.WeeklyWorkouts
	}
	if d.LastStreakUpdate != nil {
		c.LastStreakUpdate = *d.LastStreakUpdate
	}
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WeekIndex buckets a day of month into the four "weeks" of the profile
// chart: days 1-7 -> 0, 8-14 -> 1, 15-21 -> 2 and 22+ -> 3. The last bucket
// is the catch-all for everything past day 21, so months longer than 28 days
// still land in four buckets.
func WeekIndex(t time.Time) int {
	weekIndex := (t.Day() - 1) / 7
	if weekIndex > 3 {
		weekIndex = 3
	}
	return weekIndex
}

// SameWeek reports whether a and b land in the same month week bucket.
func SameWeek(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && WeekIndex(a) == WeekIndex(b)
}

// Evaluate decides what happens to the streak counters given today's
// schedule at now:
//
//   - an event completed today and the counters not yet bumped today:
//     streak +1 (and weekly workouts +1 for a Workout event)
//   - an uncompleted event still running: leave everything as is, the user
//     can still complete it
//   - an event that went past its end uncompleted, nothing else completed
//     or running, and the streak not already touched today: reset to 0
//   - no events scheduled today: rest day, not a miss - streak unchanged
//
// Independently of the above, WeeklyWorkouts starts over when now lands in a
// different week bucket than the last streak update.
func Evaluate(c Counters, todays []Event, now time.Time) Delta {
	var delta Delta

	if !c.LastStreakUpdate.IsZero() && !SameWeek(c.LastStreakUpdate, now) && c.WeeklyWorkouts != 0 {
		zero := 0
		delta.WeeklyWorkouts = &zero
	}

	if len(todays) == 0 {
		return delta
	}

	var completed *Event
	activeUncompleted := false
	missed := false
	for i := range todays {
		e := todays[i]
		if e.Completed {
			if completed == nil {
				completed = &todays[i]
			}
			continue
		}
		if e.ActiveAt(now) {
			activeUncompleted = true
			continue
		}
		if e.ElapsedAt(now) {
			missed = true
		}
	}

	switch {
	case completed != nil:
		if !SameDay(c.LastStreakUpdate, now) {
			streak := c.StreakCount + 1
			delta.StreakCount = &streak
			if completed.Kind == KindWorkout {
				weekly := weeklySoFar(c, delta) + 1
				delta.WeeklyWorkouts = &weekly
			}
			ts := now
			delta.LastStreakUpdate = &ts
		}
	case activeUncompleted:
		// window still open, nothing to decide yet
	case missed && !SameDay(c.LastStreakUpdate, now):
		zero := 0
		delta.StreakCount = &zero
		ts := now
		delta.LastStreakUpdate = &ts
	}

	return delta
}

// Complete produces the counter delta for marking ev completed at now.
// Completion is monotonic: an already completed event yields no delta, so a
// repeated completion never double-increments the streak. WeeklyWorkouts
// starts over from the week boundary like in Evaluate.
func Complete(c Counters, ev Event, now time.Time) Delta {
	if ev.Completed {
		return Delta{}
	}

	streak := c.StreakCount + 1
	ts := now
	delta := Delta{
		StreakCount:      &streak,
		LastStreakUpdate: &ts,
	}
	weeklyBase := c.WeeklyWorkouts
	if !c.LastStreakUpdate.IsZero() && !SameWeek(c.LastStreakUpdate, now) {
		weeklyBase = 0
	}
	switch {
	case ev.Kind == KindWorkout:
		weekly := weeklyBase + 1
		delta.WeeklyWorkouts = &weekly
	case weeklyBase != c.WeeklyWorkouts:
		weekly := weeklyBase
		delta.WeeklyWorkouts = &weekly
	}
	return delta
}

func weeklySoFar(c Counters, d Delta) int {
	if d.WeeklyWorkouts != nil {
		return *d.WeeklyWorkouts
	}
	return c.WeeklyWorkouts
}

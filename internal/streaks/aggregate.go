package streaks

import "time"

// MonthlyCompleted partitions the given month's completed events into the
// four week buckets of WeekIndex, by the date of their Start timestamp.
// The result feeds the profile bar chart and nothing else depends on the
// exact bucket boundaries.
func MonthlyCompleted(events []Event, month time.Month, year int) [4]int {
	var buckets [4]int
	for _, e := range events {
		if !e.Completed {
			continue
		}
		if e.Start.Month() != month || e.Start.Year() != year {
			continue
		}
		buckets[WeekIndex(e.Start)]++
	}
	return buckets
}

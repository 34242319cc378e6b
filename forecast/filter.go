package forecast

import (
	"time"

	"meteocli/models"
)

// FilterPolicy decides when a forecast entry counts as upcoming
type FilterPolicy int

const (
	// FilterChronological keeps entries whose hour has not ended yet,
	// comparing absolute instants.
	FilterChronological FilterPolicy = iota

	// FilterDayHour keeps entries with a later day-of-month or an hour at or
	// after the current hour. It ignores month and year, so it is only
	// right within a single month; kept for output compatibility.
	FilterDayHour
)

// String returns the policy name used in log output
func (p FilterPolicy) String() string {
	switch p {
	case FilterChronological:
		return "chronological"
	case FilterDayHour:
		return "day-hour"
	default:
		return "unknown"
	}
}

// SelectUpcoming returns the entries that are not yet past relative to now,
// in their original order. The input slice is not modified.
func SelectUpcoming(entries []models.ForecastEntry, now time.Time, policy FilterPolicy) []models.ForecastEntry {
	upcoming := make([]models.ForecastEntry, 0, len(entries))
	for _, entry := range entries {
		if isUpcoming(entry.Time, now, policy) {
			upcoming = append(upcoming, entry)
		}
	}
	return upcoming
}

func isUpcoming(t, now time.Time, policy FilterPolicy) bool {
	if policy == FilterDayHour {
		return t.Day() > now.Day() || t.Hour() >= now.Hour()
	}
	return !t.Before(now.Truncate(time.Hour))
}

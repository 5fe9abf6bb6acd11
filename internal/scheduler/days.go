package scheduler

import "time"

// StartOfDay truncates a time to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the signed distance in whole calendar days from the
// reference date to the deadline. Zero means due the same calendar day,
// negative means overdue. Both arguments are reduced to their calendar day
// in UTC before subtracting, so neither time-of-day nor location shifts
// the result.
func DaysUntil(ref, deadline time.Time) int {
	refDay := dayUTC(ref)
	deadlineDay := dayUTC(deadline)
	return int(deadlineDay.Sub(refDay).Hours() / 24)
}

// dayUTC maps a time to its calendar day as a UTC midnight, so day and
// week arithmetic works on exact 24h multiples regardless of the source
// location.
func dayUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

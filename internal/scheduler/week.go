package scheduler

import (
	"fmt"
	"time"
)

// WeekGroup is a run of agenda items whose deadlines fall in the same
// Sunday-starting calendar week.
type WeekGroup struct {
	Start time.Time
	Items []Item
}

// WeekStart returns midnight UTC of the Sunday beginning the calendar
// week that contains t's calendar day. Normalizing to UTC keeps week keys
// comparable between wall-clock references and stored dates.
func WeekStart(t time.Time) time.Time {
	day := dayUTC(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// GroupByWeek partitions items by the Sunday-starting week containing each
// deadline. Groups come back in chronological order of week start; item
// order within a group is preserved from the input.
func GroupByWeek(items []Item) []WeekGroup {
	var groups []WeekGroup
	index := make(map[time.Time]int)
	for _, it := range items {
		ws := WeekStart(it.Deadline)
		i, ok := index[ws]
		if !ok {
			i = len(groups)
			index[ws] = i
			groups = append(groups, WeekGroup{Start: ws})
		}
		groups[i].Items = append(groups[i].Items, it)
	}

	// Items usually arrive urgency-sorted, so groups are nearly ordered
	// already; a simple insertion pass keeps them chronological.
	for i := 1; i < len(groups); i++ {
		for j := i; j > 0 && groups[j].Start.Before(groups[j-1].Start); j-- {
			groups[j], groups[j-1] = groups[j-1], groups[j]
		}
	}
	return groups
}

// WeekLabel renders a human label for a week start relative to the
// reference date: "This Week", "Next Week", or "Week N, YYYY · Feb 3-9".
func WeekLabel(weekStart, ref time.Time) string {
	current := WeekStart(ref)
	switch {
	case weekStart.Equal(current):
		return "This Week"
	case weekStart.Equal(current.AddDate(0, 0, 7)):
		return "Next Week"
	default:
		return fmt.Sprintf("Week %d, %d · %s", weekOfYear(weekStart), weekStart.Year(), FormatWeekRange(weekStart))
	}
}

// FormatWeekRange renders "Feb 3-9" or "Feb 27 - Mar 5" for the week
// beginning at weekStart.
func FormatWeekRange(weekStart time.Time) string {
	weekEnd := weekStart.AddDate(0, 0, 6)
	if weekStart.Month() == weekEnd.Month() {
		return fmt.Sprintf("%s %d-%d", weekStart.Format("Jan"), weekStart.Day(), weekEnd.Day())
	}
	return fmt.Sprintf("%s %d - %s %d", weekStart.Format("Jan"), weekStart.Day(), weekEnd.Format("Jan"), weekEnd.Day())
}

// weekOfYear numbers weeks from 1 using the same Sunday-start convention
// as WeekStart.
func weekOfYear(t time.Time) int {
	firstDay := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	days := int(StartOfDay(t).Sub(firstDay).Hours() / 24)
	return (days+int(firstDay.Weekday()))/7 + 1
}

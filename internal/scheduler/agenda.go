package scheduler

import (
	"sort"
	"time"
)

// Item is one incomplete, deadline-bearing section viewed through the
// scheduling lens. Inputs arrive in tree order; Annotate and the sorters
// preserve that order for ties.
type Item struct {
	SectionID   string
	SectionName string
	SectionCode string
	PathID      string
	PathName    string
	UnitID      string
	UnitName    string
	Deadline    time.Time
	DaysUntil   int
	IsNext      bool
}

// Annotate computes DaysUntil for every item relative to the reference date.
func Annotate(ref time.Time, items []Item) []Item {
	for i := range items {
		items[i].DaysUntil = DaysUntil(ref, items[i].Deadline)
	}
	return items
}

// FilterWindow keeps items whose deadline falls within windowDays of the
// reference date. Overdue items always survive the filter regardless of
// the window.
func FilterWindow(items []Item, windowDays int) []Item {
	var kept []Item
	for _, it := range items {
		if it.DaysUntil < 0 || it.DaysUntil <= windowDays {
			kept = append(kept, it)
		}
	}
	return kept
}

// SortByUrgency orders items ascending by DaysUntil (most overdue first).
// The sort is stable so tree-order ties survive.
func SortByUrgency(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DaysUntil < items[j].DaysUntil
	})
}

// MarkNextPerPath sets IsNext on exactly one item per path: the one with
// the smallest DaysUntil, first-encountered winning ties. The input order
// is assumed to be tree order.
func MarkNextPerPath(items []Item) {
	best := make(map[string]int)
	for i, it := range items {
		j, ok := best[it.PathID]
		if !ok || it.DaysUntil < items[j].DaysUntil {
			best[it.PathID] = i
		}
	}
	for i := range items {
		items[i].IsNext = false
	}
	for _, i := range best {
		items[i].IsNext = true
	}
}

// NextPerPath returns the most urgent item for each path, keyed by path id.
func NextPerPath(items []Item) map[string]Item {
	next := make(map[string]Item)
	seen := make(map[string]bool)
	for _, it := range items {
		if !seen[it.PathID] || it.DaysUntil < next[it.PathID].DaysUntil {
			next[it.PathID] = it
			seen[it.PathID] = true
		}
	}
	return next
}

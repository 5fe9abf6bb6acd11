package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(section, path string, deadline time.Time) Item {
	return Item{SectionID: section, SectionName: section, PathID: path, PathName: path, Deadline: deadline}
}

// TestFilterWindow_KeepsOverdue verifies that overdue items survive the
// window filter no matter how far past their deadline they are.
func TestFilterWindow_KeepsOverdue(t *testing.T) {
	ref := date(2026, 3, 10)
	items := Annotate(ref, []Item{
		item("ancient", "p", date(2025, 11, 1)),
		item("recent", "p", date(2026, 3, 8)),
		item("soon", "p", date(2026, 3, 12)),
		item("far", "p", date(2026, 4, 20)),
	})

	kept := FilterWindow(items, 7)

	require.Len(t, kept, 3)
	assert.Equal(t, "ancient", kept[0].SectionID)
	assert.Equal(t, "recent", kept[1].SectionID)
	assert.Equal(t, "soon", kept[2].SectionID)
}

// TestFilterWindow_BoundaryInclusive verifies the window edge is inclusive.
func TestFilterWindow_BoundaryInclusive(t *testing.T) {
	ref := date(2026, 3, 10)
	items := Annotate(ref, []Item{
		item("edge", "p", date(2026, 3, 17)),
		item("past-edge", "p", date(2026, 3, 18)),
	})

	kept := FilterWindow(items, 7)

	require.Len(t, kept, 1)
	assert.Equal(t, "edge", kept[0].SectionID)
}

// TestSortByUrgency_StableOnTies verifies that items sharing a deadline
// keep their input (tree) order.
func TestSortByUrgency_StableOnTies(t *testing.T) {
	ref := date(2026, 3, 10)
	items := Annotate(ref, []Item{
		item("a", "p1", date(2026, 3, 15)),
		item("b", "p1", date(2026, 3, 12)),
		item("c", "p2", date(2026, 3, 15)),
		item("d", "p2", date(2026, 3, 8)),
	})

	SortByUrgency(items)

	require.Len(t, items, 4)
	assert.Equal(t, "d", items[0].SectionID)
	assert.Equal(t, "b", items[1].SectionID)
	assert.Equal(t, "a", items[2].SectionID, "tie between a and c keeps input order")
	assert.Equal(t, "c", items[3].SectionID)
}

// TestMarkNextPerPath verifies exactly one flagged item per path, the most
// urgent one, with the first occurrence winning ties.
func TestMarkNextPerPath(t *testing.T) {
	ref := date(2026, 3, 10)
	items := Annotate(ref, []Item{
		item("p1-s1", "p1", date(2026, 3, 20)),
		item("p1-s2", "p1", date(2026, 3, 12)),
		item("p2-s1", "p2", date(2026, 3, 14)),
		item("p2-s2", "p2", date(2026, 3, 14)),
	})

	MarkNextPerPath(items)

	flagged := map[string]bool{}
	for _, it := range items {
		if it.IsNext {
			flagged[it.SectionID] = true
		}
	}
	assert.Equal(t, map[string]bool{"p1-s2": true, "p2-s1": true}, flagged)
}

// TestNextPerPath returns the most urgent item keyed by path.
func TestNextPerPath(t *testing.T) {
	ref := date(2026, 3, 10)
	items := Annotate(ref, []Item{
		item("p1-s1", "p1", date(2026, 3, 20)),
		item("p1-s2", "p1", date(2026, 3, 5)),
		item("p2-s1", "p2", date(2026, 3, 14)),
	})

	next := NextPerPath(items)

	require.Len(t, next, 2)
	assert.Equal(t, "p1-s2", next["p1"].SectionID)
	assert.Equal(t, "p2-s1", next["p2"].SectionID)
}

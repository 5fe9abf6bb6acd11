package domain

import "time"

type SectionState string

const (
	SectionLocked    SectionState = "locked"
	SectionUnlocked  SectionState = "unlocked"
	SectionCompleted SectionState = "completed"
)

// Section is the atomic unit of study. It moves through exactly one
// forward-only lifecycle: locked -> unlocked -> completed. The first
// section of a path's first unit starts unlocked; every other section
// is unlocked by its predecessor's completion within the same unit.
type Section struct {
	ID          string
	UnitID      string
	Name        string
	Code        string
	Deadline    *time.Time
	OrderIndex  int
	Unlocked    bool
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// State reports the lifecycle position implied by the two flags.
func (s *Section) State() SectionState {
	switch {
	case s.Completed:
		return SectionCompleted
	case s.Unlocked:
		return SectionUnlocked
	default:
		return SectionLocked
	}
}

// Topic is an informational checklist item. It never gates progression.
type Topic struct {
	ID         string
	SectionID  string
	Content    string
	OrderIndex int
	Completed  bool
}

// Resource is inert reference material attached to a section.
type Resource struct {
	ID          string
	SectionID   string
	Name        string
	URL         *string
	Description *string
	OrderIndex  int
}

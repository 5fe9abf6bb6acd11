package domain

import "time"

// LearningPath is a top-level curriculum (one subject of study).
// Units, sections and leaves are stored as flat rows keyed by stable
// UUIDs; the tree shape lives in the parent-id columns.
type LearningPath struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Unit is an ordered grouping of sections within a path. CompleteBy is a
// soft target date, never enforced against section deadlines.
type Unit struct {
	ID         string
	PathID     string
	Name       string
	OrderIndex int
	CompleteBy *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

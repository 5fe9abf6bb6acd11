package domain

import "time"

// LogEntry is a free-text journal note tied to a path by id plus a
// denormalized name. Date is the calendar day the entry is about, distinct
// from CreatedAt. Log entries are the only runtime-created entities.
type LogEntry struct {
	ID        string
	PathID    string
	PathName  string
	Date      time.Time
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

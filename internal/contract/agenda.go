package contract

import "time"

// AgendaRequest parameterizes the deadline queries. Now defaults to the
// wall clock; WindowDays defaults to 7 for the weekly view.
type AgendaRequest struct {
	Now        *time.Time
	WindowDays int
}

// AgendaItem is one incomplete, deadline-bearing section annotated for
// presentation. IsNext is true iff this is the most urgent item of its path.
type AgendaItem struct {
	SectionID   string
	SectionName string
	SectionCode string
	PathID      string
	PathName    string
	UnitName    string
	Deadline    time.Time
	DaysUntil   int
	IsNext      bool
}

// WeekGroup is a labeled Sunday-starting week of agenda items.
type WeekGroup struct {
	Label string
	Start time.Time
	Items []AgendaItem
}

// AgendaResponse carries the result of a deadline query.
type AgendaResponse struct {
	GeneratedAt time.Time
	Items       []AgendaItem
	Weeks       []WeekGroup
}

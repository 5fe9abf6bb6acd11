package contract

import (
	"time"

	"github.com/rdubel/trailhead/internal/domain"
)

// RequirementView is a top-level requirement with its children and the
// derived satisfaction state.
type RequirementView struct {
	Requirement *domain.Requirement
	Children    []*domain.Requirement
	Satisfied   bool
}

// SectionDetail is the full read model for one section: the row itself
// plus its topics, resources and requirement tree, with progress counts
// precomputed for display.
type SectionDetail struct {
	Section      *domain.Section
	PathID       string
	PathName     string
	UnitName     string
	Topics       []*domain.Topic
	Resources    []*domain.Resource
	Requirements []RequirementView

	TopicsDone        int
	TopicsTotal       int
	RequirementsMet   int
	RequirementsTotal int
	ReadyToComplete   bool
	DaysUntil         *int
}

// PathOverview is the tree read model for one path.
type PathOverview struct {
	Path  *domain.LearningPath
	Units []UnitOverview
}

// UnitOverview is one unit with its ordered sections.
type UnitOverview struct {
	Unit     *domain.Unit
	Sections []*domain.Section
}

// SectionsCompleted counts completed sections across the path.
func (p *PathOverview) SectionsCompleted() (done, total int) {
	for _, u := range p.Units {
		for _, s := range u.Sections {
			total++
			if s.Completed {
				done++
			}
		}
	}
	return done, total
}

// LogGroup is one calendar day of log entries with its display label
// ("Today", "Yesterday", or the literal date).
type LogGroup struct {
	Date    time.Time
	Label   string
	Entries []*domain.LogEntry
}

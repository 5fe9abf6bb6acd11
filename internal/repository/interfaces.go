package repository

import (
	"context"
	"time"

	"github.com/rdubel/trailhead/internal/domain"
)

// DeadlineCandidate is a joined view of an incomplete, deadline-bearing
// section with its path and unit context, in tree order (path creation
// order, then unit order, then section order). The scheduler consumes
// these to build agenda views.
type DeadlineCandidate struct {
	Section  domain.Section
	PathID   string
	PathName string
	UnitID   string
	UnitName string
}

type PathRepo interface {
	Create(ctx context.Context, p *domain.LearningPath) error
	GetByID(ctx context.Context, id string) (*domain.LearningPath, error)
	List(ctx context.Context) ([]*domain.LearningPath, error)
	Update(ctx context.Context, p *domain.LearningPath) error
	Delete(ctx context.Context, id string) error
}

type UnitRepo interface {
	Create(ctx context.Context, u *domain.Unit) error
	GetByID(ctx context.Context, id string) (*domain.Unit, error)
	ListByPath(ctx context.Context, pathID string) ([]*domain.Unit, error)
	Update(ctx context.Context, u *domain.Unit) error
	Delete(ctx context.Context, id string) error
}

type SectionRepo interface {
	Create(ctx context.Context, s *domain.Section) error
	GetByID(ctx context.Context, id string) (*domain.Section, error)
	// GetScoped fetches a section only if it belongs to the given path.
	GetScoped(ctx context.Context, pathID, sectionID string) (*domain.Section, error)
	ListByUnit(ctx context.Context, unitID string) ([]*domain.Section, error)
	// NextInUnit returns the section immediately following the given order
	// index within a unit, or ErrNotFound when none exists.
	NextInUnit(ctx context.Context, unitID string, afterOrder int) (*domain.Section, error)
	// ListDeadlineCandidates returns every incomplete section with a
	// non-null deadline across all paths, in tree order.
	ListDeadlineCandidates(ctx context.Context) ([]DeadlineCandidate, error)
	Update(ctx context.Context, s *domain.Section) error
	Delete(ctx context.Context, id string) error
}

type TopicRepo interface {
	Create(ctx context.Context, t *domain.Topic) error
	// GetScoped fetches a topic only if it belongs to the given section
	// within the given path.
	GetScoped(ctx context.Context, pathID, sectionID, topicID string) (*domain.Topic, error)
	ListBySection(ctx context.Context, sectionID string) ([]*domain.Topic, error)
	Update(ctx context.Context, t *domain.Topic) error
}

type RequirementRepo interface {
	Create(ctx context.Context, r *domain.Requirement) error
	// GetScoped fetches a top-level requirement only if it belongs to the
	// given section within the given path.
	GetScoped(ctx context.Context, pathID, sectionID, reqID string) (*domain.Requirement, error)
	// GetChild fetches a child row of the given parent requirement.
	GetChild(ctx context.Context, parentID, childID string) (*domain.Requirement, error)
	// ListBySection returns the section's full flat requirement list,
	// top-level rows first, each in order.
	ListBySection(ctx context.Context, sectionID string) ([]*domain.Requirement, error)
	ListChildren(ctx context.Context, parentID string) ([]*domain.Requirement, error)
	Update(ctx context.Context, r *domain.Requirement) error
}

type ResourceRepo interface {
	Create(ctx context.Context, r *domain.Resource) error
	ListBySection(ctx context.Context, sectionID string) ([]*domain.Resource, error)
}

type LogRepo interface {
	Create(ctx context.Context, e *domain.LogEntry) error
	GetByID(ctx context.Context, id string) (*domain.LogEntry, error)
	// List returns all entries, newest entry date first, stable by
	// creation time within a date.
	List(ctx context.Context) ([]*domain.LogEntry, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.LogEntry, error)
	Update(ctx context.Context, e *domain.LogEntry) error
	Delete(ctx context.Context, id string) error
}

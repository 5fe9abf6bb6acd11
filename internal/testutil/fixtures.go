package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/rdubel/trailhead/internal/domain"
)

// LearningPath options
type PathOption func(*domain.LearningPath)

func WithPathDescription(d string) PathOption {
	return func(p *domain.LearningPath) {
		p.Description = d
	}
}

func WithPathCreatedAt(t time.Time) PathOption {
	return func(p *domain.LearningPath) {
		p.CreatedAt = t
		p.UpdatedAt = t
	}
}

func NewTestPath(name string, opts ...PathOption) *domain.LearningPath {
	now := time.Now().UTC()
	p := &domain.LearningPath{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Unit options
type UnitOption func(*domain.Unit)

func WithUnitOrder(i int) UnitOption {
	return func(u *domain.Unit) {
		u.OrderIndex = i
	}
}

func WithCompleteBy(d time.Time) UnitOption {
	return func(u *domain.Unit) {
		u.CompleteBy = &d
	}
}

func NewTestUnit(pathID, name string, opts ...UnitOption) *domain.Unit {
	now := time.Now().UTC()
	u := &domain.Unit{
		ID:        uuid.New().String(),
		PathID:    pathID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Section options
type SectionOption func(*domain.Section)

func WithSectionOrder(i int) SectionOption {
	return func(s *domain.Section) {
		s.OrderIndex = i
	}
}

func WithSectionCode(code string) SectionOption {
	return func(s *domain.Section) {
		s.Code = code
	}
}

func WithDeadline(d time.Time) SectionOption {
	return func(s *domain.Section) {
		s.Deadline = &d
	}
}

func Unlocked() SectionOption {
	return func(s *domain.Section) {
		s.Unlocked = true
	}
}

func Completed(at time.Time) SectionOption {
	return func(s *domain.Section) {
		s.Unlocked = true
		s.Completed = true
		s.CompletedAt = &at
	}
}

func NewTestSection(unitID, name string, opts ...SectionOption) *domain.Section {
	now := time.Now().UTC()
	s := &domain.Section{
		ID:        uuid.New().String(),
		UnitID:    unitID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Topic options
type TopicOption func(*domain.Topic)

func WithTopicOrder(i int) TopicOption {
	return func(t *domain.Topic) {
		t.OrderIndex = i
	}
}

func TopicDone() TopicOption {
	return func(t *domain.Topic) {
		t.Completed = true
	}
}

func NewTestTopic(sectionID, content string, opts ...TopicOption) *domain.Topic {
	t := &domain.Topic{
		ID:        uuid.New().String(),
		SectionID: sectionID,
		Content:   content,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Requirement options
type RequirementOption func(*domain.Requirement)

func WithRequirementOrder(i int) RequirementOption {
	return func(r *domain.Requirement) {
		r.OrderIndex = i
	}
}

func WithParent(parentID string) RequirementOption {
	return func(r *domain.Requirement) {
		r.ParentID = &parentID
	}
}

func RequirementDone() RequirementOption {
	return func(r *domain.Requirement) {
		r.Completed = true
	}
}

func NewTestRequirement(sectionID, content string, opts ...RequirementOption) *domain.Requirement {
	r := &domain.Requirement{
		ID:        uuid.New().String(),
		SectionID: sectionID,
		Content:   content,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LogEntry options
type LogEntryOption func(*domain.LogEntry)

func WithLogCreatedAt(t time.Time) LogEntryOption {
	return func(e *domain.LogEntry) {
		e.CreatedAt = t
		e.UpdatedAt = t
	}
}

func NewTestLogEntry(pathID, pathName string, date time.Time, content string, opts ...LogEntryOption) *domain.LogEntry {
	now := time.Now().UTC()
	e := &domain.LogEntry{
		ID:        uuid.New().String(),
		PathID:    pathID,
		PathName:  pathName,
		Date:      date,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

package service

import (
	"context"
	"time"

	"github.com/rdubel/trailhead/internal/contract"
	"github.com/rdubel/trailhead/internal/domain"
	"github.com/rdubel/trailhead/internal/importer"
)

// PathService serves the read models for learning paths.
type PathService interface {
	List(ctx context.Context) ([]*contract.PathOverview, error)
	Get(ctx context.Context, pathID string) (*contract.PathOverview, error)
}

// SectionService serves the full section read model. Get returns (nil, nil)
// when the section does not exist under the given path.
type SectionService interface {
	Get(ctx context.Context, pathID, sectionID string) (*contract.SectionDetail, error)
}

// ProgressService owns every state transition of the progression model.
// Mutations addressing a row that does not exist under the given path are
// silent no-ops; precondition violations return sentinel errors.
type ProgressService interface {
	ToggleTopic(ctx context.Context, pathID, sectionID, topicID string) error
	// ToggleRequirement flips a top-level requirement when childID is empty,
	// or a child otherwise. Flipping a child recomputes the parent's derived
	// flag; directly flipping a parent that has children is a no-op.
	ToggleRequirement(ctx context.Context, pathID, sectionID, reqID, childID string) error
	SetSectionDeadline(ctx context.Context, pathID, sectionID string, deadline *time.Time) error
	// CompleteSection marks an unlocked section complete once its
	// requirements are met, then unlocks the next section of the same unit.
	CompleteSection(ctx context.Context, pathID, sectionID string) error
}

// AgendaService serves the deadline-driven scheduling views.
type AgendaService interface {
	// Weekly returns incomplete deadline-bearing sections due within the
	// window (overdue included), most urgent first.
	Weekly(ctx context.Context, req contract.AgendaRequest) (*contract.AgendaResponse, error)
	// All returns every incomplete deadline-bearing section, most urgent
	// first, with one next item flagged per path and week groups attached.
	All(ctx context.Context, req contract.AgendaRequest) (*contract.AgendaResponse, error)
}

// LogService owns the flat daily log journal.
type LogService interface {
	Add(ctx context.Context, pathID string, date time.Time, content string) (*domain.LogEntry, error)
	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
	ForDate(ctx context.Context, date time.Time) ([]*domain.LogEntry, error)
	// Grouped returns all entries bucketed by calendar day, newest day
	// first, labeled relative to the reference date.
	Grouped(ctx context.Context, now time.Time) ([]contract.LogGroup, error)
}

// SnapshotService serializes the entire tracker state to a snapshot
// document.
type SnapshotService interface {
	Export(ctx context.Context) (*importer.Snapshot, error)
}

// ImportService loads a snapshot document into the store atomically.
type ImportService interface {
	ImportFile(ctx context.Context, filePath string) (*ImportResult, error)
	ImportSnapshot(ctx context.Context, snap *importer.Snapshot) (*ImportResult, error)
}

// ImportResult summarizes what a snapshot import created.
type ImportResult struct {
	PathCount        int
	UnitCount        int
	SectionCount     int
	TopicCount       int
	RequirementCount int
	ResourceCount    int
	LogEntryCount    int
}

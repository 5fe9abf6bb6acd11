package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rdubel/trailhead/internal/contract"
	"github.com/rdubel/trailhead/internal/domain"
	"github.com/rdubel/trailhead/internal/repository"
	"github.com/rdubel/trailhead/internal/scheduler"
)

type logService struct {
	paths   repository.PathRepo
	entries repository.LogRepo
}

func NewLogService(paths repository.PathRepo, entries repository.LogRepo) LogService {
	return &logService{paths: paths, entries: entries}
}

func (s *logService) Add(ctx context.Context, pathID string, date time.Time, content string) (*domain.LogEntry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyLogContent
	}

	p, err := s.paths.GetByID(ctx, pathID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnknownPath
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &domain.LogEntry{
		ID:        uuid.New().String(),
		PathID:    p.ID,
		PathName:  p.Name,
		Date:      scheduler.StartOfDay(date),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *logService) UpdateContent(ctx context.Context, id, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyLogContent
	}

	entry, err := s.entries.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	entry.Content = content
	entry.UpdatedAt = time.Now().UTC()
	return s.entries.Update(ctx, entry)
}

func (s *logService) Delete(ctx context.Context, id string) error {
	return s.entries.Delete(ctx, id)
}

func (s *logService) ForDate(ctx context.Context, date time.Time) ([]*domain.LogEntry, error) {
	return s.entries.ListByDate(ctx, date)
}

func (s *logService) Grouped(ctx context.Context, now time.Time) ([]contract.LogGroup, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, err
	}

	// Entries arrive newest date first, so groups build in display order.
	var groups []contract.LogGroup
	for _, e := range entries {
		day := scheduler.StartOfDay(e.Date)
		if n := len(groups); n > 0 && groups[n-1].Date.Equal(day) {
			groups[n-1].Entries = append(groups[n-1].Entries, e)
			continue
		}
		groups = append(groups, contract.LogGroup{
			Date:    day,
			Label:   dayLabel(day, now),
			Entries: []*domain.LogEntry{e},
		})
	}
	return groups, nil
}

// dayLabel compares calendar days by their rendered date so a stored UTC
// date and a local wall-clock reference land on the same bucket.
func dayLabel(day, now time.Time) string {
	today := scheduler.StartOfDay(now)
	switch day.Format("2006-01-02") {
	case today.Format("2006-01-02"):
		return "Today"
	case today.AddDate(0, 0, -1).Format("2006-01-02"):
		return "Yesterday"
	default:
		return day.Format("January 2, 2006")
	}
}

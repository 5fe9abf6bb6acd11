package service

import (
	"context"
	"time"

	"github.com/rdubel/trailhead/internal/domain"
	"github.com/rdubel/trailhead/internal/importer"
	"github.com/rdubel/trailhead/internal/repository"
)

type snapshotService struct {
	paths        repository.PathRepo
	units        repository.UnitRepo
	sections     repository.SectionRepo
	topics       repository.TopicRepo
	requirements repository.RequirementRepo
	resources    repository.ResourceRepo
	logs         repository.LogRepo
}

func NewSnapshotService(
	paths repository.PathRepo,
	units repository.UnitRepo,
	sections repository.SectionRepo,
	topics repository.TopicRepo,
	requirements repository.RequirementRepo,
	resources repository.ResourceRepo,
	logs repository.LogRepo,
) SnapshotService {
	return &snapshotService{
		paths:        paths,
		units:        units,
		sections:     sections,
		topics:       topics,
		requirements: requirements,
		resources:    resources,
		logs:         logs,
	}
}

// Export walks the full tree and emits a snapshot that restores losslessly:
// every id, state flag and timestamp is carried so a later import rebuilds
// the exact progression state.
func (s *snapshotService) Export(ctx context.Context) (*importer.Snapshot, error) {
	paths, err := s.paths.List(ctx)
	if err != nil {
		return nil, err
	}

	snap := &importer.Snapshot{}
	for _, p := range paths {
		pi := importer.PathImport{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
		}
		units, err := s.units.ListByPath(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		for _, u := range units {
			ui := importer.UnitImport{
				ID:         u.ID,
				Name:       u.Name,
				CompleteBy: formatDate(u.CompleteBy),
			}
			sections, err := s.sections.ListByUnit(ctx, u.ID)
			if err != nil {
				return nil, err
			}
			for _, sec := range sections {
				si, err := s.exportSection(ctx, sec)
				if err != nil {
					return nil, err
				}
				ui.Sections = append(ui.Sections, *si)
			}
			pi.Units = append(pi.Units, ui)
		}
		snap.Paths = append(snap.Paths, pi)
	}

	entries, err := s.logs.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		snap.LogEntries = append(snap.LogEntries, importer.LogEntryImport{
			ID:        e.ID,
			PathID:    e.PathID,
			PathName:  e.PathName,
			Date:      e.Date.Format("2006-01-02"),
			Content:   e.Content,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
			UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
		})
	}

	return snap, nil
}

func (s *snapshotService) exportSection(ctx context.Context, sec *domain.Section) (*importer.SectionImport, error) {
	unlocked := sec.Unlocked
	si := &importer.SectionImport{
		ID:          sec.ID,
		Name:        sec.Name,
		Code:        sec.Code,
		Deadline:    formatDate(sec.Deadline),
		Unlocked:    &unlocked,
		Completed:   sec.Completed,
		CompletedAt: formatTimestamp(sec.CompletedAt),
	}

	topics, err := s.topics.ListBySection(ctx, sec.ID)
	if err != nil {
		return nil, err
	}
	for _, t := range topics {
		si.Topics = append(si.Topics, importer.TopicImport{
			ID:        t.ID,
			Content:   t.Content,
			Completed: t.Completed,
		})
	}

	reqs, err := s.requirements.ListBySection(ctx, sec.ID)
	if err != nil {
		return nil, err
	}
	children := domain.ChildrenByParent(reqs)
	for _, r := range reqs {
		if r.ParentID != nil {
			continue
		}
		ri := importer.RequirementImport{
			ID:        r.ID,
			Content:   r.Content,
			Completed: r.Completed,
		}
		for _, c := range children[r.ID] {
			ri.Children = append(ri.Children, importer.RequirementImport{
				ID:        c.ID,
				Content:   c.Content,
				Completed: c.Completed,
			})
		}
		si.Requirements = append(si.Requirements, ri)
	}

	resources, err := s.resources.ListBySection(ctx, sec.ID)
	if err != nil {
		return nil, err
	}
	for _, r := range resources {
		si.Resources = append(si.Resources, importer.ResourceImport{
			ID:          r.ID,
			Name:        r.Name,
			URL:         r.URL,
			Description: r.Description,
		})
	}

	return si, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

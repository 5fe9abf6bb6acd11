package service

import (
	"context"
	"errors"

	"github.com/rdubel/trailhead/internal/contract"
	"github.com/rdubel/trailhead/internal/domain"
	"github.com/rdubel/trailhead/internal/repository"
)

type pathService struct {
	paths    repository.PathRepo
	units    repository.UnitRepo
	sections repository.SectionRepo
}

func NewPathService(paths repository.PathRepo, units repository.UnitRepo, sections repository.SectionRepo) PathService {
	return &pathService{paths: paths, units: units, sections: sections}
}

func (s *pathService) List(ctx context.Context) ([]*contract.PathOverview, error) {
	paths, err := s.paths.List(ctx)
	if err != nil {
		return nil, err
	}
	overviews := make([]*contract.PathOverview, 0, len(paths))
	for _, p := range paths {
		ov, err := s.overview(ctx, p)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, ov)
	}
	return overviews, nil
}

func (s *pathService) Get(ctx context.Context, pathID string) (*contract.PathOverview, error) {
	p, err := s.paths.GetByID(ctx, pathID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.overview(ctx, p)
}

func (s *pathService) overview(ctx context.Context, p *domain.LearningPath) (*contract.PathOverview, error) {
	units, err := s.units.ListByPath(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	ov := &contract.PathOverview{Path: p}
	for _, u := range units {
		sections, err := s.sections.ListByUnit(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		ov.Units = append(ov.Units, contract.UnitOverview{Unit: u, Sections: sections})
	}
	return ov, nil
}

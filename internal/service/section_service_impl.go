package service

import (
	"context"
	"errors"
	"time"

	"github.com/rdubel/trailhead/internal/contract"
	"github.com/rdubel/trailhead/internal/domain"
	"github.com/rdubel/trailhead/internal/repository"
	"github.com/rdubel/trailhead/internal/scheduler"
)

type sectionService struct {
	paths        repository.PathRepo
	units        repository.UnitRepo
	sections     repository.SectionRepo
	topics       repository.TopicRepo
	requirements repository.RequirementRepo
	resources    repository.ResourceRepo
}

func NewSectionService(
	paths repository.PathRepo,
	units repository.UnitRepo,
	sections repository.SectionRepo,
	topics repository.TopicRepo,
	requirements repository.RequirementRepo,
	resources repository.ResourceRepo,
) SectionService {
	return &sectionService{
		paths:        paths,
		units:        units,
		sections:     sections,
		topics:       topics,
		requirements: requirements,
		resources:    resources,
	}
}

func (s *sectionService) Get(ctx context.Context, pathID, sectionID string) (*contract.SectionDetail, error) {
	sec, err := s.sections.GetScoped(ctx, pathID, sectionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	path, err := s.paths.GetByID(ctx, pathID)
	if err != nil {
		return nil, err
	}
	unit, err := s.units.GetByID(ctx, sec.UnitID)
	if err != nil {
		return nil, err
	}

	topics, err := s.topics.ListBySection(ctx, sec.ID)
	if err != nil {
		return nil, err
	}
	resources, err := s.resources.ListBySection(ctx, sec.ID)
	if err != nil {
		return nil, err
	}
	reqs, err := s.requirements.ListBySection(ctx, sec.ID)
	if err != nil {
		return nil, err
	}

	detail := &contract.SectionDetail{
		Section:   sec,
		PathID:    path.ID,
		PathName:  path.Name,
		UnitName:  unit.Name,
		Topics:    topics,
		Resources: resources,
	}

	detail.TopicsTotal = len(topics)
	for _, t := range topics {
		if t.Completed {
			detail.TopicsDone++
		}
	}

	children := domain.ChildrenByParent(reqs)
	for _, r := range reqs {
		if r.ParentID != nil {
			continue
		}
		detail.Requirements = append(detail.Requirements, contract.RequirementView{
			Requirement: r,
			Children:    children[r.ID],
			Satisfied:   domain.Satisfied(r, children[r.ID]),
		})
	}
	detail.RequirementsMet, detail.RequirementsTotal = domain.SatisfiedCount(reqs)
	detail.ReadyToComplete = sec.Unlocked && !sec.Completed && domain.RequirementsMet(reqs)

	if sec.Deadline != nil {
		days := scheduler.DaysUntil(time.Now(), *sec.Deadline)
		detail.DaysUntil = &days
	}

	return detail, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/rdubel/trailhead/internal/db"
	"github.com/rdubel/trailhead/internal/domain"
	"github.com/rdubel/trailhead/internal/repository"
)

type progressService struct {
	sections     repository.SectionRepo
	topics       repository.TopicRepo
	requirements repository.RequirementRepo
	uow          db.UnitOfWork
}

func NewProgressService(
	sections repository.SectionRepo,
	topics repository.TopicRepo,
	requirements repository.RequirementRepo,
	uow db.UnitOfWork,
) ProgressService {
	return &progressService{
		sections:     sections,
		topics:       topics,
		requirements: requirements,
		uow:          uow,
	}
}

func (s *progressService) ToggleTopic(ctx context.Context, pathID, sectionID, topicID string) error {
	t, err := s.topics.GetScoped(ctx, pathID, sectionID, topicID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	t.Completed = !t.Completed
	return s.topics.Update(ctx, t)
}

func (s *progressService) ToggleRequirement(ctx context.Context, pathID, sectionID, reqID, childID string) error {
	req, err := s.requirements.GetScoped(ctx, pathID, sectionID, reqID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if childID == "" {
		children, err := s.requirements.ListChildren(ctx, req.ID)
		if err != nil {
			return err
		}
		// The completed flag of a parent with children is derived, not
		// owned; a direct toggle is a no-op.
		if len(children) > 0 {
			return nil
		}
		req.Completed = !req.Completed
		return s.requirements.Update(ctx, req)
	}

	child, err := s.requirements.GetChild(ctx, req.ID, childID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	child.Completed = !child.Completed

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		reqs := repository.NewSQLiteRequirementRepo(tx)
		if err := reqs.Update(ctx, child); err != nil {
			return err
		}
		children, err := reqs.ListChildren(ctx, req.ID)
		if err != nil {
			return err
		}
		derived := true
		for _, c := range children {
			if !c.Completed {
				derived = false
				break
			}
		}
		if derived == req.Completed {
			return nil
		}
		req.Completed = derived
		return reqs.Update(ctx, req)
	})
}

func (s *progressService) SetSectionDeadline(ctx context.Context, pathID, sectionID string, deadline *time.Time) error {
	sec, err := s.sections.GetScoped(ctx, pathID, sectionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	sec.Deadline = deadline
	sec.UpdatedAt = time.Now().UTC()
	return s.sections.Update(ctx, sec)
}

func (s *progressService) CompleteSection(ctx context.Context, pathID, sectionID string) error {
	sec, err := s.sections.GetScoped(ctx, pathID, sectionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	// Completion is terminal; the completed timestamp never moves.
	if sec.Completed {
		return nil
	}
	if !sec.Unlocked {
		return ErrSectionLocked
	}

	reqs, err := s.requirements.ListBySection(ctx, sec.ID)
	if err != nil {
		return err
	}
	if !domain.RequirementsMet(reqs) {
		return ErrRequirementsIncomplete
	}

	now := time.Now().UTC()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sections := repository.NewSQLiteSectionRepo(tx)

		sec.Completed = true
		sec.CompletedAt = &now
		sec.UpdatedAt = now
		if err := sections.Update(ctx, sec); err != nil {
			return err
		}

		// Unlock propagates exactly one step and never across units.
		next, err := sections.NextInUnit(ctx, sec.UnitID, sec.OrderIndex)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if next.Unlocked {
			return nil
		}
		next.Unlocked = true
		next.UpdatedAt = now
		return sections.Update(ctx, next)
	})
}

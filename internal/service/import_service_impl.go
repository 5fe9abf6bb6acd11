package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rdubel/trailhead/internal/db"
	"github.com/rdubel/trailhead/internal/importer"
	"github.com/rdubel/trailhead/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportFile(ctx context.Context, filePath string) (*ImportResult, error) {
	snap, err := importer.LoadSnapshot(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot file: %w", err)
	}
	return s.ImportSnapshot(ctx, snap)
}

// ImportSnapshot validates, converts and inserts a snapshot in one
// transaction, so a failure partway leaves the store untouched.
func (s *importService) ImportSnapshot(ctx context.Context, snap *importer.Snapshot) (*ImportResult, error) {
	if errs := importer.ValidateSnapshot(snap); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	state := importer.Convert(snap, time.Now().UTC())

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		paths := repository.NewSQLitePathRepo(tx)
		units := repository.NewSQLiteUnitRepo(tx)
		sections := repository.NewSQLiteSectionRepo(tx)
		topics := repository.NewSQLiteTopicRepo(tx)
		requirements := repository.NewSQLiteRequirementRepo(tx)
		resources := repository.NewSQLiteResourceRepo(tx)
		logs := repository.NewSQLiteLogRepo(tx)

		for _, p := range state.Paths {
			if err := paths.Create(ctx, p); err != nil {
				return fmt.Errorf("creating path %q: %w", p.Name, err)
			}
		}
		for _, u := range state.Units {
			if err := units.Create(ctx, u); err != nil {
				return fmt.Errorf("creating unit %q: %w", u.Name, err)
			}
		}
		for _, sec := range state.Sections {
			if err := sections.Create(ctx, sec); err != nil {
				return fmt.Errorf("creating section %q: %w", sec.Name, err)
			}
		}
		for _, t := range state.Topics {
			if err := topics.Create(ctx, t); err != nil {
				return fmt.Errorf("creating topic %q: %w", t.Content, err)
			}
		}
		for _, r := range state.Requirements {
			if err := requirements.Create(ctx, r); err != nil {
				return fmt.Errorf("creating requirement %q: %w", r.Content, err)
			}
		}
		for _, r := range state.Resources {
			if err := resources.Create(ctx, r); err != nil {
				return fmt.Errorf("creating resource %q: %w", r.Name, err)
			}
		}
		for _, e := range state.LogEntries {
			if err := logs.Create(ctx, e); err != nil {
				return fmt.Errorf("creating log entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		PathCount:        len(state.Paths),
		UnitCount:        len(state.Units),
		SectionCount:     len(state.Sections),
		TopicCount:       len(state.Topics),
		RequirementCount: len(state.Requirements),
		ResourceCount:    len(state.Resources),
		LogEntryCount:    len(state.LogEntries),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("snapshot validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}

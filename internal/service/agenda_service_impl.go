package service

import (
	"context"
	"time"

	"github.com/rdubel/trailhead/internal/contract"
	"github.com/rdubel/trailhead/internal/repository"
	"github.com/rdubel/trailhead/internal/scheduler"
)

const defaultWindowDays = 7

type agendaService struct {
	sections repository.SectionRepo
}

func NewAgendaService(sections repository.SectionRepo) AgendaService {
	return &agendaService{sections: sections}
}

func (s *agendaService) Weekly(ctx context.Context, req contract.AgendaRequest) (*contract.AgendaResponse, error) {
	now, window := resolveRequest(req)

	items, err := s.loadItems(ctx, now)
	if err != nil {
		return nil, err
	}
	items = scheduler.FilterWindow(items, window)
	scheduler.SortByUrgency(items)

	return &contract.AgendaResponse{
		GeneratedAt: now,
		Items:       toContractItems(items),
	}, nil
}

func (s *agendaService) All(ctx context.Context, req contract.AgendaRequest) (*contract.AgendaResponse, error) {
	now, _ := resolveRequest(req)

	items, err := s.loadItems(ctx, now)
	if err != nil {
		return nil, err
	}
	scheduler.SortByUrgency(items)

	resp := &contract.AgendaResponse{
		GeneratedAt: now,
		Items:       toContractItems(items),
	}
	for _, g := range scheduler.GroupByWeek(items) {
		resp.Weeks = append(resp.Weeks, contract.WeekGroup{
			Label: scheduler.WeekLabel(g.Start, now),
			Start: g.Start,
			Items: toContractItems(g.Items),
		})
	}
	return resp, nil
}

// loadItems pulls every incomplete deadline-bearing section in tree order,
// annotates urgency, and flags the next item per path before any filtering
// narrows the view.
func (s *agendaService) loadItems(ctx context.Context, now time.Time) ([]scheduler.Item, error) {
	cands, err := s.sections.ListDeadlineCandidates(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]scheduler.Item, 0, len(cands))
	for _, c := range cands {
		items = append(items, scheduler.Item{
			SectionID:   c.Section.ID,
			SectionName: c.Section.Name,
			SectionCode: c.Section.Code,
			PathID:      c.PathID,
			PathName:    c.PathName,
			UnitID:      c.UnitID,
			UnitName:    c.UnitName,
			Deadline:    *c.Section.Deadline,
		})
	}
	scheduler.Annotate(now, items)
	scheduler.MarkNextPerPath(items)
	return items, nil
}

func resolveRequest(req contract.AgendaRequest) (time.Time, int) {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}
	window := req.WindowDays
	if window <= 0 {
		window = defaultWindowDays
	}
	return now, window
}

func toContractItems(items []scheduler.Item) []contract.AgendaItem {
	out := make([]contract.AgendaItem, 0, len(items))
	for _, it := range items {
		out = append(out, contract.AgendaItem{
			SectionID:   it.SectionID,
			SectionName: it.SectionName,
			SectionCode: it.SectionCode,
			PathID:      it.PathID,
			PathName:    it.PathName,
			UnitName:    it.UnitName,
			Deadline:    it.Deadline,
			DaysUntil:   it.DaysUntil,
			IsNext:      it.IsNext,
		})
	}
	return out
}

package importer

import (
	"time"

	"github.com/google/uuid"

	"github.com/rdubel/trailhead/internal/domain"
)

// State is the flat row set produced from a snapshot, ready for insertion.
type State struct {
	Paths        []*domain.LearningPath
	Units        []*domain.Unit
	Sections     []*domain.Section
	Topics       []*domain.Topic
	Requirements []*domain.Requirement
	Resources    []*domain.Resource
	LogEntries   []*domain.LogEntry
}

// Convert turns a validated snapshot into domain rows. Explicit ids are
// preserved, missing ids get fresh UUIDs, order indexes come from slice
// position, and the unlock default applies to the first section of each
// path's first unit. A parent requirement's completed flag is recomputed
// as the AND over its children.
func Convert(snap *Snapshot, now time.Time) *State {
	st := &State{}

	for _, pi := range snap.Paths {
		path := &domain.LearningPath{
			ID:          orUUID(pi.ID),
			Name:        pi.Name,
			Description: pi.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		st.Paths = append(st.Paths, path)

		for ui, uimp := range pi.Units {
			unit := &domain.Unit{
				ID:         orUUID(uimp.ID),
				PathID:     path.ID,
				Name:       uimp.Name,
				OrderIndex: ui,
				CompleteBy: parseDate(uimp.CompleteBy),
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			st.Units = append(st.Units, unit)

			for si, simp := range uimp.Sections {
				st.appendSection(unit.ID, si, ui == 0 && si == 0, &simp, now)
			}
		}
	}

	for _, ei := range snap.LogEntries {
		date, _ := time.Parse("2006-01-02", ei.Date)
		st.LogEntries = append(st.LogEntries, &domain.LogEntry{
			ID:        orUUID(ei.ID),
			PathID:    ei.PathID,
			PathName:  pathName(st.Paths, ei.PathID, ei.PathName),
			Date:      date,
			Content:   ei.Content,
			CreatedAt: orTimestamp(ei.CreatedAt, now),
			UpdatedAt: orTimestamp(ei.UpdatedAt, now),
		})
	}

	return st
}

func (st *State) appendSection(unitID string, orderIndex int, unlockedByDefault bool, simp *SectionImport, now time.Time) {
	unlocked := unlockedByDefault
	if simp.Unlocked != nil {
		unlocked = *simp.Unlocked
	}
	if simp.Completed {
		unlocked = true
	}

	sec := &domain.Section{
		ID:          orUUID(simp.ID),
		UnitID:      unitID,
		Name:        simp.Name,
		Code:        simp.Code,
		Deadline:    parseDate(simp.Deadline),
		OrderIndex:  orderIndex,
		Unlocked:    unlocked,
		Completed:   simp.Completed,
		CompletedAt: parseTimestamp(simp.CompletedAt),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	st.Sections = append(st.Sections, sec)

	for i, t := range simp.Topics {
		st.Topics = append(st.Topics, &domain.Topic{
			ID:         orUUID(t.ID),
			SectionID:  sec.ID,
			Content:    t.Content,
			OrderIndex: i,
			Completed:  t.Completed,
		})
	}
	for i, r := range simp.Requirements {
		st.appendRequirement(sec.ID, i, &r)
	}
	for i, r := range simp.Resources {
		st.Resources = append(st.Resources, &domain.Resource{
			ID:          orUUID(r.ID),
			SectionID:   sec.ID,
			Name:        r.Name,
			URL:         r.URL,
			Description: r.Description,
			OrderIndex:  i,
		})
	}
}

func (st *State) appendRequirement(sectionID string, orderIndex int, rimp *RequirementImport) {
	parent := &domain.Requirement{
		ID:         orUUID(rimp.ID),
		SectionID:  sectionID,
		Content:    rimp.Content,
		OrderIndex: orderIndex,
		Completed:  rimp.Completed,
	}

	if len(rimp.Children) > 0 {
		parent.Completed = true
		for _, c := range rimp.Children {
			if !c.Completed {
				parent.Completed = false
				break
			}
		}
	}
	st.Requirements = append(st.Requirements, parent)

	for i, c := range rimp.Children {
		parentID := parent.ID
		st.Requirements = append(st.Requirements, &domain.Requirement{
			ID:         orUUID(c.ID),
			SectionID:  sectionID,
			ParentID:   &parentID,
			Content:    c.Content,
			OrderIndex: i,
			Completed:  c.Completed,
		})
	}
}

func orUUID(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}

func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func parseTimestamp(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}

func orTimestamp(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fallback
	}
	return t
}

func pathName(paths []*domain.LearningPath, pathID, fallback string) string {
	for _, p := range paths {
		if p.ID == pathID {
			return p.Name
		}
	}
	return fallback
}

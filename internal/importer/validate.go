package importer

import (
	"fmt"
	"time"
)

// ValidateSnapshot checks a snapshot document for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateSnapshot(snap *Snapshot) []error {
	var errs []error

	if len(snap.Paths) == 0 {
		errs = append(errs, fmt.Errorf("paths: at least one learning path is required"))
	}

	seenIDs := make(map[string]string)
	pathIDs := make(map[string]bool)
	for i, p := range snap.Paths {
		errs = append(errs, validatePath(fmt.Sprintf("paths[%d]", i), &p, seenIDs)...)
		if p.ID != "" {
			pathIDs[p.ID] = true
		}
	}

	for i, e := range snap.LogEntries {
		errs = append(errs, validateLogEntry(fmt.Sprintf("log_entries[%d]", i), &e, pathIDs, seenIDs)...)
	}

	return errs
}

func validatePath(loc string, p *PathImport, seenIDs map[string]string) []error {
	var errs []error

	errs = append(errs, checkID(loc, p.ID, seenIDs)...)
	if p.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", loc))
	}
	for i, u := range p.Units {
		errs = append(errs, validateUnit(fmt.Sprintf("%s.units[%d]", loc, i), &u, seenIDs)...)
	}

	return errs
}

func validateUnit(loc string, u *UnitImport, seenIDs map[string]string) []error {
	var errs []error

	errs = append(errs, checkID(loc, u.ID, seenIDs)...)
	if u.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", loc))
	}
	if u.CompleteBy != nil {
		if _, err := time.Parse("2006-01-02", *u.CompleteBy); err != nil {
			errs = append(errs, fmt.Errorf("%s.complete_by: invalid date format %q (expected YYYY-MM-DD)", loc, *u.CompleteBy))
		}
	}
	for i, s := range u.Sections {
		errs = append(errs, validateSection(fmt.Sprintf("%s.sections[%d]", loc, i), &s, seenIDs)...)
	}

	return errs
}

func validateSection(loc string, s *SectionImport, seenIDs map[string]string) []error {
	var errs []error

	errs = append(errs, checkID(loc, s.ID, seenIDs)...)
	if s.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", loc))
	}
	if s.Deadline != nil {
		if _, err := time.Parse("2006-01-02", *s.Deadline); err != nil {
			errs = append(errs, fmt.Errorf("%s.deadline: invalid date format %q (expected YYYY-MM-DD)", loc, *s.Deadline))
		}
	}
	if s.CompletedAt != nil {
		if _, err := time.Parse(time.RFC3339, *s.CompletedAt); err != nil {
			errs = append(errs, fmt.Errorf("%s.completed_at: invalid timestamp %q (expected RFC 3339)", loc, *s.CompletedAt))
		}
		if !s.Completed {
			errs = append(errs, fmt.Errorf("%s.completed_at is set but completed is false", loc))
		}
	}
	if s.Completed && s.Unlocked != nil && !*s.Unlocked {
		errs = append(errs, fmt.Errorf("%s: a completed section cannot be locked", loc))
	}

	for i, t := range s.Topics {
		tloc := fmt.Sprintf("%s.topics[%d]", loc, i)
		errs = append(errs, checkID(tloc, t.ID, seenIDs)...)
		if t.Content == "" {
			errs = append(errs, fmt.Errorf("%s.content is required", tloc))
		}
	}
	for i, r := range s.Requirements {
		errs = append(errs, validateRequirement(fmt.Sprintf("%s.requirements[%d]", loc, i), &r, seenIDs)...)
	}
	for i, r := range s.Resources {
		rloc := fmt.Sprintf("%s.resources[%d]", loc, i)
		errs = append(errs, checkID(rloc, r.ID, seenIDs)...)
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", rloc))
		}
	}

	return errs
}

func validateRequirement(loc string, r *RequirementImport, seenIDs map[string]string) []error {
	var errs []error

	errs = append(errs, checkID(loc, r.ID, seenIDs)...)
	if r.Content == "" {
		errs = append(errs, fmt.Errorf("%s.content is required", loc))
	}
	for i, c := range r.Children {
		cloc := fmt.Sprintf("%s.children[%d]", loc, i)
		errs = append(errs, checkID(cloc, c.ID, seenIDs)...)
		if c.Content == "" {
			errs = append(errs, fmt.Errorf("%s.content is required", cloc))
		}
		if len(c.Children) > 0 {
			errs = append(errs, fmt.Errorf("%s: requirements nest at most one level", cloc))
		}
	}

	return errs
}

func validateLogEntry(loc string, e *LogEntryImport, pathIDs map[string]bool, seenIDs map[string]string) []error {
	var errs []error

	errs = append(errs, checkID(loc, e.ID, seenIDs)...)
	if e.PathID == "" {
		errs = append(errs, fmt.Errorf("%s.path_id is required", loc))
	} else if !pathIDs[e.PathID] {
		errs = append(errs, fmt.Errorf("%s.path_id %q does not match any path in the snapshot", loc, e.PathID))
	}
	if e.Content == "" {
		errs = append(errs, fmt.Errorf("%s.content is required", loc))
	}
	if e.Date == "" {
		errs = append(errs, fmt.Errorf("%s.date is required", loc))
	} else if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", loc, e.Date))
	}
	for _, ts := range []struct{ field, value string }{{"created_at", e.CreatedAt}, {"updated_at", e.UpdatedAt}} {
		if ts.value == "" {
			continue
		}
		if _, err := time.Parse(time.RFC3339, ts.value); err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: invalid timestamp %q (expected RFC 3339)", loc, ts.field, ts.value))
		}
	}

	return errs
}

func checkID(loc, id string, seenIDs map[string]string) []error {
	if id == "" {
		return nil
	}
	if prev, ok := seenIDs[id]; ok {
		return []error{fmt.Errorf("%s.id %q duplicates %s.id", loc, id, prev)}
	}
	seenIDs[id] = loc
	return nil
}

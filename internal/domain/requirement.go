package domain

// Requirement is a mastery-gate checklist item for a section. Requirements
// nest at most one level: a row with ParentID == nil is top-level, a row
// with ParentID set is a child. A parent that has children does not own its
// Completed flag — it is derived as the AND over its children.
type Requirement struct {
	ID         string
	SectionID  string
	ParentID   *string
	Content    string
	OrderIndex int
	Completed  bool
}

// ChildrenByParent groups a section's flat requirement rows into a
// parent-id -> children index, preserving order.
func ChildrenByParent(reqs []*Requirement) map[string][]*Requirement {
	children := make(map[string][]*Requirement)
	for _, r := range reqs {
		if r.ParentID != nil {
			children[*r.ParentID] = append(children[*r.ParentID], r)
		}
	}
	return children
}

// Satisfied reports whether a single top-level requirement is met, deriving
// the answer from children when any exist.
func Satisfied(r *Requirement, children []*Requirement) bool {
	if len(children) == 0 {
		return r.Completed
	}
	for _, c := range children {
		if !c.Completed {
			return false
		}
	}
	return true
}

// RequirementsMet reports whether every top-level requirement in the flat
// list is satisfied. This is the completion gate for a section.
func RequirementsMet(reqs []*Requirement) bool {
	children := ChildrenByParent(reqs)
	for _, r := range reqs {
		if r.ParentID != nil {
			continue
		}
		if !Satisfied(r, children[r.ID]) {
			return false
		}
	}
	return true
}

// SatisfiedCount returns (met, total) over top-level requirements, for
// progress displays.
func SatisfiedCount(reqs []*Requirement) (met, total int) {
	children := ChildrenByParent(reqs)
	for _, r := range reqs {
		if r.ParentID != nil {
			continue
		}
		total++
		if Satisfied(r, children[r.ID]) {
			met++
		}
	}
	return met, total
}

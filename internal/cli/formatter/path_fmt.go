package formatter

import (
	"fmt"
	"strings"

	"github.com/rdubel/trailhead/internal/contract"
	"github.com/rdubel/trailhead/internal/domain"
)

// FormatPathList renders a one-line summary per learning path.
func FormatPathList(overviews []*contract.PathOverview) string {
	if len(overviews) == 0 {
		return Dim("No learning paths yet. Import a snapshot to get started.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("Learning Paths"))
	b.WriteString("\n")
	for _, ov := range overviews {
		done, total := ov.SectionsCompleted()
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			Bold(ov.Path.Name),
			RenderCount(done, total, 12),
			Dim(shortID(ov.Path.ID)),
		))
	}
	return b.String()
}

// FormatPathTree renders a path's full unit/section tree with progression
// state markers.
func FormatPathTree(ov *contract.PathOverview) string {
	var b strings.Builder
	b.WriteString(Header(ov.Path.Name))
	b.WriteString("\n")
	if ov.Path.Description != "" {
		b.WriteString(Dim(ov.Path.Description))
		b.WriteString("\n")
	}

	for _, u := range ov.Units {
		b.WriteString(fmt.Sprintf("\n%s", Bold(u.Unit.Name)))
		if u.Unit.CompleteBy != nil {
			b.WriteString(Dim(fmt.Sprintf("  (complete by %s)", u.Unit.CompleteBy.Format("Jan 2, 2006"))))
		}
		b.WriteString("\n")
		for _, s := range u.Sections {
			b.WriteString(formatSectionLine(s))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func formatSectionLine(s *domain.Section) string {
	var marker string
	switch s.State() {
	case domain.SectionCompleted:
		marker = StyleGreen.Render("✓")
	case domain.SectionUnlocked:
		marker = StyleYellow.Render("○")
	default:
		marker = StyleDim.Render("🔒")
	}

	name := s.Name
	if s.Code != "" {
		name = fmt.Sprintf("%s %s", StyleBlue.Render(s.Code), name)
	}
	line := fmt.Sprintf("  %s %s", marker, name)
	if s.Deadline != nil && !s.Completed {
		line += Dim("  due " + s.Deadline.Format("Jan 2"))
	}
	return line
}

// shortID truncates a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

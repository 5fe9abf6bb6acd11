package formatter

import (
	"fmt"
	"strings"

	"github.com/rdubel/trailhead/internal/contract"
	"github.com/rdubel/trailhead/internal/domain"
)

// FormatSectionDetail renders the full section view: state, deadline,
// topics, progression requirements and resources.
func FormatSectionDetail(d *contract.SectionDetail) string {
	var b strings.Builder

	title := d.Section.Name
	if d.Section.Code != "" {
		title = fmt.Sprintf("%s · %s", d.Section.Code, d.Section.Name)
	}
	b.WriteString(Header(title))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%s / %s", d.PathName, d.UnitName)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("State: %s", stateLabel(d.Section)))
	if d.Section.Deadline != nil && !d.Section.Completed && d.DaysUntil != nil {
		b.WriteString(fmt.Sprintf("   Deadline: %s (%s)",
			d.Section.Deadline.Format("Jan 2, 2006"), DueBadge(*d.DaysUntil)))
	}
	b.WriteString("\n")

	if len(d.Topics) > 0 {
		b.WriteString(fmt.Sprintf("\n%s %s\n", Bold("Topics"), RenderCount(d.TopicsDone, d.TopicsTotal, 10)))
		for _, t := range d.Topics {
			b.WriteString(fmt.Sprintf("  %s %s\n", Checkbox(t.Completed), t.Content))
		}
	}

	if len(d.Requirements) > 0 {
		b.WriteString(fmt.Sprintf("\n%s %s\n", Bold("Progression Requirements"), RenderCount(d.RequirementsMet, d.RequirementsTotal, 10)))
		for _, rv := range d.Requirements {
			b.WriteString(fmt.Sprintf("  %s %s", Checkbox(rv.Satisfied), rv.Requirement.Content))
			if len(rv.Children) > 0 {
				b.WriteString(Dim(" (derived)"))
			}
			b.WriteString("\n")
			for _, c := range rv.Children {
				b.WriteString(fmt.Sprintf("    %s %s\n", Checkbox(c.Completed), c.Content))
			}
		}
	}

	if len(d.Resources) > 0 {
		b.WriteString(fmt.Sprintf("\n%s\n", Bold("Resources")))
		for _, r := range d.Resources {
			b.WriteString(fmt.Sprintf("  • %s", r.Name))
			if r.URL != nil {
				b.WriteString(Dim("  " + *r.URL))
			}
			b.WriteString("\n")
		}
	}

	if d.ReadyToComplete {
		b.WriteString("\n" + StyleGreen.Render("All requirements met — ready to complete."))
		b.WriteString("\n")
	}

	return b.String()
}

func stateLabel(s *domain.Section) string {
	switch s.State() {
	case domain.SectionCompleted:
		label := StyleGreen.Render("● COMPLETED")
		if s.CompletedAt != nil {
			label += Dim("  " + s.CompletedAt.Format("Jan 2, 2006"))
		}
		return label
	case domain.SectionUnlocked:
		return StyleYellow.Render("● UNLOCKED")
	default:
		return StyleDim.Render("● LOCKED")
	}
}

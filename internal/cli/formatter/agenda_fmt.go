package formatter

import (
	"fmt"
	"strings"

	"github.com/rdubel/trailhead/internal/contract"
)

// FormatWeekly renders the windowed agenda: a flat urgency-ordered list of
// upcoming and overdue sections.
func FormatWeekly(resp *contract.AgendaResponse) string {
	var b strings.Builder
	b.WriteString(Header("This Week"))
	b.WriteString("\n")

	if len(resp.Items) == 0 {
		b.WriteString(Dim("Nothing due this week."))
		b.WriteString("\n")
		return b.String()
	}

	for _, it := range resp.Items {
		b.WriteString(formatAgendaLine(it))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatAll renders the full deadline agenda grouped by week, with the next
// item of each path flagged.
func FormatAll(resp *contract.AgendaResponse) string {
	var b strings.Builder

	if len(resp.Weeks) == 0 {
		b.WriteString(Dim("No deadlines scheduled."))
		b.WriteString("\n")
		return b.String()
	}

	for i, wk := range resp.Weeks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(wk.Label))
		b.WriteString("\n")
		for _, it := range wk.Items {
			b.WriteString(formatAgendaLine(it))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func formatAgendaLine(it contract.AgendaItem) string {
	name := it.SectionName
	if it.SectionCode != "" {
		name = fmt.Sprintf("%s %s", StyleBlue.Render(it.SectionCode), name)
	}
	line := fmt.Sprintf("  %s  %s  %s",
		it.Deadline.Format("Jan 02"),
		name,
		DueBadge(it.DaysUntil),
	)
	line += Dim(fmt.Sprintf("  · %s / %s", it.PathName, it.UnitName))
	if it.IsNext {
		line += "  " + StylePurple.Render("← next")
	}
	return line
}

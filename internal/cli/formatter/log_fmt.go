package formatter

import (
	"fmt"
	"strings"

	"github.com/rdubel/trailhead/internal/contract"
	"github.com/rdubel/trailhead/internal/domain"
)

// FormatLogGroups renders the journal grouped by day, newest first.
func FormatLogGroups(groups []contract.LogGroup) string {
	if len(groups) == 0 {
		return Dim("No log entries yet.") + "\n"
	}

	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(g.Label))
		b.WriteString("\n")
		for _, e := range g.Entries {
			b.WriteString(formatLogLine(e))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatLogEntries renders a flat entry list for a single day.
func FormatLogEntries(entries []*domain.LogEntry) string {
	if len(entries) == 0 {
		return Dim("No entries for that day.") + "\n"
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(formatLogLine(e))
		b.WriteString("\n")
	}
	return b.String()
}

func formatLogLine(e *domain.LogEntry) string {
	return fmt.Sprintf("  %s %s  %s",
		StyleBlue.Render(e.PathName),
		Dim(shortID(e.ID)),
		e.Content,
	)
}

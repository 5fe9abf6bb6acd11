package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DueStyle returns the style for a days-until-deadline value: red when
// overdue or due today, yellow within three days, green otherwise.
func DueStyle(daysUntil int) lipgloss.Style {
	switch {
	case daysUntil <= 0:
		return StyleRed
	case daysUntil <= 3:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// DueBadge renders a colored relative-deadline badge such as
// "overdue by 2 days", "due today" or "due in 5 days".
func DueBadge(daysUntil int) string {
	switch {
	case daysUntil < -1:
		return StyleRed.Render(fmt.Sprintf("overdue by %d days", -daysUntil))
	case daysUntil == -1:
		return StyleRed.Render("overdue by 1 day")
	case daysUntil == 0:
		return StyleRed.Render("due today")
	case daysUntil == 1:
		return StyleYellow.Render("due tomorrow")
	default:
		return DueStyle(daysUntil).Render(fmt.Sprintf("due in %d days", daysUntil))
	}
}

// Checkbox renders "[x]" or "[ ]" with completion coloring.
func Checkbox(done bool) string {
	if done {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

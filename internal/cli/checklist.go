package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rdubel/trailhead/internal/cli/formatter"
	"github.com/rdubel/trailhead/internal/contract"
	"github.com/rdubel/trailhead/internal/service"
)

// checklistRow is one toggleable line in the section work view.
type checklistRow struct {
	topicID  string
	reqID    string
	childID  string
	content  string
	done     bool
	derived  bool
	indented bool
}

type checklistKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Complete key.Binding
	Quit     key.Binding
}

var checklistKeys = checklistKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	Toggle:   key.NewBinding(key.WithKeys(" ", "x")),
	Complete: key.NewBinding(key.WithKeys("c")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// detailLoadedMsg signals that section data has been (re)loaded.
type detailLoadedMsg struct {
	detail *contract.SectionDetail
	err    error
}

// toggledMsg signals that a toggle or completion round-tripped.
type toggledMsg struct {
	status string
	err    error
}

// checklistModel is the interactive work view for one section: topics and
// requirements as a flat checklist, toggled in place.
type checklistModel struct {
	app       *App
	pathID    string
	sectionID string

	detail *contract.SectionDetail
	rows   []checklistRow
	cursor int
	status string
	err    error
	done   bool
}

func newChecklistModel(app *App, pathID, sectionID string) *checklistModel {
	return &checklistModel{app: app, pathID: pathID, sectionID: sectionID}
}

func (m *checklistModel) Init() tea.Cmd {
	return m.load()
}

func (m *checklistModel) load() tea.Cmd {
	return func() tea.Msg {
		detail, err := m.app.Sections.Get(context.Background(), m.pathID, m.sectionID)
		if err == nil && detail == nil {
			err = fmt.Errorf("section not found")
		}
		return detailLoadedMsg{detail: detail, err: err}
	}
}

func (m *checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.detail = msg.detail
		m.rows = buildChecklistRows(msg.detail)
		if m.cursor >= len(m.rows) {
			m.cursor = len(m.rows) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case toggledMsg:
		if msg.err != nil {
			m.status = formatter.StyleRed.Render(msg.err.Error())
			return m, nil
		}
		m.status = msg.status
		return m, m.load()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, checklistKeys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, checklistKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, checklistKeys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, checklistKeys.Toggle):
			if m.cursor < len(m.rows) {
				return m, m.toggle(m.rows[m.cursor])
			}
		case key.Matches(msg, checklistKeys.Complete):
			return m, m.complete()
		}
	}
	return m, nil
}

func (m *checklistModel) toggle(row checklistRow) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		switch {
		case row.topicID != "":
			err = m.app.Progress.ToggleTopic(ctx, m.pathID, m.sectionID, row.topicID)
		case row.derived:
			return toggledMsg{status: formatter.Dim("That requirement is derived from its sub-items.")}
		default:
			err = m.app.Progress.ToggleRequirement(ctx, m.pathID, m.sectionID, row.reqID, row.childID)
		}
		return toggledMsg{err: err}
	}
}

func (m *checklistModel) complete() tea.Cmd {
	return func() tea.Msg {
		err := m.app.Progress.CompleteSection(context.Background(), m.pathID, m.sectionID)
		switch {
		case errors.Is(err, service.ErrRequirementsIncomplete):
			return toggledMsg{status: formatter.StyleYellow.Render("Requirements are not all complete yet.")}
		case errors.Is(err, service.ErrSectionLocked):
			return toggledMsg{status: formatter.StyleRed.Render("Section is locked.")}
		case err != nil:
			return toggledMsg{err: err}
		}
		return toggledMsg{status: formatter.StyleGreen.Render("Section completed!")}
	}
}

func (m *checklistModel) View() string {
	if m.detail == nil {
		return "Loading...\n"
	}

	var b strings.Builder
	title := m.detail.Section.Name
	if m.detail.Section.Code != "" {
		title = m.detail.Section.Code + " · " + title
	}
	b.WriteString(formatter.Header(title))
	b.WriteString("\n\n")

	for i, row := range m.rows {
		prefix := "  "
		if i == m.cursor {
			prefix = formatter.StyleHeader.Render("> ")
		}
		if row.indented {
			prefix += "  "
		}
		line := fmt.Sprintf("%s%s %s", prefix, formatter.Checkbox(row.done), row.content)
		if row.derived {
			line += formatter.Dim(" (derived)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString("\n" + formatter.Dim("space toggle · c complete section · q quit") + "\n")
	return b.String()
}

func buildChecklistRows(d *contract.SectionDetail) []checklistRow {
	var rows []checklistRow
	for _, t := range d.Topics {
		rows = append(rows, checklistRow{topicID: t.ID, content: t.Content, done: t.Completed})
	}
	for _, rv := range d.Requirements {
		rows = append(rows, checklistRow{
			reqID:   rv.Requirement.ID,
			content: rv.Requirement.Content,
			done:    rv.Satisfied,
			derived: len(rv.Children) > 0,
		})
		for _, c := range rv.Children {
			rows = append(rows, checklistRow{
				reqID:    rv.Requirement.ID,
				childID:  c.ID,
				content:  c.Content,
				done:     c.Completed,
				indented: true,
			})
		}
	}
	return rows
}

func newSectionWorkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "work <path> <section>",
		Short: "Work through a section's checklist interactively",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("section work needs an interactive terminal")
			}
			ctx := context.Background()
			pathID, sectionID, err := resolveSection(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}

			model := newChecklistModel(app, pathID, sectionID)
			if _, err := tea.NewProgram(model).Run(); err != nil {
				return err
			}
			return model.err
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/rdubel/trailhead/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Paths     service.PathService
	Sections  service.SectionService
	Progress  service.ProgressService
	Agenda    service.AgendaService
	Logs      service.LogService
	Snapshots service.SnapshotService
	Import    service.ImportService

	// IsInteractive reports whether stdin is a terminal; interactive
	// commands fall back to flags when it returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "trailhead" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "trailhead",
		Short: "Personal learning path and progress tracker",
	}

	root.AddCommand(
		newPathCmd(app),
		newSectionCmd(app),
		newAgendaCmd(app),
		newLogCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

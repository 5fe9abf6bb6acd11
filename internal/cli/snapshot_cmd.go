package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rdubel/trailhead/internal/importer"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the full tracker state to a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Snapshots.Export(context.Background())
			if err != nil {
				return err
			}
			if err := importer.WriteSnapshot(args[0], snap); err != nil {
				return err
			}
			fmt.Printf("Exported %d paths and %d log entries to %s\n",
				len(snap.Paths), len(snap.LogEntries), args[0])
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Load a snapshot or curriculum file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d paths, %d units, %d sections, %d topics, %d requirements, %d log entries\n",
				result.PathCount, result.UnitCount, result.SectionCount,
				result.TopicCount, result.RequirementCount, result.LogEntryCount)
			return nil
		},
	}
}

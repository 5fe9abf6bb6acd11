package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rdubel/trailhead/internal/cli/formatter"
)

func newPathCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Browse learning paths",
	}

	cmd.AddCommand(
		newPathListCmd(app),
		newPathShowCmd(app),
	)

	return cmd
}

func newPathListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all learning paths with progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			overviews, err := app.Paths.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPathList(overviews))
			return nil
		},
	}
}

func newPathShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <path>",
		Short: "Show a path's units and sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ov, err := resolvePath(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPathTree(ov))
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rdubel/trailhead/internal/cli/formatter"
	"github.com/rdubel/trailhead/internal/contract"
)

func newAgendaCmd(app *App) *cobra.Command {
	var all bool
	var window int

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show upcoming and overdue section deadlines",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			req := contract.AgendaRequest{WindowDays: window}

			if all {
				resp, err := app.Agenda.All(ctx, req)
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatAll(resp))
				return nil
			}

			resp, err := app.Agenda.Weekly(ctx, req)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatWeekly(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show every deadline grouped by week")
	cmd.Flags().IntVar(&window, "window", 0, "Days ahead to include (default 7)")
	return cmd
}

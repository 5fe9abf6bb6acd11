package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rdubel/trailhead/internal/cli/formatter"
	"github.com/rdubel/trailhead/internal/service"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Keep a daily study journal",
	}

	cmd.AddCommand(
		newLogAddCmd(app),
		newLogListCmd(app),
		newLogEditCmd(app),
		newLogRemoveCmd(app),
	)

	return cmd
}

func newLogAddCmd(app *App) *cobra.Command {
	var pathInput, dateStr, content string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if app.interactive() && (pathInput == "" || content == "") {
				if err := runLogForm(ctx, app, &pathInput, &dateStr, &content); err != nil {
					return err
				}
			}

			ov, err := resolvePath(ctx, app, pathInput)
			if err != nil {
				return err
			}

			date := time.Now()
			if dateStr != "" {
				date, err = time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateStr, err)
				}
			}

			entry, err := app.Logs.Add(ctx, ov.Path.ID, date, content)
			switch {
			case errors.Is(err, service.ErrEmptyLogContent):
				return fmt.Errorf("entry content is empty")
			case err != nil:
				return err
			}

			fmt.Printf("Logged for %s: %s\n", formatter.StyleBlue.Render(entry.PathName), entry.Content)
			return nil
		},
	}

	cmd.Flags().StringVar(&pathInput, "path", "", "Learning path name or ID")
	cmd.Flags().StringVar(&dateStr, "date", "", "Entry date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&content, "content", "", "What you worked on")
	return cmd
}

// runLogForm collects missing entry fields interactively.
func runLogForm(ctx context.Context, app *App, pathInput, dateStr, content *string) error {
	overviews, err := app.Paths.List(ctx)
	if err != nil {
		return err
	}
	if len(overviews) == 0 {
		return fmt.Errorf("no learning paths yet; import a snapshot first")
	}

	options := make([]huh.Option[string], 0, len(overviews))
	for _, ov := range overviews {
		options = append(options, huh.NewOption(ov.Path.Name, ov.Path.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Learning Path").
				Options(options...).
				Value(pathInput),
			huh.NewInput().
				Title("Date (YYYY-MM-DD, blank for today)").
				Placeholder(time.Now().Format("2006-01-02")).
				Value(dateStr).
				Validate(validateOptionalDate),
			huh.NewText().
				Title("What did you work on?").
				Value(content),
		),
	).WithTheme(trailheadHuhTheme()).WithShowHelp(false)

	return form.Run()
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func newLogListCmd(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries grouped by day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if dateStr != "" {
				date, err := time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateStr, err)
				}
				entries, err := app.Logs.ForDate(ctx, date)
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatLogEntries(entries))
				return nil
			}

			groups, err := app.Logs.Grouped(ctx, time.Now())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatLogGroups(groups))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Show one day only (YYYY-MM-DD)")
	return cmd
}

func newLogEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <entry-id> <content>",
		Short: "Rewrite a journal entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Logs.UpdateContent(context.Background(), args[0], args[1])
			if errors.Is(err, service.ErrEmptyLogContent) {
				return fmt.Errorf("entry content is empty")
			}
			if err != nil {
				return err
			}
			fmt.Println("Entry updated.")
			return nil
		},
	}
}

func newLogRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <entry-id>",
		Short: "Delete a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Logs.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Entry deleted.")
			return nil
		},
	}
}

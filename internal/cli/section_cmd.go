package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rdubel/trailhead/internal/cli/formatter"
	"github.com/rdubel/trailhead/internal/service"
)

func newSectionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Inspect and progress through sections",
	}

	cmd.AddCommand(
		newSectionShowCmd(app),
		newSectionCompleteCmd(app),
		newSectionDeadlineCmd(app),
		newSectionTopicCmd(app),
		newSectionReqCmd(app),
		newSectionWorkCmd(app),
	)

	return cmd
}

// resolveSection turns (path, section) user input into concrete ids.
func resolveSection(ctx context.Context, app *App, pathInput, sectionInput string) (pathID, sectionID string, err error) {
	ov, err := resolvePath(ctx, app, pathInput)
	if err != nil {
		return "", "", err
	}
	secID, err := resolveSectionID(ov, sectionInput)
	if err != nil {
		return "", "", err
	}
	return ov.Path.ID, secID, nil
}

func newSectionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <path> <section>",
		Short: "Show a section's topics, requirements and resources",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			pathID, sectionID, err := resolveSection(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			detail, err := app.Sections.Get(ctx, pathID, sectionID)
			if err != nil {
				return err
			}
			if detail == nil {
				return fmt.Errorf("section not found")
			}
			fmt.Print(formatter.FormatSectionDetail(detail))
			return nil
		},
	}
}

func newSectionCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <path> <section>",
		Short: "Mark a section completed and unlock the next one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			pathID, sectionID, err := resolveSection(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}

			err = app.Progress.CompleteSection(ctx, pathID, sectionID)
			switch {
			case errors.Is(err, service.ErrSectionLocked):
				return fmt.Errorf("section is still locked; complete the previous section first")
			case errors.Is(err, service.ErrRequirementsIncomplete):
				return fmt.Errorf("progression requirements are not all complete; check them off first")
			case err != nil:
				return err
			}

			fmt.Println(formatter.StyleGreen.Render("Section completed."))
			return nil
		},
	}
}

func newSectionDeadlineCmd(app *App) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "deadline <path> <section> [YYYY-MM-DD]",
		Short: "Set or clear a section's deadline",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			pathID, sectionID, err := resolveSection(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}

			var deadline *time.Time
			switch {
			case clear:
				if len(args) == 3 {
					return fmt.Errorf("--clear cannot be combined with a date")
				}
			case len(args) == 3:
				d, err := time.Parse("2006-01-02", args[2])
				if err != nil {
					return fmt.Errorf("invalid deadline %q: %w", args[2], err)
				}
				deadline = &d
			default:
				return fmt.Errorf("provide a date or --clear")
			}

			if err := app.Progress.SetSectionDeadline(ctx, pathID, sectionID, deadline); err != nil {
				return err
			}
			if deadline == nil {
				fmt.Println("Deadline cleared.")
			} else {
				fmt.Printf("Deadline set to %s.\n", deadline.Format("Jan 2, 2006"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the deadline")
	return cmd
}

func newSectionTopicCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "topic <path> <section> <topic-id>",
		Short: "Toggle a topic's studied state",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			pathID, sectionID, err := resolveSection(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			if err := app.Progress.ToggleTopic(ctx, pathID, sectionID, args[2]); err != nil {
				return err
			}
			fmt.Println("Topic toggled.")
			return nil
		},
	}
}

func newSectionReqCmd(app *App) *cobra.Command {
	var childID string

	cmd := &cobra.Command{
		Use:   "req <path> <section> <req-id>",
		Short: "Toggle a progression requirement",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			pathID, sectionID, err := resolveSection(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			if err := app.Progress.ToggleRequirement(ctx, pathID, sectionID, args[2], childID); err != nil {
				return err
			}
			fmt.Println("Requirement toggled.")
			return nil
		},
	}

	cmd.Flags().StringVar(&childID, "child", "", "Toggle a sub-requirement of the given requirement")
	return cmd
}

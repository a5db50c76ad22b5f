package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"kilometers.ai/sched/internal/core/event"
	"kilometers.ai/sched/internal/interfaces/di"
)

// RunFlags holds command-line flags for the interactive session
type RunFlags struct {
	Plain      bool
	ExportPath string
}

func addRunFlags(cmd *cobra.Command, flags *RunFlags) {
	cmd.Flags().BoolVar(&flags.Plain, "plain", false, "Use line prompts instead of the interactive form")
	cmd.Flags().StringVar(&flags.ExportPath, "export", "", "Write accepted events to this .ics file on exit")
}

// NewRunCommand creates the run command
func NewRunCommand(container *CLIContainer) *cobra.Command {
	flags := &RunFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Enter events interactively",
		Long: `Prompt for events one at a time. Invalid answers are asked again; events
that conflict with an accepted one are reported and skipped. When you stop,
the accepted schedule is printed.

Examples:
  sched run                       # Interactive form on a terminal
  sched run --plain < events.txt  # Line prompts, answers from a file
  sched run --export week.ics     # Also write an iCalendar file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, container, flags)
		},
	}
	addRunFlags(cmd, flags)

	return cmd
}

// runSession picks the front end and exports the result when asked to
func runSession(cmd *cobra.Command, container *CLIContainer, flags *RunFlags) error {
	app := container.App
	ctx := cmd.Context()
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	svc := app.NewSchedulingService()

	plain := flags.Plain || app.Config.Plain || !di.IsTerminal(in)
	app.Logger.Debug("starting session", "plain", plain)

	var err error
	if plain {
		err = NewLinePrompter(in, out, svc).Run(ctx)
	} else {
		err = runForm(ctx, in, out, svc)
	}
	if err != nil {
		return err
	}

	return exportEvents(out, app, flags.ExportPath, svc.Events())
}

// exportEvents writes the .ics file when a path is set by flag or config
func exportEvents(out io.Writer, app *di.Container, flagPath string, events []event.Event) error {
	path := flagPath
	if path == "" {
		path = app.Config.Export.Path
	}
	if path == "" {
		return nil
	}

	exporter, err := app.NewExporter()
	if err != nil {
		return fmt.Errorf("failed to configure export: %w", err)
	}
	if err := exporter.WriteFile(path, events); err != nil {
		return err
	}
	app.Logger.Info("schedule exported", "path", path, "events", len(events))
	fmt.Fprintln(out, NewStyles(out).Muted.Render(fmt.Sprintf("Exported %d event(s) to %s", len(events), path)))
	return nil
}

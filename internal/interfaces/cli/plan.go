package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"kilometers.ai/sched/internal/infrastructure/plan"
)

// NewPlanCommand creates the plan command
func NewPlanCommand(container *CLIContainer) *cobra.Command {
	var exportPath string

	cmd := &cobra.Command{
		Use:   "plan <file.yaml>",
		Short: "Check a batch of events from a YAML file",
		Long: `Run every event of a YAML plan through the same validation and conflict
checks as an interactive session, in file order. Invalid entries are
reported and skipped since there is no one to ask again.

Plan format:
  events:
    - name: Jazz Night
      location: Hall A
      time: Evening
      date: 01-01-2025
      duration: 90
      category: Concert`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, container, args[0], exportPath)
		},
	}
	cmd.Flags().StringVar(&exportPath, "export", "", "Write accepted events to this .ics file")

	return cmd
}

func runPlan(cmd *cobra.Command, container *CLIContainer, path, exportPath string) error {
	app := container.App
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	styles := NewStyles(out)

	p, err := plan.Load(path)
	if err != nil {
		return err
	}
	app.Logger.Debug("plan loaded", "path", path, "entries", len(p.Events))

	svc := app.NewSchedulingService()
	for i, entry := range p.Events {
		label := fmt.Sprintf("Entry %d (%s)", i+1, entry.Name)

		fields, err := entry.Fields()
		if err != nil {
			fmt.Fprintln(out, styles.Problem.Render(fmt.Sprintf("%s skipped: %v", label, err)))
			continue
		}

		outcome, err := svc.Submit(ctx, fields)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n%s\n\n", styles.Muted.Render(label), styles.outcome(outcome))
	}

	fmt.Fprint(out, styles.schedule(svc.Events()))
	fmt.Fprintln(out, styles.stats(svc.Stats()))

	return exportEvents(out, app, exportPath, svc.Events())
}

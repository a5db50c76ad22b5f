package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"kilometers.ai/sched/internal/interfaces/di"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// CLIContainer holds the dependencies resolved before any command runs
type CLIContainer struct {
	App *di.Container
}

// NewRootCommand creates the base command. Without a subcommand it starts
// an interactive session.
func NewRootCommand() *cobra.Command {
	container := &CLIContainer{}
	opts := di.Options{}
	runFlags := &RunFlags{}

	var rootCmd = &cobra.Command{
		Use:   "sched",
		Short: "Record event schedules and catch conflicts",
		Long: `sched records event schedules from the console and rejects events that
conflict with ones already accepted.

Each event has a name, location, time of day (Morning, Afternoon, Evening),
date (DD-MM-YYYY), duration in minutes and category (Concert, Exhibition,
Workshop). The category decides the default service package. An event is
rejected when an accepted event shares its date, time and location, or
just its date. Nothing is kept between runs.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.LogOutput = cmd.ErrOrStderr()
			app, err := di.NewContainer(opts)
			if err != nil {
				return err
			}
			container.App = app
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, container, runFlags)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file path (default is ./sched.yaml or $SCHED_CONFIG_PATH)")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	addRunFlags(rootCmd, runFlags)

	rootCmd.AddCommand(NewRunCommand(container))
	rootCmd.AddCommand(NewPlanCommand(container))
	rootCmd.AddCommand(NewCategoriesCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute runs the root command and exits non-zero on failure
func Execute(ctx context.Context) {
	rootCmd := NewRootCommand()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

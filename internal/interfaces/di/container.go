package di

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"kilometers.ai/sched/internal/application/services"
	"kilometers.ai/sched/internal/config"
	"kilometers.ai/sched/internal/core/catalog"
	"kilometers.ai/sched/internal/core/conflict"
	"kilometers.ai/sched/internal/core/registry"
	"kilometers.ai/sched/internal/infrastructure/export"
	"kilometers.ai/sched/internal/logging"
)

// Options are the values known before the container is built, usually
// taken from persistent command-line flags.
type Options struct {
	ConfigPath string
	LogLevel   string
	Debug      bool
	LogOutput  io.Writer
}

// Container holds all application dependencies
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Catalog catalog.Catalog
}

// NewContainer creates and configures the dependency injection container
func NewContainer(opts Options) (*Container, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	switch {
	case opts.Debug:
		cfg.LogLevel = "debug"
	case opts.LogLevel != "":
		cfg.LogLevel = opts.LogLevel
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}

	return &Container{
		Config:  cfg,
		Logger:  logging.New(out, level, !IsTerminal(out)),
		Catalog: catalog.New(),
	}, nil
}

// NewSchedulingService returns a service over a fresh, empty registry
func (c *Container) NewSchedulingService() *services.SchedulingService {
	return services.NewSchedulingService(c.Catalog, conflict.DefaultChain(), registry.New(), c.Logger)
}

// NewExporter builds the iCalendar exporter from configuration
func (c *Container) NewExporter() (*export.ICalExporter, error) {
	return export.NewICalExporter(c.Config.Export)
}

// IsTerminal reports whether v is a file attached to a terminal
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

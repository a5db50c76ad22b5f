package cli

import (
	"io"
	"log/slog"
	"strings"

	"kilometers.ai/sched/internal/application/services"
	"kilometers.ai/sched/internal/core/catalog"
	"kilometers.ai/sched/internal/core/conflict"
	"kilometers.ai/sched/internal/core/registry"
)

func newTestService() *services.SchedulingService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return services.NewSchedulingService(catalog.New(), conflict.DefaultChain(), registry.New(), logger)
}

// script joins answers into newline-terminated input
func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// sessionScript enters four events: an accepted one, a slot conflict, a
// date conflict and a second accepted one. It includes two invalid
// answers that must be asked again.
var sessionScript = script(
	"Jazz Night", "Hall A", "pagi", "31-02-2025", "01-01-2025", "abc", "90", "konser", "y",
	"Rock Night", "HALL A", "Morning", "01-01-2025", "60", "Concert", "y",
	"Pottery", "Studio", "siang", "01-01-2025", "30", "workshop", "Y",
	"Expo", "Gallery", "malam", "02-01-2025", "120", "pameran", "n",
)

package services

import (
	"context"
	"fmt"
	"log/slog"

	"kilometers.ai/sched/internal/core/conflict"
	"kilometers.ai/sched/internal/core/event"
	"kilometers.ai/sched/internal/core/registry"
)

// Outcome is the result of submitting one candidate event
type Outcome struct {
	Event   event.Event
	Verdict conflict.Verdict
}

// Accepted reports whether the event was added to the registry
func (o Outcome) Accepted() bool {
	return !o.Verdict.IsConflict()
}

// Statistics tracks submissions over the lifetime of the service
type Statistics struct {
	Submitted int                       `json:"submitted"`
	Accepted  int                       `json:"accepted"`
	Rejected  map[conflict.RuleName]int `json:"rejected"`
}

// TotalRejected sums rejections over all rules
func (s Statistics) TotalRejected() int {
	total := 0
	for _, n := range s.Rejected {
		total += n
	}
	return total
}

// SchedulingService builds candidate events, runs them through the
// conflict chain and stores the ones that clear it.
type SchedulingService struct {
	resolver event.ServiceResolver
	chain    *conflict.Chain
	registry *registry.Registry
	logger   *slog.Logger
	stats    Statistics
}

// NewSchedulingService creates a new scheduling service
func NewSchedulingService(
	resolver event.ServiceResolver,
	chain *conflict.Chain,
	reg *registry.Registry,
	logger *slog.Logger,
) *SchedulingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SchedulingService{
		resolver: resolver,
		chain:    chain,
		registry: reg,
		logger:   logger,
		stats:    Statistics{Rejected: make(map[conflict.RuleName]int)},
	}
}

// Submit constructs the event described by fields and appends it to the
// registry unless a conflict rule fires. A conflict is reported through
// the outcome, not as an error.
func (s *SchedulingService) Submit(ctx context.Context, fields event.Fields) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	candidate, err := event.CreateEvent(fields, s.resolver)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to build event: %w", err)
	}
	s.stats.Submitted++

	verdict := s.chain.Check(candidate, s.registry.Snapshot())
	if verdict.IsConflict() {
		s.stats.Rejected[verdict.Rule()]++
		existing, _ := verdict.Existing()
		s.logger.DebugContext(ctx, "event rejected",
			"event", candidate.Name(),
			"rule", verdict.Rule(),
			"conflicts_with", existing.Name(),
		)
		return Outcome{Event: candidate, Verdict: verdict}, nil
	}

	s.registry.Append(candidate)
	s.stats.Accepted++
	s.logger.DebugContext(ctx, "event accepted",
		"id", candidate.ID(),
		"event", candidate.Name(),
		"date", candidate.Date(),
		"time", candidate.TimeOfDay(),
		"count", s.registry.Len(),
	)
	return Outcome{Event: candidate, Verdict: verdict}, nil
}

// Events returns the accepted events in acceptance order
func (s *SchedulingService) Events() []event.Event {
	return s.registry.Snapshot()
}

// Stats returns a copy of the submission statistics
func (s *SchedulingService) Stats() Statistics {
	rejected := make(map[conflict.RuleName]int, len(s.stats.Rejected))
	for k, v := range s.stats.Rejected {
		rejected[k] = v
	}
	return Statistics{
		Submitted: s.stats.Submitted,
		Accepted:  s.stats.Accepted,
		Rejected:  rejected,
	}
}

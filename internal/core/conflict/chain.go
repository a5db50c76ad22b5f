package conflict

import (
	"fmt"

	"kilometers.ai/sched/internal/core/event"
)

// RuleName identifies a conflict rule in verdicts and statistics
type RuleName string

const (
	TimeLocationConflict RuleName = "TimeLocationConflict"
	DateConflict         RuleName = "DateConflict"
)

// Rule is a single conflict predicate. Matches compares the candidate
// against one existing event; Reason completes the sentence
// "<candidate> has ... <existing>" in user feedback.
type Rule struct {
	Name    RuleName
	Reason  string
	Matches func(candidate, existing event.Event) bool
}

// Report names the rule that fired and the existing event it matched
type Report struct {
	Rule     Rule
	Existing event.Event
}

// Evaluate scans existing in insertion order and reports the first match
func (r Rule) Evaluate(candidate event.Event, existing []event.Event) (Report, bool) {
	for _, e := range existing {
		if r.Matches(candidate, e) {
			return Report{Rule: r, Existing: e}, true
		}
	}
	return Report{}, false
}

// TimeLocationRule fires when date, time of day and location all match
func TimeLocationRule() Rule {
	return Rule{
		Name:   TimeLocationConflict,
		Reason: "the same date, time and location as",
		Matches: func(candidate, existing event.Event) bool {
			return candidate.SameSlot(existing)
		},
	}
}

// DateRule fires when the dates match, whatever the time or location
func DateRule() Rule {
	return Rule{
		Name:   DateConflict,
		Reason: "the same date as",
		Matches: func(candidate, existing event.Event) bool {
			return candidate.SameDate(existing)
		},
	}
}

// Chain evaluates rules in order and stops at the first one that reports.
// A rule runs over the whole registry before the next rule is consulted,
// so an earlier rule always wins regardless of where later matches sit.
type Chain struct {
	rules []Rule
}

// NewChain creates a chain with rules in priority order
func NewChain(rules ...Rule) *Chain {
	return &Chain{rules: append([]Rule(nil), rules...)}
}

// DefaultChain returns the TimeLocationConflict then DateConflict chain
func DefaultChain() *Chain {
	return NewChain(TimeLocationRule(), DateRule())
}

// With returns a new chain with rule appended after the existing ones
func (c *Chain) With(rule Rule) *Chain {
	return NewChain(append(c.Rules(), rule)...)
}

// Rules returns the rules in evaluation order
func (c *Chain) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Check returns the verdict for candidate against the existing events
func (c *Chain) Check(candidate event.Event, existing []event.Event) Verdict {
	for _, rule := range c.rules {
		if report, ok := rule.Evaluate(candidate, existing); ok {
			return Verdict{report: &report}
		}
	}
	return NoConflict
}

// Verdict is the outcome of a chain check. The zero value is NoConflict.
type Verdict struct {
	report *Report
}

// NoConflict is the verdict of a candidate that can be accepted
var NoConflict = Verdict{}

// IsConflict reports whether some rule fired
func (v Verdict) IsConflict() bool {
	return v.report != nil
}

// Rule returns the name of the rule that fired, or "" for NoConflict
func (v Verdict) Rule() RuleName {
	if v.report == nil {
		return ""
	}
	return v.report.Rule.Name
}

// Existing returns the pre-existing event the candidate collided with
func (v Verdict) Existing() (event.Event, bool) {
	if v.report == nil {
		return event.Event{}, false
	}
	return v.report.Existing, true
}

// Message renders the user-facing conflict line for candidate
func (v Verdict) Message(candidate event.Event) string {
	if v.report == nil {
		return ""
	}
	return fmt.Sprintf("Conflict found: %s has %s %s",
		candidate.Name(), v.report.Rule.Reason, v.report.Existing.Name())
}

package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kilometers.ai/sched/internal/application/services"
	"kilometers.ai/sched/internal/core/conflict"
	"kilometers.ai/sched/internal/core/event"
)

const bannerWidth = 35

// Styles renders session output. Colors follow the capabilities of the
// writer the renderer was created for, so buffers get plain text.
type Styles struct {
	Banner   lipgloss.Style
	Success  lipgloss.Style
	Conflict lipgloss.Style
	Problem  lipgloss.Style
	Prompt   lipgloss.Style
	Muted    lipgloss.Style
}

// NewStyles creates the session styles for output w
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Banner:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Success:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
		Conflict: r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Problem:  r.NewStyle().Foreground(lipgloss.Color("196")),
		Prompt:   r.NewStyle().Foreground(lipgloss.Color("252")),
		Muted:    r.NewStyle().Faint(true),
	}
}

func (s Styles) banner(title string) string {
	rule := strings.Repeat("=", bannerWidth)
	pad := (bannerWidth - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	centered := strings.Repeat(" ", pad) + title
	return s.Banner.Render(rule) + "\n" + s.Banner.Render(centered) + "\n" + s.Banner.Render(rule)
}

func (s Styles) outcome(o services.Outcome) string {
	if !o.Accepted() {
		return s.Conflict.Render(o.Verdict.Message(o.Event))
	}
	return s.Success.Render("=== Schedule Added Successfully ===") + "\n" + o.Event.Detail()
}

func (s Styles) problem(err error) string {
	return s.Problem.Render(fmt.Sprintf("%v. Try again.", err))
}

func (s Styles) schedule(events []event.Event) string {
	var b strings.Builder
	b.WriteString(s.banner("EVENT SCHEDULE LIST"))
	b.WriteString("\n")
	if len(events) == 0 {
		b.WriteString(s.Muted.Render("No events scheduled."))
		b.WriteString("\n")
	}
	for i, evt := range events {
		fmt.Fprintf(&b, "Event %d: %s\n", i+1, evt.Detail())
	}
	return b.String()
}

func (s Styles) stats(st services.Statistics) string {
	line := fmt.Sprintf("%d submitted, %d accepted, %d rejected", st.Submitted, st.Accepted, st.TotalRejected())

	rules := make([]conflict.RuleName, 0, len(st.Rejected))
	for rule, n := range st.Rejected {
		if n > 0 {
			rules = append(rules, rule)
		}
	}
	slices.Sort(rules)
	parts := make([]string, 0, len(rules))
	for _, rule := range rules {
		parts = append(parts, fmt.Sprintf("%s: %d", rule, st.Rejected[rule]))
	}
	if len(parts) > 0 {
		line += " (" + strings.Join(parts, ", ") + ")"
	}
	return s.Muted.Render(line)
}

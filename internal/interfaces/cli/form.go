package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"kilometers.ai/sched/internal/application/services"
	"kilometers.ai/sched/internal/core/event"
)

// formModel is the Bubble Tea entry form. It walks the same steps as the
// line prompter, keeping a transcript of finished answers above the
// active prompt.
type formModel struct {
	ctx        context.Context
	svc        *services.SchedulingService
	styles     Styles
	stage      int
	fields     event.Fields
	input      []rune
	problem    string
	transcript []string
	done       bool
	err        error
}

// confirmStage is the stage index of the "add another?" question
var confirmStage = len(entrySteps)

func newFormModel(ctx context.Context, svc *services.SchedulingService, styles Styles) formModel {
	return formModel{
		ctx:        ctx,
		svc:        svc,
		styles:     styles,
		transcript: []string{styles.banner("INPUT EVENT SCHEDULE")},
	}
}

// Init implements the Bubble Tea init method
func (m formModel) Init() tea.Cmd {
	return nil
}

// Update implements the Bubble Tea update method
func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.done = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	case tea.KeyEnter:
		return m.submit()
	}
	return m, nil
}

func (m formModel) submit() (tea.Model, tea.Cmd) {
	answer := string(m.input)
	m.input = nil

	if m.stage == confirmStage {
		m.transcript = append(m.transcript, m.styles.Prompt.Render(continuePrompt)+answer)
		if !wantsAnother(answer) {
			m.done = true
			return m, tea.Quit
		}
		m.stage = 0
		m.fields = event.Fields{}
		m.transcript = append(m.transcript, "", m.styles.banner("INPUT EVENT SCHEDULE"))
		return m, nil
	}

	s := entrySteps[m.stage]
	if err := s.apply(&m.fields, answer); err != nil {
		if !errors.Is(err, event.ErrInvalidInput) {
			m.err = err
			m.done = true
			return m, tea.Quit
		}
		m.problem = m.styles.problem(err)
		return m, nil
	}
	m.problem = ""
	m.transcript = append(m.transcript, m.styles.Prompt.Render(s.prompt)+answer)
	m.stage++

	if m.stage < confirmStage {
		return m, nil
	}

	outcome, err := m.svc.Submit(m.ctx, m.fields)
	if err != nil {
		m.err = err
		m.done = true
		return m, tea.Quit
	}
	m.transcript = append(m.transcript, "", m.styles.outcome(outcome), "")
	return m, nil
}

// View implements the Bubble Tea view method
func (m formModel) View() string {
	var b strings.Builder
	for _, line := range m.transcript {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.done {
		return b.String()
	}

	prompt := continuePrompt
	if m.stage < confirmStage {
		prompt = entrySteps[m.stage].prompt
	}
	fmt.Fprintf(&b, "%s%s█\n", m.styles.Prompt.Render(prompt), string(m.input))
	if m.problem != "" {
		b.WriteString(m.problem)
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render("enter: submit • esc: finish"))
	b.WriteString("\n")
	return b.String()
}

// runForm runs the interactive form until the user stops, then prints
// the accepted schedule below the final transcript.
func runForm(ctx context.Context, in io.Reader, out io.Writer, svc *services.SchedulingService) error {
	styles := NewStyles(out)
	program := tea.NewProgram(
		newFormModel(ctx, svc, styles),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	if m, ok := final.(formModel); ok && m.err != nil {
		return m.err
	}

	fmt.Fprintf(out, "\n%s", styles.schedule(svc.Events()))
	fmt.Fprintln(out, styles.stats(svc.Stats()))
	return nil
}

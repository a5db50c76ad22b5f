package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"kilometers.ai/sched/internal/application/services"
	"kilometers.ai/sched/internal/core/event"
)

// LinePrompter runs the entry loop over plain line-oriented I/O. It is
// used when stdin is not a terminal, and with --plain.
type LinePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	styles  Styles
	svc     *services.SchedulingService
}

// NewLinePrompter creates a prompter reading answers from in
func NewLinePrompter(in io.Reader, out io.Writer, svc *services.SchedulingService) *LinePrompter {
	return &LinePrompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		styles:  NewStyles(out),
		svc:     svc,
	}
}

// Run collects events until the user declines to continue or input
// ends, then prints the accepted schedule. An entry cut short by the end
// of input is dropped.
func (p *LinePrompter) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(p.out, p.styles.banner("INPUT EVENT SCHEDULE"))

		fields, err := p.readFields(ctx)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			break
		}
		if err != nil {
			return err
		}

		outcome, err := p.svc.Submit(ctx, fields)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.out, "\n%s\n", p.styles.outcome(outcome))

		fmt.Fprintln(p.out)
		answer, err := p.ask(ctx, continuePrompt)
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if !wantsAnother(answer) {
			break
		}
	}

	fmt.Fprintf(p.out, "\n%s", p.styles.schedule(p.svc.Events()))
	fmt.Fprintln(p.out, p.styles.stats(p.svc.Stats()))
	return nil
}

// readFields walks through every entry step, asking again until each
// answer parses
func (p *LinePrompter) readFields(ctx context.Context) (event.Fields, error) {
	var fields event.Fields
	for _, s := range entrySteps {
		for {
			answer, err := p.ask(ctx, s.prompt)
			if err != nil {
				return event.Fields{}, err
			}
			if err := s.apply(&fields, answer); err != nil {
				if !errors.Is(err, event.ErrInvalidInput) {
					return event.Fields{}, err
				}
				fmt.Fprintln(p.out, p.styles.problem(err))
				continue
			}
			break
		}
	}
	return fields, nil
}

func (p *LinePrompter) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, p.styles.Prompt.Render(prompt))
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

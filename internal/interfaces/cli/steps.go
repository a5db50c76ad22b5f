package cli

import (
	"strings"

	"kilometers.ai/sched/internal/core/event"
)

const continuePrompt = "Add another schedule? (y/n): "

// step is one prompted field of an event entry. apply parses the raw
// line into fields and returns an ErrInvalidInput error when the user
// has to be asked again.
type step struct {
	prompt string
	apply  func(f *event.Fields, input string) error
}

var entrySteps = []step{
	{
		prompt: "Event name: ",
		apply: func(f *event.Fields, input string) (err error) {
			f.Name, err = event.ParseText("name", input)
			return err
		},
	},
	{
		prompt: "Location: ",
		apply: func(f *event.Fields, input string) (err error) {
			f.Location, err = event.ParseText("location", input)
			return err
		},
	},
	{
		prompt: "Time (Morning/Afternoon/Evening): ",
		apply: func(f *event.Fields, input string) (err error) {
			f.TimeOfDay, err = event.ParseTimeOfDay(input)
			return err
		},
	},
	{
		prompt: "Date (DD-MM-YYYY): ",
		apply: func(f *event.Fields, input string) (err error) {
			f.Date, err = event.ParseDate(input)
			return err
		},
	},
	{
		prompt: "Duration (minutes): ",
		apply: func(f *event.Fields, input string) (err error) {
			f.DurationMinutes, err = event.ParseDuration(input)
			return err
		},
	},
	{
		prompt: "Category (Concert/Exhibition/Workshop): ",
		apply: func(f *event.Fields, input string) (err error) {
			f.Category, err = event.ParseCategory(input)
			return err
		},
	},
}

// wantsAnother interprets the answer to continuePrompt; only "y" continues
func wantsAnother(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

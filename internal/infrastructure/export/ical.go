package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	ics "github.com/arran4/golang-ical"

	"kilometers.ai/sched/internal/config"
	"kilometers.ai/sched/internal/core/event"
)

const productID = "-//kilometers.ai//sched//EN"

// ICalExporter renders accepted events as an iCalendar document. Each
// time-of-day bucket starts at a configured wall clock time.
type ICalExporter struct {
	loc    *time.Location
	starts map[event.TimeOfDay]config.Clock
	now    func() time.Time
}

// NewICalExporter creates an exporter from the export configuration
func NewICalExporter(cfg config.ExportConfig) (*ICalExporter, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	starts := make(map[event.TimeOfDay]config.Clock, 3)
	for tod, value := range map[event.TimeOfDay]string{
		event.Morning:   cfg.MorningStart,
		event.Afternoon: cfg.AfternoonStart,
		event.Evening:   cfg.EveningStart,
	} {
		clock, err := config.ParseClock(value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s start: %w", tod, err)
		}
		starts[tod] = clock
	}

	return &ICalExporter{loc: loc, starts: starts, now: time.Now}, nil
}

// StartOf returns the instant the event's bucket starts on its date,
// read off the wall clock in the export timezone
func (x *ICalExporter) StartOf(evt event.Event) time.Time {
	year, month, day := evt.Date().Date()
	return x.starts[evt.TimeOfDay()].On(year, month, day, x.loc)
}

// Calendar builds the calendar with one VEVENT per event, in order
func (x *ICalExporter) Calendar(events []event.Event) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	stamp := x.now().UTC()
	for _, evt := range events {
		start := x.StartOf(evt)
		ve := cal.AddEvent(evt.ID().Value())
		ve.SetDtStampTime(stamp)
		ve.SetStartAt(start)
		ve.SetEndAt(start.Add(time.Duration(evt.DurationMinutes()) * time.Minute))
		ve.SetSummary(evt.Name())
		ve.SetLocation(evt.Location())
		ve.SetDescription(evt.Services())
		ve.AddProperty(ics.ComponentPropertyCategories, evt.Category().String())
	}
	return cal
}

// Write serializes events to w
func (x *ICalExporter) Write(w io.Writer, events []event.Event) error {
	if _, err := io.WriteString(w, x.Calendar(events).Serialize()); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}

// WriteFile writes events to path, creating parent directories
func (x *ICalExporter) WriteFile(path string, events []event.Event) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := x.Write(f, events); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

package plan

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"kilometers.ai/sched/internal/core/event"
)

// Entry is one event as written in a plan file. Values stay raw strings
// so they go through the same parsers as interactive input.
type Entry struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
	Time     string `yaml:"time"`
	Date     string `yaml:"date"`
	Duration string `yaml:"duration"`
	Category string `yaml:"category"`
}

// Plan is an ordered batch of entries
type Plan struct {
	Events []Entry `yaml:"events"`
}

// Decode reads a plan document from r
func Decode(r io.Reader) (*Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return &p, nil
		}
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	return &p, nil
}

// Load reads the plan file at path
func Load(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open plan: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Fields validates the entry and returns every problem found at once
func (e Entry) Fields() (event.Fields, error) {
	var (
		fields event.Fields
		errs   []error
		err    error
	)
	if fields.Name, err = event.ParseText("name", e.Name); err != nil {
		errs = append(errs, err)
	}
	if fields.Location, err = event.ParseText("location", e.Location); err != nil {
		errs = append(errs, err)
	}
	if fields.TimeOfDay, err = event.ParseTimeOfDay(e.Time); err != nil {
		errs = append(errs, err)
	}
	if fields.Date, err = event.ParseDate(e.Date); err != nil {
		errs = append(errs, err)
	}
	if fields.DurationMinutes, err = event.ParseDuration(e.Duration); err != nil {
		errs = append(errs, err)
	}
	if fields.Category, err = event.ParseCategory(e.Category); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return event.Fields{}, errors.Join(errs...)
	}
	return fields, nil
}

package testfixtures

import (
	"time"

	"kilometers.ai/sched/internal/core/catalog"
	"kilometers.ai/sched/internal/core/event"
)

// EventBuilder provides a builder pattern for creating test events
type EventBuilder struct {
	id     *event.EventID
	fields event.Fields
}

// NewEventBuilder creates a new EventBuilder with sensible defaults
func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		fields: event.Fields{
			Name:            "Test Event",
			Location:        "Hall A",
			Date:            MustDate("01-01-2025"),
			TimeOfDay:       event.Morning,
			DurationMinutes: 60,
			Category:        event.Concert,
		},
	}
}

// WithID sets a specific event ID
func (b *EventBuilder) WithID(id event.EventID) *EventBuilder {
	b.id = &id
	return b
}

// WithName sets the event name
func (b *EventBuilder) WithName(name string) *EventBuilder {
	b.fields.Name = name
	return b
}

// WithLocation sets the venue
func (b *EventBuilder) WithLocation(location string) *EventBuilder {
	b.fields.Location = location
	return b
}

// WithDate sets the date from a DD-MM-YYYY string
func (b *EventBuilder) WithDate(date string) *EventBuilder {
	b.fields.Date = MustDate(date)
	return b
}

// WithCalendarDate sets the date from its parts
func (b *EventBuilder) WithCalendarDate(year int, month time.Month, day int) *EventBuilder {
	d, err := event.NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	b.fields.Date = d
	return b
}

// WithTimeOfDay sets the scheduling bucket
func (b *EventBuilder) WithTimeOfDay(tod event.TimeOfDay) *EventBuilder {
	b.fields.TimeOfDay = tod
	return b
}

// WithDuration sets the duration in minutes
func (b *EventBuilder) WithDuration(minutes int) *EventBuilder {
	b.fields.DurationMinutes = minutes
	return b
}

// WithCategory sets the category
func (b *EventBuilder) WithCategory(category event.Category) *EventBuilder {
	b.fields.Category = category
	return b
}

// Fields returns the raw fields without building an event
func (b *EventBuilder) Fields() event.Fields {
	return b.fields
}

// Build creates the event using the real service catalog
func (b *EventBuilder) Build() (event.Event, error) {
	if b.id != nil {
		return event.NewEvent(*b.id, b.fields, catalog.New())
	}
	return event.CreateEvent(b.fields, catalog.New())
}

// MustBuild creates the event and panics on error (for test convenience)
func (b *EventBuilder) MustBuild() event.Event {
	evt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return evt
}

// MustDate parses a DD-MM-YYYY date and panics on error
func MustDate(value string) event.Date {
	d, err := event.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

package event

import (
	"fmt"
	"strings"
)

// ServiceResolver maps a category to its fixed service description
type ServiceResolver interface {
	Resolve(category Category) (string, error)
}

// Fields carries the user-supplied values of an event. Services are not
// part of it: they are always derived from Category.
type Fields struct {
	Name            string
	Location        string
	Date            Date
	TimeOfDay       TimeOfDay
	DurationMinutes int
	Category        Category
}

// Event is an accepted or candidate schedule entry. All fields are set
// once by NewEvent and never change afterwards.
type Event struct {
	id              EventID
	name            string
	location        string
	date            Date
	timeOfDay       TimeOfDay
	durationMinutes int
	category        Category
	services        string
}

// NewEvent creates a new Event with validation, resolving its services
// through resolver exactly once.
func NewEvent(id EventID, fields Fields, resolver ServiceResolver) (Event, error) {
	if id.Value() == "" {
		return Event{}, fmt.Errorf("%w: event ID cannot be empty", ErrInvalidInput)
	}

	name, err := ParseText("name", fields.Name)
	if err != nil {
		return Event{}, err
	}
	location, err := ParseText("location", fields.Location)
	if err != nil {
		return Event{}, err
	}
	if fields.Date.IsZero() {
		return Event{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !fields.TimeOfDay.Valid() {
		return Event{}, fmt.Errorf("%w: unknown time of day %q", ErrInvalidInput, fields.TimeOfDay)
	}
	if fields.DurationMinutes <= 0 {
		return Event{}, fmt.Errorf("%w: duration must be greater than 0", ErrInvalidInput)
	}

	services, err := resolver.Resolve(fields.Category)
	if err != nil {
		return Event{}, fmt.Errorf("failed to resolve services: %w", err)
	}

	return Event{
		id:              id,
		name:            name,
		location:        location,
		date:            fields.Date,
		timeOfDay:       fields.TimeOfDay,
		durationMinutes: fields.DurationMinutes,
		category:        fields.Category,
		services:        services,
	}, nil
}

// CreateEvent is a factory method for creating events with generated ID
func CreateEvent(fields Fields, resolver ServiceResolver) (Event, error) {
	return NewEvent(GenerateEventID(), fields, resolver)
}

// ID returns the event ID
func (e Event) ID() EventID {
	return e.id
}

// Name returns the event name
func (e Event) Name() string {
	return e.name
}

// Location returns the venue
func (e Event) Location() string {
	return e.location
}

// Date returns the calendar day of the event
func (e Event) Date() Date {
	return e.date
}

// TimeOfDay returns the scheduling bucket
func (e Event) TimeOfDay() TimeOfDay {
	return e.timeOfDay
}

// DurationMinutes returns the duration in minutes
func (e Event) DurationMinutes() int {
	return e.durationMinutes
}

// Category returns the event category
func (e Event) Category() Category {
	return e.category
}

// Services returns the service package derived from the category
func (e Event) Services() string {
	return e.services
}

// SameDate reports whether both events fall on the same day
func (e Event) SameDate(other Event) bool {
	return e.date == other.date
}

// SameSlot reports whether both events share date, time of day and
// location. Locations are compared case-insensitively.
func (e Event) SameSlot(other Event) bool {
	return e.SameDate(other) &&
		e.timeOfDay == other.timeOfDay &&
		Fold(e.location) == Fold(other.location)
}

// Detail returns the one-line human-readable description of the event
func (e Event) Detail() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Event: %s, Location: %s, Date: %s, Time: %s, ", e.name, e.location, e.date, e.timeOfDay)
	fmt.Fprintf(&b, "Duration: %d minutes, Category: %s, Services: %s", e.durationMinutes, e.category, e.services)
	return b.String()
}

// String returns a string representation of the event
func (e Event) String() string {
	return fmt.Sprintf("Event{ID: %s, Name: %s, Date: %s, Time: %s, Location: %s}",
		e.id.Value(),
		e.name,
		e.date,
		e.timeOfDay,
		e.location,
	)
}

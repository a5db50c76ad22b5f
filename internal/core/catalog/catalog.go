package catalog

import (
	"errors"
	"fmt"

	"kilometers.ai/sched/internal/core/event"
)

// ErrUnknownCategory is returned when a category outside the closed set
// reaches the catalog. Callers validate categories before this point, so
// seeing it means the input boundary let a bad value through.
var ErrUnknownCategory = errors.New("unknown category")

// Entry pairs a category with its service package
type Entry struct {
	Category event.Category
	Services string
}

var services = map[event.Category]string{
	event.Concert:    "Audio System, Stage Lighting",
	event.Exhibition: "Booth Setup, Exhibition Guides",
	event.Workshop:   "Instructor, Materials",
}

// Catalog resolves the default service package of a category
type Catalog struct{}

// New creates the service catalog
func New() Catalog {
	return Catalog{}
}

// Resolve returns the fixed service description for category
func (Catalog) Resolve(category event.Category) (string, error) {
	s, ok := services[category]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return s, nil
}

// Entries lists the catalog in category display order
func (c Catalog) Entries() []Entry {
	entries := make([]Entry, 0, len(services))
	for _, category := range event.Categories() {
		entries = append(entries, Entry{Category: category, Services: services[category]})
	}
	return entries
}

var _ event.ServiceResolver = Catalog{}

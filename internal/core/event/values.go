package event

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// EventID is a value object representing a unique event identifier
type EventID struct {
	value string
}

// NewEventID creates a new EventID with validation
func NewEventID(value string) (EventID, error) {
	if value == "" {
		return EventID{}, fmt.Errorf("%w: event ID cannot be empty", ErrInvalidInput)
	}
	if _, err := uuid.Parse(value); err != nil {
		return EventID{}, fmt.Errorf("%w: event ID must be a UUID: %w", ErrInvalidInput, err)
	}
	return EventID{value: value}, nil
}

// GenerateEventID creates a new unique EventID
func GenerateEventID() EventID {
	return EventID{value: uuid.NewString()}
}

// Value returns the string value of the EventID
func (e EventID) Value() string {
	return e.value
}

// String implements the Stringer interface
func (e EventID) String() string {
	return e.value
}

// DateLayout is the only accepted textual date format (DD-MM-YYYY).
const DateLayout = "02-01-2006"

var datePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// Date is a calendar day without time or zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate creates a Date, rejecting days that do not exist in the Gregorian calendar
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < 1 || year > 9999 {
		return Date{}, fmt.Errorf("%w: year %d out of range", ErrInvalidInput, year)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("%w: %02d-%02d-%04d is not a calendar date", ErrInvalidInput, day, int(month), year)
	}
	return Date{year: year, month: month, day: day}, nil
}

// ParseDate parses a DD-MM-YYYY string strictly: no single-digit parts,
// no rollover of out-of-range days.
func ParseDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if !datePattern.MatchString(value) {
		return Date{}, fmt.Errorf("%w: date %q must use the DD-MM-YYYY format", ErrInvalidInput, value)
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q is not a calendar date", ErrInvalidInput, value)
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

// IsZero reports whether the date was never set
func (d Date) IsZero() bool {
	return d.year == 0
}

// Date returns the year, month and day
func (d Date) Date() (year int, month time.Month, day int) {
	return d.year, d.month, d.day
}

// In returns the start of the day in loc
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// String formats the date as DD-MM-YYYY
func (d Date) String() string {
	return d.In(time.UTC).Format(DateLayout)
}

// TimeOfDay is one of the three discrete scheduling buckets
type TimeOfDay string

const (
	Morning   TimeOfDay = "Morning"
	Afternoon TimeOfDay = "Afternoon"
	Evening   TimeOfDay = "Evening"
)

// TimesOfDay lists the buckets in chronological order
func TimesOfDay() []TimeOfDay {
	return []TimeOfDay{Morning, Afternoon, Evening}
}

var timeOfDayAliases = map[string]TimeOfDay{
	"morning":   Morning,
	"pagi":      Morning,
	"afternoon": Afternoon,
	"siang":     Afternoon,
	"evening":   Evening,
	"malam":     Evening,
}

// ParseTimeOfDay accepts the English or Indonesian bucket name in any case
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	if tod, ok := timeOfDayAliases[Fold(value)]; ok {
		return tod, nil
	}
	return "", fmt.Errorf("%w: time %q must be Morning, Afternoon or Evening", ErrInvalidInput, value)
}

// Valid reports whether t is one of the known buckets
func (t TimeOfDay) Valid() bool {
	switch t {
	case Morning, Afternoon, Evening:
		return true
	}
	return false
}

// String returns the string representation of TimeOfDay
func (t TimeOfDay) String() string {
	return string(t)
}

// Category is the closed set of event kinds
type Category string

const (
	Concert    Category = "Concert"
	Exhibition Category = "Exhibition"
	Workshop   Category = "Workshop"
)

// Categories lists every category in display order
func Categories() []Category {
	return []Category{Concert, Exhibition, Workshop}
}

var categoryAliases = map[string]Category{
	"concert":    Concert,
	"konser":     Concert,
	"exhibition": Exhibition,
	"pameran":    Exhibition,
	"workshop":   Workshop,
}

// ParseCategory accepts the English or Indonesian category name in any case
func ParseCategory(value string) (Category, error) {
	if c, ok := categoryAliases[Fold(value)]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: category %q must be Concert, Exhibition or Workshop", ErrInvalidInput, value)
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// ParseDuration parses a positive number of minutes
func ParseDuration(value string) (int, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: duration %q is not a whole number", ErrInvalidInput, value)
	}
	if minutes <= 0 {
		return 0, fmt.Errorf("%w: duration must be greater than 0", ErrInvalidInput)
	}
	return minutes, nil
}

// ParseText trims value and rejects it when nothing is left
func ParseText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s cannot be empty", ErrInvalidInput, field)
	}
	return value, nil
}

// Fold trims s and applies Unicode case folding so that two strings that
// differ only in case compare equal.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

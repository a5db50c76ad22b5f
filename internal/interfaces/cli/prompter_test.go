package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter_FullSession(t *testing.T) {
	var out bytes.Buffer
	svc := newTestService()

	err := NewLinePrompter(strings.NewReader(sessionScript), &out, svc).Run(context.Background())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "INPUT EVENT SCHEDULE")
	assert.Contains(t, text, `"31-02-2025" is not a calendar date. Try again.`)
	assert.Contains(t, text, "not a whole number. Try again.")
	assert.Contains(t, text, "=== Schedule Added Successfully ===")
	assert.Contains(t, text, "Conflict found: Rock Night has the same date, time and location as Jazz Night")
	assert.Contains(t, text, "Conflict found: Pottery has the same date as Jazz Night")
	assert.Contains(t, text, "EVENT SCHEDULE LIST")
	assert.Contains(t, text,
		"Event 1: Event: Jazz Night, Location: Hall A, Date: 01-01-2025, Time: Morning, "+
			"Duration: 90 minutes, Category: Concert, Services: Audio System, Stage Lighting")
	assert.Contains(t, text,
		"Event 2: Event: Expo, Location: Gallery, Date: 02-01-2025, Time: Evening, "+
			"Duration: 120 minutes, Category: Exhibition, Services: Booth Setup, Exhibition Guides")
	assert.NotContains(t, text, "Event 3:")
	assert.Contains(t, text, "4 submitted, 2 accepted, 2 rejected (DateConflict: 1, TimeLocationConflict: 1)")

	require.Len(t, svc.Events(), 2)
	assert.Equal(t, "Jazz Night", svc.Events()[0].Name())
	assert.Equal(t, "Expo", svc.Events()[1].Name())
}

func TestLinePrompter_RepromptsUntilValid(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		problem string
	}{
		{
			name:    "BlankName",
			answers: []string{"  ", "Gala", "Hall", "Evening", "05-05-2025", "45", "Konser"},
			problem: "name cannot be empty. Try again.",
		},
		{
			name:    "UnknownTime",
			answers: []string{"Gala", "Hall", "noon", "Evening", "05-05-2025", "45", "Konser"},
			problem: `time "noon" must be Morning, Afternoon or Evening. Try again.`,
		},
		{
			name:    "WrongDateFormat",
			answers: []string{"Gala", "Hall", "Evening", "2025-05-05", "05-05-2025", "45", "Konser"},
			problem: `date "2025-05-05" must use the DD-MM-YYYY format. Try again.`,
		},
		{
			name:    "ZeroDuration",
			answers: []string{"Gala", "Hall", "Evening", "05-05-2025", "0", "45", "Konser"},
			problem: "duration must be greater than 0. Try again.",
		},
		{
			name:    "UnknownCategory",
			answers: []string{"Gala", "Hall", "Evening", "05-05-2025", "45", "Seminar", "Konser"},
			problem: `category "Seminar" must be Concert, Exhibition or Workshop. Try again.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			svc := newTestService()
			input := script(append(tt.answers, "n")...)

			err := NewLinePrompter(strings.NewReader(input), &out, svc).Run(context.Background())
			require.NoError(t, err)

			assert.Contains(t, out.String(), tt.problem)
			require.Len(t, svc.Events(), 1)
			assert.Equal(t, "Gala", svc.Events()[0].Name())
		})
	}
}

func TestLinePrompter_EndOfInputDropsPartialEntry(t *testing.T) {
	var out bytes.Buffer
	svc := newTestService()

	err := NewLinePrompter(strings.NewReader("Solo\nHall\n"), &out, svc).Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, svc.Events())
	assert.Contains(t, out.String(), "No events scheduled.")
	assert.Contains(t, out.String(), "0 submitted, 0 accepted, 0 rejected")
}

func TestLinePrompter_AnythingButYStops(t *testing.T) {
	for _, answer := range []string{"n", "no", "yes", ""} {
		t.Run(answer, func(t *testing.T) {
			var out bytes.Buffer
			svc := newTestService()
			input := script("Gala", "Hall", "Evening", "05-05-2025", "45", "Konser", answer,
				"Second", "Hall", "Morning", "06-05-2025", "45", "Konser", "n")

			err := NewLinePrompter(strings.NewReader(input), &out, svc).Run(context.Background())
			require.NoError(t, err)
			assert.Len(t, svc.Events(), 1)
		})
	}
}

func TestLinePrompter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := NewLinePrompter(strings.NewReader(sessionScript), &out, newTestService()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

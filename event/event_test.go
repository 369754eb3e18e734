package event

import (
	"testing"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	start := time.Date(2024, 7, 26, 0, 0, 0, 0, time.UTC)
	testData := map[string]struct {
		event Event
		err   error
	}{
		"valid":          {NewEvent("closure", start, start.Add(24*time.Hour)), nil},
		"unset time":     {NewEvent("closure", time.Time{}, start), ErrUnsetTime},
		"start past end": {NewEvent("closure", start.Add(time.Hour), start), ErrStartAfterEnd},
		"no name":        {NewEvent("", start, start.Add(time.Hour)), ErrNoEventName},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.err, td.event.Valid())
		})
	}
}

func TestHoliday(t *testing.T) {
	testData := map[string]struct {
		hol      *cal.Holiday
		start    time.Time
		end      time.Time
		expected []Event
	}{
		"independence day": {
			hol:   IndependenceDay,
			start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			expected: []Event{
				{
					"Independence_Day_2024",
					time.Date(2024, 7, 26, 0, 0, 0, 0, time.UTC),
					time.Date(2024, 7, 27, 0, 0, 0, 0, time.UTC),
				},
				{
					"Independence_Day_2025",
					time.Date(2025, 7, 26, 0, 0, 0, 0, time.UTC),
					time.Date(2025, 7, 27, 0, 0, 0, 0, time.UTC),
				},
			},
		},
		"outside range": {
			hol:      ChristmasDay,
			start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			expected: []Event{},
		},
		"non utc tz": {
			hol:   FlagDay,
			start: time.Date(2024, 8, 1, 0, 0, 0, 0, time.FixedZone("GMT+1", 60*60)),
			end:   time.Date(2024, 9, 1, 0, 0, 0, 0, time.FixedZone("GMT+1", 60*60)),
			expected: []Event{
				{
					"Flag_Day_2024",
					time.Date(2024, 8, 24, 0, 0, 0, 0, time.FixedZone("GMT+1", 60*60)),
					time.Date(2024, 8, 25, 0, 0, 0, 0, time.FixedZone("GMT+1", 60*60)),
				},
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, Holiday(td.hol, td.start, td.end))
		})
	}
}

func TestCalendar(t *testing.T) {
	c := NewCalendar()

	// Thursday before Independence Day 2024
	thu := time.Date(2024, 7, 25, 12, 0, 0, 0, time.UTC)
	assert.True(t, c.IsOpen(thu))
	assert.False(t, c.IsOpen(thu.AddDate(0, 0, 1)))
	assert.False(t, c.IsOpen(thu.AddDate(0, 0, 2)))

	// holiday friday and the weekend are skipped
	assert.Equal(t, time.Date(2024, 7, 29, 12, 0, 0, 0, time.UTC), c.Next(thu, 24*time.Hour))
	assert.Equal(t, time.Date(2024, 7, 29, 12, 0, 0, 0, time.UTC), c.Next(thu, 0))

	closures := c.Closures(
		time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC),
	)
	if assert.Len(t, closures, 2) {
		assert.Equal(t, "Independence_Day_2024", closures[0].Name)
		assert.Equal(t, "Flag_Day_2024", closures[1].Name)
	}
}

func TestCalendarCustomHolidays(t *testing.T) {
	c := NewCalendar(ChristmasDay)
	assert.True(t, c.IsOpen(time.Date(2024, 7, 26, 12, 0, 0, 0, time.UTC)))
	assert.False(t, c.IsOpen(time.Date(2024, 12, 25, 12, 0, 0, 0, time.UTC)))
}

func TestCalendarAddClosure(t *testing.T) {
	c := NewCalendar()
	mon := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	require.True(t, c.IsOpen(mon.Add(12*time.Hour)))

	require.Nil(t, c.AddClosure(NewEvent("Bank Closure", mon, mon.AddDate(0, 0, 1))))
	assert.False(t, c.IsOpen(mon.Add(12*time.Hour)))
	assert.True(t, c.IsOpen(mon.AddDate(0, 0, 1)))

	// friday steps over the weekend and the closed monday
	fri := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC), c.Next(fri, 24*time.Hour))

	closures := c.Closures(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))
	if assert.Len(t, closures, 2) {
		assert.Equal(t, "New_Years_Day_2025", closures[0].Name)
		assert.Equal(t, "Bank Closure", closures[1].Name)
	}

	err := c.AddClosure(NewEvent("", mon, mon.AddDate(0, 0, 1)))
	assert.ErrorIs(t, err, ErrNoEventName)
	err = c.AddClosure(NewEvent("Backwards", mon.AddDate(0, 0, 1), mon))
	assert.ErrorIs(t, err, ErrStartAfterEnd)
}

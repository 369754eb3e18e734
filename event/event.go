// Package event describes the days on which no official rate is published. Forecast
// timestamps can skip these closures.
package event

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
)

var (
	ErrStartAfterEnd = errors.New("event start time is after end time")
	ErrUnsetTime     = errors.New("unset event start or end time")
	ErrNoEventName   = errors.New("no event name")
)

// Event is a closure spanning [Start, End).
type Event struct {
	Name  string    `json:"name" yaml:"name"`
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

func NewEvent(name string, start, end time.Time) Event {
	return Event{
		Name:  name,
		Start: start,
		End:   end,
	}
}

// Valid checks that the closure is named and spans a set, ordered time range.
func (e *Event) Valid() error {
	if e.Start.IsZero() || e.End.IsZero() {
		return ErrUnsetTime
	}
	if e.Start.After(e.End) {
		return ErrStartAfterEnd
	}
	if e.Name == "" {
		return ErrNoEventName
	}
	return nil
}

// Contains reports whether t falls within [Start, End).
func (e *Event) Contains(t time.Time) bool {
	return !t.Before(e.Start) && t.Before(e.End)
}

// Holiday returns one full day closure per year for every observed date of hol that falls
// within [start, end], expressed in the location of start.
func Holiday(hol *cal.Holiday, start, end time.Time) []Event {
	startLoc := start.Location()

	events := []Event{}
	for i := start.Year(); i <= end.Year(); i++ {
		_, observed := hol.Calc(i)
		if observed.IsZero() {
			continue
		}
		day := time.Date(observed.Year(), observed.Month(), observed.Day(), 0, 0, 0, 0, startLoc)

		if (day.After(start) || day.Equal(start)) && (day.Before(end) || day.Equal(end)) {
			name := strings.ReplaceAll(fmt.Sprintf("%s_%d", hol.Name, i), " ", "_")
			events = append(events, NewEvent(name, day, day.AddDate(0, 0, 1)))
		}
	}
	return events
}

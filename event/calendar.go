package event

import (
	"fmt"
	"sort"
	"time"

	"github.com/rickar/cal/v2"
)

// maxClosureRun bounds the search for the next open day.
const maxClosureRun = 31 * 24 * time.Hour

// Calendar knows which days carry a published rate: weekdays that are not public holidays.
// One off closures added with AddClosure are honored alongside the holidays.
type Calendar struct {
	bc       *cal.BusinessCalendar
	holidays []*cal.Holiday
	closures []Event
}

// NewCalendar builds a calendar with the given holidays. No holidays means the Liberian
// public holidays.
func NewCalendar(holidays ...*cal.Holiday) *Calendar {
	if len(holidays) == 0 {
		holidays = Holidays
	}
	bc := cal.NewBusinessCalendar()
	bc.AddHoliday(holidays...)
	return &Calendar{bc: bc, holidays: holidays}
}

// AddClosure registers an unscheduled closure, such as a declared bank holiday. It must not
// be called while the calendar is in use by other goroutines.
func (c *Calendar) AddClosure(ev Event) error {
	if err := ev.Valid(); err != nil {
		return fmt.Errorf("invalid closure %q, %w", ev.Name, err)
	}
	c.closures = append(c.closures, ev)
	return nil
}

// IsOpen reports whether a rate is published on the day of t.
func (c *Calendar) IsOpen(t time.Time) bool {
	if !c.bc.IsWorkday(t) {
		return false
	}
	for _, ev := range c.closures {
		if ev.Contains(t) {
			return false
		}
	}
	return true
}

// Next steps forward from t by interval until it lands on an open day.
func (c *Calendar) Next(t time.Time, interval time.Duration) time.Time {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	limit := int(maxClosureRun / interval)
	next := t.Add(interval)
	for i := 0; i < limit && !c.IsOpen(next); i++ {
		next = next.Add(interval)
	}
	return next
}

// Closures lists the holiday and one off closures overlapping start to end, ordered by start
// time.
func (c *Calendar) Closures(start, end time.Time) []Event {
	var events []Event
	for _, hol := range c.holidays {
		events = append(events, Holiday(hol, start, end)...)
	}
	for _, ev := range c.closures {
		if ev.Start.After(end) || !ev.End.After(start) {
			continue
		}
		events = append(events, ev)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
	return events
}

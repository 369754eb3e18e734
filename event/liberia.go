package event

import (
	"time"

	"github.com/rickar/cal/v2"
)

// Liberian public holidays on which the central bank does not publish a reference rate.
var (
	NewYearsDay = &cal.Holiday{
		Name:  "New Years Day",
		Type:  cal.ObservancePublic,
		Month: time.January,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}
	ArmedForcesDay = &cal.Holiday{
		Name:  "Armed Forces Day",
		Type:  cal.ObservancePublic,
		Month: time.February,
		Day:   11,
		Func:  cal.CalcDayOfMonth,
	}
	DecorationDay = &cal.Holiday{
		Name:    "Decoration Day",
		Type:    cal.ObservancePublic,
		Month:   time.March,
		Day:     1,
		Weekday: time.Wednesday,
		Offset:  2,
		Func:    cal.CalcWeekdayOffset,
	}
	RobertsBirthday = &cal.Holiday{
		Name:  "J. J. Roberts Birthday",
		Type:  cal.ObservancePublic,
		Month: time.March,
		Day:   15,
		Func:  cal.CalcDayOfMonth,
	}
	FastAndPrayerDay = &cal.Holiday{
		Name:    "Fast and Prayer Day",
		Type:    cal.ObservancePublic,
		Month:   time.April,
		Day:     1,
		Weekday: time.Friday,
		Offset:  2,
		Func:    cal.CalcWeekdayOffset,
	}
	UnificationDay = &cal.Holiday{
		Name:  "National Unification Day",
		Type:  cal.ObservancePublic,
		Month: time.May,
		Day:   14,
		Func:  cal.CalcDayOfMonth,
	}
	IndependenceDay = &cal.Holiday{
		Name:  "Independence Day",
		Type:  cal.ObservancePublic,
		Month: time.July,
		Day:   26,
		Func:  cal.CalcDayOfMonth,
	}
	FlagDay = &cal.Holiday{
		Name:  "Flag Day",
		Type:  cal.ObservancePublic,
		Month: time.August,
		Day:   24,
		Func:  cal.CalcDayOfMonth,
	}
	ThanksgivingDay = &cal.Holiday{
		Name:    "Thanksgiving Day",
		Type:    cal.ObservancePublic,
		Month:   time.November,
		Day:     1,
		Weekday: time.Thursday,
		Offset:  1,
		Func:    cal.CalcWeekdayOffset,
	}
	TubmanBirthday = &cal.Holiday{
		Name:  "William V. S. Tubman Birthday",
		Type:  cal.ObservancePublic,
		Month: time.November,
		Day:   29,
		Func:  cal.CalcDayOfMonth,
	}
	ChristmasDay = &cal.Holiday{
		Name:  "Christmas Day",
		Type:  cal.ObservancePublic,
		Month: time.December,
		Day:   25,
		Func:  cal.CalcDayOfMonth,
	}

	Holidays = []*cal.Holiday{
		NewYearsDay,
		ArmedForcesDay,
		DecorationDay,
		RobertsBirthday,
		FastAndPrayerDay,
		UnificationDay,
		IndependenceDay,
		FlagDay,
		ThanksgivingDay,
		TubmanBirthday,
		ChristmasDay,
	}
)

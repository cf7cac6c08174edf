// Package dates provides timezone-naive calendar math over ISO calendar
// dates. All functions are stateless and operate on civil dates: times are
// normalized to midnight UTC and the time-of-day component is never
// consulted.
package dates

import (
	"time"

	"planner/internal/domain"
)

// ISODate is the layout of all persisted calendar dates.
const ISODate = "2006-01-02"

// Parse parses an ISO calendar date string (YYYY-MM-DD).
func Parse(s string) (time.Time, error) {
	return time.Parse(ISODate, s)
}

// Format renders a time as an ISO calendar date string.
func Format(t time.Time) string {
	return t.Format(ISODate)
}

// Day truncates a time to its civil date at midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// IsToday reports whether d falls on the same calendar day as now.
func IsToday(d, now time.Time) bool {
	return SameDay(d, now)
}

// IsTomorrow reports whether d falls on the calendar day after now.
func IsTomorrow(d, now time.Time) bool {
	return SameDay(d, Day(now).AddDate(0, 0, 1))
}

// IsPastDay reports whether d falls strictly before now's calendar day.
// A date equal to today is not past.
func IsPastDay(d, now time.Time) bool {
	return Day(d).Before(Day(now))
}

// Weekday returns the time.Weekday a configured week starts on.
func Weekday(start domain.WeekStart) time.Weekday {
	if start == domain.WeekStartSunday {
		return time.Sunday
	}
	return time.Monday
}

// StartOfWeek returns the first day of the week containing d, given the
// configured week start day.
func StartOfWeek(d time.Time, start time.Weekday) time.Time {
	day := Day(d)
	offset := (int(day.Weekday()) - int(start) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// EndOfWeek returns the last day of the week containing d.
func EndOfWeek(d time.Time, start time.Weekday) time.Time {
	return StartOfWeek(d, start).AddDate(0, 0, 6)
}

// WeekDays enumerates the 7 calendar days of the week containing d.
func WeekDays(d time.Time, start time.Weekday) []time.Time {
	first := StartOfWeek(d, start)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

// StartOfMonth returns the first day of the month containing d.
func StartOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last day of the month containing d.
func EndOfMonth(d time.Time) time.Time {
	return StartOfMonth(d).AddDate(0, 1, -1)
}

// EachDay enumerates every calendar day from start through end inclusive.
// It returns nil when end precedes start.
func EachDay(start, end time.Time) []time.Time {
	first, last := Day(start), Day(end)
	if last.Before(first) {
		return nil
	}
	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// MonthGrid enumerates all calendar days spanning the month view of d,
// including leading and trailing days from adjacent months so the result
// always fills complete weeks of the 7-column grid.
func MonthGrid(d time.Time, start time.Weekday) []time.Time {
	first := StartOfWeek(StartOfMonth(d), start)
	last := EndOfWeek(EndOfMonth(d), start)
	return EachDay(first, last)
}

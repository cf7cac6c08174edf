package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/internal/domain"
)

func mustParse(t *testing.T, s string) time.Time {
	d, err := Parse(s)
	require.NoError(t, err)
	return d
}

func TestParseAndFormat(t *testing.T) {
	d := mustParse(t, "2025-08-29")
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.August, d.Month())
	assert.Equal(t, 29, d.Day())
	assert.Equal(t, "2025-08-29", Format(d))

	_, err := Parse("08/29/2025")
	assert.Error(t, err)
}

func TestDayNormalizesToMidnightUTC(t *testing.T) {
	noon := time.Date(2025, 8, 29, 12, 30, 45, 0, time.UTC)
	day := Day(noon)
	assert.Equal(t, time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC), day)
}

func TestDayClassification(t *testing.T) {
	now := mustParse(t, "2025-08-29")

	tests := []struct {
		name     string
		date     string
		today    bool
		tomorrow bool
		past     bool
	}{
		{"today", "2025-08-29", true, false, false},
		{"tomorrow", "2025-08-30", false, true, false},
		{"yesterday", "2025-08-28", false, false, true},
		{"far future", "2025-12-25", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustParse(t, tt.date)
			assert.Equal(t, tt.today, IsToday(d, now))
			assert.Equal(t, tt.tomorrow, IsTomorrow(d, now))
			assert.Equal(t, tt.past, IsPastDay(d, now))
		})
	}
}

func TestSundayWeekContainingWednesday(t *testing.T) {
	// 2025-08-27 is a Wednesday
	wednesday := mustParse(t, "2025-08-27")

	start := StartOfWeek(wednesday, time.Sunday)
	assert.Equal(t, "2025-08-24", Format(start))
	assert.Equal(t, time.Sunday, start.Weekday())

	end := EndOfWeek(wednesday, time.Sunday)
	assert.Equal(t, "2025-08-30", Format(end))
	assert.Equal(t, time.Saturday, end.Weekday())

	days := WeekDays(wednesday, time.Sunday)
	require.Len(t, days, 7)
	assert.Equal(t, start, days[0])
	assert.Equal(t, end, days[6])
}

func TestMondayWeek(t *testing.T) {
	// 2025-08-31 is a Sunday; a Monday-start week puts it at the end
	sunday := mustParse(t, "2025-08-31")

	start := StartOfWeek(sunday, time.Monday)
	assert.Equal(t, "2025-08-25", Format(start))
	assert.Equal(t, "2025-08-31", Format(EndOfWeek(sunday, time.Monday)))
}

func TestWeekdayFromSetting(t *testing.T) {
	assert.Equal(t, time.Sunday, Weekday(domain.WeekStartSunday))
	assert.Equal(t, time.Monday, Weekday(domain.WeekStartMonday))
}

func TestMonthBounds(t *testing.T) {
	d := mustParse(t, "2025-02-14")
	assert.Equal(t, "2025-02-01", Format(StartOfMonth(d)))
	assert.Equal(t, "2025-02-28", Format(EndOfMonth(d)))

	leap := mustParse(t, "2024-02-14")
	assert.Equal(t, "2024-02-29", Format(EndOfMonth(leap)))
}

func TestEachDay(t *testing.T) {
	days := EachDay(mustParse(t, "2025-08-29"), mustParse(t, "2025-09-02"))
	require.Len(t, days, 5)
	assert.Equal(t, "2025-08-29", Format(days[0]))
	assert.Equal(t, "2025-09-02", Format(days[4]))

	assert.Nil(t, EachDay(mustParse(t, "2025-09-02"), mustParse(t, "2025-08-29")))
}

func TestMonthGridFillsCompleteWeeks(t *testing.T) {
	// August 2025 starts on a Friday and ends on a Sunday
	august := mustParse(t, "2025-08-15")

	grid := MonthGrid(august, time.Monday)
	require.NotEmpty(t, grid)
	assert.Equal(t, 0, len(grid)%7)
	assert.Equal(t, time.Monday, grid[0].Weekday())
	assert.Equal(t, time.Sunday, grid[len(grid)-1].Weekday())

	// Leading pad reaches back into July
	assert.Equal(t, "2025-07-28", Format(grid[0]))
	assert.Equal(t, "2025-08-31", Format(grid[len(grid)-1]))
}

// Package calendar generates the month and week grids backing the calendar
// page and the dashboard mini-calendar, and buckets events by date for O(1)
// per-cell lookup.
package calendar

import "time"

// DateLayout is the naive ISO calendar date used everywhere an event date is
// stored or compared. No time component, no zone.
const DateLayout = "2006-01-02"

type View string

const (
	ViewMonth View = "Month"
	ViewWeek  View = "Week"
)

// Cell is a single slot in the 7-column grid. Leading placeholder cells
// before day 1 have Blank set and carry no date. The month grid is ragged:
// there are no trailing blanks after the last day.
type Cell struct {
	Blank   bool   `json:"blank"`
	Date    string `json:"date,omitempty"` // ISO date, empty for blanks
	Day     int    `json:"day,omitempty"`  // day of month, 0 for blanks
	IsToday bool   `json:"isToday"`
}

// MonthCells returns the cells for ref's calendar month: one blank per
// weekday preceding day 1 (Sunday = 0), then one dated cell per day of the
// month. today is passed in by the caller so the is-today flag is recomputed
// on every render rather than cached.
func MonthCells(ref, today time.Time) []Cell {
	year, month, _ := ref.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	leading := int(first.Weekday())
	days := daysInMonth(year, month)

	cells := make([]Cell, 0, leading+days)
	for i := 0; i < leading; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for d := 1; d <= days; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		cells = append(cells, Cell{
			Date:    date.Format(DateLayout),
			Day:     d,
			IsToday: SameDay(date, today),
		})
	}
	return cells
}

// WeekCells returns exactly 7 dated cells starting from the Sunday of ref's
// week.
func WeekCells(ref, today time.Time) []Cell {
	cells := make([]Cell, 0, 7)
	for _, d := range WeekDays(ref) {
		cells = append(cells, Cell{
			Date:    d.Format(DateLayout),
			Day:     d.Day(),
			IsToday: SameDay(d, today),
		})
	}
	return cells
}

// WeekDays returns the 7 consecutive dates of ref's Sunday-start week.
func WeekDays(ref time.Time) []time.Time {
	sunday := ref.AddDate(0, 0, -int(ref.Weekday()))
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = sunday.AddDate(0, 0, i)
	}
	return days
}

// Rows is the number of 7-column rows needed to lay out n cells.
func Rows(n int) int {
	return (n + 6) / 7
}

// NextMonth shifts ref one calendar month forward, clamping the day of month
// to the target month's length so January 31 lands in February, not March.
// Year boundaries roll over (December -> January of the next year).
func NextMonth(ref time.Time) time.Time {
	return shiftMonth(ref, 1)
}

// PrevMonth shifts ref one calendar month back, with the same day clamping.
func PrevMonth(ref time.Time) time.Time {
	return shiftMonth(ref, -1)
}

func shiftMonth(ref time.Time, delta int) time.Time {
	year, month, day := ref.Date()
	// Normalize to day 1 first; AddDate on day 29-31 overflows into the
	// month after next.
	first := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())
	target := first.AddDate(0, delta, 0)
	ty, tm, _ := target.Date()
	if max := daysInMonth(ty, tm); day > max {
		day = max
	}
	return time.Date(ty, tm, day, 0, 0, 0, 0, ref.Location())
}

// NextWeek shifts ref exactly 7 days forward.
func NextWeek(ref time.Time) time.Time { return ref.AddDate(0, 0, 7) }

// PrevWeek shifts ref exactly 7 days back.
func PrevWeek(ref time.Time) time.Time { return ref.AddDate(0, 0, -7) }

// SameDay reports exact calendar-date equality: same year, month, and day,
// regardless of time of day or location offset within the values.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

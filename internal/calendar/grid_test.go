package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthCellsInvariants(t *testing.T) {
	tests := []struct {
		name    string
		ref     time.Time
		leading int
		days    int
	}{
		{"november 2023", date(2023, time.November, 15), 3, 30},  // Nov 1 is a Wednesday
		{"february leap year", date(2024, time.February, 10), 4, 29}, // Feb 1 2024 is a Thursday
		{"february non-leap", date(2023, time.February, 1), 3, 28},
		{"month starting sunday", date(2021, time.August, 20), 0, 31}, // Aug 1 2021 is a Sunday
		{"december", date(2023, time.December, 31), 5, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			today := date(2000, time.January, 1) // far away so no cell is today
			cells := MonthCells(tt.ref, today)

			if got := len(cells); got != tt.leading+tt.days {
				t.Fatalf("cell count = %d, want %d", got, tt.leading+tt.days)
			}
			for i := 0; i < tt.leading; i++ {
				if !cells[i].Blank {
					t.Errorf("cell %d: expected leading blank", i)
				}
			}
			first := cells[tt.leading]
			if first.Blank || first.Day != 1 {
				t.Errorf("first dated cell = %+v, want day 1", first)
			}
			last := cells[len(cells)-1]
			if last.Blank || last.Day != tt.days {
				t.Errorf("last cell = %+v, want day %d", last, tt.days)
			}
			wantLast := date(tt.ref.Year(), tt.ref.Month(), tt.days).Format(DateLayout)
			if last.Date != wantLast {
				t.Errorf("last cell date = %s, want %s", last.Date, wantLast)
			}
			// leadingBlanks must equal the weekday index of day 1.
			day1 := date(tt.ref.Year(), tt.ref.Month(), 1)
			if tt.leading != int(day1.Weekday()) {
				t.Fatalf("test fixture wrong: leading %d != weekday %d", tt.leading, int(day1.Weekday()))
			}
		})
	}
}

func TestMonthCellsIsRagged(t *testing.T) {
	cells := MonthCells(date(2023, time.November, 1), date(2000, time.January, 1))
	if cells[len(cells)-1].Blank {
		t.Error("grid must not carry trailing blanks")
	}
}

func TestRows(t *testing.T) {
	tests := []struct {
		cells, rows int
	}{
		{28, 4}, {29, 5}, {33, 5}, {35, 5}, {36, 6}, {7, 1},
	}
	for _, tt := range tests {
		if got := Rows(tt.cells); got != tt.rows {
			t.Errorf("Rows(%d) = %d, want %d", tt.cells, got, tt.rows)
		}
	}
}

func TestWeekCellsInvariants(t *testing.T) {
	for _, ref := range []time.Time{
		date(2023, time.November, 15), // a Wednesday
		date(2023, time.November, 12), // a Sunday
		date(2023, time.December, 30), // a Saturday, week crosses nothing
		date(2024, time.January, 2),   // week starts in the previous year
	} {
		days := WeekDays(ref)
		if len(days) != 7 {
			t.Fatalf("WeekDays(%v) returned %d days", ref, len(days))
		}
		if days[0].Weekday() != time.Sunday {
			t.Errorf("week for %v starts on %v, want Sunday", ref, days[0].Weekday())
		}
		for i := 1; i < 7; i++ {
			if !SameDay(days[i], days[i-1].AddDate(0, 0, 1)) {
				t.Errorf("week for %v not consecutive at index %d", ref, i)
			}
		}
		// The reference day itself must be inside the week.
		found := false
		for _, d := range days {
			if SameDay(d, ref) {
				found = true
			}
		}
		if !found {
			t.Errorf("reference %v missing from its own week", ref)
		}
	}
}

func TestMonthNavigation(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		next bool
		want time.Time
	}{
		{"december rolls into next year", date(2023, time.December, 15), true, date(2024, time.January, 15)},
		{"january stays in year", date(2024, time.January, 15), true, date(2024, time.February, 15)},
		{"january back rolls into previous year", date(2024, time.January, 15), false, date(2023, time.December, 15)},
		{"jan 31 clamps to leap february", date(2024, time.January, 31), true, date(2024, time.February, 29)},
		{"march 31 back clamps to february", date(2023, time.March, 31), false, date(2023, time.February, 28)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextMonth(tt.from)
			if !tt.next {
				got = PrevMonth(tt.from)
			}
			if !SameDay(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeekNavigation(t *testing.T) {
	ref := date(2023, time.December, 28)
	if got := NextWeek(ref); !SameDay(got, date(2024, time.January, 4)) {
		t.Errorf("NextWeek = %v", got)
	}
	if got := PrevWeek(ref); !SameDay(got, date(2023, time.December, 21)) {
		t.Errorf("PrevWeek = %v", got)
	}
}

func TestIsTodayExactDateEquality(t *testing.T) {
	// Time of day must not matter, only the (year, month, day) triple.
	today := time.Date(2023, time.November, 15, 23, 45, 0, 0, time.UTC)
	cells := MonthCells(date(2023, time.November, 1), today)

	for _, c := range cells {
		if c.Blank {
			continue
		}
		want := c.Day == 15
		if c.IsToday != want {
			t.Errorf("day %d: IsToday = %v, want %v", c.Day, c.IsToday, want)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2023, time.November, 15, 0, 0, 1, 0, time.UTC)
	b := time.Date(2023, time.November, 15, 23, 59, 59, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("same calendar day with different times must match")
	}
	if SameDay(a, a.AddDate(0, 0, 1)) {
		t.Error("consecutive days must not match")
	}
	if SameDay(a, a.AddDate(1, 0, 0)) {
		t.Error("same month/day in a different year must not match")
	}
}

package month

import (
	"testing"
	"time"
)

func TestIndexRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
	}{
		{name: "january", year: 2024, month: 1},
		{name: "december", year: 2023, month: 12},
		{name: "millennium", year: 2000, month: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m := FromIndex(Index(tt.year, tt.month))
			if y != tt.year || m != tt.month {
				t.Errorf("FromIndex(Index(%d, %d)) = (%d, %d)", tt.year, tt.month, y, m)
			}
		})
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name              string
		year, month       int
		wantYear, wantMon int
	}{
		{name: "mid year", year: 2024, month: 3, wantYear: 2024, wantMon: 4},
		{name: "year transition", year: 2023, month: 12, wantYear: 2024, wantMon: 1},
		{name: "november", year: 2024, month: 11, wantYear: 2024, wantMon: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m := Next(tt.year, tt.month)
			if y != tt.wantYear || m != tt.wantMon {
				t.Errorf("Next(%d, %d) = (%d, %d), want (%d, %d)", tt.year, tt.month, y, m, tt.wantYear, tt.wantMon)
			}
		})
	}
}

func TestSpan(t *testing.T) {
	tests := []struct {
		name                               string
		fromYear, fromMonth, toYear, toMon int
		want                               int
	}{
		{name: "single month", fromYear: 2024, fromMonth: 1, toYear: 2024, toMon: 1, want: 1},
		{name: "half year", fromYear: 2024, fromMonth: 1, toYear: 2024, toMon: 6, want: 6},
		{name: "across year", fromYear: 2023, fromMonth: 11, toYear: 2024, toMon: 2, want: 4},
		{name: "reversed", fromYear: 2024, fromMonth: 5, toYear: 2024, toMon: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Span(tt.fromYear, tt.fromMonth, tt.toYear, tt.toMon)
			if got != tt.want {
				t.Errorf("Span = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBefore(t *testing.T) {
	if !Before(2023, 12, 2024, 1) {
		t.Error("2023-12 must be before 2024-01")
	}
	if Before(2024, 1, 2023, 12) {
		t.Error("2024-01 must not be before 2023-12")
	}
	if Before(2024, 1, 2024, 1) {
		t.Error("equal months are not before each other")
	}
}

func TestKey(t *testing.T) {
	if got := Key(2024, 3); got != "202403" {
		t.Errorf("Key(2024, 3) = %s", got)
	}
	if got := Key(2024, 11); got != "202411" {
		t.Errorf("Key(2024, 11) = %s", got)
	}
}

func TestLastCompleted(t *testing.T) {
	tests := []struct {
		name              string
		now               time.Time
		wantYear, wantMon int
	}{
		{name: "mid month", now: time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC), wantYear: 2024, wantMon: 6},
		{name: "first day", now: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), wantYear: 2024, wantMon: 2},
		{name: "january", now: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), wantYear: 2024, wantMon: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m := LastCompleted(tt.now)
			if y != tt.wantYear || m != tt.wantMon {
				t.Errorf("LastCompleted(%v) = (%d, %d), want (%d, %d)", tt.now, y, m, tt.wantYear, tt.wantMon)
			}
		})
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{2024, 4, 30},
		{2024, 12, 31},
	}

	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

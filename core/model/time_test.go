package model

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	cases := []struct {
		in   string
		want Time
	}{
		{"8:00", 480},
		{"23:30", 1410},
		{"0:05", 5},
		{"report 13:15 sharp", 795},
		{"", TimeNaN},
		{"noon", TimeNaN},
		{"830", TimeNaN},
	}
	for _, c := range cases {
		if got := ParseTime(c.in); got != c.want {
			t.Fatalf("ParseTime(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSpanMinutes(t *testing.T) {
	if got := (Span{Start: 1410, End: 30}).Minutes(); got != 60 {
		t.Fatalf("wrapping span = %v, want 60", got)
	}
	if got := (Span{Start: 480, End: 540}).Minutes(); got != 60 {
		t.Fatalf("plain span = %v, want 60", got)
	}
	if got := (Span{Start: 480, End: 480}).Minutes(); got != 0 {
		t.Fatalf("zero span = %v, want 0", got)
	}
}

func TestSpanMinutesNaN(t *testing.T) {
	spans := []Span{
		{Start: TimeNaN, End: 540},
		{Start: 480, End: TimeNaN},
		ParseSpan("bogus", "8:00"),
	}
	for _, s := range spans {
		if got := s.Minutes(); got.Valid() {
			t.Fatalf("span %+v minutes = %v, want NaN", s, got)
		}
	}
}

func TestTimeString(t *testing.T) {
	cases := []struct {
		in   Time
		want string
	}{
		{90, "1:30"},
		{600, "10:00"},
		{0, "0:00"},
		{TimeNaN, "NaN:NaN"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Fatalf("Time(%d).String() = %q, want %q", int(c.in), got, c.want)
		}
	}
}

func TestDateSpan(t *testing.T) {
	date := time.Date(2025, 3, 10, 15, 22, 0, 0, time.UTC)

	start, end := Span{Start: 480, End: 720}.DateSpan(date)
	if want := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Fatalf("start = %v, want %v", start, want)
	}
	if want := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Fatalf("end = %v, want %v", end, want)
	}

	// An end before the start lands on the next calendar day.
	start, end = Span{Start: 1410, End: 30}.DateSpan(date)
	if want := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC); !start.Equal(want) {
		t.Fatalf("wrap start = %v, want %v", start, want)
	}
	if want := time.Date(2025, 3, 11, 0, 30, 0, 0, time.UTC); !end.Equal(want) {
		t.Fatalf("wrap end = %v, want %v", end, want)
	}
}

func TestDateSpanNaNCollapsesToMidnight(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	start, end := Span{Start: TimeNaN, End: TimeNaN}.DateSpan(date)
	if !start.Equal(date) || !end.Equal(date) {
		t.Fatalf("NaN span = (%v, %v), want midnight twice", start, end)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("3/10/2025", time.UTC)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !d.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("bad date %v", d)
	}
	if _, err := ParseDate("next tuesday", time.UTC); err == nil {
		t.Fatalf("expected error")
	}
}

func TestInWeek(t *testing.T) {
	weekOf := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC) // a Sunday
	cases := []struct {
		date time.Time
		want bool
	}{
		{weekOf, true},
		{weekOf.AddDate(0, 0, 3), true},
		{weekOf.AddDate(0, 0, 6), true},
		// The next Sunday midnight falls inside the one-hour tolerance.
		{weekOf.AddDate(0, 0, 7), true},
		{weekOf.AddDate(0, 0, 7).Add(2 * time.Hour), false},
		{weekOf.Add(-time.Minute), false},
	}
	for _, c := range cases {
		if got := InWeek(c.date, weekOf); got != c.want {
			t.Fatalf("InWeek(%v) = %v, want %v", c.date, got, c.want)
		}
	}
}

package model

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Time is a clock time expressed as minutes past midnight.
//
// TimeNaN marks a value that could not be parsed. It propagates silently
// through span arithmetic, pay totals, and formatting so malformed source
// cells surface in output instead of aborting the whole operation.
type Time int

// TimeNaN is the not-a-number sentinel for unparseable time strings.
const TimeNaN Time = math.MinInt32

const minutesPerDay = 24 * 60

var clockPattern = regexp.MustCompile(`(\d+):(\d+)`)

// ParseTime reads the first H:MM group found anywhere in s. A string without
// such a group yields TimeNaN.
func ParseTime(s string) Time {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return TimeNaN
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return Time(hours*60 + minutes)
}

// Valid reports whether t holds a real clock value.
func (t Time) Valid() bool { return t != TimeNaN }

// String formats t as H:MM with unpadded hours and zero-padded minutes.
// The sentinel renders as NaN:NaN, matching what the legacy spreadsheet
// displayed for malformed cells.
func (t Time) String() string {
	if !t.Valid() {
		return "NaN:NaN"
	}
	return fmt.Sprintf("%d:%02d", int(t)/60, int(t)%60)
}

// Span is an ordered report/sign-out pair of clock times. An end before the
// start means the span crosses midnight.
type Span struct {
	Start Time
	End   Time
}

// ParseSpan builds a span from report and sign-out display strings.
func ParseSpan(report, signOut string) Span {
	return Span{Start: ParseTime(report), End: ParseTime(signOut)}
}

// WrapsDay reports whether the span crosses midnight.
func (s Span) WrapsDay() bool {
	return s.Start.Valid() && s.End.Valid() && s.End < s.Start
}

// Minutes returns the worked duration, adding a day when the span wraps
// midnight. Either endpoint being TimeNaN yields TimeNaN.
func (s Span) Minutes() Time {
	if !s.Start.Valid() || !s.End.Valid() {
		return TimeNaN
	}
	if s.End < s.Start {
		return s.End + minutesPerDay - s.Start
	}
	return s.End - s.Start
}

// DateSpan anchors the span to a calendar date, placing the end on the
// following day when the span wraps midnight. TimeNaN endpoints collapse to
// the anchor midnight.
func (s Span) DateSpan(date time.Time) (time.Time, time.Time) {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	start := addMinutes(midnight, s.Start)
	endDay := midnight
	if s.WrapsDay() {
		endDay = midnight.AddDate(0, 0, 1)
	}
	end := addMinutes(endDay, s.End)
	return start, end
}

func addMinutes(midnight time.Time, t Time) time.Time {
	if !t.Valid() {
		return midnight
	}
	return midnight.Add(time.Duration(t) * time.Minute)
}

// DateLayout is the single recognized calendar date format.
const DateLayout = "1/2/2006"

// ParseDate reads an M/D/YYYY date in the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	}
	return d, nil
}

// InWeek reports whether date falls in the week starting at weekOf. The
// trailing hour of tolerance accepts a boundary value equal to the next
// week-start midnight.
func InWeek(date, weekOf time.Time) bool {
	end := weekOf.Add(6*24*time.Hour + time.Hour)
	return !date.Before(weekOf) && !date.After(end)
}

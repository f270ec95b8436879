package calendar

import (
	"time"

	"github.com/YoRyan/operdate-getbus/core/model"
)

// Show durations. A single show runs eight hours, or seven when it reports
// at the 13:00 slot; paired shows run four hours each.
const (
	matineeStart      = model.Time(13 * 60)
	singleShowMinutes = model.Time(8 * 60)
	shortShowMinutes  = model.Time(7 * 60)
	pairedShowMinutes = model.Time(4 * 60)
)

// ShowEvents builds fixed-duration "Show" events for the date. A second
// start time, when valid, switches to the paired four-hour schedule; an
// invalid second time falls back to the single-show rules.
func ShowEvents(date time.Time, show, second model.Time) []Event {
	if second.Valid() {
		return []Event{
			showEvent(date, show, pairedShowMinutes),
			showEvent(date, second, pairedShowMinutes),
		}
	}
	minutes := singleShowMinutes
	if show == matineeStart {
		minutes = shortShowMinutes
	}
	return []Event{showEvent(date, show, minutes)}
}

func showEvent(date time.Time, start, minutes model.Time) Event {
	end := start + minutes
	if !start.Valid() {
		end = model.TimeNaN
	}
	s, e := model.Span{Start: start, End: end}.DateSpan(date)
	return Event{Title: "Show", Start: s, End: e}
}

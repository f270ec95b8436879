// Package calendar synthesizes calendar-ready events from resolved runs and
// show schedules.
package calendar

import (
	"fmt"
	"time"

	"github.com/YoRyan/operdate-getbus/core/model"
)

// Event is a calendar entry ready for the calendar port.
type Event struct {
	Title string
	Start time.Time
	End   time.Time
}

// RunEvents produces one event per present span of the run, anchored to the
// given date. Titles carry the run number, the block for fixed-block pieces,
// and the formatted total pay.
func RunEvents(run model.Run, date time.Time) []Event {
	pay := run.Pay()
	switch r := run.(type) {
	case *model.BigBusRun:
		events := []Event{pieceEvent(r.Number(), r.Piece, pay, date)}
		if r.SecondPiece != nil {
			events = append(events, pieceEvent(r.Number(), *r.SecondPiece, pay, date))
		}
		return events
	case *model.OnDemandRun:
		events := []Event{spanEvent(r.Number(), r.Span, pay, date)}
		if r.SecondSpan != nil {
			events = append(events, spanEvent(r.Number(), *r.SecondSpan, pay, date))
		}
		return events
	}
	return nil
}

func pieceEvent(number string, piece model.Piece, pay model.Time, date time.Time) Event {
	start, end := piece.Span.DateSpan(date)
	return Event{
		Title: fmt.Sprintf("Run %s Block %s (pays %s)", number, piece.Block, pay),
		Start: start,
		End:   end,
	}
}

func spanEvent(number string, span model.Span, pay model.Time, date time.Time) Event {
	start, end := span.DateSpan(date)
	return Event{
		Title: fmt.Sprintf("Run %s (pays %s)", number, pay),
		Start: start,
		End:   end,
	}
}

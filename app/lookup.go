package app

import (
	"fmt"
	"time"

	"github.com/YoRyan/operdate-getbus/core/model"
	"github.com/YoRyan/operdate-getbus/core/schedule"
	"github.com/YoRyan/operdate-getbus/internal/sets"
)

var reportHeader = []string{
	"Run #", "Total Pay", "Block", "Report Time",
	"Split From", "Split To", "Sign Out", "Driver",
}

// Lookup resolves the full schedule for date and writes the report table:
// one row per run in source order, then OFF rows, then VAC rows.
func (s *Service) Lookup(date time.Time) error {
	ros, err := s.loadRoster()
	if err != nil {
		return err
	}
	sched := schedule.Resolve(ros, date)

	var rows [][]string
	for _, number := range ros.Runs.Numbers() {
		run, _ := ros.Runs.Get(number)
		rows = append(rows, reportRow(run, string(sched.Assignments[number])))
	}
	for _, op := range sets.Sorted(sched.DayOff) {
		rows = append(rows, markerRow("OFF", op))
	}
	for _, op := range sets.Sorted(sched.OnVacation) {
		rows = append(rows, markerRow("VAC", op))
	}

	name := "schedule_" + date.Format("2006-01-02")
	if err := s.sink.WriteTable(name, reportHeader, rows); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	s.log.Infof("wrote %s: %d runs, %d off, %d on vacation",
		name, ros.Runs.Len(), sched.DayOff.Len(), sched.OnVacation.Len())
	return nil
}

// reportRow flattens one run into the report columns. Split columns stay
// empty for single-piece runs; a split fixed-block run shows both blocks.
func reportRow(run model.Run, driver string) []string {
	var block string
	var report, signOut model.Time
	var splitFrom, splitTo string

	switch r := run.(type) {
	case *model.BigBusRun:
		report = r.Piece.Span.Start
		if r.SecondPiece != nil {
			block = r.Piece.Block + " / " + r.SecondPiece.Block
			signOut = r.SecondPiece.Span.End
			splitFrom = r.Piece.Span.End.String()
			splitTo = r.SecondPiece.Span.Start.String()
		} else {
			block = r.Piece.Block
			signOut = r.Piece.Span.End
		}
	case *model.OnDemandRun:
		report = r.Span.Start
		if r.SecondSpan != nil {
			signOut = r.SecondSpan.End
			splitFrom = r.Span.End.String()
			splitTo = r.SecondSpan.Start.String()
		} else {
			signOut = r.Span.End
		}
	}

	return []string{
		run.Number(), run.Pay().String(), block, report.String(),
		splitFrom, splitTo, signOut.String(), driver,
	}
}

func markerRow(marker string, op model.Operator) []string {
	row := make([]string, len(reportHeader))
	for i := 0; i < len(row)-1; i++ {
		row[i] = marker
	}
	row[len(row)-1] = string(op)
	return row
}

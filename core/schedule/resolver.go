// Package schedule resolves who drives what on a given calendar date, layering
// vacation relief and vacation overrides on top of the standing bid
// assignments.
package schedule

import (
	"time"

	"github.com/YoRyan/operdate-getbus/core/model"
	"github.com/YoRyan/operdate-getbus/core/roster"
	"github.com/YoRyan/operdate-getbus/internal/sets"
)

// DaySchedule is the resolved picture for one calendar date.
type DaySchedule struct {
	Date time.Time
	// Assignments maps run number to the operator driving it that date.
	Assignments map[string]model.Operator
	// DayOff holds operators known to be off that date from structural or
	// override data. Not exhaustive: only what the tables can prove.
	DayOff sets.Set[model.Operator]
	// OnVacation holds operators fully off for the active vacation week,
	// reported separately from ordinary days off.
	OnVacation sets.Set[model.Operator]
}

// Resolve computes run assignments and off-duty status for the date.
//
// A relief assignment replaces the bid's standing operator for the entire
// active week. An extra-board day off is honored only when the operator is
// not on the relief board that week; an operator on the board with no bid
// and not on vacation has nothing else to do, so their day off stands.
func Resolve(r *roster.Roster, date time.Time) DaySchedule {
	weekday := date.Weekday()

	// Invert the active relief week into a bid-number keyed override.
	reliefByBid := make(map[string]model.Operator)
	reliefOps := sets.New[model.Operator]()
	reliefOpsNoBid := sets.New[model.Operator]()
	if week, ok := activeWeek(date, r.Relief, model.ReliefWeek.Start); ok {
		for op, bid := range week.Assignments {
			reliefOps.Add(op)
			if bid == nil {
				reliefOpsNoBid.Add(op)
			} else {
				reliefByBid[bid.Number] = op
			}
		}
	}

	assignments := make(map[string]model.Operator)
	offOnBid := sets.New[model.Operator]()
	for _, bid := range r.Bids.All() {
		operator := bid.Assigned
		if relief, ok := reliefByBid[bid.Number]; ok {
			operator = relief
		}
		if operator == "" {
			continue
		}
		run := bid.RunOn(weekday)
		if run == nil {
			offOnBid.Add(operator)
			continue
		}
		// Two bids mapping one run to the same date is bad source data;
		// the later bid in table order wins.
		assignments[run.Number()] = operator
	}

	onVacation := sets.New[model.Operator]()
	if week, ok := activeWeek(date, r.Vacations, model.VacationWeek.Start); ok {
		onVacation = week.Operators
	}

	extraOff := r.ExtraBoard.On(weekday)
	dayOff := sets.Union(
		sets.Union(
			sets.Difference(extraOff, reliefOps),
			sets.Intersection(extraOff, sets.Difference(reliefOpsNoBid, onVacation)),
		),
		offOnBid,
	)

	return DaySchedule{
		Date:        date,
		Assignments: assignments,
		DayOff:      dayOff,
		OnVacation:  onVacation,
	}
}

// activeWeek finds the week whose start satisfies the inclusive window of
// model.InWeek. At most one match is expected; the first wins.
func activeWeek[T any](date time.Time, weeks []T, start func(T) time.Time) (T, bool) {
	for _, w := range weeks {
		if model.InWeek(date, start(w)) {
			return w, true
		}
	}
	var zero T
	return zero, false
}

package model

import (
	"time"

	"github.com/YoRyan/operdate-getbus/internal/sets"
)

// ReliefWeek records which relief operators cover which bids for the week
// starting at WeekOf (a Sunday). A nil bid value is the "no bid this week"
// sentinel: the operator is on the relief board but has nothing to drive,
// which matters for day-off classification. Absence from the map means the
// operator is not on the relief board that week.
type ReliefWeek struct {
	WeekOf      time.Time
	Assignments map[Operator]*Bid
}

// Start returns the week's starting Sunday.
func (w ReliefWeek) Start() time.Time { return w.WeekOf }

// VacationWeek lists operators fully off for the week starting at WeekOf.
// No substitute is tracked.
type VacationWeek struct {
	WeekOf    time.Time
	Operators sets.Set[Operator]
}

// Start returns the week's starting Sunday.
func (w VacationWeek) Start() time.Time { return w.WeekOf }

// ExtraBoardDaysOff holds, per weekday, the operators scheduled off under
// the extra-board rotation, independent of bid structure.
type ExtraBoardDaysOff [7]sets.Set[Operator]

// On returns the operators off on the given weekday. Never nil.
func (d ExtraBoardDaysOff) On(day time.Weekday) sets.Set[Operator] {
	if d[day] == nil {
		return sets.New[Operator]()
	}
	return d[day]
}

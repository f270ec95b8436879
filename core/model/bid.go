package model

import "time"

// Bid is a standing weekly shift pattern: up to one run per weekday plus an
// optionally assigned operator. A nil weekday slot means the bid is
// structurally off that day, which is distinct from any override.
type Bid struct {
	Number   string
	Days     [7]Run   // indexed by time.Weekday, Sunday first
	Assigned Operator // empty when the bid has no standing operator
}

// RunOn returns the run scheduled for the given weekday, or nil when the bid
// is off that day.
func (b *Bid) RunOn(day time.Weekday) Run { return b.Days[day] }

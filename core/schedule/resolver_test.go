package schedule

import (
	"testing"
	"time"

	"github.com/YoRyan/operdate-getbus/core/model"
	"github.com/YoRyan/operdate-getbus/core/roster"
	"github.com/YoRyan/operdate-getbus/infra/logger"
	"github.com/YoRyan/operdate-getbus/internal/sets"
)

var (
	weekOf = time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC) // Sunday
	monday = weekOf.AddDate(0, 0, 1)
)

// buildRoster assembles a roster through the real readers so the resolver
// sees exactly what production ingestion produces.
func buildRoster(t *testing.T, reliefRows, vacationRows, extraRows [][]string) *roster.Roster {
	t.Helper()
	nop := logger.NopLogger{}
	runs := roster.ReadRuns([][]string{
		{"101", "B1", "8:00", "12:00"},
		{"101", "B2", "13:00", "17:00"},
		{"202", "", "9:00", "17:00"},
	})
	bids := roster.ReadBids([][]string{
		{"B07", "", "101", "101", "101", "101", "101", "", "A. Able"},
		{"B08", "202", "", "202", "", "202", "", "202", "B. Baker"},
	}, runs, nop)
	return &roster.Roster{
		Runs:       runs,
		Bids:       bids,
		Relief:     roster.ReadReliefWeeks(reliefRows, bids, time.UTC, nop),
		Vacations:  roster.ReadVacationWeeks(vacationRows, time.UTC, nop),
		ExtraBoard: roster.ReadExtraBoardDaysOff(extraRows),
	}
}

func TestResolveBaseAssignments(t *testing.T) {
	sched := Resolve(buildRoster(t, nil, nil, nil), monday)

	if op := sched.Assignments["101"]; op != "A ABLE" {
		t.Fatalf("run 101 -> %q, want A ABLE", op)
	}
	if _, ok := sched.Assignments["202"]; ok {
		t.Fatalf("run 202 assigned on a structural day off")
	}
	// B08 is off Monday by bid structure, so Baker is off.
	if !sched.DayOff.Has("B BAKER") {
		t.Fatalf("B BAKER should be off: %v", sched.DayOff)
	}
	if sched.DayOff.Has("A ABLE") {
		t.Fatalf("A ABLE is working, not off")
	}
}

func TestResolveReliefPrecedence(t *testing.T) {
	relief := [][]string{
		{"Week Of", "R. Garcia", "", "", "", "", "", "", "", "", ""},
		{"3/9/2025", "B07", "", "", "", "", "", "", "", "", ""},
	}
	for day := 0; day < 7; day++ {
		date := weekOf.AddDate(0, 0, day)
		sched := Resolve(buildRoster(t, relief, nil, nil), date)
		for run, op := range sched.Assignments {
			if run == "101" && op != "R GARCIA" {
				t.Fatalf("day %d: run 101 -> %q, want relief operator", day, op)
			}
			if op == "A ABLE" {
				t.Fatalf("day %d: displaced operator still assigned", day)
			}
		}
	}
}

func TestResolveNoActiveWeekIsEmptyOverride(t *testing.T) {
	relief := [][]string{
		{"Week Of", "R. Garcia", "", "", "", "", "", "", "", "", ""},
		{"6/1/2025", "B07", "", "", "", "", "", "", "", "", ""},
	}
	sched := Resolve(buildRoster(t, relief, nil, nil), monday)
	if op := sched.Assignments["101"]; op != "A ABLE" {
		t.Fatalf("run 101 -> %q, want base assignment", op)
	}
}

func TestResolveExtraBoardSuppressedByReliefDuty(t *testing.T) {
	// Garcia has an extra-board Monday off but also relief duty with a bid
	// this week: the day off is suppressed.
	relief := [][]string{
		{"Week Of", "R. Garcia", "", "", "", "", "", "", "", "", ""},
		{"3/9/2025", "B07", "", "", "", "", "", "", "", "", ""},
	}
	extra := [][]string{
		{"Sunday"},
		{"Monday", "R. Garcia"},
		{"Tuesday"}, {"Wednesday"}, {"Thursday"}, {"Friday"}, {"Saturday"},
	}
	sched := Resolve(buildRoster(t, relief, nil, extra), monday)
	if sched.DayOff.Has("R GARCIA") {
		t.Fatalf("relief duty should suppress the extra-board day off")
	}
}

func TestResolveExtraBoardRestoredWithoutBid(t *testing.T) {
	// Same operator, but the no-bid sentinel this week and no vacation:
	// the extra-board day off stands.
	relief := [][]string{
		{"Week Of", "R. Garcia", "", "", "", "", "", "", "", "", ""},
		{"3/9/2025", "", "", "", "", "", "", "", "", "", ""},
	}
	extra := [][]string{
		{"Sunday"},
		{"Monday", "R. Garcia"},
		{"Tuesday"}, {"Wednesday"}, {"Thursday"}, {"Friday"}, {"Saturday"},
	}
	sched := Resolve(buildRoster(t, relief, nil, extra), monday)
	if !sched.DayOff.Has("R GARCIA") {
		t.Fatalf("idle relief operator should keep the extra-board day off")
	}
}

func TestResolveExtraBoardNotRestoredOnVacation(t *testing.T) {
	relief := [][]string{
		{"Week Of", "R. Garcia", "", "", "", "", "", "", "", "", ""},
		{"3/9/2025", "", "", "", "", "", "", "", "", "", ""},
	}
	vacations := [][]string{{"3/9/2025", "R. Garcia"}}
	extra := [][]string{
		{"Sunday"},
		{"Monday", "R. Garcia"},
		{"Tuesday"}, {"Wednesday"}, {"Thursday"}, {"Friday"}, {"Saturday"},
	}
	sched := Resolve(buildRoster(t, relief, vacations, extra), monday)
	if sched.DayOff.Has("R GARCIA") {
		t.Fatalf("vacation should be reported as VAC, not OFF")
	}
	if !sched.OnVacation.Has("R GARCIA") {
		t.Fatalf("R GARCIA should be on vacation")
	}
}

func TestResolveExtraBoardPlainDayOff(t *testing.T) {
	extra := [][]string{
		{"Sunday"},
		{"Monday", "E. Eddy"},
		{"Tuesday"}, {"Wednesday"}, {"Thursday"}, {"Friday"}, {"Saturday"},
	}
	sched := Resolve(buildRoster(t, nil, nil, extra), monday)
	if !sched.DayOff.Has("E EDDY") {
		t.Fatalf("extra-board operator should be off with no relief week active")
	}
	// Different weekday: not off.
	tuesday := Resolve(buildRoster(t, nil, nil, extra), weekOf.AddDate(0, 0, 2))
	if tuesday.DayOff.Has("E EDDY") {
		t.Fatalf("day off leaked to another weekday")
	}
}

func TestResolveDuplicateRunLastBidWins(t *testing.T) {
	// Two bids pointing at the same run on the same day is bad input; the
	// later bid in table order deterministically wins.
	nop := logger.NopLogger{}
	runs := roster.ReadRuns([][]string{{"101", "B1", "8:00", "12:00"}})
	bids := roster.ReadBids([][]string{
		{"B01", "", "101", "", "", "", "", "", "First"},
		{"B02", "", "101", "", "", "", "", "", "Second"},
	}, runs, nop)
	ros := &roster.Roster{Runs: runs, Bids: bids}

	sched := Resolve(ros, monday)
	if op := sched.Assignments["101"]; op != "SECOND" {
		t.Fatalf("run 101 -> %q, want SECOND", op)
	}
}

func TestResolveOutputsDisjoint(t *testing.T) {
	relief := [][]string{
		{"Week Of", "R. Garcia", "", "", "", "", "", "", "", "", ""},
		{"3/9/2025", "B07", "", "", "", "", "", "", "", "", ""},
	}
	vacations := [][]string{{"3/9/2025", "V. Vance"}}
	extra := [][]string{
		{"Sunday"},
		{"Monday", "R. Garcia", "E. Eddy"},
		{"Tuesday"}, {"Wednesday"}, {"Thursday"}, {"Friday"}, {"Saturday"},
	}
	sched := Resolve(buildRoster(t, relief, vacations, extra), monday)

	assigned := sets.New[model.Operator]()
	for _, op := range sched.Assignments {
		assigned.Add(op)
	}
	if sets.Intersection(assigned, sched.DayOff).Len() != 0 {
		t.Fatalf("operator both assigned and off: %v / %v", assigned, sched.DayOff)
	}
	if sets.Intersection(sched.DayOff, sched.OnVacation).Len() != 0 {
		t.Fatalf("operator both OFF and VAC")
	}
}

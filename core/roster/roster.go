// Package roster ingests raw table rows into the schedule data model. All
// readers are best-effort: malformed cells become sentinel values or logged
// warnings, never errors, so one bad row cannot take down an operation.
package roster

import (
	"strings"

	"github.com/YoRyan/operdate-getbus/core/model"
)

// Roster bundles every model read from the source tables for one
// invocation. It is built once, read by the resolver, and discarded.
type Roster struct {
	Runs       *Runs
	Bids       *Bids
	Relief     []model.ReliefWeek
	Vacations  []model.VacationWeek
	ExtraBoard model.ExtraBoardDaysOff
}

// field returns the trimmed cell at index i, tolerating ragged rows.
func field(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// Package sheet provides the tabular source and sink boundaries. Table data
// crosses the boundary as rows of display strings with header rows already
// skipped, exactly what the roster readers expect.
package sheet

// Names of the tables the source must supply.
const (
	TableRuns           = "runs"
	TableBids           = "bids"
	TableVacationRelief = "vacation_relief"
	TableVacations      = "vacations"
	TableExtraBoard     = "extra_board_days_off"
)

// Reader supplies the raw rows of a named table, header row excluded.
type Reader interface {
	Table(name string) ([][]string, error)
}

// Writer persists a result table under the given name.
type Writer interface {
	WriteTable(name string, header []string, rows [][]string) error
}

package roster

import (
	"time"

	"github.com/YoRyan/operdate-getbus/core/logger"
	"github.com/YoRyan/operdate-getbus/core/model"
	"github.com/YoRyan/operdate-getbus/internal/sets"
)

// reliefColumns is the fixed number of relief operator columns (B through K)
// in the vacation relief table.
const reliefColumns = 10

// ReadReliefWeeks parses the vacation relief table. The first row names the
// relief operators by column position; each following row is one week: a
// week-start date plus, per operator column, a bid number or nothing. An
// empty cell records the no-bid-this-week sentinel, so every header operator
// has an entry on every week. A bid number with no matching bid also becomes
// the sentinel, with a warning.
func ReadReliefWeeks(rows [][]string, bids *Bids, loc *time.Location, log logger.Logger) []model.ReliefWeek {
	if len(rows) == 0 {
		return nil
	}

	type column struct {
		index    int
		operator model.Operator
	}
	var columns []column
	for col := 1; col <= reliefColumns; col++ {
		if name := field(rows[0], col); name != "" {
			columns = append(columns, column{index: col, operator: model.NewOperator(name)})
		}
	}

	var weeks []model.ReliefWeek
	for _, row := range rows[1:] {
		weekOf, err := model.ParseDate(field(row, 0), loc)
		if err != nil {
			log.Warnf("vacation relief week skipped: %v", err)
			continue
		}
		assignments := make(map[model.Operator]*model.Bid, len(columns))
		for _, c := range columns {
			assignments[c.operator] = nil
			cell := field(row, c.index)
			if cell == "" {
				continue
			}
			bid, ok := bids.Get(cell)
			if !ok {
				log.Warnf("relief week %s: operator %s references unknown bid %s",
					weekOf.Format(model.DateLayout), c.operator, cell)
				continue
			}
			assignments[c.operator] = bid
		}
		weeks = append(weeks, model.ReliefWeek{WeekOf: weekOf, Assignments: assignments})
	}
	return weeks
}

// ReadVacationWeeks parses rows of (week-start date, operator names...), each
// listing the operators fully off that week.
func ReadVacationWeeks(rows [][]string, loc *time.Location, log logger.Logger) []model.VacationWeek {
	var weeks []model.VacationWeek
	for _, row := range rows {
		weekOf, err := model.ParseDate(field(row, 0), loc)
		if err != nil {
			log.Warnf("vacation week skipped: %v", err)
			continue
		}
		operators := sets.New[model.Operator]()
		for col := 1; col < len(row); col++ {
			if name := field(row, col); name != "" {
				operators.Add(model.NewOperator(name))
			}
		}
		weeks = append(weeks, model.VacationWeek{WeekOf: weekOf, Operators: operators})
	}
	return weeks
}

// ReadExtraBoardDaysOff parses the seven fixed weekday rows, Sunday first.
// The first cell of each row is the weekday label; the rest are operator
// names scheduled off that weekday.
func ReadExtraBoardDaysOff(rows [][]string) model.ExtraBoardDaysOff {
	var table model.ExtraBoardDaysOff
	for day := range table {
		table[day] = sets.New[model.Operator]()
		if day >= len(rows) {
			continue
		}
		row := rows[day]
		for col := 1; col < len(row); col++ {
			if name := field(row, col); name != "" {
				table[day].Add(model.NewOperator(name))
			}
		}
	}
	return table
}

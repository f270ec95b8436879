package roster

import "github.com/YoRyan/operdate-getbus/core/model"

// Runs is the run table keyed by run number, preserving source row order for
// deterministic iteration and printing.
type Runs struct {
	byNumber map[string]model.Run
	order    []string
}

// Get returns the run with the given number.
func (r *Runs) Get(number string) (model.Run, bool) {
	run, ok := r.byNumber[number]
	return run, ok
}

// Numbers returns all run numbers in source order.
func (r *Runs) Numbers() []string { return r.order }

// Len returns the number of distinct runs.
func (r *Runs) Len() int { return len(r.order) }

// ReadRuns folds ordered raw rows (number, block, report time, sign-out
// time) into typed runs. The first row seen for a number fixes the variant:
// a non-empty block cell means fixed-block work. A second row for the same
// number attaches as the second piece or span whatever its block cell holds;
// rows beyond the second replace the second piece or span.
func ReadRuns(rows [][]string) *Runs {
	runs := &Runs{byNumber: make(map[string]model.Run, len(rows))}
	for _, row := range rows {
		number := field(row, 0)
		block := field(row, 1)
		span := model.ParseSpan(field(row, 2), field(row, 3))

		if existing, ok := runs.byNumber[number]; ok {
			runs.byNumber[number] = existing.WithSecond(block, span)
			continue
		}
		var run model.Run
		if block != "" {
			run = model.NewBigBusRun(number, model.Piece{Block: block, Span: span})
		} else {
			run = model.NewOnDemandRun(number, span)
		}
		runs.byNumber[number] = run
		runs.order = append(runs.order, number)
	}
	return runs
}

package roster

import (
	"github.com/YoRyan/operdate-getbus/core/logger"
	"github.com/YoRyan/operdate-getbus/core/model"
)

// Bids is the bid table keyed by bid number, preserving source row order.
// Order matters: when two bids map to the same run on the same day, the
// resolver lets the later bid win.
type Bids struct {
	byNumber map[string]*model.Bid
	order    []string
}

// Get returns the bid with the given number.
func (b *Bids) Get(number string) (*model.Bid, bool) {
	bid, ok := b.byNumber[number]
	return bid, ok
}

// All returns the bids in source order.
func (b *Bids) All() []*model.Bid {
	out := make([]*model.Bid, 0, len(b.order))
	for _, number := range b.order {
		out = append(out, b.byNumber[number])
	}
	return out
}

// ReadBids parses rows of (number, seven weekday run numbers Sunday..
// Saturday, assigned operator). Day cells resolve against the run table; a
// run number with no matching run leaves that day empty and logs a warning,
// since it indicates stale source data rather than a structural day off.
func ReadBids(rows [][]string, runs *Runs, log logger.Logger) *Bids {
	bids := &Bids{byNumber: make(map[string]*model.Bid, len(rows))}
	for _, row := range rows {
		number := field(row, 0)
		bid := &model.Bid{Number: number}
		for day := 0; day < 7; day++ {
			cell := field(row, 1+day)
			if cell == "" {
				continue
			}
			run, ok := runs.Get(cell)
			if !ok {
				log.Warnf("bid %s references unknown run %s", number, cell)
				continue
			}
			bid.Days[day] = run
		}
		if assigned := field(row, 8); assigned != "" {
			bid.Assigned = model.NewOperator(assigned)
		}
		if _, exists := bids.byNumber[number]; !exists {
			bids.order = append(bids.order, number)
		}
		bids.byNumber[number] = bid
	}
	return bids
}

package model

// Piece is one board assignment within a fixed-block run: a vehicle/route
// block label plus the span worked on it.
type Piece struct {
	Block string
	Span  Span
}

// Run is a unit of driving work identified by a number and composed of one
// or two time spans. The two variants are BigBusRun for fixed-block work and
// OnDemandRun for work without a block; handle them exhaustively with a type
// switch.
type Run interface {
	// Number returns the run identifier, the unique key across the run table.
	Number() string
	// Spans returns the present spans in source order.
	Spans() []Span
	// Pay returns total worked minutes across all spans, honoring midnight
	// wrap. TimeNaN in any span propagates to the total.
	Pay() Time
	// WithSecond returns a copy of the run with the given row attached as
	// its second piece or span. The variant never changes: an OnDemand run
	// discards the block, a BigBus run stores it even when empty. A run
	// that already has a second piece or span has it replaced.
	WithSecond(block string, span Span) Run
}

// BigBusRun is a run with at least one fixed board assignment.
type BigBusRun struct {
	number      string
	Piece       Piece
	SecondPiece *Piece
}

// NewBigBusRun builds a fixed-block run from its first source row.
func NewBigBusRun(number string, piece Piece) *BigBusRun {
	return &BigBusRun{number: number, Piece: piece}
}

func (r *BigBusRun) Number() string { return r.number }

func (r *BigBusRun) Spans() []Span {
	spans := []Span{r.Piece.Span}
	if r.SecondPiece != nil {
		spans = append(spans, r.SecondPiece.Span)
	}
	return spans
}

func (r *BigBusRun) Pay() Time { return totalMinutes(r.Spans()) }

func (r *BigBusRun) WithSecond(block string, span Span) Run {
	second := Piece{Block: block, Span: span}
	return &BigBusRun{number: r.number, Piece: r.Piece, SecondPiece: &second}
}

// OnDemandRun is a run without a fixed block.
type OnDemandRun struct {
	number     string
	Span       Span
	SecondSpan *Span
}

// NewOnDemandRun builds an on-demand run from its first source row.
func NewOnDemandRun(number string, span Span) *OnDemandRun {
	return &OnDemandRun{number: number, Span: span}
}

func (r *OnDemandRun) Number() string { return r.number }

func (r *OnDemandRun) Spans() []Span {
	spans := []Span{r.Span}
	if r.SecondSpan != nil {
		spans = append(spans, *r.SecondSpan)
	}
	return spans
}

func (r *OnDemandRun) Pay() Time { return totalMinutes(r.Spans()) }

func (r *OnDemandRun) WithSecond(_ string, span Span) Run {
	second := span
	return &OnDemandRun{number: r.number, Span: r.Span, SecondSpan: &second}
}

func totalMinutes(spans []Span) Time {
	total := Time(0)
	for _, s := range spans {
		m := s.Minutes()
		if !m.Valid() {
			return TimeNaN
		}
		total += m
	}
	return total
}

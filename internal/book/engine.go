package book

// OrderStatus is the terminal disposition of a submission.
type OrderStatus uint8

const (
	StatusFilled OrderStatus = iota
	StatusResting
	StatusPartiallyUnfillable
	StatusRejected
)

func (s OrderStatus) String() string {
	switch s {
	case StatusFilled:
		return "filled"
	case StatusResting:
		return "resting"
	case StatusPartiallyUnfillable:
		return "partially_unfillable"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Result is what a submission produced: the fills, the terminal status
// and whatever quantity never traded.
type Result struct {
	OrderID   uint64
	Seq       uint64
	Status    OrderStatus
	Trades    []Trade
	Remaining int64
}

// Engine is the matching core for a single instrument. It is single-writer
// and deterministic: callers must serialize Submit upstream, and for a
// fixed submission sequence the emitted trades and the resulting book are
// fully determined. The engine holds no locks and performs no I/O.
type Engine struct {
	bids *BookSide
	asks *BookSide

	lastSeq  uint64
	tradeSeq uint64
}

func NewEngine() *Engine {
	return &Engine{
		bids: NewBookSide(Bid),
		asks: NewBookSide(Ask),
	}
}

// Validate applies the acceptance rules without touching the book.
func Validate(otype OrderType, price, qty int64) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if otype == Limit && price <= 0 {
		return ErrMissingPrice
	}
	return nil
}

// Submit crosses an incoming order against the opposite side and rests or
// discards the remainder. A rejected order leaves no trace in the book.
// Market remainder is discarded and reported via StatusPartiallyUnfillable;
// liquidity exhaustion is not an error.
func (e *Engine) Submit(o *Order) (Result, error) {
	res := Result{OrderID: o.ID, Seq: o.Seq, Remaining: o.Remaining()}

	if err := Validate(o.Type, o.Price, o.Qty); err != nil {
		res.Status = StatusRejected
		return res, err
	}

	e.lastSeq = o.Seq
	opp := e.side(o.Side.Opposite())

	for o.Remaining() > 0 {
		best := opp.Best()
		if best == nil {
			break
		}
		if !o.crosses(best.Price) {
			break
		}

		head := best.Front()
		qty := min(o.Remaining(), head.Remaining())

		o.Filled += qty
		best.fill(head, qty)

		e.tradeSeq++
		res.Trades = append(res.Trades, Trade{
			Seq:     e.tradeSeq,
			TakerID: o.ID,
			MakerID: head.ID,
			Price:   best.Price,
			Qty:     qty,
		})

		if head.Remaining() == 0 {
			best.PopFront()
			if best.Empty() {
				opp.DropLevel(best.Price)
			}
		}
	}

	switch {
	case o.Remaining() == 0:
		res.Status = StatusFilled
	case o.Type == Limit:
		e.side(o.Side).Insert(o)
		res.Status = StatusResting
	default:
		res.Status = StatusPartiallyUnfillable
	}

	res.Remaining = o.Remaining()
	return res, nil
}

// Restore inserts a resting order directly, bypassing the crossing loop.
// Used when loading a snapshot: a consistent book cannot self-cross.
func (e *Engine) Restore(o *Order) error {
	if err := Validate(o.Type, o.Price, o.Qty); err != nil {
		return err
	}
	e.side(o.Side).Insert(o)
	if o.Seq > e.lastSeq {
		e.lastSeq = o.Seq
	}
	return nil
}

// RestoreCounters resumes the engine's counters after a snapshot load, so
// replayed submissions continue the same trade sequence.
func (e *Engine) RestoreCounters(lastSeq, tradeSeq uint64) {
	e.lastSeq = lastSeq
	e.tradeSeq = tradeSeq
}

// Depth returns the aggregated resting levels, each side in its own
// priority order.
func (e *Engine) Depth() (bids, asks []Level) {
	return e.bids.Depth(), e.asks.Depth()
}

func (e *Engine) Bids() *BookSide { return e.bids }
func (e *Engine) Asks() *BookSide { return e.asks }

// LastSeq is the arrival sequence of the last submitted order.
func (e *Engine) LastSeq() uint64 { return e.lastSeq }

// TradeSeq is the sequence of the last emitted trade.
func (e *Engine) TradeSeq() uint64 { return e.tradeSeq }

func (e *Engine) side(s Side) *BookSide {
	if s == Bid {
		return e.bids
	}
	return e.asks
}

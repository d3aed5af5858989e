package book

// BookSide holds the resting price levels for one side. Bids are served
// highest-first, asks lowest-first; the tree keeps at most one level per
// price and levels are dropped the moment they empty.
type BookSide struct {
	side Side
	tree *RBTree
}

func NewBookSide(side Side) *BookSide {
	return &BookSide{
		side: side,
		tree: NewRBTree(),
	}
}

func (s *BookSide) Side() Side { return s.side }

// Best returns the level with highest matching priority, or nil.
func (s *BookSide) Best() *PriceLevel {
	if s.side == Bid {
		return s.tree.MaxLevel()
	}
	return s.tree.MinLevel()
}

// Insert rests an order at its own price, creating the level if absent.
// New arrivals go to the back of the queue even on a pre-existing level.
func (s *BookSide) Insert(o *Order) {
	s.tree.UpsertLevel(o.Price).Enqueue(o)
}

func (s *BookSide) DropLevel(price int64) bool {
	return s.tree.DeleteLevel(price)
}

func (s *BookSide) Levels() int {
	return s.tree.Size()
}

// Walk visits levels best to worst, stopping when fn returns false.
func (s *BookSide) Walk(fn func(*PriceLevel) bool) {
	if s.side == Bid {
		s.tree.ForEachDescending(fn)
	} else {
		s.tree.ForEachAscending(fn)
	}
}

// Level is one row of the aggregated depth view.
type Level struct {
	Price  int64
	Qty    int64
	Orders int
}

// Depth aggregates remaining quantity per price in priority order.
func (s *BookSide) Depth() []Level {
	out := make([]Level, 0, s.tree.Size())
	s.Walk(func(lvl *PriceLevel) bool {
		out = append(out, Level{
			Price:  lvl.Price,
			Qty:    lvl.TotalQty,
			Orders: lvl.OrderCount,
		})
		return true
	})
	return out
}

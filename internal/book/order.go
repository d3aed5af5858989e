package book

// Side of the book an order wants to trade on.
type Side uint8

const (
	Bid Side = iota
	Ask
)

func (s Side) Opposite() Side {
	if s == Bid {
		return Ask
	}
	return Bid
}

func (s Side) String() string {
	if s == Ask {
		return "ask"
	}
	return "bid"
}

// OrderType distinguishes priced from unpriced intents.
type OrderType uint8

const (
	Limit OrderType = iota
	Market
)

func (t OrderType) String() string {
	if t == Market {
		return "market"
	}
	return "limit"
}

// Order is one side's trading intent. ID and Seq are assigned upstream by
// the sequencer and are strictly increasing; Seq is the time-priority
// tie-break within a price level. Price is in ticks and unused for market
// orders. An order is owned by at most one price level at a time.
type Order struct {
	ID     uint64
	Seq    uint64
	Price  int64
	Qty    int64
	Filled int64

	Side Side
	Type OrderType

	next *Order
	prev *Order
}

func (o *Order) Remaining() int64 {
	return o.Qty - o.Filled
}

// crosses reports whether a resting price is admissible for this order.
// Market orders cross anything; a limit never trades through its own price.
func (o *Order) crosses(restingPrice int64) bool {
	if o.Type == Market {
		return true
	}
	if o.Side == Bid {
		return restingPrice <= o.Price
	}
	return restingPrice >= o.Price
}

// Next walks the FIFO chain inside a price level. Read-only.
func (o *Order) Next() *Order {
	return o.next
}

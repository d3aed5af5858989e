package book

// PriceLevel is a FIFO queue of orders at a single price. TotalQty tracks
// the remaining (unfilled) quantity across the queue, so partial fills on
// the head must go through fill.
type PriceLevel struct {
	Price int64

	head *Order
	tail *Order

	TotalQty   int64
	OrderCount int
}

func (p *PriceLevel) Enqueue(o *Order) {
	if p.head == nil {
		p.head = o
		p.tail = o
	} else {
		p.tail.next = o
		o.prev = p.tail
		p.tail = o
	}
	p.TotalQty += o.Remaining()
	p.OrderCount++
}

// Front returns the oldest resting order without removing it.
func (p *PriceLevel) Front() *Order {
	return p.head
}

func (p *PriceLevel) PopFront() *Order {
	o := p.head
	if o == nil {
		return nil
	}

	p.head = o.next
	if p.head != nil {
		p.head.prev = nil
	} else {
		p.tail = nil
	}

	o.next = nil
	o.prev = nil

	p.TotalQty -= o.Remaining()
	p.OrderCount--

	return o
}

func (p *PriceLevel) Empty() bool {
	return p.head == nil
}

// fill applies a partial or full execution to a resting member order.
func (p *PriceLevel) fill(o *Order, qty int64) {
	o.Filled += qty
	p.TotalQty -= qty
}

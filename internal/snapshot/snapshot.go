// Package snapshot persists the resting book so the entry WAL can be
// truncated. A snapshot plus the WAL records after its sequence fully
// reconstructs the engine.
package snapshot

import "time"

type Snapshot struct {
	Seq      uint64 // last arrival sequence applied to the book
	TradeSeq uint64 // last trade sequence emitted
	LastID   uint64 // last order id issued
	Created  time.Time
	Orders   []OrderEntry
}

// OrderEntry is one resting order. Qty is the remaining quantity at
// snapshot time; the original size is not needed to rebuild the book.
type OrderEntry struct {
	ID    uint64
	Seq   uint64
	Side  uint8
	Price int64
	Qty   int64
}

package book

// Trade records one fill. Price is always the resting order's price; the
// standing side gets the price improvement. Seq is assigned by the engine
// from its own monotonic counter, so a replayed submission stream yields
// identical trade sequences.
type Trade struct {
	Seq     uint64
	TakerID uint64
	MakerID uint64
	Price   int64
	Qty     int64
}

package snapshot

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"matchbook/internal/book"
)

// Load restores a book from the snapshot in dir, if one exists. Orders
// are inserted directly: a consistent book cannot self-cross, and the
// entries arrive in seq order within each level, preserving FIFO.
// Returns the zero Snapshot when no file is present (fresh boot).
func Load(dir string, eng *book.Engine) (Snapshot, error) {
	f, err := os.Open(filepath.Join(dir, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, nil
		}
		return Snapshot{}, err
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: decode: %w", err)
	}

	for _, e := range s.Orders {
		o := &book.Order{
			ID:    e.ID,
			Seq:   e.Seq,
			Side:  book.Side(e.Side),
			Type:  book.Limit,
			Price: e.Price,
			Qty:   e.Qty,
		}
		if err := eng.Restore(o); err != nil {
			return Snapshot{}, fmt.Errorf("snapshot: order %d: %w", e.ID, err)
		}
	}
	eng.RestoreCounters(s.Seq, s.TradeSeq)

	return s, nil
}

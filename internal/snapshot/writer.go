package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"matchbook/internal/book"
)

const fileName = "snapshot.bin"

type Writer struct {
	Dir string
}

// Write dumps every resting order. The file is written to a temp name and
// renamed, so a crash mid-write leaves the previous snapshot intact.
func (w *Writer) Write(seq, lastID uint64, eng *book.Engine) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	s := Snapshot{
		Seq:      seq,
		TradeSeq: eng.TradeSeq(),
		LastID:   lastID,
		Created:  time.Now(),
		Orders:   make([]OrderEntry, 0, 1024),
	}

	collect := func(side *book.BookSide) {
		side.Walk(func(lvl *book.PriceLevel) bool {
			for o := lvl.Front(); o != nil; o = o.Next() {
				s.Orders = append(s.Orders, OrderEntry{
					ID:    o.ID,
					Seq:   o.Seq,
					Side:  uint8(o.Side),
					Price: o.Price,
					Qty:   o.Remaining(),
				})
			}
			return true
		})
	}
	collect(eng.Bids())
	collect(eng.Asks())

	tmp := filepath.Join(w.Dir, fileName+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(f).Encode(&s); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(w.Dir, fileName))
}

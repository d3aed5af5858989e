package snapshot

import (
	"testing"

	"matchbook/internal/book"
)

func TestWriteLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	eng := book.NewEngine()
	orders := []*book.Order{
		{ID: 1, Seq: 1, Side: book.Bid, Type: book.Limit, Price: 99, Qty: 5},
		{ID: 2, Seq: 2, Side: book.Bid, Type: book.Limit, Price: 99, Qty: 3},
		{ID: 3, Seq: 3, Side: book.Ask, Type: book.Limit, Price: 101, Qty: 7},
	}
	for _, o := range orders {
		if _, err := eng.Submit(o); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	w := &Writer{Dir: dir}
	if err := w.Write(3, 3, eng); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	restored := book.NewEngine()
	s, err := Load(dir, restored)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if s.Seq != 3 || s.LastID != 3 {
		t.Errorf("expected seq/lastID 3/3, got %d/%d", s.Seq, s.LastID)
	}
	if len(s.Orders) != 3 {
		t.Fatalf("expected 3 resting orders, got %d", len(s.Orders))
	}

	bids, asks := restored.Depth()
	if len(bids) != 1 || bids[0].Price != 99 || bids[0].Qty != 8 || bids[0].Orders != 2 {
		t.Errorf("bid level wrong after restore: %+v", bids)
	}
	if len(asks) != 1 || asks[0].Price != 101 || asks[0].Qty != 7 {
		t.Errorf("ask level wrong after restore: %+v", asks)
	}
	if restored.LastSeq() != 3 {
		t.Errorf("expected last seq 3, got %d", restored.LastSeq())
	}

	// FIFO within the restored level must match arrival order.
	lvl := restored.Bids().Best()
	if lvl.Front().ID != 1 || lvl.Front().Next().ID != 2 {
		t.Error("restore must preserve arrival order within a level")
	}
}

func TestLoadMissingSnapshotIsFreshBoot(t *testing.T) {
	eng := book.NewEngine()
	s, err := Load(t.TempDir(), eng)
	if err != nil {
		t.Fatalf("expected clean fresh boot, got %v", err)
	}
	if s.Seq != 0 || len(s.Orders) != 0 {
		t.Errorf("expected zero snapshot, got %+v", s)
	}
}

func TestSnapshotCapturesPartialFills(t *testing.T) {
	dir := t.TempDir()

	eng := book.NewEngine()
	if _, err := eng.Submit(&book.Order{ID: 1, Seq: 1, Side: book.Ask, Type: book.Limit, Price: 100, Qty: 10}); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Submit(&book.Order{ID: 2, Seq: 2, Side: book.Bid, Type: book.Market, Qty: 4}); err != nil {
		t.Fatal(err)
	}

	w := &Writer{Dir: dir}
	if err := w.Write(2, 2, eng); err != nil {
		t.Fatal(err)
	}

	restored := book.NewEngine()
	if _, err := Load(dir, restored); err != nil {
		t.Fatal(err)
	}
	_, asks := restored.Depth()
	if len(asks) != 1 || asks[0].Qty != 6 {
		t.Errorf("expected remaining 6 restored, got %+v", asks)
	}
	if restored.TradeSeq() != 1 {
		t.Errorf("trade seq must resume from 1, got %d", restored.TradeSeq())
	}
}

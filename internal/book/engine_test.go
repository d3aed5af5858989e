package book

import (
	"errors"
	"testing"
)

type testEnv struct {
	engine *Engine
	nextID uint64
}

func newTestEnv() *testEnv {
	return &testEnv{engine: NewEngine()}
}

func (env *testEnv) submit(t *testing.T, side Side, otype OrderType, price, qty int64) Result {
	t.Helper()
	env.nextID++
	res, err := env.engine.Submit(&Order{
		ID:    env.nextID,
		Seq:   env.nextID,
		Side:  side,
		Type:  otype,
		Price: price,
		Qty:   qty,
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	return res
}

func TestLimitBuyRestsOnEmptyBook(t *testing.T) {
	env := newTestEnv()
	res := env.submit(t, Bid, Limit, 100, 10)

	if res.Status != StatusResting {
		t.Fatalf("expected resting, got %v", res.Status)
	}
	if len(res.Trades) != 0 {
		t.Errorf("expected no trades, got %d", len(res.Trades))
	}
	bids, asks := env.engine.Depth()
	if len(asks) != 0 {
		t.Error("ask side should be empty")
	}
	if len(bids) != 1 || bids[0].Price != 100 || bids[0].Qty != 10 {
		t.Errorf("expected bid level 100x10, got %+v", bids)
	}
}

func TestMarketBuyFillsRestingAsk(t *testing.T) {
	env := newTestEnv()
	env.submit(t, Ask, Limit, 100, 5)
	res := env.submit(t, Bid, Market, 0, 5)

	if res.Status != StatusFilled {
		t.Fatalf("expected filled, got %v", res.Status)
	}
	if len(res.Trades) != 1 || res.Trades[0].Qty != 5 || res.Trades[0].Price != 100 {
		t.Fatalf("expected one trade 5@100, got %+v", res.Trades)
	}
	if env.engine.Asks().Levels() != 0 {
		t.Error("ask side should be empty after full fill")
	}
}

func TestPartialFillRemainderRests(t *testing.T) {
	env := newTestEnv()
	env.submit(t, Ask, Limit, 100, 3)
	res := env.submit(t, Bid, Limit, 101, 10)

	if res.Status != StatusResting {
		t.Fatalf("expected resting, got %v", res.Status)
	}
	if len(res.Trades) != 1 || res.Trades[0].Qty != 3 || res.Trades[0].Price != 100 {
		t.Fatalf("expected one trade 3@100, got %+v", res.Trades)
	}
	if res.Remaining != 7 {
		t.Errorf("expected remaining 7, got %d", res.Remaining)
	}
	bids, _ := env.engine.Depth()
	if len(bids) != 1 || bids[0].Price != 101 || bids[0].Qty != 7 {
		t.Errorf("expected bid level 101x7, got %+v", bids)
	}
}

func TestInadmissiblePriceDoesNotCross(t *testing.T) {
	env := newTestEnv()
	env.submit(t, Bid, Limit, 99, 4)
	res := env.submit(t, Ask, Limit, 100, 4)

	if res.Status != StatusResting {
		t.Fatalf("expected resting, got %v", res.Status)
	}
	if len(res.Trades) != 0 {
		t.Errorf("99 bid must not trade against 100 ask, got %+v", res.Trades)
	}
	bids, asks := env.engine.Depth()
	if len(bids) != 1 || bids[0].Price != 99 {
		t.Errorf("bid level 99 should survive, got %+v", bids)
	}
	if len(asks) != 1 || asks[0].Price != 100 || asks[0].Qty != 4 {
		t.Errorf("expected new ask level 100x4, got %+v", asks)
	}
}

func TestMarketSellOnEmptyBook(t *testing.T) {
	env := newTestEnv()
	res := env.submit(t, Ask, Market, 0, 10)

	if res.Status != StatusPartiallyUnfillable {
		t.Fatalf("expected partially_unfillable, got %v", res.Status)
	}
	if res.Remaining != 10 {
		t.Errorf("expected full shortfall 10, got %d", res.Remaining)
	}
	if len(res.Trades) != 0 {
		t.Error("no trades expected on an empty book")
	}
	bids, asks := env.engine.Depth()
	if len(bids) != 0 || len(asks) != 0 {
		t.Error("book must be unchanged")
	}
}

func TestPricePriority(t *testing.T) {
	env := newTestEnv()
	env.submit(t, Bid, Limit, 98, 5)
	env.submit(t, Bid, Limit, 100, 5)

	res := env.submit(t, Ask, Limit, 97, 5)
	if len(res.Trades) != 1 {
		t.Fatalf("expected one trade, got %d", len(res.Trades))
	}
	if res.Trades[0].Price != 100 {
		t.Errorf("best bid 100 must trade first, traded at %d", res.Trades[0].Price)
	}
	bids, _ := env.engine.Depth()
	if len(bids) != 1 || bids[0].Price != 98 {
		t.Errorf("only the 98 level should remain, got %+v", bids)
	}
}

func TestTimePriorityWithinLevel(t *testing.T) {
	env := newTestEnv()
	first := env.submit(t, Ask, Limit, 100, 5)
	second := env.submit(t, Ask, Limit, 100, 5)

	res := env.submit(t, Bid, Limit, 100, 7)
	if len(res.Trades) != 2 {
		t.Fatalf("expected two trades, got %d", len(res.Trades))
	}
	if res.Trades[0].MakerID != first.OrderID || res.Trades[0].Qty != 5 {
		t.Errorf("earlier order must fill first: %+v", res.Trades[0])
	}
	if res.Trades[1].MakerID != second.OrderID || res.Trades[1].Qty != 2 {
		t.Errorf("later order fills the remainder: %+v", res.Trades[1])
	}
	_, asks := env.engine.Depth()
	if len(asks) != 1 || asks[0].Qty != 3 {
		t.Errorf("3 should remain on the 100 ask level, got %+v", asks)
	}
}

func TestSweepAcrossLevels(t *testing.T) {
	env := newTestEnv()
	env.submit(t, Ask, Limit, 100, 2)
	env.submit(t, Ask, Limit, 101, 2)
	env.submit(t, Ask, Limit, 102, 2)

	res := env.submit(t, Bid, Limit, 101, 5)
	if len(res.Trades) != 2 {
		t.Fatalf("expected two trades, got %+v", res.Trades)
	}
	if res.Trades[0].Price != 100 || res.Trades[1].Price != 101 {
		t.Errorf("levels must be swept best first, got %+v", res.Trades)
	}
	// 4 filled out of 5, remainder rests at 101.
	if res.Status != StatusResting || res.Remaining != 1 {
		t.Errorf("expected resting remainder 1, got %v/%d", res.Status, res.Remaining)
	}
	_, asks := env.engine.Depth()
	if len(asks) != 1 || asks[0].Price != 102 {
		t.Errorf("only the 102 ask should remain, got %+v", asks)
	}
}

func TestQuantityConservation(t *testing.T) {
	env := newTestEnv()
	env.submit(t, Ask, Limit, 100, 4)
	env.submit(t, Ask, Limit, 100, 6)

	res := env.submit(t, Bid, Market, 0, 7)
	var traded int64
	for _, tr := range res.Trades {
		if tr.Qty <= 0 {
			t.Errorf("non-positive trade quantity: %+v", tr)
		}
		traded += tr.Qty
	}
	if traded != 7 {
		t.Errorf("expected 7 traded in total, got %d", traded)
	}
	_, asks := env.engine.Depth()
	if len(asks) != 1 || asks[0].Qty != 3 {
		t.Errorf("3 must remain resting, got %+v", asks)
	}
}

func TestNoZeroQuantitySurvivors(t *testing.T) {
	env := newTestEnv()
	env.submit(t, Ask, Limit, 100, 1)
	env.submit(t, Ask, Limit, 100, 1)
	env.submit(t, Bid, Market, 0, 2)

	env.engine.Asks().Walk(func(lvl *PriceLevel) bool {
		for o := lvl.Front(); o != nil; o = o.Next() {
			if o.Remaining() <= 0 {
				t.Errorf("zero-quantity survivor at level %d: %+v", lvl.Price, o)
			}
		}
		return true
	})
	if env.engine.Asks().Levels() != 0 {
		t.Error("fully consumed levels must be deleted")
	}
}

func TestMarketOrderNeverRests(t *testing.T) {
	env := newTestEnv()
	env.submit(t, Ask, Limit, 100, 3)

	res := env.submit(t, Bid, Market, 0, 10)
	if res.Status == StatusResting {
		t.Fatal("market order must never rest")
	}
	if res.Status != StatusPartiallyUnfillable || res.Remaining != 7 {
		t.Errorf("expected shortfall 7, got %v/%d", res.Status, res.Remaining)
	}
	bids, _ := env.engine.Depth()
	if len(bids) != 0 {
		t.Errorf("discarded remainder must not appear in the book: %+v", bids)
	}
}

func TestRejectionLeavesNoTrace(t *testing.T) {
	env := newTestEnv()
	env.submit(t, Ask, Limit, 100, 5)

	cases := []struct {
		name  string
		otype OrderType
		price int64
		qty   int64
		want  error
	}{
		{"zero quantity", Limit, 100, 0, ErrInvalidQuantity},
		{"negative quantity", Market, 0, -3, ErrInvalidQuantity},
		{"limit without price", Limit, 0, 5, ErrMissingPrice},
	}
	for _, tc := range cases {
		env.nextID++
		res, err := env.engine.Submit(&Order{
			ID: env.nextID, Seq: env.nextID,
			Side: Bid, Type: tc.otype, Price: tc.price, Qty: tc.qty,
		})
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if res.Status != StatusRejected {
			t.Errorf("%s: expected rejected status, got %v", tc.name, res.Status)
		}
	}

	_, asks := env.engine.Depth()
	if len(asks) != 1 || asks[0].Qty != 5 {
		t.Errorf("book must be untouched by rejected orders, got %+v", asks)
	}
}

func TestDeterministicReplay(t *testing.T) {
	type intent struct {
		side  Side
		otype OrderType
		price int64
		qty   int64
	}
	script := []intent{
		{Bid, Limit, 100, 5},
		{Ask, Limit, 101, 3},
		{Ask, Limit, 100, 2},
		{Bid, Market, 0, 4},
		{Ask, Limit, 99, 10},
		{Bid, Limit, 99, 1},
	}

	run := func() (trades []Trade, bids, asks []Level) {
		env := newTestEnv()
		for _, in := range script {
			res := env.submit(t, in.side, in.otype, in.price, in.qty)
			trades = append(trades, res.Trades...)
		}
		bids, asks = env.engine.Depth()
		return
	}

	t1, b1, a1 := run()
	t2, b2, a2 := run()

	if len(t1) != len(t2) {
		t.Fatalf("trade counts differ: %d vs %d", len(t1), len(t2))
	}
	for i := range t1 {
		if t1[i] != t2[i] {
			t.Errorf("trade %d differs: %+v vs %+v", i, t1[i], t2[i])
		}
	}
	if len(b1) != len(b2) || len(a1) != len(a2) {
		t.Fatal("book shapes differ between runs")
	}
	for i := range b1 {
		if b1[i] != b2[i] {
			t.Errorf("bid level %d differs: %+v vs %+v", i, b1[i], b2[i])
		}
	}
	for i := range a1 {
		if a1[i] != a2[i] {
			t.Errorf("ask level %d differs: %+v vs %+v", i, a1[i], a2[i])
		}
	}
}

func TestTradeSequenceMonotonic(t *testing.T) {
	env := newTestEnv()
	env.submit(t, Ask, Limit, 100, 1)
	env.submit(t, Ask, Limit, 100, 1)
	env.submit(t, Ask, Limit, 101, 1)

	res := env.submit(t, Bid, Market, 0, 3)
	var last uint64
	for _, tr := range res.Trades {
		if tr.Seq <= last {
			t.Errorf("trade seq not strictly increasing: %+v", res.Trades)
		}
		last = tr.Seq
	}
	if env.engine.TradeSeq() != 3 {
		t.Errorf("expected trade seq 3, got %d", env.engine.TradeSeq())
	}
}

func TestRestoreRebuildsBook(t *testing.T) {
	env := newTestEnv()
	if err := env.engine.Restore(&Order{ID: 1, Seq: 1, Side: Bid, Type: Limit, Price: 100, Qty: 5}); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if err := env.engine.Restore(&Order{ID: 2, Seq: 2, Side: Ask, Type: Limit, Price: 105, Qty: 5}); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if env.engine.LastSeq() != 2 {
		t.Errorf("expected last seq 2, got %d", env.engine.LastSeq())
	}
	bids, asks := env.engine.Depth()
	if len(bids) != 1 || len(asks) != 1 {
		t.Errorf("expected one level per side, got %+v / %+v", bids, asks)
	}
}

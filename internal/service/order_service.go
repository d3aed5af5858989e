// Package service hosts the sequencer: the single serialized write path
// into the matching engine. Concurrent submitters are funnelled through
// one mutex, ids and arrival sequences are assigned at that point, the
// intent is made durable in the WAL, and only then does the engine run.
package service

import (
	"fmt"
	"sync"

	proto "github.com/golang/protobuf/proto"
	"go.uber.org/zap"

	"matchbook/api/pb"
	"matchbook/internal/book"
	"matchbook/internal/obs"
	"matchbook/internal/outbox"
	"matchbook/internal/sequence"
	"matchbook/internal/wal"
)

type OrderService struct {
	mu sync.Mutex

	eng  *book.Engine
	ids  *sequence.Allocator
	seqs *sequence.Allocator
	wal  *wal.WAL
	box  *outbox.Outbox

	metrics *obs.Metrics
	log     *zap.Logger
}

// NewOrderService wires all dependencies. No globals.
func NewOrderService(
	eng *book.Engine,
	ids *sequence.Allocator,
	seqs *sequence.Allocator,
	w *wal.WAL,
	box *outbox.Outbox,
	metrics *obs.Metrics,
	log *zap.Logger,
) *OrderService {
	return &OrderService{
		eng:     eng,
		ids:     ids,
		seqs:    seqs,
		wal:     w,
		box:     box,
		metrics: metrics,
		log:     log,
	}
}

// Submit serializes one order through the engine and returns its result.
// Validation happens before the id is burned or the intent is logged, so
// a rejected order leaves no trace anywhere.
func (s *OrderService) Submit(side book.Side, otype book.OrderType, price, qty int64) (book.Result, error) {
	if err := book.Validate(otype, price, qty); err != nil {
		s.metrics.OrdersTotal.WithLabelValues(book.StatusRejected.String()).Inc()
		return book.Result{Status: book.StatusRejected, Remaining: qty}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ids.Next()
	seq := s.seqs.Next()

	o := &book.Order{
		ID:    id,
		Seq:   seq,
		Side:  side,
		Type:  otype,
		Price: price,
		Qty:   qty,
	}

	payload, err := proto.Marshal(&pb.OrderIntent{
		OrderId: id,
		Seq:     seq,
		Side:    pb.Side(side),
		Type:    pb.OrderType(otype),
		Price:   price,
		Qty:     qty,
	})
	if err != nil {
		return book.Result{}, fmt.Errorf("service: encode intent: %w", err)
	}
	if err := s.wal.Append(wal.NewRecord(wal.RecordSubmit, seq, payload)); err != nil {
		// The intent never became durable and the book is untouched;
		// the caller can safely retry.
		return book.Result{}, fmt.Errorf("service: wal append: %w", err)
	}

	res, err := s.eng.Submit(o)
	if err != nil {
		return res, err
	}

	for _, tr := range res.Trades {
		s.publishTrade(tr)
	}

	s.metrics.OrdersTotal.WithLabelValues(res.Status.String()).Inc()
	s.log.Debug("order submitted",
		zap.Uint64("id", res.OrderID),
		zap.Uint64("seq", res.Seq),
		zap.String("side", side.String()),
		zap.String("type", otype.String()),
		zap.String("status", res.Status.String()),
		zap.Int("trades", len(res.Trades)),
		zap.Int64("remaining", res.Remaining),
	)
	return res, nil
}

func (s *OrderService) publishTrade(tr book.Trade) {
	payload, err := proto.Marshal(&pb.Trade{
		Seq:     tr.Seq,
		TakerId: tr.TakerID,
		MakerId: tr.MakerID,
		Price:   tr.Price,
		Qty:     tr.Qty,
	})
	if err != nil {
		s.log.Error("encode trade", zap.Uint64("trade_seq", tr.Seq), zap.Error(err))
		return
	}
	if err := s.box.PutNew(tr.Seq, payload); err != nil {
		s.log.Error("outbox put", zap.Uint64("trade_seq", tr.Seq), zap.Error(err))
	}

	s.metrics.TradesTotal.Inc()
	s.metrics.TradedQty.Add(float64(tr.Qty))
}

// Depth returns the aggregated book and the last applied sequence.
// It runs on the serialized path, so the view is always consistent.
func (s *OrderService) Depth() (bids, asks []book.Level, lastSeq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bids, asks = s.eng.Depth()

	s.metrics.BookLevels.WithLabelValues("bid").Set(float64(len(bids)))
	s.metrics.BookLevels.WithLabelValues("ask").Set(float64(len(asks)))
	s.metrics.RestingQty.WithLabelValues("bid").Set(float64(totalQty(bids)))
	s.metrics.RestingQty.WithLabelValues("ask").Set(float64(totalQty(asks)))

	return bids, asks, s.eng.LastSeq()
}

func totalQty(levels []book.Level) int64 {
	var total int64
	for _, lvl := range levels {
		total += lvl.Qty
	}
	return total
}

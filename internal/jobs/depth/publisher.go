// Package depth publishes periodic aggregated book snapshots to Kafka.
package depth

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"go.uber.org/zap"

	"matchbook/internal/book"
	"matchbook/internal/kafka"
	"matchbook/internal/service"
)

type Publisher struct {
	svc      *service.OrderService
	producer *kafka.Producer
	interval time.Duration
	log      *zap.Logger
}

// Message is the wire format consumed by market-data subscribers.
type Message struct {
	Bids    []book.Level `json:"bids"`
	Asks    []book.Level `json:"asks"`
	LastSeq uint64       `json:"last_seq"`
	Time    int64        `json:"time"`
}

func New(svc *service.OrderService, producer *kafka.Producer, interval time.Duration, log *zap.Logger) *Publisher {
	return &Publisher{
		svc:      svc,
		producer: producer,
		interval: interval,
		log:      log,
	}
}

func (p *Publisher) Start(ctx context.Context) {
	p.log.Info("depth publisher started")

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.publishOnce(ctx)
			}
		}
	}()
}

func (p *Publisher) publishOnce(ctx context.Context) {
	bids, asks, lastSeq := p.svc.Depth()

	payload, err := json.Marshal(Message{
		Bids:    bids,
		Asks:    asks,
		LastSeq: lastSeq,
		Time:    time.Now().UnixMilli(),
	})
	if err != nil {
		p.log.Error("encode depth", zap.Error(err))
		return
	}

	key := []byte(strconv.FormatUint(lastSeq, 10))
	if err := p.producer.Send(ctx, key, payload); err != nil {
		p.log.Warn("depth publish failed", zap.Uint64("last_seq", lastSeq), zap.Error(err))
	}
}

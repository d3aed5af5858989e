// Package broadcaster drains the trade outbox into Kafka.
//
// Delivery is at-least-once: a record is marked SENT before the publish
// attempt and ACKED only after the broker confirms it, so a crash between
// the two re-publishes the trade on the next pass. Consumers dedupe on
// the trade sequence carried in the message key.
package broadcaster

import (
	"context"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"matchbook/internal/outbox"
)

type Broadcaster struct {
	box      *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
	log      *zap.Logger
}

func New(box *outbox.Outbox, brokers []string, topic string, interval time.Duration, log *zap.Logger) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		box:      box,
		producer: producer,
		topic:    topic,
		interval: interval,
		log:      log,
	}, nil
}

func (b *Broadcaster) Start(ctx context.Context) {
	b.log.Info("broadcaster started", zap.String("topic", b.topic))

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

func (b *Broadcaster) drainOnce() {
	err := b.box.ScanPending(func(seq uint64, rec outbox.Record) error {
		if err := b.box.MarkSent(seq); err != nil {
			return err
		}

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(strconv.FormatUint(seq, 10)),
			Value: sarama.ByteEncoder(rec.Payload),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			// leave it SENT; the next pass retries
			b.log.Warn("trade publish failed", zap.Uint64("trade_seq", seq), zap.Error(err))
			return nil
		}

		return b.box.MarkAcked(seq)
	})
	if err != nil {
		b.log.Error("outbox scan", zap.Error(err))
	}
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}

package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"matchbook/internal/snapshot"
)

// StartSnapshotJob periodically persists the book, then truncates the
// entry WAL below the snapshot and garbage-collects acked outbox entries.
func (s *OrderService) StartSnapshotJob(ctx context.Context, dir string, interval time.Duration) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.writeSnapshot(w)
			}
		}
	}()
}

func (s *OrderService) writeSnapshot(w *snapshot.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seqs.Current()
	if err := s.wal.Sync(); err != nil {
		s.log.Error("wal sync before snapshot", zap.Error(err))
		return
	}
	if err := w.Write(seq, s.ids.Current(), s.eng); err != nil {
		s.log.Error("write snapshot", zap.Error(err))
		return
	}

	if err := s.wal.TruncateBefore(seq); err != nil {
		s.log.Warn("wal truncate", zap.Error(err))
	}
	if err := s.box.TruncateAcked(s.eng.TradeSeq()); err != nil {
		s.log.Warn("outbox gc", zap.Error(err))
	}

	s.log.Info("snapshot written", zap.Uint64("seq", seq))
}

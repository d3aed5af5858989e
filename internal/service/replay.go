package service

import (
	"fmt"

	proto "github.com/golang/protobuf/proto"
	"go.uber.org/zap"

	"matchbook/api/pb"
	"matchbook/internal/book"
	"matchbook/internal/sequence"
	"matchbook/internal/wal"
)

// ReplayFromWAL re-runs every intent after the snapshot point through the
// engine. It must run before traffic is accepted. Records at or below
// snapSeq are already in the snapshot and are skipped; the allocators are
// advanced past everything replayed.
func ReplayFromWAL(
	walDir string,
	snapSeq uint64,
	eng *book.Engine,
	ids *sequence.Allocator,
	seqs *sequence.Allocator,
	log *zap.Logger,
) error {
	applied := 0
	lastID := ids.Current()

	lastSeq, err := wal.Replay(walDir, func(rec *wal.Record) error {
		if rec.Type != wal.RecordSubmit || rec.Seq <= snapSeq {
			return nil
		}

		var intent pb.OrderIntent
		if err := proto.Unmarshal(rec.Data, &intent); err != nil {
			return fmt.Errorf("decode intent seq %d: %w", rec.Seq, err)
		}

		o := &book.Order{
			ID:    intent.OrderId,
			Seq:   intent.Seq,
			Side:  book.Side(intent.Side),
			Type:  book.OrderType(intent.Type),
			Price: intent.Price,
			Qty:   intent.Qty,
		}
		// Only validated orders reach the WAL, so a rejection here means
		// the log itself is bad.
		if _, err := eng.Submit(o); err != nil {
			return fmt.Errorf("replay seq %d: %w", rec.Seq, err)
		}

		if intent.OrderId > lastID {
			lastID = intent.OrderId
		}
		applied++
		return nil
	})
	if err != nil {
		return err
	}

	if lastSeq > seqs.Current() {
		seqs.Reset(lastSeq)
	}
	if lastID > ids.Current() {
		ids.Reset(lastID)
	}

	log.Info("wal replay complete",
		zap.Uint64("last_seq", seqs.Current()),
		zap.Uint64("last_id", ids.Current()),
		zap.Int("applied", applied),
	)
	return nil
}

// Package outbox is the durable hand-off between the matching core and
// the trade broadcaster. Trades are written here on the submit path and
// published asynchronously, so the engine never blocks on a network sink.
// Delivery is at-least-once; consumers dedupe on trade sequence.
package outbox

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// -------------------- State --------------------

type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Record --------------------

type Record struct {
	State       State
	Retries     uint32
	LastAttempt int64
	Payload     []byte
}

// binary encoding: [state:1][retries:4][lastAttempt:8][payload]
func encodeRecord(r Record) []byte {
	buf := make([]byte, 1+4+8+len(r.Payload))
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	copy(buf[13:], r.Payload)
	return buf
}

func decodeRecord(b []byte) (Record, error) {
	if len(b) < 13 {
		return Record{}, errors.New("outbox: invalid record length")
	}
	return Record{
		State:       State(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		Payload:     append([]byte(nil), b[13:]...),
	}, nil
}

// -------------------- Outbox --------------------

type Outbox struct {
	db *pebble.DB
}

func Open(dir string) (*Outbox, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // durability is the point
	})
	if err != nil {
		return nil, err
	}
	return &Outbox{db: db}, nil
}

func (o *Outbox) Close() error {
	return o.db.Close()
}

// -------------------- API --------------------

// PutNew inserts a pending trade, keyed by its engine sequence.
func (o *Outbox) PutNew(seq uint64, payload []byte) error {
	rec := Record{State: StateNew, Payload: payload}
	return o.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// MarkSent transitions a trade to SENT before the publish attempt, so a
// crash between publish and ack resends rather than drops.
func (o *Outbox) MarkSent(seq uint64) error {
	return o.updateState(seq, StateSent)
}

// MarkAcked records broker acknowledgement.
func (o *Outbox) MarkAcked(seq uint64) error {
	return o.updateState(seq, StateAcked)
}

func (o *Outbox) updateState(seq uint64, state State) error {
	rec, err := o.Get(seq)
	if err != nil {
		return err
	}
	rec.State = state
	rec.Retries++
	rec.LastAttempt = time.Now().UnixNano()
	return o.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// Get returns the current record for a trade.
func (o *Outbox) Get(seq uint64) (Record, error) {
	val, closer, err := o.db.Get(keyFor(seq))
	if err != nil {
		return Record{}, err
	}
	defer closer.Close()

	return decodeRecord(val)
}

// -------------------- Scan --------------------

// ScanPending iterates every trade not yet acked, in sequence order.
// Used by the broadcaster.
func (o *Outbox) ScanPending(fn func(seq uint64, rec Record) error) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: []byte(keyPrefix + "~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return err
		}
		if rec.State == StateAcked {
			continue
		}

		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		if err := fn(seq, rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// TruncateAcked deletes acked records up to and including seq.
func (o *Outbox) TruncateAcked(seq uint64) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: append(keyFor(seq), '0'),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return err
		}
		if rec.State != StateAcked {
			continue
		}
		key := append([]byte(nil), iter.Key()...)
		if err := o.db.Delete(key, pebble.Sync); err != nil {
			return err
		}
	}
	return iter.Error()
}

// -------------------- Helpers --------------------

const keyPrefix = "trade/"

func keyFor(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", keyPrefix, seq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(b[len(keyPrefix):]), "%d", &seq)
	return seq, err
}

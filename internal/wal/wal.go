// Package wal is the engine's entry log: every accepted order intent is
// framed, checksummed and appended before it reaches the matching core.
// Replaying the segments in order rebuilds the book deterministically.
//
// Frame layout: [type:1][seq:8][time:8][len:4][payload][crc:4]
// with the CRC taken over everything before it.
package wal

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"sort"
)

type Config struct {
	Dir         string
	SegmentSize int64
}

const DefaultSegmentSize = 2 * 1024 * 1024

type WAL struct {
	dir      string
	segSize  int64
	current  *segment
	segIndex int
}

// Open appends to the newest existing segment, or starts segment 0.
func Open(cfg Config) (*WAL, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}
	if cfg.SegmentSize <= 0 {
		cfg.SegmentSize = DefaultSegmentSize
	}

	index := 0
	if files, err := filepath.Glob(filepath.Join(cfg.Dir, "segment-*.wal")); err == nil && len(files) > 0 {
		sort.Strings(files)
		index = segmentIndex(files[len(files)-1])
	}

	seg, err := openSegment(cfg.Dir, index)
	if err != nil {
		return nil, err
	}

	return &WAL{
		dir:      cfg.Dir,
		segSize:  cfg.SegmentSize,
		current:  seg,
		segIndex: index,
	}, nil
}

func (w *WAL) Append(r *Record) error {
	payloadLen := uint32(len(r.Data))

	buf := make([]byte, 1+8+8+4+payloadLen+4)
	buf[0] = byte(r.Type)
	binary.BigEndian.PutUint64(buf[1:9], r.Seq)
	binary.BigEndian.PutUint64(buf[9:17], uint64(r.Time))
	binary.BigEndian.PutUint32(buf[17:21], payloadLen)
	copy(buf[21:], r.Data)

	crc := CRC32(buf[:21+payloadLen])
	binary.BigEndian.PutUint32(buf[21+payloadLen:], crc)

	if err := w.current.append(buf); err != nil {
		return err
	}

	if w.current.offset >= w.segSize {
		return w.rotate()
	}
	return nil
}

func (w *WAL) Sync() error {
	return w.current.sync()
}

func (w *WAL) Close() error {
	return w.current.close()
}

func (w *WAL) rotate() error {
	_ = w.current.close()
	w.segIndex++

	seg, err := openSegment(w.dir, w.segIndex)
	if err != nil {
		return err
	}
	w.current = seg
	return nil
}

// TruncateBefore removes closed segments whose records are all covered by
// a snapshot at seq. The current segment is never removed.
func (w *WAL) TruncateBefore(seq uint64) error {
	files, err := filepath.Glob(filepath.Join(w.dir, "segment-*.wal"))
	if err != nil {
		return err
	}

	current := w.current.file.Name()
	for _, path := range files {
		if path == current {
			continue
		}
		maxSeq, err := maxSeqInSegment(path)
		if err != nil {
			continue
		}
		if maxSeq <= seq {
			_ = os.Remove(path)
		}
	}
	return nil
}

func segmentIndex(path string) int {
	base := filepath.Base(path)
	// segment-NNNNNN.wal
	if len(base) != len("segment-000000.wal") {
		return 0
	}
	n := 0
	for _, c := range base[len("segment-") : len(base)-len(".wal")] {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}

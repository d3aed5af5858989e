package wal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendAndReplay(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}

	const n = 100
	for i := 1; i <= n; i++ {
		rec := NewRecord(RecordSubmit, uint64(i), []byte(fmt.Sprintf("intent-%d", i)))
		if err := w.Append(rec); err != nil {
			t.Fatalf("append: %v", err)
		}
		if i%20 == 0 {
			_ = w.Sync()
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	count := 0
	lastSeq, err := Replay(dir, func(rec *Record) error {
		if rec.Type != RecordSubmit {
			t.Fatalf("unexpected record type: %v", rec.Type)
		}
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if count != n || lastSeq != n {
		t.Fatalf("expected %d records up to seq %d, got %d/%d", n, n, count, lastSeq)
	}
}

func TestRotationAndReopen(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir, SegmentSize: 64})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 10; i++ {
		if err := w.Append(NewRecord(RecordSubmit, uint64(i), []byte("payload"))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	_ = w.Close()

	files, _ := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	if len(files) < 2 {
		t.Fatalf("expected rotated segments, found %d", len(files))
	}

	// Reopen must continue on the newest segment, keeping replay monotonic.
	w2, err := Open(Config{Dir: dir, SegmentSize: 64})
	if err != nil {
		t.Fatal(err)
	}
	if err := w2.Append(NewRecord(RecordSubmit, 11, []byte("after reopen"))); err != nil {
		t.Fatal(err)
	}
	_ = w2.Close()

	lastSeq, err := Replay(dir, func(*Record) error { return nil })
	if err != nil {
		t.Fatalf("replay after reopen: %v", err)
	}
	if lastSeq != 11 {
		t.Fatalf("expected last seq 11, got %d", lastSeq)
	}
}

func TestCRCIntegrity(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	_ = w.Append(NewRecord(RecordSubmit, 1, []byte("valid-record")))
	_ = w.Sync()
	_ = w.Close()

	path := filepath.Join(dir, "segment-000000.wal")
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		t.Fatal(err)
	}
	// flip bytes inside the payload region to break the CRC
	_, _ = f.WriteAt([]byte{0xFF, 0xFF, 0xFF, 0xFF}, 22)
	f.Close()

	_, err = Replay(dir, func(*Record) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "crc mismatch") {
		t.Fatalf("expected crc mismatch, got %v", err)
	}
}

func TestTruncateBefore(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir, SegmentSize: 32})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 8; i++ {
		_ = w.Append(NewRecord(RecordSubmit, uint64(i), []byte("x")))
	}

	before, _ := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	if len(before) < 3 {
		t.Fatalf("expected several segments, got %d", len(before))
	}

	if err := w.TruncateBefore(8); err != nil {
		t.Fatal(err)
	}
	after, _ := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	if len(after) >= len(before) {
		t.Fatalf("expected covered segments removed, %d -> %d", len(before), len(after))
	}

	// everything left must still replay cleanly
	if _, err := Replay(dir, func(*Record) error { return nil }); err != nil {
		t.Fatalf("replay after truncation: %v", err)
	}
	_ = w.Close()
}

func TestReplayRejectsNonMonotonicSeq(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	_ = w.Append(NewRecord(RecordSubmit, 5, []byte("a")))
	_ = w.Append(NewRecord(RecordSubmit, 5, []byte("b")))
	_ = w.Close()

	_, err = Replay(dir, func(*Record) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "non-monotonic") {
		t.Fatalf("expected non-monotonic error, got %v", err)
	}
}

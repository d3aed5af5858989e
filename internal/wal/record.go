package wal

import "time"

type RecordType uint8

const (
	RecordSubmit RecordType = iota
)

// Record is one durable intent. Data is an opaque payload; the service
// layer encodes it with protobuf.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}

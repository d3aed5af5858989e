package wal

import "hash/crc32"

// CRC32 computes a standard IEEE CRC-32 checksum for the data.
func CRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// CRC32Valid checks if the data matches the provided checksum.
func CRC32Valid(data []byte, sum uint32) bool {
	return crc32.ChecksumIEEE(data) == sum
}

package checksum

import "hash/crc32"

var table = crc32.MakeTable(crc32.IEEE)

// Checksum computes the CRC32 (IEEE) of data, the checksum the ZIP
// container records for every stored entry.
func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, table)
}

// VerifyChecksum reports whether data matches an expected checksum.
func VerifyChecksum(data []byte, checksum uint32) bool {
	return crc32.Checksum(data, table) == checksum
}

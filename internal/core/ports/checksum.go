package ports

// ChecksumPort verifies data integrity of extracted entries.
type ChecksumPort interface {
	// Checksum calculates a 32-bit checksum for the provided data.
	Checksum(data []byte) uint32

	// Verify reports whether the data matches the expected checksum.
	Verify(data []byte, checksum uint32) bool
}

package domain

// Options controls archive creation and extraction behavior. Zero
// values are filled in with defaults by the services at construction.
type Options struct {
	// CompressionLevel is the Deflate level used for new archive
	// entries. Must be between 0 (store) and 9 (best compression).
	//
	// Default: 6
	CompressionLevel int

	// Extension is the archive file extension, including the dot.
	// Supplied destinations without it are treated as directories and
	// extraction inputs without it are rejected.
	//
	// Default: ".zip"
	Extension string

	// NamePrefix prefixes generated archive names, which follow the
	// pattern <NamePrefix><yyyyMMdd_HHmmss><Extension>.
	//
	// Default: "Archive_"
	NamePrefix string

	// BufferSize is the size of the pooled buffers used when copying
	// file contents in and out of archives. Must be between 4KB and 16MB.
	//
	// Default: 1MB
	BufferSize uint32

	// VerifyOnExtract re-reads each extracted file and checks it
	// against the CRC32 recorded in the archive.
	//
	// Default: true (set by DefaultOptions; the zero value disables it)
	VerifyOnExtract bool
}

// DefaultOptions returns the recommended settings: balanced compression,
// standard naming, and extraction-time checksum verification.
func DefaultOptions() *Options {
	return &Options{
		CompressionLevel: 6,
		Extension:        ".zip",
		NamePrefix:       "Archive_",
		BufferSize:       1024 * 1024,
		VerifyOnExtract:  true,
	}
}

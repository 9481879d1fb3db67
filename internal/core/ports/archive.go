package ports

// ArchiveEntry describes one entry enumerated from an archive.
type ArchiveEntry struct {
	// Name is the entry's relative path inside the archive, with
	// forward-slash separators. Directory placeholders end in "/".
	Name string

	// Dir marks directory placeholder entries, which are never
	// written to disk as files.
	Dir bool

	// Size is the uncompressed size in bytes.
	Size uint64

	// Checksum is the CRC32 (IEEE) recorded for the entry's contents.
	Checksum uint32
}

// ArchiveWriterPort appends files to an archive being created.
// Implementations own the underlying file handle until Close.
type ArchiveWriterPort interface {
	// Append adds the file at filePath under the given entry name,
	// compressing it with the engine's configured level.
	Append(entryName, filePath string) error

	// Close finalizes the container and releases the file handle.
	Close() error
}

// ArchiveReaderPort enumerates and extracts entries of an existing archive.
type ArchiveReaderPort interface {
	// Entries lists all entries in archive order.
	Entries() []ArchiveEntry

	// Extract writes a single entry's bytes to destPath, overwriting
	// any existing file.
	Extract(entryName, destPath string) error

	// Close releases the archive file handle.
	Close() error
}

// ArchiveEnginePort is the compression engine boundary. The core
// services never touch the container format directly; they create,
// enumerate, and extract through this port.
type ArchiveEnginePort interface {
	// Create opens a new archive container at path for writing,
	// truncating any existing file.
	Create(path string) (ArchiveWriterPort, error)

	// Open opens an existing archive for reading.
	Open(path string) (ArchiveReaderPort, error)
}

// Package zipengine implements the archive engine port on top of the
// standard ZIP container, with the stdlib Deflate swapped for the
// klauspost implementation on both the write and read paths.
package zipengine

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/flate"
	"go.uber.org/multierr"

	"github.com/zipdesk/zipdesk/internal/core/ports"
	"github.com/zipdesk/zipdesk/pkg/pool"
)

// Compression level constants define the trade-off between compression
// ratio and speed for new archive entries.
const (
	StoreLevel   int = 0 // No compression, fastest
	DefaultLevel int = 6 // Balanced between speed and compression ratio
	BestLevel    int = 9 // Maximum compression ratio, higher CPU usage
)

const (
	minBufferSize = 4096     // 4KB
	maxBufferSize = 16777216 // 16MB
)

type Options struct {
	// Level is the Deflate compression level (0-9).
	Level int

	// BufferSize is the size of pooled copy buffers.
	BufferSize uint32
}

// Returns recommended engine settings.
func DefaultOptions() Options {
	return Options{Level: DefaultLevel, BufferSize: 1024 * 1024}
}

// Checks if the engine options are within acceptable bounds.
func Validate(opts Options) error {
	if opts.Level < StoreLevel || opts.Level > BestLevel {
		return fmt.Errorf("compression level must be between %d and %d, got %d", StoreLevel, BestLevel, opts.Level)
	}

	if opts.BufferSize < minBufferSize || opts.BufferSize > maxBufferSize {
		return fmt.Errorf(
			"buffer size must be between %d and %d bytes, got %d", minBufferSize, maxBufferSize, opts.BufferSize,
		)
	}

	return nil
}

// Engine creates and opens ZIP containers. A single Engine is safe for
// concurrent use; each writer or reader it hands out exclusively owns
// one archive file handle until closed.
type Engine struct {
	level      int
	bufferPool *pool.BufferPool
}

func New(opts Options) (*Engine, error) {
	if err := Validate(opts); err != nil {
		return nil, err
	}

	return &Engine{
		level:      opts.Level,
		bufferPool: pool.NewBufferPool(int(opts.BufferSize)),
	}, nil
}

// Create opens a new archive container at path, truncating any existing
// file at that location.
func (e *Engine) Create(path string) (ports.ArchiveWriterPort, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create archive %s: %w", path, err)
	}

	zw := zip.NewWriter(file)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, e.level)
	})

	return &writer{file: file, zw: zw, bufferPool: e.bufferPool}, nil
}

// Open opens an existing archive for reading.
func (e *Engine) Open(path string) (ports.ArchiveReaderPort, error) {
	zr, err := zip.OpenReader(path)
	// ErrInsecurePath still yields a usable reader; containment of
	// entry paths is enforced by the extraction service.
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}

	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})

	byName := make(map[string]*zip.File, len(zr.File))
	entries := make([]ports.ArchiveEntry, 0, len(zr.File))

	for _, f := range zr.File {
		byName[f.Name] = f
		entries = append(entries, ports.ArchiveEntry{
			Name:     f.Name,
			Dir:      f.FileInfo().IsDir() || strings.HasSuffix(f.Name, "/"),
			Size:     f.UncompressedSize64,
			Checksum: f.CRC32,
		})
	}

	return &reader{zr: zr, entries: entries, byName: byName, bufferPool: e.bufferPool}, nil
}

type writer struct {
	file       *os.File
	zw         *zip.Writer
	bufferPool *pool.BufferPool
}

func (w *writer) Append(entryName, filePath string) error {
	src, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open source %s: %w", filePath, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("stat source %s: %w", filePath, err)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("build header for %s: %w", entryName, err)
	}
	header.Name = entryName
	header.Method = zip.Deflate

	dst, err := w.zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("create entry %s: %w", entryName, err)
	}

	buf := w.bufferPool.Get()
	defer w.bufferPool.Put(buf)

	if _, err := io.CopyBuffer(dst, src, buf); err != nil {
		return fmt.Errorf("write entry %s: %w", entryName, err)
	}

	return nil
}

// Close finalizes the central directory and releases the archive file.
func (w *writer) Close() error {
	var err error
	if cerr := w.zw.Close(); cerr != nil {
		err = multierr.Append(err, fmt.Errorf("finalize archive: %w", cerr))
	}
	if cerr := w.file.Close(); cerr != nil {
		err = multierr.Append(err, cerr)
	}
	return err
}

type reader struct {
	zr         *zip.ReadCloser
	entries    []ports.ArchiveEntry
	byName     map[string]*zip.File
	bufferPool *pool.BufferPool
}

func (r *reader) Entries() []ports.ArchiveEntry {
	return r.entries
}

func (r *reader) Extract(entryName, destPath string) error {
	f, ok := r.byName[entryName]
	if !ok {
		return fmt.Errorf("archive has no entry %s", entryName)
	}

	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("open entry %s: %w", entryName, err)
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", destPath, err)
	}

	buf := r.bufferPool.Get()
	defer r.bufferPool.Put(buf)

	_, copyErr := io.CopyBuffer(dst, src, buf)
	if copyErr != nil {
		copyErr = fmt.Errorf("extract entry %s: %w", entryName, copyErr)
	}

	return multierr.Append(copyErr, dst.Close())
}

func (r *reader) Close() error {
	return r.zr.Close()
}

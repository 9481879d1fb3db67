// Package extractor orchestrates archive extraction: archive and target
// resolution, per-entry writes with progress, optional checksum
// verification of extracted files, and mapping outcomes to status
// strings. Failures in the extraction loop are converted to results the
// same way the archiver converts its failures; nothing propagates.
package extractor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/zipdesk/zipdesk/internal/core/domain"
	"github.com/zipdesk/zipdesk/internal/core/ports"
	"github.com/zipdesk/zipdesk/pkg/errors"
	"github.com/zipdesk/zipdesk/pkg/paths"
	"github.com/zipdesk/zipdesk/pkg/system"
)

// Extractor unpacks ZIP archives into a target directory. Safe for
// concurrent use; each operation runs on its own goroutine and owns its
// archive file handle exclusively.
type Extractor struct {
	options  *domain.Options
	engine   ports.ArchiveEnginePort
	picker   ports.PickerPort
	fs       ports.FileSystemPort
	checksum ports.ChecksumPort
	log      *zap.SugaredLogger
}

func New(
	opts *domain.Options,
	engine ports.ArchiveEnginePort,
	picker ports.PickerPort,
	fsys ports.FileSystemPort,
	verifier ports.ChecksumPort,
	log *zap.SugaredLogger,
) *Extractor {
	return &Extractor{
		options:  prepareDefaults(opts),
		engine:   engine,
		picker:   picker,
		fs:       fsys,
		checksum: verifier,
		log:      log,
	}
}

// Extract starts one extraction operation on a background goroutine and
// returns the channel its result is delivered on. The context is
// honored only before entry processing begins.
func (e *Extractor) Extract(ctx context.Context, req domain.ExtractRequest) <-chan domain.Result {
	return system.Run(ctx, func(ctx context.Context) domain.Result {
		return e.run(ctx, req)
	})
}

// ExtractSync runs one extraction operation and blocks until its result
// is available.
func (e *Extractor) ExtractSync(ctx context.Context, req domain.ExtractRequest) domain.Result {
	return <-e.Extract(ctx, req)
}

func (e *Extractor) run(ctx context.Context, req domain.ExtractRequest) domain.Result {
	if err := ctx.Err(); err != nil {
		return domain.Result{
			Kind:   domain.OutcomeCanceled,
			Status: "Operation cancelled before it started.",
			Err:    err,
		}
	}

	archive := strings.TrimSpace(req.ArchivePath)
	if archive == "" {
		picked := e.picker.SelectFiles(false, "*"+e.options.Extension, "Select archive to extract")
		if len(picked) == 0 {
			return domain.Result{
				Kind:   domain.OutcomeCanceled,
				Status: "Operation cancelled: no archive was selected.",
			}
		}
		archive = picked[0]
	}

	if result := e.validateArchivePath(archive); result != nil {
		return *result
	}

	target := strings.TrimSpace(req.TargetDir)
	if target == "" {
		picked, ok := e.picker.SelectFolder("Select destination folder")
		if !ok {
			return domain.Result{
				Kind:   domain.OutcomeCanceled,
				Status: "Operation cancelled: no destination folder was chosen.",
			}
		}
		target = picked
	}

	if err := e.fs.CreateDirAll(target, 0o755); err != nil {
		return domain.Result{
			Kind:   domain.OutcomeFailed,
			Status: fmt.Sprintf("Failed to create destination folder %s: %v.", target, err),
			Err:    errors.NewOpError(errors.ErrorDestination, "create destination folder", err),
		}
	}

	reader, err := e.engine.Open(archive)
	if err != nil {
		return domain.Result{
			Kind:   domain.OutcomeFailed,
			Status: fmt.Sprintf("Failed to open archive %s: %v.", archive, err),
			Err:    errors.NewOpError(errors.ErrorExtract, "open archive", err),
		}
	}
	defer reader.Close()

	entries := reader.Entries()
	e.log.Infow("extracting archive", "archive", archive, "target", target, "entries", len(entries))

	var warnings []domain.Warning
	meter := domain.NewProgressMeter(req.OnProgress)
	total := len(entries)

	for i, entry := range entries {
		destPath := filepath.Join(target, filepath.FromSlash(entry.Name))

		if !paths.WithinBase(target, destPath) {
			e.log.Warnw("skipping entry outside destination", "entry", entry.Name)
			warnings = append(warnings, domain.Warning{Path: entry.Name, Reason: "entry escapes destination directory"})
			meter.Step(i+1, total)
			continue
		}

		// Directory placeholders count toward progress but produce no
		// file write.
		if !entry.Dir {
			if result := e.extractEntry(reader, entry, destPath); result != nil {
				result.Path = target
				result.Warnings = warnings
				return *result
			}
		}

		meter.Step(i+1, total)
	}

	meter.Done()
	e.log.Infow("archive extracted", "archive", archive, "target", target)
	domain.DispatchComplete(req.Completion, req.OnComplete)

	return domain.Result{
		Kind:     domain.OutcomeSuccess,
		Status:   fmt.Sprintf("Archive extracted successfully to %s.", target),
		Path:     target,
		Warnings: warnings,
	}
}

func (e *Extractor) extractEntry(reader ports.ArchiveReaderPort, entry ports.ArchiveEntry, destPath string) *domain.Result {
	if err := e.fs.CreateDirAll(filepath.Dir(destPath), 0o755); err != nil {
		return &domain.Result{
			Kind:   domain.OutcomeFailed,
			Status: fmt.Sprintf("Failed to extract %s: %v.", entry.Name, err),
			Err:    errors.NewOpError(errors.ErrorExtract, "create entry directory", err),
		}
	}

	if err := reader.Extract(entry.Name, destPath); err != nil {
		return &domain.Result{
			Kind:   domain.OutcomeFailed,
			Status: fmt.Sprintf("Failed to extract %s: %v.", entry.Name, err),
			Err:    errors.NewOpError(errors.ErrorExtract, "extract entry", err),
		}
	}

	if !e.options.VerifyOnExtract {
		return nil
	}

	data, err := e.fs.ReadFile(destPath)
	if err != nil {
		return &domain.Result{
			Kind:   domain.OutcomeFailed,
			Status: fmt.Sprintf("Failed to verify %s: %v.", entry.Name, err),
			Err:    errors.NewOpError(errors.ErrorExtract, "read back entry", err),
		}
	}

	if !e.checksum.Verify(data, entry.Checksum) {
		err := fmt.Errorf("checksum mismatch for entry %s", entry.Name)
		return &domain.Result{
			Kind:   domain.OutcomeFailed,
			Status: fmt.Sprintf("Extracted file %s failed checksum verification.", entry.Name),
			Err:    errors.NewOpError(errors.ErrorIntegrity, "verify entry", err),
		}
	}

	return nil
}

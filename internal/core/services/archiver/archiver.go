// Package archiver orchestrates ZIP archive creation: source and
// destination resolution, destination auto-correction, sequential entry
// appending with coarse progress, and mapping outcomes to status strings.
package archiver

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

// Archiver builds ZIP archives from files and directories. Safe for
// concurrent use; each operation runs on its own goroutine and owns its
// archive file handle exclusively.
type Archiver struct {
	options *domain.Options
	engine  ports.ArchiveEnginePort
	picker  ports.PickerPort
	fs      ports.FileSystemPort
	log     *zap.SugaredLogger
}

func New(
	opts *domain.Options,
	engine ports.ArchiveEnginePort,
	picker ports.PickerPort,
	fsys ports.FileSystemPort,
	log *zap.SugaredLogger,
) *Archiver {
	return &Archiver{
		options: prepareDefaults(opts),
		engine:  engine,
		picker:  picker,
		fs:      fsys,
		log:     log,
	}
}

// Archive starts one archive-creation operation on a background
// goroutine and returns the channel its result is delivered on. The
// context is honored only before entry processing begins; once writing
// starts the operation runs to completion or failure.
func (a *Archiver) Archive(ctx context.Context, req domain.ArchiveRequest) <-chan domain.Result {
	return system.Run(ctx, func(ctx context.Context) domain.Result {
		return a.run(ctx, req)
	})
}

// ArchiveSync runs one archive-creation operation and blocks until its
// result is available.
func (a *Archiver) ArchiveSync(ctx context.Context, req domain.ArchiveRequest) domain.Result {
	return <-a.Archive(ctx, req)
}

func (a *Archiver) run(ctx context.Context, req domain.ArchiveRequest) domain.Result {
	if err := ctx.Err(); err != nil {
		return domain.Result{
			Kind:   domain.OutcomeCanceled,
			Status: "Operation cancelled before it started.",
			Err:    err,
		}
	}

	sources := req.Sources
	if len(sources) == 0 {
		sources = a.picker.SelectFiles(true, "", "Select files to archive")
		if len(sources) == 0 {
			return domain.Result{
				Kind:   domain.OutcomeCanceled,
				Status: "Operation cancelled: no files were selected.",
			}
		}
	}

	dest := strings.TrimSpace(req.Destination)
	if dest == "" {
		suggested := paths.GeneratedName(a.options.NamePrefix, a.options.Extension, a.now())
		picked, ok := a.picker.SelectSave(suggested, "Save archive as")
		if !ok {
			return domain.Result{
				Kind:   domain.OutcomeCanceled,
				Status: "Operation cancelled: no destination was chosen.",
			}
		}
		dest = picked
	}

	dest = a.resolveDestination(dest)

	exists, err := a.fs.Exists(dest)
	if err != nil {
		opErr := errors.NewOpError(errors.ErrorDestination, "inspect destination", err)
		return domain.Result{
			Kind:   domain.OutcomeFailed,
			Status: fmt.Sprintf("Failed to create archive: %v.", err),
			Path:   dest,
			Err:    opErr,
		}
	}
	if exists {
		if err := a.fs.DeleteFile(dest); err != nil {
			opErr := errors.NewOpError(errors.ErrorDestination, "replace existing archive", err)
			return domain.Result{
				Kind:   domain.OutcomeFailed,
				Status: fmt.Sprintf("Failed to create archive: %v.", err),
				Path:   dest,
				Err:    opErr,
			}
		}
	}

	writer, err := a.engine.Create(dest)
	if err != nil {
		opErr := errors.NewOpError(errors.ErrorDestination, "create archive container", err)
		return domain.Result{
			Kind:   domain.OutcomeFailed,
			Status: fmt.Sprintf("Failed to create archive: %v.", err),
			Path:   dest,
			Err:    opErr,
		}
	}

	a.log.Infow("creating archive", "destination", dest, "sources", len(sources))

	var warnings []domain.Warning
	meter := domain.NewProgressMeter(req.OnProgress)
	total := len(sources)

	for i, src := range sources {
		if warning, err := a.appendSource(writer, src); err != nil {
			// A partially written archive stays on disk; only the
			// handle is released.
			_ = writer.Close()
			return domain.Result{
				Kind:     domain.OutcomeFailed,
				Status:   fmt.Sprintf("Failed to add %s to archive: %v.", src, err),
				Path:     dest,
				Warnings: warnings,
				Err:      errors.NewOpError(errors.ErrorArchive, "append source", err),
			}
		} else if warning != nil {
			warnings = append(warnings, *warning)
		}

		// One report per top-level source, however many files a
		// directory contributes.
		meter.Step(i+1, total)
	}

	if err := writer.Close(); err != nil {
		return domain.Result{
			Kind:     domain.OutcomeFailed,
			Status:   fmt.Sprintf("Failed to finalize archive: %v.", err),
			Path:     dest,
			Warnings: warnings,
			Err:      errors.NewOpError(errors.ErrorArchive, "finalize archive", err),
		}
	}

	meter.Done()
	a.log.Infow("archive created", "destination", dest, "skipped", len(warnings))
	domain.DispatchComplete(req.Completion, req.OnComplete)

	return domain.Result{
		Kind:     domain.OutcomeSuccess,
		Status:   fmt.Sprintf("Archive created successfully at %s.", dest),
		Path:     dest,
		Warnings: warnings,
	}
}

// appendSource adds one top-level source to the archive: a regular file
// under its base name, a directory recursively under
// <dir-base-name>/<relative-path>. Missing or non-regular sources are
// skipped and reported as a warning, not an error.
func (a *Archiver) appendSource(writer ports.ArchiveWriterPort, src string) (*domain.Warning, error) {
	info, err := a.fs.Stat(src)
	if err != nil {
		a.log.Warnw("skipping source", "path", src, "error", err)
		return &domain.Warning{Path: src, Reason: err.Error()}, nil
	}

	if info.Mode().IsRegular() {
		return nil, writer.Append(filepath.Base(src), src)
	}

	if !info.IsDir() {
		a.log.Warnw("skipping source", "path", src, "reason", "not a regular file or directory")
		return &domain.Warning{Path: src, Reason: "not a regular file or directory"}, nil
	}

	files, err := a.fs.ListFiles(src)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		name, err := paths.EntryName(src, file)
		if err != nil {
			return nil, err
		}
		if err := writer.Append(name, file); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

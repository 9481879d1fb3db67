package extractor

import (
	"fmt"
	"strings"

	"github.com/zipdesk/zipdesk/internal/core/domain"
	"github.com/zipdesk/zipdesk/pkg/errors"
	"github.com/zipdesk/zipdesk/pkg/paths"
)

// validateArchivePath rejects an archive path before any archive I/O:
// wrong extension and missing file are both invalid input, reported as
// a result rather than attempted.
func (e *Extractor) validateArchivePath(archive string) *domain.Result {
	if !paths.HasExt(archive, e.options.Extension) {
		err := errors.NewValidationError(
			"extract archive", "archivePath", archive,
			fmt.Errorf("expected a %s file", e.options.Extension),
		)
		return &domain.Result{
			Kind:   domain.OutcomeInvalidInput,
			Status: fmt.Sprintf("Invalid archive: %s is not a %s file.", archive, e.options.Extension),
			Err:    err,
		}
	}

	exists, err := e.fs.Exists(archive)
	if err != nil {
		return &domain.Result{
			Kind:   domain.OutcomeFailed,
			Status: fmt.Sprintf("Failed to check archive %s: %v.", archive, err),
			Err:    errors.NewOpError(errors.ErrorExtract, "check archive", err),
		}
	}

	if !exists {
		verr := errors.NewValidationError(
			"extract archive", "archivePath", archive,
			fmt.Errorf("file does not exist"),
		)
		return &domain.Result{
			Kind:   domain.OutcomeInvalidInput,
			Status: fmt.Sprintf("Invalid archive: %s does not exist.", archive),
			Err:    verr,
		}
	}

	return nil
}

func prepareDefaults(opts *domain.Options) *domain.Options {
	if opts == nil {
		return domain.DefaultOptions()
	}

	if strings.TrimSpace(opts.Extension) == "" {
		opts.Extension = ".zip"
	}

	if !strings.HasPrefix(opts.Extension, ".") {
		opts.Extension = "." + opts.Extension
	}

	return opts
}

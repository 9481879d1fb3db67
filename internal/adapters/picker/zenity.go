// Package picker implements the native dialog port with zenity, which
// drives the host platform's own file and folder choosers (win32 common
// dialogs, macOS NSSavePanel, zenity/qarma on Linux).
package picker

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
	"go.uber.org/zap"
)

type NativePicker struct {
	log *zap.SugaredLogger
}

func New(log *zap.SugaredLogger) *NativePicker {
	return &NativePicker{log: log}
}

// SelectFiles shows a file-open dialog. Cancellation yields an empty
// slice; a dialog failure is reported to the user through a blocking
// error box and also degrades to an empty slice.
func (p *NativePicker) SelectFiles(multi bool, filter, title string) []string {
	opts := []zenity.Option{zenity.Title(title)}
	if filter != "" {
		opts = append(opts, zenity.FileFilters{
			{Name: filter, Patterns: []string{filter}, CaseFold: true},
		})
	}

	var (
		paths []string
		err   error
	)

	if multi {
		paths, err = zenity.SelectFileMultiple(opts...)
	} else {
		var path string
		path, err = zenity.SelectFile(opts...)
		if err == nil {
			paths = []string{path}
		}
	}

	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}

	if err != nil {
		p.log.Errorw("file selection dialog failed", "error", err)
		_ = zenity.Error(
			fmt.Sprintf("File selection failed: %v", err),
			zenity.Title("Selection Error"),
		)
		return nil
	}

	return paths
}

// SelectFolder shows a folder picker. Failures are swallowed: the
// caller only learns the folder was not chosen.
func (p *NativePicker) SelectFolder(title string) (string, bool) {
	path, err := zenity.SelectFile(zenity.Directory(), zenity.Title(title))
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			p.log.Debugw("folder selection dialog failed", "error", err)
		}
		return "", false
	}
	return path, true
}

// SelectSave shows a save-location dialog pre-filled with defaultName.
func (p *NativePicker) SelectSave(defaultName, title string) (string, bool) {
	path, err := zenity.SelectFileSave(
		zenity.Title(title),
		zenity.Filename(defaultName),
		zenity.ConfirmOverwrite(),
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			p.log.Debugw("save dialog failed", "error", err)
		}
		return "", false
	}
	return path, true
}

package ports

// PickerPort wraps the host platform's native selection dialogs. It is
// consulted only when a request omits a required path; dialogs block the
// calling goroutine, as native dialog APIs demand.
type PickerPort interface {
	// SelectFiles shows a file-open dialog and returns the chosen
	// paths in selection order. filter is a glob pattern such as
	// "*.zip"; empty means no filtering. An empty slice means the user
	// cancelled or the dialog failed (failures are surfaced to the
	// user by the implementation, not returned).
	SelectFiles(multi bool, filter, title string) []string

	// SelectFolder shows a folder picker. ok is false when the user
	// cancelled or the dialog failed.
	SelectFolder(title string) (path string, ok bool)

	// SelectSave shows a save-location dialog pre-filled with
	// defaultName. ok is false when the user cancelled or the dialog
	// failed.
	SelectSave(defaultName, title string) (path string, ok bool)
}

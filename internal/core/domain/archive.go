// Package domain defines the request, result, and callback types shared
// by the archive and extract services.
package domain

import "math"

// OutcomeKind classifies how an operation ended. Every outcome is also
// rendered as a human-readable status string; the kind exists so callers
// can branch without parsing that string.
type OutcomeKind int

const (
	// OutcomeSuccess means the operation ran to completion.
	OutcomeSuccess OutcomeKind = iota + 1

	// OutcomeCanceled means the user dismissed a required picker dialog
	// before any work began. Not an error; nothing was written.
	OutcomeCanceled

	// OutcomeInvalidInput means a supplied or selected path failed
	// validation before any archive I/O started.
	OutcomeInvalidInput

	// OutcomeFailed means the operation started and then failed; a
	// partially written archive may remain on disk.
	OutcomeFailed
)

// String returns the string representation of the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeCanceled:
		return "canceled"
	case OutcomeInvalidInput:
		return "invalid-input"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Warning records a source entry that was skipped rather than archived,
// so callers can react instead of relying on logs alone.
type Warning struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Result is the single value delivered when an operation completes.
type Result struct {
	// Kind classifies the outcome.
	Kind OutcomeKind `json:"kind"`

	// Status is the human-readable outcome description, e.g.
	// "Archive created successfully at /tmp/out.zip.".
	Status string `json:"status"`

	// Path is the resolved destination: the archive file for Archive,
	// the target directory for Extract. Empty when resolution never
	// completed (cancellation, invalid input).
	Path string `json:"path,omitempty"`

	// Warnings lists sources or entries that were skipped.
	Warnings []Warning `json:"warnings,omitempty"`

	// Err carries the categorized cause for Failed and InvalidInput
	// outcomes, nil otherwise.
	Err error `json:"-"`
}

// ProgressFunc receives integer percentages in [0,100]. Reports are
// monotonically non-decreasing within one operation and are delivered
// synchronously from the operation's goroutine.
type ProgressFunc func(percent int)

// CompleteFunc is invoked once after an operation succeeds.
type CompleteFunc func()

// Dispatcher decides on which goroutine completion callbacks run.
// UI-bound callers supply a dispatcher that hops to their event loop.
type Dispatcher interface {
	Dispatch(fn func())
}

// InlineDispatcher runs callbacks directly on the operation's goroutine.
// It is the default when a request supplies no dispatcher.
type InlineDispatcher struct{}

func (InlineDispatcher) Dispatch(fn func()) { fn() }

// ArchiveRequest describes one archive-creation operation. Zero values
// mean "unspecified": empty Sources and an empty Destination are
// resolved through the picker before any work starts.
type ArchiveRequest struct {
	Sources     []string
	Destination string
	OnProgress  ProgressFunc
	OnComplete  CompleteFunc
	Completion  Dispatcher
}

// ExtractRequest describes one extraction operation. An empty
// ArchivePath or TargetDir is resolved through the picker.
type ExtractRequest struct {
	ArchivePath string
	TargetDir   string
	OnProgress  ProgressFunc
	OnComplete  CompleteFunc
	Completion  Dispatcher
}

// DispatchComplete invokes fn through the dispatcher, falling back to
// inline invocation when no dispatcher was supplied.
func DispatchComplete(d Dispatcher, fn CompleteFunc) {
	if fn == nil {
		return
	}
	if d == nil {
		d = InlineDispatcher{}
	}
	d.Dispatch(fn)
}

// ProgressMeter emits rounded percentages to a ProgressFunc while
// guaranteeing the reported sequence never decreases.
type ProgressMeter struct {
	fn   ProgressFunc
	last int
}

func NewProgressMeter(fn ProgressFunc) *ProgressMeter {
	return &ProgressMeter{fn: fn, last: -1}
}

// Step reports round(processed/total*100). Reports below the previous
// value are suppressed.
func (m *ProgressMeter) Step(processed, total int) {
	if m.fn == nil || total <= 0 {
		return
	}

	percent := int(math.Round(float64(processed) / float64(total) * 100))
	if percent < m.last {
		return
	}

	m.last = percent
	m.fn(percent)
}

// Done reports 100 unless it has already been reported. Operations call
// it on success so that even a zero-entry run ends at 100.
func (m *ProgressMeter) Done() {
	if m.fn == nil || m.last == 100 {
		return
	}

	m.last = 100
	m.fn(100)
}

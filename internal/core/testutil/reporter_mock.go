package testutil

import (
	"sync"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/diagnostic"
	"github.com/AntonioJCosta/itemalias/internal/core/ports"
)

// RecordingReporter collects every reported diagnostic.
type RecordingReporter struct {
	mu          sync.Mutex
	Diagnostics []diagnostic.Diagnostic
}

// Report records d.
func (r *RecordingReporter) Report(d diagnostic.Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Diagnostics = append(r.Diagnostics, d)
}

// Kinds returns the kinds reported so far, in order.
func (r *RecordingReporter) Kinds() []diagnostic.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]diagnostic.Kind, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		kinds = append(kinds, d.Kind)
	}
	return kinds
}

// Count returns how many diagnostics of kind were reported.
func (r *RecordingReporter) Count(kind diagnostic.Kind) int {
	n := 0
	for _, k := range r.Kinds() {
		if k == kind {
			n++
		}
	}
	return n
}

// Reset forgets everything recorded.
func (r *RecordingReporter) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Diagnostics = nil
}

// Ensure RecordingReporter implements the ports.Reporter interface.
var _ ports.Reporter = (*RecordingReporter)(nil)

package aliasengine

import (
	"github.com/AntonioJCosta/itemalias/internal/core/domain/diagnostic"
	"github.com/AntonioJCosta/itemalias/internal/core/ports"
)

// trackingReporter forwards diagnostics and remembers that one was sent.
type trackingReporter struct {
	next     ports.Reporter
	reported bool
}

func (r *trackingReporter) Report(d diagnostic.Diagnostic) {
	r.reported = true
	r.next.Report(d)
}

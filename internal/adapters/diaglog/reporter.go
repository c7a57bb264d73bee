// Package diaglog forwards diagnostics to a slog.Logger.
package diaglog

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/diagnostic"
	"github.com/AntonioJCosta/itemalias/internal/core/ports"
)

// Reporter implements ports.Reporter by writing one record per diagnostic.
type Reporter struct {
	logger   *slog.Logger
	warnings atomic.Int64
	errors   atomic.Int64
}

// NewReporter returns a reporter writing to logger, or to slog.Default when nil.
func NewReporter(logger *slog.Logger) *Reporter {
	return &Reporter{logger: logger}
}

func (r *Reporter) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

// Report logs d at the level matching its severity.
func (r *Reporter) Report(d diagnostic.Diagnostic) {
	level := slog.LevelInfo
	switch d.Severity {
	case diagnostic.SeverityWarning:
		level = slog.LevelWarn
		r.warnings.Add(1)
	case diagnostic.SeverityError:
		level = slog.LevelError
		r.errors.Add(1)
	}
	attrs := []slog.Attr{slog.String("kind", string(d.Kind))}
	if d.Node != "" {
		attrs = append(attrs, slog.String("node", d.Node))
	}
	r.log().LogAttrs(context.Background(), level, d.Message, attrs...)
}

// Counts returns how many warnings and errors were reported so far.
func (r *Reporter) Counts() (warnings, errors int) {
	return int(r.warnings.Load()), int(r.errors.Load())
}

// Ensure Reporter implements the ports.Reporter interface.
var _ ports.Reporter = (*Reporter)(nil)

// Package metrics defines the minimal instrumentation surface the
// extraction pipeline depends on.
//
// The engine and CLI record counters and duration samples through
// package-level helpers; a process wires a concrete Backend (see
// metrics/datadog) at startup. With no backend set, recording is a no-op,
// so library code never needs nil checks or build tags.
package metrics

import "sync/atomic"

// Labels attach dimensions to a metric observation.
type Labels map[string]string

// Metric names recorded by the extraction pipeline.
const (
	// PagesTotal counts extraction attempts; label "status" is one of
	// "ok", "invalid", "error".
	PagesTotal = "extract_pages_total"

	// VariantsTotal counts emitted variants.
	VariantsTotal = "extract_variants_total"

	// CategoriesTotal counts emitted category ids.
	CategoriesTotal = "extract_categories_total"

	// DurationSeconds samples whole-page extraction durations.
	DurationSeconds = "extract_duration_seconds"
)

// Backend receives metric observations. Implementations must be safe for
// concurrent use.
type Backend interface {
	IncCounter(name string, delta float64, labels Labels)
	ObserveHistogram(name string, value float64, labels Labels)
	Flush() error
}

// nopBackend drops everything.
type nopBackend struct{}

func (nopBackend) IncCounter(string, float64, Labels)       {}
func (nopBackend) ObserveHistogram(string, float64, Labels) {}
func (nopBackend) Flush() error                             { return nil }

// holder wraps the interface so atomic.Value always stores one concrete
// type regardless of the backend implementation.
type holder struct {
	b Backend
}

var current atomic.Value

func init() {
	current.Store(holder{nopBackend{}})
}

// SetBackend installs b as the process-wide backend. Passing nil restores
// the no-op backend.
func SetBackend(b Backend) {
	if b == nil {
		b = nopBackend{}
	}
	current.Store(holder{b})
}

func backend() Backend {
	return current.Load().(holder).b
}

// IncCounter adds delta to a named counter on the active backend.
func IncCounter(name string, delta float64, labels Labels) {
	backend().IncCounter(name, delta, labels)
}

// ObserveHistogram records one sample of a named histogram on the active
// backend.
func ObserveHistogram(name string, value float64, labels Labels) {
	backend().ObserveHistogram(name, value, labels)
}

// Flush flushes the active backend.
func Flush() error {
	return backend().Flush()
}

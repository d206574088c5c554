package diag

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Sink receives diagnostics. Implementations must not panic and must not
// block the caller.
type Sink interface {
	Report(Diagnostic)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Diagnostic)

func (f SinkFunc) Report(d Diagnostic) { f(d) }

type discard struct{}

func (discard) Report(Diagnostic) {}

// Discard drops every diagnostic.
var Discard Sink = discard{}

type multi []Sink

func (m multi) Report(d Diagnostic) {
	for _, s := range m {
		s.Report(d)
	}
}

// Multi fans a diagnostic out to every non-nil sink, in order.
func Multi(sinks ...Sink) Sink {
	var m multi
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	if len(m) == 1 {
		return m[0]
	}
	return m
}

// Recorder keeps every diagnostic it receives. The zero value is ready to use
// and safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	diags []Diagnostic
}

func (r *Recorder) Report(d Diagnostic) {
	r.mu.Lock()
	r.diags = append(r.diags, d)
	r.mu.Unlock()
}

// All returns a copy of the recorded diagnostics in report order.
func (r *Recorder) All() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)
	return out
}

// Count returns the number of recorded diagnostics.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.diags)
}

// CountKind returns the number of recorded diagnostics of kind k.
func (r *Recorder) CountKind(k Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, d := range r.diags {
		if d.Kind == k {
			n++
		}
	}
	return n
}

// ByKind groups counts by kind. Kinds with no diagnostics are omitted.
func (r *Recorder) ByKind() map[Kind]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[Kind]int)
	for _, d := range r.diags {
		out[d.Kind]++
	}
	return out
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.diags = nil
	r.mu.Unlock()
}

// NewLogSink forwards diagnostics to a charmbracelet logger. Warnings are
// logged at warn level and export failures at error level, with the
// diagnostic's fields attached as key/value pairs.
func NewLogSink(l *log.Logger) Sink {
	if l == nil {
		return Discard
	}
	return SinkFunc(func(d Diagnostic) {
		kv := []any{"kind", d.Kind.String()}
		if d.Element != "" {
			kv = append(kv, "element", d.Element)
		}
		if d.Property != "" {
			kv = append(kv, "property", d.Property)
		}
		if d.Value != nil {
			kv = append(kv, "value", d.Value)
		}
		if d.Other != "" {
			kv = append(kv, "other", d.Other)
		}
		if d.Err != nil {
			kv = append(kv, "err", d.Err)
		}
		if d.Severity() == SeverityError {
			l.Error(d.Message(), kv...)
			return
		}
		l.Warn(d.Message(), kv...)
	})
}

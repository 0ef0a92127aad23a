package verbo

import (
	"errors"
	"io"
	"sync/atomic"
)

// ErrInitialized is returned when Init is called after a logger has already
// been installed for this process.
var ErrInitialized = errors.New("verbo: logger already initialized")

// Record is one logging event as delivered to the installed sink. Module is
// a slash-separated path naming the originating component; empty means
// unknown. Line is the source line when positive.
type Record struct {
	Severity Severity
	Module   string
	Line     int
	Message  string
}

// logger is the immutable resolved sink. All fields are frozen at Init;
// concurrent readers need no locking.
type logger struct {
	includeLevel  bool
	includeModule bool
	includeLine   bool
	separator     string
	filters       filterSet
	streams       [numSeverities]Stream
	paint         [numSeverities]paintFunc
	stdout        io.Writer
	stderr        io.Writer

	// ambient is the least restrictive threshold across all directives,
	// letting Enabled answer without a module path.
	ambient Severity
}

// global holds the installed sink. Nil until Init succeeds; never reset.
var global atomic.Pointer[logger]

func install(l *logger) error {
	if !global.CompareAndSwap(nil, l) {
		return ErrInitialized
	}
	return nil
}

// log filters, renders, routes, and writes one record. Records above the
// module's threshold are dropped silently; so are write failures, since
// logging must never take down the caller.
func (l *logger) log(r Record) {
	if !r.Severity.valid() {
		return
	}
	if r.Severity > l.filters.threshold(r.Module) {
		return
	}
	line := l.render(r)
	w := l.stderr
	if l.streams[r.Severity] == Stdout {
		w = l.stdout
	}
	_, _ = w.Write([]byte(line))
}

func (l *logger) enabled(s Severity) bool {
	return s.valid() && s <= l.ambient
}

func (l *logger) enabledFor(s Severity, module string) bool {
	return s.valid() && s <= l.filters.threshold(module)
}

// Log delivers a record to the installed sink. Before Init it does nothing.
func Log(r Record) {
	if l := global.Load(); l != nil {
		l.log(r)
	}
}

// Enabled reports whether any module could emit at severity s. It is the
// cheap pre-filter for call sites that want to skip building a record.
func Enabled(s Severity) bool {
	l := global.Load()
	return l != nil && l.enabled(s)
}

// EnabledFor reports whether the given module passes the filter at severity
// s, honoring per-module directives.
func EnabledFor(s Severity, module string) bool {
	l := global.Load()
	return l != nil && l.enabledFor(s, module)
}

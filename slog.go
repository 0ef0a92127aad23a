package verbo

import (
	"context"
	"log/slog"
	"runtime"
	"slices"
	"strings"
)

// Handler adapts the installed sink to log/slog, so programs already
// standardized on slog route their records through the same filtering,
// formatting, and stream routing:
//
//	slog.SetDefault(slog.New(verbo.NewHandler()))
//
// Attributes are folded into the message text as "key=value" pairs; the sink
// itself stays unstructured. slog levels map onto severities by range, with
// anything below slog.LevelDebug treated as Trace.
type Handler struct {
	attrText string
	groups   []string
}

// NewHandler returns a Handler that forwards to the installed sink. Records
// handled before Init are discarded.
func NewHandler() *Handler {
	return &Handler{}
}

// Enabled consults the sink's ambient threshold, so disabled slog calls are
// dropped before the record is built.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return Enabled(severityFromSlog(level))
}

// Handle renders the record's attributes into the message and delivers it.
func (h *Handler) Handle(_ context.Context, rec slog.Record) error {
	module, line := sourceForPC(rec.PC)
	var b strings.Builder
	b.WriteString(rec.Message)
	b.WriteString(h.attrText)
	rec.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.groups, a)
		return true
	})
	Log(Record{
		Severity: severityFromSlog(rec.Level),
		Module:   module,
		Line:     line,
		Message:  b.String(),
	})
	return nil
}

// WithAttrs pre-renders the attributes so repeated handles pay the
// formatting cost once.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	var b strings.Builder
	b.WriteString(h.attrText)
	for _, a := range attrs {
		appendAttr(&b, h.groups, a)
	}
	h2.attrText = b.String()
	return &h2
}

// WithGroup qualifies subsequent attribute keys with the group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	h2 := *h
	if name != "" {
		h2.groups = append(slices.Clone(h.groups), name)
	}
	return &h2
}

func appendAttr(b *strings.Builder, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		g := groups
		if a.Key != "" {
			g = append(slices.Clone(groups), a.Key)
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, g, ga)
		}
		return
	}
	if a.Equal(slog.Attr{}) {
		return
	}
	b.WriteByte(' ')
	for _, g := range groups {
		b.WriteString(g)
		b.WriteByte('.')
	}
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

func severityFromSlog(level slog.Level) Severity {
	switch {
	case level >= slog.LevelError:
		return SeverityError
	case level >= slog.LevelWarn:
		return SeverityWarn
	case level >= slog.LevelInfo:
		return SeverityInfo
	case level >= slog.LevelDebug:
		return SeverityDebug
	default:
		return SeverityTrace
	}
}

// sourceForPC resolves the module path and line for a slog record's program
// counter. A zero pc yields no source information.
func sourceForPC(pc uintptr) (string, int) {
	if pc == 0 {
		return "", 0
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.Function == "" {
		return "", frame.Line
	}
	return moduleForFunc(frame.Function), frame.Line
}

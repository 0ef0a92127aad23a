package verbo

import (
	"fmt"
	"runtime"
	"strings"
)

// The package-level logging functions derive the record's module path and
// line number from the caller. The module path is the caller's package
// import path, so filter directives written against import paths apply
// directly. Before Init all of them do nothing.

// Error logs at SeverityError. Arguments are handled as in fmt.Sprint.
func Error(args ...any) { logPrint(SeverityError, args) }

// Errorf logs at SeverityError. Arguments are handled as in fmt.Sprintf.
func Errorf(format string, args ...any) { logFormat(SeverityError, format, args) }

// Warn logs at SeverityWarn.
func Warn(args ...any) { logPrint(SeverityWarn, args) }

// Warnf logs at SeverityWarn with fmt.Sprintf formatting.
func Warnf(format string, args ...any) { logFormat(SeverityWarn, format, args) }

// Info logs at SeverityInfo.
func Info(args ...any) { logPrint(SeverityInfo, args) }

// Infof logs at SeverityInfo with fmt.Sprintf formatting.
func Infof(format string, args ...any) { logFormat(SeverityInfo, format, args) }

// Debug logs at SeverityDebug.
func Debug(args ...any) { logPrint(SeverityDebug, args) }

// Debugf logs at SeverityDebug with fmt.Sprintf formatting.
func Debugf(format string, args ...any) { logFormat(SeverityDebug, format, args) }

// Trace logs at SeverityTrace.
func Trace(args ...any) { logPrint(SeverityTrace, args) }

// Tracef logs at SeverityTrace with fmt.Sprintf formatting.
func Tracef(format string, args ...any) { logFormat(SeverityTrace, format, args) }

func logPrint(s Severity, args []any) {
	l := global.Load()
	if l == nil || s > l.ambient {
		return
	}
	module, line := callerSource(3)
	if !l.enabledFor(s, module) {
		return
	}
	l.log(Record{Severity: s, Module: module, Line: line, Message: fmt.Sprint(args...)})
}

func logFormat(s Severity, format string, args []any) {
	l := global.Load()
	if l == nil || s > l.ambient {
		return
	}
	module, line := callerSource(3)
	if !l.enabledFor(s, module) {
		return
	}
	l.log(Record{Severity: s, Module: module, Line: line, Message: fmt.Sprintf(format, args...)})
}

// Logger is a handle bound to a fixed module path. It skips runtime package
// derivation on every call, which also makes it the right tool when the
// logging happens in a helper far from the component it reports for.
type Logger struct {
	module string
}

// Module returns a handle that logs with the given module path.
func Module(module string) Logger {
	return Logger{module: module}
}

// Path returns the module path the handle is bound to.
func (lg Logger) Path() string { return lg.module }

// Enabled reports whether this module passes the filter at severity s.
func (lg Logger) Enabled(s Severity) bool {
	return EnabledFor(s, lg.module)
}

// Error logs at SeverityError under the handle's module path.
func (lg Logger) Error(args ...any) { lg.print(SeverityError, args) }

// Errorf logs at SeverityError with fmt.Sprintf formatting.
func (lg Logger) Errorf(format string, args ...any) { lg.printf(SeverityError, format, args) }

// Warn logs at SeverityWarn under the handle's module path.
func (lg Logger) Warn(args ...any) { lg.print(SeverityWarn, args) }

// Warnf logs at SeverityWarn with fmt.Sprintf formatting.
func (lg Logger) Warnf(format string, args ...any) { lg.printf(SeverityWarn, format, args) }

// Info logs at SeverityInfo under the handle's module path.
func (lg Logger) Info(args ...any) { lg.print(SeverityInfo, args) }

// Infof logs at SeverityInfo with fmt.Sprintf formatting.
func (lg Logger) Infof(format string, args ...any) { lg.printf(SeverityInfo, format, args) }

// Debug logs at SeverityDebug under the handle's module path.
func (lg Logger) Debug(args ...any) { lg.print(SeverityDebug, args) }

// Debugf logs at SeverityDebug with fmt.Sprintf formatting.
func (lg Logger) Debugf(format string, args ...any) { lg.printf(SeverityDebug, format, args) }

// Trace logs at SeverityTrace under the handle's module path.
func (lg Logger) Trace(args ...any) { lg.print(SeverityTrace, args) }

// Tracef logs at SeverityTrace with fmt.Sprintf formatting.
func (lg Logger) Tracef(format string, args ...any) { lg.printf(SeverityTrace, format, args) }

func (lg Logger) print(s Severity, args []any) {
	l := global.Load()
	if l == nil || !l.enabledFor(s, lg.module) {
		return
	}
	l.log(Record{Severity: s, Module: lg.module, Line: callerLine(3), Message: fmt.Sprint(args...)})
}

func (lg Logger) printf(s Severity, format string, args []any) {
	l := global.Load()
	if l == nil || !l.enabledFor(s, lg.module) {
		return
	}
	l.log(Record{Severity: s, Module: lg.module, Line: callerLine(3), Message: fmt.Sprintf(format, args...)})
}

// callerSource resolves the package import path and line number of the
// caller skip frames up the stack.
func callerSource(skip int) (module string, line int) {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return "", 0
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "", line
	}
	return moduleForFunc(fn.Name()), line
}

func callerLine(skip int) int {
	_, _, line, ok := runtime.Caller(skip)
	if !ok {
		return 0
	}
	return line
}

// moduleForFunc trims a runtime function name like
// "github.com/acme/tool/store.(*Server).Start" to the package import path
// "github.com/acme/tool/store".
func moduleForFunc(name string) string {
	slash := strings.LastIndexByte(name, '/')
	if dot := strings.IndexByte(name[slash+1:], '.'); dot >= 0 {
		return name[:slash+1+dot]
	}
	return name
}

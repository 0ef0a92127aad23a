// Package verbo is a colorized, leveled logging front end for command-line
// tools. It turns discrete logging events into formatted lines on stdout or
// stderr, with the effective severity threshold controlled at run time by a
// verbosity count (typically repeated -v flags), an explicit maximum level,
// or per-module filter directives.
//
// A logger is configured through a chainable Builder and installed exactly
// once per process:
//
//	err := verbo.New().
//		Level(true).
//		LineNumbers(true).
//		Verbosity(2).
//		Init()
//
// After Init, the package-level functions and per-module handles write
// through the installed sink:
//
//	verbo.Infof("listening on %s", addr)
//	verbo.Module("server/http").Debug("connection accepted")
//
// # Severities and thresholds
//
// Five severities are ordered by verbosity: Error < Warn < Info < Debug <
// Trace. A record passes when its severity is at or below the effective
// threshold for its module. The threshold is resolved once, at Init, from
// three inputs in decreasing precedence: an explicit MaxLevel override, a
// Verbosity count added on top of the ambient baseline, and the baseline
// itself. The baseline comes from filter directives, including any read from
// the VERBO_LOG environment variable.
//
// # Filter directives
//
// Directives are comma-separated "module=level" pairs, or a bare "level"
// that sets the default threshold. Module prefixes match on path-segment
// boundaries and the longest matching prefix wins:
//
//	verbo.New().Filter("warn,server=debug,server/http=trace").Init()
//
// Malformed directives are skipped; configuration never fails on them.
//
// # Output
//
// Each severity routes to a fixed stream (by default Error and Warn to
// stderr, the rest to stdout) and carries a color applied to the line's tag,
// never to the message. Colors engage only when both streams are interactive
// terminals and the environment does not opt out via NO_COLOR.
//
// Records from log/slog flow through the same sink via Handler.
package verbo

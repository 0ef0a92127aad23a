package verbo

import (
	"fmt"
	"strings"
)

// Severity is the level of a log record, ordered by verbosity rank: Error is
// the least verbose, Trace the most. Comparisons between severities compare
// ranks, so SeverityError < SeverityTrace.
type Severity int8

const (
	// SeverityError marks failures the program cannot recover from silently.
	SeverityError Severity = iota
	// SeverityWarn marks recoverable problems worth surfacing.
	SeverityWarn
	// SeverityInfo marks normal operational messages.
	SeverityInfo
	// SeverityDebug marks diagnostic detail for troubleshooting.
	SeverityDebug
	// SeverityTrace marks the most granular diagnostic output.
	SeverityTrace

	numSeverities = int(SeverityTrace) + 1
)

// SeverityOff disables all output when used as a threshold. It is never
// carried by a record.
const SeverityOff Severity = -1

// Severities returns the five record severities in rank order, from
// SeverityError to SeverityTrace.
func Severities() []Severity {
	return []Severity{SeverityError, SeverityWarn, SeverityInfo, SeverityDebug, SeverityTrace}
}

// String returns the upper-case level text used in rendered tags.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarn:
		return "WARN"
	case SeverityInfo:
		return "INFO"
	case SeverityDebug:
		return "DEBUG"
	case SeverityTrace:
		return "TRACE"
	case SeverityOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// valid reports whether s is one of the five record severities.
func (s Severity) valid() bool {
	return s >= SeverityError && s <= SeverityTrace
}

// ParseSeverity converts a case-insensitive level name (error, warn, info,
// debug, trace) into a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(name) {
	case "error":
		return SeverityError, nil
	case "warn":
		return SeverityWarn, nil
	case "info":
		return SeverityInfo, nil
	case "debug":
		return SeverityDebug, nil
	case "trace":
		return SeverityTrace, nil
	default:
		return SeverityOff, fmt.Errorf("unknown severity %q", name)
	}
}

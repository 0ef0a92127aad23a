package verbo

// defaultOffset is the verbosity offset applied when no ambient baseline
// exists, putting count 0 at Warn so errors and warnings always show.
const defaultOffset = 1

// resolveThreshold combines the ambient baseline, an optional verbosity
// count, and an optional explicit override into the effective global
// threshold.
//
// An explicit override wins outright. Otherwise the verbosity count shifts
// the baseline toward more output: each step moves one severity rank, so -v
// always means "one level more verbose than wherever the environment
// started". With no baseline at all, count 0 selects Warn. The result is
// clamped at Trace.
func resolveThreshold(baseline Severity, verbosity int, haveVerbosity bool, explicit Severity, haveExplicit bool) Severity {
	if haveExplicit {
		return explicit
	}
	if !haveVerbosity {
		return baseline
	}
	if verbosity < 0 {
		verbosity = 0
	}
	offset := defaultOffset
	if baseline != SeverityOff {
		offset = int(baseline)
	}
	rank := verbosity + offset
	if rank > int(SeverityTrace) {
		rank = int(SeverityTrace)
	}
	return Severity(rank)
}

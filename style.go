package verbo

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Stream selects the destination of a rendered record.
type Stream int8

const (
	// Stderr routes records to the standard error stream.
	Stderr Stream = iota
	// Stdout routes records to the standard output stream.
	Stdout
)

// String returns the lower-case stream name.
func (s Stream) String() string {
	if s == Stdout {
		return "stdout"
	}
	return "stderr"
}

// ParseStream converts a case-insensitive stream name into a Stream.
func ParseStream(name string) (Stream, error) {
	switch strings.ToLower(name) {
	case "stderr":
		return Stderr, nil
	case "stdout":
		return Stdout, nil
	default:
		return Stderr, fmt.Errorf("unknown stream %q", name)
	}
}

// levelStyle is the per-severity output appearance: which stream the record
// goes to and which color paints its tag. Colors are ANSI-256 indexes or
// "#rrggbb" hex values, resolved through termenv at Init.
type levelStyle struct {
	stream Stream
	color  string
}

func defaultStyles() [numSeverities]levelStyle {
	return [numSeverities]levelStyle{
		SeverityError: {stream: Stderr, color: "9"},
		SeverityWarn:  {stream: Stderr, color: "11"},
		SeverityInfo:  {stream: Stdout, color: "10"},
		SeverityDebug: {stream: Stdout, color: "7"},
		SeverityTrace: {stream: Stdout, color: "8"},
	}
}

// paintFunc wraps a tag in the escape sequences for one severity's color.
type paintFunc func(string) string

// paintFuncs resolves the configured colors against a termenv profile. When
// forced, the ANSI-256 profile is used regardless of what the environment
// reports, so escape sequences are emitted even without a terminal.
func paintFuncs(styles [numSeverities]levelStyle, forced bool) [numSeverities]paintFunc {
	profile := termenv.ColorProfile()
	if forced {
		profile = termenv.ANSI256
	}
	var paint [numSeverities]paintFunc
	for i := range paint {
		color := profile.Color(styles[i].color)
		paint[i] = func(tag string) string {
			return profile.String(tag).Foreground(color).String()
		}
	}
	return paint
}

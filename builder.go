package verbo

import (
	"io"
	"os"

	"github.com/verbolabs/verbo/internal/term"
)

// EnvFilter names the environment variable New consults for baseline filter
// directives, using the same syntax as Filter.
const EnvFilter = "VERBO_LOG"

const defaultSeparator = ": "

// Builder accumulates logger configuration. Every setter returns the same
// Builder so calls chain; Init consumes the accumulated state and installs
// the process-wide sink. A Builder is not safe for concurrent use and has no
// effect on an already installed logger.
type Builder struct {
	includeLevel  bool
	includeModule bool
	includeLine   bool
	separator     string
	colors        bool
	forceColors   bool
	verbosity     int
	haveVerbosity bool
	explicit      Severity
	haveExplicit  bool
	filters       filterSet
	styles        [numSeverities]levelStyle
	stdout        io.Writer
	stderr        io.Writer
}

// New returns a Builder with the defaults: module path shown, level text and
// line numbers hidden, separator ": ", directives read from VERBO_LOG, and
// colors on only when both destination streams are interactive terminals and
// the environment does not opt out.
func New() *Builder {
	b := &Builder{
		includeModule: true,
		separator:     defaultSeparator,
		filters:       filterSet{def: SeverityOff},
		styles:        defaultStyles(),
		stdout:        os.Stdout,
		stderr:        os.Stderr,
	}
	b.colors = b.terminalColors()
	if spec := os.Getenv(EnvFilter); spec != "" {
		dirs, _ := parseDirectives(spec)
		b.filters.merge(dirs)
	}
	return b
}

// Separator sets the string between a record's tag and its message. It is
// forced to empty at Init when no tag field is enabled.
func (b *Builder) Separator(sep string) *Builder {
	b.separator = sep
	return b
}

// Level controls whether the tag carries the upper-case level text.
func (b *Builder) Level(include bool) *Builder {
	b.includeLevel = include
	return b
}

// LineNumbers controls whether the tag carries the record's source line.
func (b *Builder) LineNumbers(include bool) *Builder {
	b.includeLine = include
	return b
}

// ModulePath controls whether the tag carries the record's module path.
func (b *Builder) ModulePath(include bool) *Builder {
	b.includeModule = include
	return b
}

// NoModulePath removes the module path from the tag.
func (b *Builder) NoModulePath() *Builder {
	return b.ModulePath(false)
}

// Colors requests colorized tags. The request is gated at call time: colors
// stay off unless both destination streams are interactive terminals and the
// environment does not opt out via NO_COLOR.
func (b *Builder) Colors(enabled bool) *Builder {
	b.forceColors = false
	b.colors = enabled && b.terminalColors()
	return b
}

// NoColors disables colorized tags.
func (b *Builder) NoColors() *Builder {
	b.colors = false
	b.forceColors = false
	return b
}

// ForceColors enables colorized tags unconditionally, bypassing terminal
// detection. Intended for tests and for piping into pagers that render ANSI
// sequences.
func (b *Builder) ForceColors() *Builder {
	b.colors = true
	b.forceColors = true
	return b
}

// Color sets the tag color for one severity: an ANSI-256 index ("9") or a
// hex value ("#ff5f5f"). Invalid severities are ignored.
func (b *Builder) Color(s Severity, color string) *Builder {
	if s.valid() {
		b.styles[s].color = color
	}
	return b
}

// Output sets the destination stream for one severity. Invalid severities
// are ignored.
func (b *Builder) Output(s Severity, stream Stream) *Builder {
	if s.valid() {
		b.styles[s].stream = stream
	}
	return b
}

// Verbosity sets the verbosity count, typically the number of repeated -v
// flags. Each step enables one more severity rank on top of the ambient
// baseline; see Init. An explicit MaxLevel always wins over the count.
func (b *Builder) Verbosity(count int) *Builder {
	b.verbosity = count
	b.haveVerbosity = true
	return b
}

// MaxLevel sets an explicit global threshold, overriding any verbosity
// count regardless of call order. Invalid severities are ignored.
func (b *Builder) MaxLevel(s Severity) *Builder {
	if !s.valid() {
		return b
	}
	b.explicit = s
	b.haveExplicit = true
	b.haveVerbosity = false
	return b
}

// Filter merges comma-separated "module=level" directives into the set. A
// bare "level" sets the default threshold. Malformed tokens are skipped.
func (b *Builder) Filter(directives string) *Builder {
	dirs, _ := parseDirectives(directives)
	b.filters.merge(dirs)
	return b
}

// Writers replaces the destination streams. Nil arguments keep the current
// writer. Terminal detection for Colors applies to the writers configured at
// the time Colors is called.
func (b *Builder) Writers(stdout, stderr io.Writer) *Builder {
	if stdout != nil {
		b.stdout = stdout
	}
	if stderr != nil {
		b.stderr = stderr
	}
	return b
}

func (b *Builder) terminalColors() bool {
	return term.IsTerminal(b.stdout) && term.IsTerminal(b.stderr) && !term.NoColorRequested()
}

// Init resolves the configuration and installs the immutable sink as the
// process's logging destination. The global threshold becomes the filter
// set's new default; per-module directives keep precedence for their own
// subtrees. Init returns ErrInitialized if a sink is already installed.
func (b *Builder) Init() error {
	separator := b.separator
	if !b.includeLevel && !b.includeModule && !b.includeLine {
		separator = ""
	}
	filters := b.filters.clone()
	baseline := filters.maxThreshold()
	filters.def = resolveThreshold(baseline, b.verbosity, b.haveVerbosity, b.explicit, b.haveExplicit)

	l := &logger{
		includeLevel:  b.includeLevel,
		includeModule: b.includeModule,
		includeLine:   b.includeLine,
		separator:     separator,
		filters:       filters,
		stdout:        b.stdout,
		stderr:        b.stderr,
		ambient:       filters.maxThreshold(),
	}
	for i, style := range b.styles {
		l.streams[i] = style.stream
	}
	if b.colors {
		l.paint = paintFuncs(b.styles, b.forceColors)
	}
	return install(l)
}

// InitWithVerbosity installs a logger with the given verbosity count and the
// remaining defaults. Count 0 emits warnings and errors when no ambient
// directives raise the baseline.
func InitWithVerbosity(count int) error {
	return New().Verbosity(count).Init()
}

// InitWithLevel installs a logger with an explicit global threshold and the
// remaining defaults.
func InitWithLevel(s Severity) error {
	return New().MaxLevel(s).Init()
}

// InitQuiet installs a logger that emits warnings and errors only.
func InitQuiet() error {
	return New().MaxLevel(SeverityWarn).Init()
}

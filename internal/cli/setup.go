package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verbolabs/verbo"
	"github.com/verbolabs/verbo/profile"
)

// defaultVerbosity puts the threshold at info when neither flags, profile,
// nor environment say otherwise, so piped lines at the default severity pass
// the filter.
const defaultVerbosity = 1

// loadProfile returns the profile for this invocation: the --profile path if
// given, otherwise the nearest verbo.toml walking up from the working
// directory. A nil profile with a nil error means none was found. Unknown
// keys are reported as warnings on the command's error stream.
func loadProfile(cmd *cobra.Command) (*profile.Profile, error) {
	path := flagProfile
	if path == "" {
		found, err := profile.Find(".")
		if err != nil {
			return nil, err
		}
		if found == "" {
			return nil, nil
		}
		path = found
	}

	p, warnings, err := profile.Load(path)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// newBuilder assembles a Builder from the profile and the command-line
// flags. Flags win over profile settings; the profile wins over defaults.
func newBuilder(cmd *cobra.Command) (*verbo.Builder, error) {
	b := verbo.New().Writers(cmd.OutOrStdout(), cmd.ErrOrStderr())

	prof, err := loadProfile(cmd)
	if err != nil {
		return nil, err
	}
	if prof != nil {
		p := *prof
		// Threshold flags beat the profile's level and verbosity. Clearing
		// them on a copy keeps an explicit profile level from outranking a
		// -v count, since an explicit threshold always wins at Init.
		if flagQuiet || flagMaxLevel != "" || flagVerbose > 0 {
			p.Logging.Level = ""
			p.Logging.Verbosity = nil
		}
		if err := p.Apply(b); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("separator") {
		b.Separator(flagSeparator)
	}
	if flagShowLevel {
		b.Level(true)
	}
	if flagLineNumbers {
		b.LineNumbers(true)
	}
	if flagNoModulePath {
		b.NoModulePath()
	}
	if flagFilter != "" {
		b.Filter(flagFilter)
	}
	if flagNoColor {
		b.NoColors()
	}
	if flagForceColor {
		b.ForceColors()
	}

	switch {
	case flagQuiet:
		b.MaxLevel(verbo.SeverityError)
	case flagMaxLevel != "":
		s, err := verbo.ParseSeverity(flagMaxLevel)
		if err != nil {
			return nil, err
		}
		b.MaxLevel(s)
	case flagVerbose > 0:
		b.Verbosity(defaultVerbosity + flagVerbose)
	case profileSetsThreshold(prof):
		// The profile's level or verbosity stands.
	case os.Getenv(verbo.EnvFilter) == "":
		b.Verbosity(defaultVerbosity)
	}
	return b, nil
}

func profileSetsThreshold(p *profile.Profile) bool {
	return p != nil && (p.Logging.Level != "" || p.Logging.Verbosity != nil)
}

// initLogger installs the process logger from the resolved builder. Called
// once per invocation by the commands that emit records.
func initLogger(cmd *cobra.Command) error {
	b, err := newBuilder(cmd)
	if err != nil {
		return err
	}
	return b.Init()
}

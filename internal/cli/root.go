package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/verbolabs/verbo"
	"github.com/verbolabs/verbo/internal/term"
)

// Global flag values accessible to all subcommands.
var (
	flagVerbose      int
	flagQuiet        bool
	flagMaxLevel     string
	flagShowLevel    bool
	flagLineNumbers  bool
	flagNoModulePath bool
	flagSeparator    string
	flagFilter       string
	flagNoColor      bool
	flagForceColor   bool
	flagProfile      string

	// Root-only flags for the pipe mode.
	flagSeverity string
	flagModule   string
)

// rootCmd is the base command for verbo.
var rootCmd = &cobra.Command{
	Use:   "verbo",
	Short: "Severity-aware log line router",
	Long: `Verbo reads lines from standard input and replays them through its
severity-filtered logger -- tagging each line with a severity and a module
path, dropping what falls below the active thresholds, and routing errors
and warnings to stderr while everything else goes to stdout.

Thresholds come from repeated -v flags, --max-level, VERBO_LOG directives,
or a verbo.toml profile. Per-module directives such as 'server/http=trace'
refine the global threshold for matching module subtrees.`,
	Example: `  # Tag a build log and show severity names
  make 2>&1 | verbo --show-level

  # Route lines as debug records under a module path
  tail -f app.log | verbo -v --severity debug --module server/http

  # Errors only, regardless of environment
  verbo -q < app.log`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipe(cmd)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Check env for flags not explicitly set on the command line.
		if !cmd.Flags().Changed("no-color") && os.Getenv("NO_COLOR") != "" {
			flagNoColor = true
		}

		// Handle --no-color: disable styled command output.
		if flagNoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flagVerbose, "verbose", "v", "Increase verbosity; repeat for more detail (-vv)")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Log errors only")
	pf.StringVar(&flagMaxLevel, "max-level", "", "Log at or above this severity (error|warn|info|debug|trace)")
	pf.BoolVarP(&flagShowLevel, "show-level", "l", false, "Prefix records with the severity name")
	pf.BoolVarP(&flagLineNumbers, "line-numbers", "n", false, "Include source line numbers in record tags")
	pf.BoolVar(&flagNoModulePath, "no-module-path", false, "Omit the module path from record tags")
	pf.StringVar(&flagSeparator, "separator", ": ", "String between a record's tag and its message")
	pf.StringVarP(&flagFilter, "filter", "f", "", "Per-module thresholds, e.g. 'warn,server/http=trace'")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output (env: NO_COLOR)")
	pf.BoolVar(&flagForceColor, "force-color", false, "Colorize even when not writing to a terminal")
	pf.StringVar(&flagProfile, "profile", "", "Path to a verbo.toml profile (default: search upward from the working directory)")

	rootCmd.Flags().StringVarP(&flagSeverity, "severity", "s", "info", "Severity assigned to piped lines")
	rootCmd.Flags().StringVarP(&flagModule, "module", "m", "stdin", "Module path assigned to piped lines")
}

// runPipe replays standard input through the logger line by line. With a
// terminal on stdin there is nothing to route, so it prints help instead.
func runPipe(cmd *cobra.Command) error {
	sev, err := verbo.ParseSeverity(flagSeverity)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(f) {
		return cmd.Help()
	}

	if err := initLogger(cmd); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		verbo.Log(verbo.Record{Severity: sev, Module: flagModule, Message: sc.Text()})
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return nil
}

// Execute runs the root command and returns the exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// NewRootCmd returns a new instance of the root command for use in external
// tools such as the shell completion generator and man page generator. It
// initialises a fresh cobra command tree with the same flags and
// PersistentPreRunE as the global rootCmd so that generated docs and
// completions include all flags.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               rootCmd.Use,
		Short:             rootCmd.Short,
		Long:              rootCmd.Long,
		Example:           rootCmd.Example,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rootCmd.PersistentPreRunE,
	}

	// Register the same flags that the global rootCmd carries. These use
	// local storage (not the package-level flags) so the exported command is
	// safe for concurrent use by generators.
	pf := cmd.PersistentFlags()
	pf.CountP("verbose", "v", "Increase verbosity; repeat for more detail (-vv)")
	pf.BoolP("quiet", "q", false, "Log errors only")
	pf.String("max-level", "", "Log at or above this severity (error|warn|info|debug|trace)")
	pf.BoolP("show-level", "l", false, "Prefix records with the severity name")
	pf.BoolP("line-numbers", "n", false, "Include source line numbers in record tags")
	pf.Bool("no-module-path", false, "Omit the module path from record tags")
	pf.String("separator", ": ", "String between a record's tag and its message")
	pf.StringP("filter", "f", "", "Per-module thresholds, e.g. 'warn,server/http=trace'")
	pf.Bool("no-color", false, "Disable colored output (env: NO_COLOR)")
	pf.Bool("force-color", false, "Colorize even when not writing to a terminal")
	pf.String("profile", "", "Path to a verbo.toml profile (default: search upward from the working directory)")

	cmd.Flags().StringP("severity", "s", "info", "Severity assigned to piped lines")
	cmd.Flags().StringP("module", "m", "stdin", "Module path assigned to piped lines")

	// Attach all registered subcommands from the global tree.
	for _, child := range rootCmd.Commands() {
		cmd.AddCommand(child)
	}
	return cmd
}

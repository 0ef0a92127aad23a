package cli

import (
	"github.com/spf13/cobra"

	"github.com/verbolabs/verbo"
)

// demoCmd emits one record per severity so the effect of the active flags,
// directives, and profile can be inspected at a glance.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Emit one sample record per severity",
	Long: `Emit a sample record at every severity through the configured logger,
showing which records the active thresholds let through and how the tag,
separator, and colors render.`,
	Example: `  # Default threshold (info): error, warn, and info get through
  verbo demo --show-level

  # Everything, with line numbers
  verbo demo -vv --show-level --line-numbers`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command) error {
	if err := initLogger(cmd); err != nil {
		return err
	}

	verbo.Errorf("cannot reach %s: connection refused", "db-0.internal:5432")
	verbo.Warnf("retrying in %s (attempt %d of %d)", "2s", 2, 5)
	verbo.Infof("listening on %s", ":8080")
	verbo.Debugf("routing table rebuilt in %dms", 12)
	verbo.Tracef("frame %#04x accepted", 0x2a)
	return nil
}

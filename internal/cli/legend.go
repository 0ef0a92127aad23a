package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/verbolabs/verbo"
	"github.com/verbolabs/verbo/profile"
)

// legendRow is one severity's display entry: its tag color and destination
// stream, after any profile overrides.
type legendRow struct {
	severity verbo.Severity
	color    string
	stream   verbo.Stream
}

// defaultLegend mirrors the logger's built-in per-severity styles.
func defaultLegend() []legendRow {
	return []legendRow{
		{verbo.SeverityError, "9", verbo.Stderr},
		{verbo.SeverityWarn, "11", verbo.Stderr},
		{verbo.SeverityInfo, "10", verbo.Stdout},
		{verbo.SeverityDebug, "7", verbo.Stdout},
		{verbo.SeverityTrace, "8", verbo.Stdout},
	}
}

var legendCmd = &cobra.Command{
	Use:   "legend",
	Short: "Show the severity table with colors and streams",
	Long: `Display every severity with its rank, tag color, and destination
stream, including any overrides from the active profile.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLegend(cmd)
	},
}

func init() {
	rootCmd.AddCommand(legendCmd)
}

func runLegend(cmd *cobra.Command) error {
	rows := defaultLegend()

	prof, err := loadProfile(cmd)
	if err != nil {
		return err
	}
	if prof != nil {
		if err := applyLegendOverrides(rows, prof); err != nil {
			return err
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), renderLegend(rows))
	return nil
}

// applyLegendOverrides folds the profile's [logging.levels.*] entries into
// the default rows.
func applyLegendOverrides(rows []legendRow, prof *profile.Profile) error {
	for name, o := range prof.Logging.Levels {
		s, err := verbo.ParseSeverity(name)
		if err != nil {
			return err
		}
		for i := range rows {
			if rows[i].severity != s {
				continue
			}
			if o.Color != "" {
				rows[i].color = o.Color
			}
			if o.Stream != "" {
				stream, err := verbo.ParseStream(o.Stream)
				if err != nil {
					return err
				}
				rows[i].stream = stream
			}
		}
	}
	return nil
}

// renderLegend returns the severity table, one row per severity:
//
//	Severity legend
//	===============
//	0  ERROR   stderr  color 9
func renderLegend(rows []legendRow) string {
	headerStyle := lipgloss.NewStyle().Bold(true)

	title := "Severity legend"
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", len(title)))
	sb.WriteString("\n")

	for _, row := range rows {
		nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(row.color))
		name := nameStyle.Render(fmt.Sprintf("%-6s", row.severity.String()))
		sb.WriteString(fmt.Sprintf("%d  %s  %-6s  color %s", int(row.severity), name, row.stream, row.color))
		sb.WriteString("\n")
	}
	return sb.String()
}

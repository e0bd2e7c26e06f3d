package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fixtkit.dev/pkg/fixtkit/internal/domain"
	m "fixtkit.dev/pkg/fixtkit/internal/model"
)

const fixturesLongDescription = `List the fake secret fixtures a secret scanner's test suite feeds itself.

The values only imitate real key formats (AWS, GitHub, Stripe and generic
API keys). Use "export" to write them as YAML and "check" to detect drift
between such a file and the built-in set.`

// fixturesCmd represents the fixtures command.
var fixturesCmd = newFixturesCmd()

func newFixturesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "List, export or check the fake secret fixtures",
		Long:  fixturesLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.ShowFixtures(cmd.Context())
		},
	}

	cmd.AddCommand(newFixturesExportCmd(), newFixturesCheckCmd())

	return cmd
}

func newFixturesExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Write the fixtures to a YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.ExportFixtures(cmd.Context(), domain.ExportArgs{Path: fixturesPath(args)})
		},
	}
}

func newFixturesCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [path]",
		Short: "Compare a YAML fixture file with the built-in fixtures",
		Long:  "Compare a YAML fixture file with the built-in fixtures. Exits non-zero and prints a unified diff on drift.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.CheckFixtures(cmd.Context(), domain.CheckArgs{Path: fixturesPath(args)})
		},
	}
}

func fixturesPath(args []string) m.Path {
	if len(args) > 0 {
		return m.Path(args[0])
	}

	return m.Path(viper.GetString(fixturesPathConfigKey))
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
}

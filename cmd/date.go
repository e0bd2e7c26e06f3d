package cmd

import (
	"github.com/spf13/cobra"

	"fixtkit.dev/pkg/fixtkit/internal/domain"
)

const dateLongDescription = `Format timestamps as UTC calendar dates (YYYY-MM-DD).

Accepted values:
  - RFC 3339 timestamps          2024-03-15T10:30:00Z
  - timestamps without offset    2024-03-15T10:30:00 (read as UTC)
  - dates                        2024-03-15
  - Unix milliseconds            1710498600000

With no values, today's date is printed.`

// dateCmd represents the date command.
var dateCmd = newDateCmd()

func newDateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "date [values...]",
		Short: "Format timestamps as YYYY-MM-DD",
		Long:  dateLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Dates(cmd.Context(), domain.DatesArgs{Values: args})
		},
	}
}

func init() {
	rootCmd.AddCommand(dateCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

// constantsCmd represents the constants command.
var constantsCmd = newConstantsCmd()

func newConstantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Show the constants bag",
		Long:  "Show MAX_RETRIES, TIMEOUT_MS, API_VERSION and REQUEST_ID. The values are fixed at build time.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.ShowConstants(cmd.Context())
		},
	}
}

func init() {
	rootCmd.AddCommand(constantsCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fixtkit.dev/pkg/fixtkit/internal/domain"
)

const hashLongDescription = `Hash each input.

The default "stub" mode prints the fixed placeholder digest (the SHA-256 of
empty input) whatever the input is. Use --mode sha256 for a real digest.`

var hashModeFlag string
var hashFileFlag bool
var hashParallelFlag int

// hashCmd represents the hash command.
var hashCmd = newHashCmd()

func newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [inputs...]",
		Short: "Print placeholder or SHA-256 digests",
		Long:  hashLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := domain.ParseHashMode(viper.GetString(hashModeConfigKey))
			if err != nil {
				return err
			}

			return workflow.Hash(cmd.Context(), domain.HashArgs{
				Inputs:    args,
				Mode:      mode,
				FromFiles: hashFileFlag,
				Threads:   viper.GetInt(hashParallelConfigKey),
			})
		},
	}

	configureHashFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(hashCmd)
}

func configureHashFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&hashModeFlag, modeFlagName, "m", viper.GetString(hashModeConfigKey), "hash mode: stub or sha256")
	bindFlagToConfig(cmd.Flags().Lookup(modeFlagName), hashModeConfigKey)

	cmd.Flags().IntVarP(&hashParallelFlag, parallelFlagName, "p", viper.GetInt(hashParallelConfigKey), "number of inputs hashed concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), hashParallelConfigKey)

	cmd.Flags().BoolVarP(&hashFileFlag, fileFlagName, "f", false, "treat inputs as file paths and hash their contents")
}

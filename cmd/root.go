// Package cmd provides the root command and CLI setup for fixtkit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"fixtkit.dev/pkg/fixtkit/internal/adapter"
	"fixtkit.dev/pkg/fixtkit/internal/controller"
	"fixtkit.dev/pkg/fixtkit/internal/domain"
)

var fsAdapter adapter.FSAdapter
var fixtureStore adapter.FixtureStore
var clock domain.Clock

// workflow is built on first use so the --plain flag can pick the UI.
var workflow domain.Workflow

var logPathFlag string
var verboseFlag bool
var plainFlag bool

func init() {
	configureRootFlags(rootCmd)

	fsAdapter = adapter.NewLocalFSAdapter()
	fixtureStore = adapter.NewYAMLFixtureStore(fsAdapter)
	clock = domain.NewSystemClock()
}

const rootLongDescription = `fixtkit carries the utility helpers and fake credential fixtures used to
exercise a secret scanner's test suite.

  date       format timestamps as YYYY-MM-DD
  hash       placeholder or SHA-256 digests
  constants  show the constants bag
  fixtures   list, export or check the fake secret fixtures

None of the fixture values are real credentials.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "fixtkit",
		Short:        "Date, hash and fake-secret fixture toolkit",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			reportConfigReadErr(cmd.ErrOrStderr(), configReadErr)

			if workflow == nil {
				workflow = buildWorkflow(cmd.Root())
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logPathFlag, logFlagName, viper.GetString(logFilenameKey), `log file path ("-" disables logging)`)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().BoolVar(&plainFlag, plainFlagName, viper.GetBool(plainConfigKey), "plain text output even on a terminal")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(plainFlagName), plainConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func buildWorkflow(cmd *cobra.Command) domain.Workflow {
	useTTY := !viper.GetBool(plainConfigKey) && controller.IsTTY(os.Stdout)
	ui := controller.NewUI(cmd, useTTY)

	return domain.NewWorkflow(fsAdapter, fixtureStore, ui, clock)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

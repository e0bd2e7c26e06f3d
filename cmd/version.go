package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	"fixtkit.dev/pkg/fixtkit/internal/domain"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go version used to build this tool and the API version constant.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("api version\t", domain.Constants().APIVersion)

			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("tool version\t unknown")
				return
			}

			cmd.Println("tool version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}

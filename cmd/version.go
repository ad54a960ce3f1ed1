package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	// No config or client needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "dexarr %s (built %s)\n", version, buildTime)
		if _, err := currentVersion(); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), "development build, self-update disabled")
		}
		return nil
	},
}

// currentVersion parses the build version, accepting a leading "v"
func currentVersion() (semver.Version, error) {
	return semver.ParseTolerant(version)
}

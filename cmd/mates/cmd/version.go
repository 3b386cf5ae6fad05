package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags. When unset, the module
// build info is used as a fallback.
var Version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mates version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "mates "+versionString())
	},
}

func versionString() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(unknown)"
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

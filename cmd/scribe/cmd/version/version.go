package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// set with -ldflags "-X speaker-scribe/cmd/scribe/cmd/version.version=..."
var version = "v0.1.0"

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of scribe",
	Long:  `All software has versions. This is scribe's.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), version)
		return nil
	},
}

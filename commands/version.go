package commands

import (
	"fmt"

	"github.com/bobmatnyc/memory-client-go/api"
	"github.com/spf13/cobra"
)

// Version information
var (
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of memctl",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("memctl version %s (commit: %s, built: %s)\n", api.Version, GitCommit, BuildTime)
	},
}

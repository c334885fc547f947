package commands

import (
	"github.com/bobmatnyc/memory-client-go/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [query]",
	Short: "Browse memories and entities interactively",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		initialQuery := ""
		if len(args) > 0 {
			initialQuery = args[0]
		}
		return tui.Browse(client, initialQuery)
	},
}

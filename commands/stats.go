package commands

import (
	"github.com/bobmatnyc/memory-client-go/utils"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show memory and entity counts for the current user",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		result, err := client.Statistics(cmd.Context())
		if err != nil {
			return err
		}

		if plainOutput {
			printResponse(result)
			return nil
		}

		utils.RenderKeyValues("Statistic", flattenPairs("", result))
		return nil
	},
}

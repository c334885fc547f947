package commands

import (
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the memory service is up",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		result, err := client.HealthCheck(cmd.Context())
		if err != nil {
			return err
		}

		printResponse(result)
		return nil
	},
}

package commands

import (
	"fmt"

	"github.com/bobmatnyc/memory-client-go/utils"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show service version and capabilities",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		result, err := client.ServiceInfo(cmd.Context())
		if err != nil {
			return err
		}

		if plainOutput {
			printResponse(result)
			return nil
		}

		lines := make([]string, 0, len(result))
		for _, p := range flattenPairs("", result) {
			lines = append(lines, fmt.Sprintf("%s: %s", p[0], p[1]))
		}
		fmt.Print(utils.RenderBox("Memory Service", lines))
		return nil
	},
}

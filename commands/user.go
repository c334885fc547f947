package commands

import (
	"github.com/bobmatnyc/memory-client-go/api"
	"github.com/spf13/cobra"
)

var (
	userName string
	userOrg  string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage service users",
}

func NewUserCmd() *cobra.Command {
	userCreateCmd.Flags().StringVar(&userName, "name", "", "Display name")
	userCreateCmd.Flags().StringVar(&userOrg, "organization", "", "Organization name")

	userCmd.AddCommand(userCreateCmd)

	return userCmd
}

var userCreateCmd = &cobra.Command{
	Use:   "create <email>",
	Short: "Provision a service account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		result, err := client.CreateUser(cmd.Context(), api.User{
			Email:        args[0],
			Name:         userName,
			Organization: userOrg,
		})
		if err != nil {
			return err
		}

		printResponse(result)
		return nil
	},
}

package commands

import (
	"fmt"
	"strings"

	"github.com/bobmatnyc/memory-client-go/api"
	"github.com/spf13/cobra"
)

var (
	entityDescription string
	entityImportance  int
	entityFields      []string

	entitySearchLimit int
)

var entityCmd = &cobra.Command{
	Use:   "entity",
	Short: "Create and search entities",
}

func NewEntityCmd() *cobra.Command {
	entityCreateCmd.Flags().StringVar(&entityDescription, "description", "", "Entity description")
	entityCreateCmd.Flags().IntVar(&entityImportance, "importance", 0, "Importance from 1 (low) to 4 (critical) (default 2)")
	entityCreateCmd.Flags().StringArrayVar(&entityFields, "field", nil, "Extra field as key=value (repeatable)")

	entitySearchCmd.Flags().IntVar(&entitySearchLimit, "limit", 0, "Maximum number of results (default 10)")

	entityCmd.AddCommand(entityCreateCmd)
	entityCmd.AddCommand(entitySearchCmd)

	return entityCmd
}

var entityCreateCmd = &cobra.Command{
	Use:   "create <name> <type>",
	Short: "Register a new entity",
	Long: `Register a named entity such as a person, organization or project.

Fields beyond the standard ones go through --field:

  memctl entity create "Acme Corp" organization --field website=https://acme.example.com`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		extra, err := parseFields(entityFields)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		result, err := client.CreateEntity(cmd.Context(), api.Entity{
			Name:        args[0],
			EntityType:  args[1],
			Description: entityDescription,
			Importance:  entityImportance,
			Extra:       extra,
		})
		if err != nil {
			return err
		}

		printResponse(result)
		return nil
	},
}

var entitySearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entities by name and description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		opts := searchOptions(entitySearchLimit, 0, nil, nil)
		result, err := client.SearchEntities(cmd.Context(), args[0], opts...)
		if err != nil {
			return err
		}

		printSearchResults(result, []string{"id", "name", "entity_type", "description", "created_at"})
		return nil
	},
}

// parseFields turns repeated key=value flags into an extra-field map.
func parseFields(assignments []string) (map[string]any, error) {
	if len(assignments) == 0 {
		return nil, nil
	}
	fields := make(map[string]any, len(assignments))
	for _, assignment := range assignments {
		key, value, ok := strings.Cut(assignment, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid field %q, expected key=value", assignment)
		}
		fields[key] = value
	}
	return fields, nil
}

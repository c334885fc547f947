package commands

import (
	"github.com/bobmatnyc/memory-client-go/api"
	"github.com/spf13/cobra"
)

var (
	searchLimit       int
	searchThreshold   float64
	searchMemoryTypes []string
	searchEntityTypes []string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search memories and entities together",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		opts := searchOptions(searchLimit, searchThreshold, searchMemoryTypes, searchEntityTypes)
		result, err := client.Search(cmd.Context(), args[0], opts...)
		if err != nil {
			return err
		}

		printSearchResults(result, []string{"id", "title", "name", "memory_type", "entity_type", "created_at"})
		return nil
	},
}

func NewSearchCmd() *cobra.Command {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum number of results (default 10)")
	searchCmd.Flags().Float64Var(&searchThreshold, "threshold", 0, "Minimum similarity score (default 0.7)")
	searchCmd.Flags().StringSliceVar(&searchMemoryTypes, "memory-type", nil, "Restrict to memory types (repeatable)")
	searchCmd.Flags().StringSliceVar(&searchEntityTypes, "entity-type", nil, "Restrict to entity types (repeatable)")

	return searchCmd
}

// searchOptions converts flag values into client search options, leaving
// unset flags to the client defaults.
func searchOptions(limit int, threshold float64, memoryTypes, entityTypes []string) []api.SearchOption {
	var opts []api.SearchOption
	if limit > 0 {
		opts = append(opts, api.WithLimit(limit))
	}
	if threshold > 0 {
		opts = append(opts, api.WithThreshold(threshold))
	}
	if len(memoryTypes) > 0 {
		opts = append(opts, api.WithMemoryTypes(memoryTypes...))
	}
	if len(entityTypes) > 0 {
		opts = append(opts, api.WithEntityTypes(entityTypes...))
	}
	return opts
}

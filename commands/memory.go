package commands

import (
	"github.com/bobmatnyc/memory-client-go/api"
	"github.com/spf13/cobra"
)

var (
	memoryTitle      string
	memoryContent    string
	memoryType       string
	memoryImportance int
	memoryTags       []string
	memoryEntityIDs  []int64

	memorySearchLimit     int
	memorySearchThreshold float64
	memorySearchTypes     []string
)

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Store and search memories",
}

func NewMemoryCmd() *cobra.Command {
	memoryAddCmd.Flags().StringVar(&memoryTitle, "title", "", "Memory title (required)")
	memoryAddCmd.Flags().StringVar(&memoryContent, "content", "", "Memory content (required)")
	memoryAddCmd.Flags().StringVar(&memoryType, "type", "", `Memory type such as MEMORY, FACT or TECHNICAL (default "MEMORY")`)
	memoryAddCmd.Flags().IntVar(&memoryImportance, "importance", 0, "Importance from 1 (low) to 4 (critical) (default 2)")
	memoryAddCmd.Flags().StringArrayVar(&memoryTags, "tag", nil, "Tag to attach (repeatable)")
	memoryAddCmd.Flags().Int64SliceVar(&memoryEntityIDs, "entity-id", nil, "Linked entity ID (repeatable)")
	memoryAddCmd.MarkFlagRequired("title")
	memoryAddCmd.MarkFlagRequired("content")

	memorySearchCmd.Flags().IntVar(&memorySearchLimit, "limit", 0, "Maximum number of results (default 10)")
	memorySearchCmd.Flags().Float64Var(&memorySearchThreshold, "threshold", 0, "Minimum similarity score (default 0.7)")
	memorySearchCmd.Flags().StringSliceVar(&memorySearchTypes, "type", nil, "Restrict results to memory types (repeatable)")

	memoryCmd.AddCommand(memoryAddCmd)
	memoryCmd.AddCommand(memorySearchCmd)

	return memoryCmd
}

var memoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Store a new memory",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		result, err := client.AddMemory(cmd.Context(), api.Memory{
			Title:      memoryTitle,
			Content:    memoryContent,
			MemoryType: memoryType,
			Importance: memoryImportance,
			Tags:       memoryTags,
			EntityIDs:  memoryEntityIDs,
		})
		if err != nil {
			return err
		}

		printResponse(result)
		return nil
	},
}

var memorySearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search stored memories by similarity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		opts := searchOptions(memorySearchLimit, memorySearchThreshold, memorySearchTypes, nil)
		result, err := client.SearchMemories(cmd.Context(), args[0], opts...)
		if err != nil {
			return err
		}

		printSearchResults(result, []string{"id", "title", "memory_type", "importance", "created_at"})
		return nil
	},
}

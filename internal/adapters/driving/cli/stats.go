package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show page store statistics",
	Long:  `Prints the number of indexed pages and documents, the average page length and when the index was last rebuilt.`,
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if err := initServices(); err != nil {
		return err
	}

	stats, err := pageStore.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	cmd.Printf("Pages:          %d\n", stats.TotalPages)
	cmd.Printf("Documents:      %d\n", stats.TotalDocuments)
	cmd.Printf("Avg page chars: %d\n", stats.AvgTextLength)
	if stats.LastIndexed != "" {
		cmd.Printf("Last indexed:   %s\n", stats.LastIndexed)
	}
	if stats.LastRunID != "" {
		cmd.Printf("Last run:       %s\n", stats.LastRunID)
	}
	return nil
}

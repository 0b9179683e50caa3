package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/policyq/policyq-cli/internal/core/domain"
)

var (
	searchLimit  int
	searchWindow int
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed policy pages",
	Long: `Scores every indexed page against the query with fuzzy partial
matching and prints the best pages with file name, page number, score
and a highlighted excerpt as provenance.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default from config, then 5)")
	searchCmd.Flags().IntVar(&searchWindow, "window", 0, "snippet window in characters (default from config, then 120)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// searchResult pairs a hit with its display snippet for JSON output.
type searchResult struct {
	domain.SearchHit
	Snippet domain.Snippet `json:"snippet"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	query := args[0]

	topK := searchLimit
	if topK <= 0 {
		topK = defaultTopK()
	}
	window := searchWindow
	if window <= 0 {
		window = defaultWindow()
	}

	hits, err := searchService.Search(cmd.Context(), query, domain.SearchOptions{TopK: topK})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	results := make([]searchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, searchResult{
			SearchHit: hit,
			Snippet:   domain.MakeSnippet(hit.Text, query, window),
		})
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []searchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []searchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found. Try different terms.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, r := range results {
		cmd.Printf("  [%d] %s p.%d (score %d)\n", i+1, r.DocumentName, r.PageNumber, r.Score.Total())
		if r.Section != "" {
			cmd.Printf("      Section: %s\n", r.Section)
		}
		if r.Snippet.Excerpt != "" {
			cmd.Printf("      %s\n", r.Snippet.Excerpt)
		}
		cmd.Println()
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index [directory]",
	Short: "Index policy documents into the page store",
	Long: `Walks a directory of policy documents (PDF, plain text, DOCX),
extracts text page by page and atomically replaces the search index.
Documents that fail to extract are skipped and reported as a warning.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	dir, err := resolveDocumentsDir(args)
	if err != nil {
		return err
	}

	cmd.Printf("Indexing %s...\n", dir)

	report, err := ingestService.Ingest(cmd.Context(), dir)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	cmd.Printf("Indexed %d pages.\n", report.PagesIndexed)
	if report.DocumentsSkipped > 0 {
		cmd.Printf("Warning: %d document(s) could not be read and were skipped.\n", report.DocumentsSkipped)
	}
	return nil
}

// Package cli implements the cobra command surface of PolicyQ.
// It is a driving adapter: commands wire configuration, the SQLite
// page store and the core services together, then call the driving
// ports. The retrieval core itself knows nothing about cobra.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/policyq/policyq-cli/internal/adapters/driven/config/file"
	"github.com/policyq/policyq-cli/internal/adapters/driven/storage/sqlite"
	"github.com/policyq/policyq-cli/internal/core/domain"
	"github.com/policyq/policyq-cli/internal/core/ports/driven"
	"github.com/policyq/policyq-cli/internal/core/ports/driving"
	"github.com/policyq/policyq-cli/internal/core/services"
	"github.com/policyq/policyq-cli/internal/extractors/docx"
	"github.com/policyq/policyq-cli/internal/extractors/pdf"
	"github.com/policyq/policyq-cli/internal/extractors/plaintext"
	"github.com/policyq/policyq-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagConfigDir string
	flagIndexPath string
	flagDocsDir   string
)

// Services used by the commands. Wired lazily by initServices;
// tests inject fakes instead.
var (
	configStore   *file.ConfigStore
	pageStore     driven.PageStore
	ingestService driving.Ingestor
	searchService driving.Searcher
)

var rootCmd = &cobra.Command{
	Use:   "policyq",
	Short: "Search company policy documents from the command line",
	Long: `PolicyQ indexes a directory of policy documents (PDF, plain text,
DOCX) into a page-level SQLite index and answers free-text questions
with scored page hits and highlighted excerpts.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.policyq)")
	rootCmd.PersistentFlags().StringVar(&flagIndexPath, "index", "", "index database path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDocsDir, "docs", "", "document directory (overrides config)")
}

// Execute runs the root command.
func Execute() error {
	defer closeStore()
	return rootCmd.Execute()
}

// initServices opens the config store, the page store and the core
// services on first use. Commands that touch the index call it from
// their RunE.
func initServices() error {
	if pageStore != nil && ingestService != nil && searchService != nil {
		return nil
	}

	cfg, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	configStore = cfg

	indexPath := flagIndexPath
	if indexPath == "" {
		indexPath = cfg.GetString(file.KeyIndexPath)
	}

	store, err := sqlite.NewStore(indexPath)
	if err != nil {
		return err
	}
	pageStore = store

	ingestService = services.NewIngestService(store, pdf.New(), plaintext.New(), docx.New())
	searchService = services.NewSearchService(store)
	return nil
}

func closeStore() {
	if pageStore != nil {
		pageStore.Close()
		pageStore = nil
	}
}

// resolveDocumentsDir picks the document directory: positional argument,
// then --docs, then the configured documents.dir.
func resolveDocumentsDir(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if flagDocsDir != "" {
		return flagDocsDir, nil
	}
	if configStore != nil {
		if dir := configStore.GetString(file.KeyDocumentsDir); dir != "" {
			return dir, nil
		}
	}
	return "", fmt.Errorf("no document directory: pass one as argument, via --docs, or set %s in config", file.KeyDocumentsDir)
}

// defaultTopK resolves the result limit: config, then the built-in default.
func defaultTopK() int {
	if configStore != nil {
		if v := configStore.GetInt(file.KeyTopK); v > 0 {
			return v
		}
	}
	return domain.DefaultTopK
}

// defaultWindow resolves the snippet window: config, then the built-in default.
func defaultWindow() int {
	if configStore != nil {
		if v := configStore.GetInt(file.KeyWindow); v > 0 {
			return v
		}
	}
	return domain.DefaultWindow
}

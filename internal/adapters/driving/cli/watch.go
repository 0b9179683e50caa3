package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/policyq/policyq-cli/internal/core/domain"
	"github.com/policyq/policyq-cli/internal/logger"
)

// watchDebounce batches bursts of filesystem events (editors write
// several times per save) into one reindex.
const watchDebounce = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Reindex automatically when documents change",
	Long: `Indexes the document directory, then watches it and rebuilds the
index whenever files are added, changed or removed. Each rebuild is the
same atomic replace the index command performs. Stop with Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	dir, err := resolveDocumentsDir(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reindex := func() {
		report, err := ingestService.Ingest(ctx, dir)
		if err != nil {
			cmd.PrintErrf("Reindex failed: %v\n", err)
			return
		}
		printReport(cmd, report)
	}

	reindex()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	cmd.Printf("Watching %s for changes (Ctrl-C to stop)...\n", dir)

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			cmd.Println("\nStopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				logger.Debug("Change detected: %s", event)
				debounce.Reset(watchDebounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)

		case <-debounce.C:
			reindex()
		}
	}
}

func printReport(cmd *cobra.Command, report domain.IngestReport) {
	cmd.Printf("Indexed %d pages", report.PagesIndexed)
	if report.DocumentsSkipped > 0 {
		cmd.Printf(" (%d documents skipped)", report.DocumentsSkipped)
	}
	cmd.Println()
}

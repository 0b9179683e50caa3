package cli

import (
	"bytes"
	"context"

	"github.com/policyq/policyq-cli/internal/core/domain"
)

// stubPageStore satisfies driven.PageStore for command tests.
type stubPageStore struct {
	stats domain.IndexStats
}

func (s *stubPageStore) ReplaceAll(context.Context, string, []domain.PageRecord) error { return nil }
func (s *stubPageStore) AllPages(context.Context) ([]domain.PageRecord, error)         { return nil, nil }
func (s *stubPageStore) Stats(context.Context) (domain.IndexStats, error)              { return s.stats, nil }
func (s *stubPageStore) Close() error                                                  { return nil }

// stubIngestor satisfies driving.Ingestor.
type stubIngestor struct {
	report  domain.IngestReport
	err     error
	lastDir string
}

func (s *stubIngestor) Ingest(_ context.Context, dir string) (domain.IngestReport, error) {
	s.lastDir = dir
	return s.report, s.err
}

// stubSearcher satisfies driving.Searcher.
type stubSearcher struct {
	hits      []domain.SearchHit
	err       error
	lastQuery string
	lastOpts  domain.SearchOptions
}

func (s *stubSearcher) Search(_ context.Context, query string, opts domain.SearchOptions) ([]domain.SearchHit, error) {
	s.lastQuery = query
	s.lastOpts = opts
	return s.hits, s.err
}

// setupTestServices injects stub services and returns a cleanup func.
func setupTestServices(store *stubPageStore, ingestor *stubIngestor, searcher *stubSearcher) func() {
	pageStore = store
	ingestService = ingestor
	searchService = searcher
	return func() {
		pageStore = nil
		ingestService = nil
		searchService = nil
		configStore = nil
	}
}

// executeCommand runs the root command with args and captures output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

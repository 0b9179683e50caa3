package driven

import (
	"context"

	"github.com/policyq/policyq-cli/internal/core/domain"
)

// PageStore persists extracted page records.
// Backed by SQLite; the table is fully owned private state of the core,
// written only through ingest.
type PageStore interface {
	// ReplaceAll atomically replaces the entire store contents with the
	// given pages and records the ingest run. On failure the previous
	// contents remain intact, never a mixture.
	ReplaceAll(ctx context.Context, runID string, pages []domain.PageRecord) error

	// AllPages returns every stored page, ordered by
	// (document name, page number) for reproducible scans.
	AllPages(ctx context.Context) ([]domain.PageRecord, error)

	// Stats summarises the current store contents.
	Stats(ctx context.Context) (domain.IndexStats, error)

	// Close releases the underlying database handle.
	Close() error
}

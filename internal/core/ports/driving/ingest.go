package driving

import (
	"context"

	"github.com/policyq/policyq-cli/internal/core/domain"
)

// Ingestor (re)populates the page store from a document directory.
type Ingestor interface {
	// Ingest walks dir, extracts every supported document page by page
	// and atomically replaces the page store contents. Documents that
	// fail to extract are skipped and counted, never fatal.
	Ingest(ctx context.Context, dir string) (domain.IngestReport, error)
}

package driven

import (
	"context"

	"github.com/policyq/policyq-cli/internal/core/domain"
)

// Extractor turns one source document into page records.
// Implementations live in internal/extractors and are selected by file
// extension during ingest.
type Extractor interface {
	// Extensions returns the lower-case file extensions this extractor
	// handles, including the leading dot.
	Extensions() []string

	// Extract reads the document at path and returns one PageRecord per
	// physical page, cleaned and with an optional inferred section.
	// A page that fails to extract yields an empty-text record so page
	// counts are preserved; a document-level failure returns an error
	// and the caller skips the document.
	Extract(ctx context.Context, path string) ([]domain.PageRecord, error)
}

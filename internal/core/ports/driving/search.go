package driving

import (
	"context"

	"github.com/policyq/policyq-cli/internal/core/domain"
)

// Searcher answers free-text queries against the page store.
type Searcher interface {
	// Search scans every stored page, scores it against the query and
	// returns the top hits ordered by descending score. An empty or
	// whitespace-only query yields an empty result, not an error.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchHit, error)
}

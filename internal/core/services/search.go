package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/policyq/policyq-cli/internal/core/domain"
	"github.com/policyq/policyq-cli/internal/core/ports/driven"
	"github.com/policyq/policyq-cli/internal/core/ports/driving"
	"github.com/policyq/policyq-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.Searcher = (*SearchService)(nil)

// SearchService answers queries with a full scan of the page store.
// Every query is O(pages); no secondary index exists.
type SearchService struct {
	pages driven.PageStore
}

// NewSearchService creates a new search service.
func NewSearchService(pages driven.PageStore) *SearchService {
	return &SearchService{pages: pages}
}

// Search scores every stored page against the query and returns the
// top hits by descending score. Ties resolve by (document name, page
// number) ascending so output order is fully deterministic.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchHit, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	// An empty query yields zero hits rather than matching everything.
	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchHit{}, nil
	}

	topK := opts.TopK
	if topK <= 0 {
		topK = domain.DefaultTopK
	}
	logger.Debug("TopK: %d", topK)

	queryNorm := NormalizeForMatch(query)
	if queryNorm == "" {
		logger.Debug("Query normalised to nothing, returning no results")
		return []domain.SearchHit{}, nil
	}

	pages, err := s.pages.AllPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading page store: %w", err)
	}
	logger.Debug("Scanning %d pages", len(pages))

	hits := make([]domain.SearchHit, 0, topK)
	for _, page := range pages {
		score := ScorePage(queryNorm, page)
		if !score.IsCandidate() {
			continue
		}
		hits = append(hits, domain.SearchHit{
			DocumentName: page.DocumentName,
			PageNumber:   page.PageNumber,
			Score:        score,
			Text:         page.Text,
			Section:      page.Section,
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		if ti, tj := hits[i].Score.Total(), hits[j].Score.Total(); ti != tj {
			return ti > tj
		}
		if hits[i].DocumentName != hits[j].DocumentName {
			return hits[i].DocumentName < hits[j].DocumentName
		}
		return hits[i].PageNumber < hits[j].PageNumber
	})

	if len(hits) > topK {
		hits = hits[:topK]
	}

	if len(hits) > 0 {
		logger.Info("Found %d hits, top score %d", len(hits), hits[0].Score.Total())
	} else {
		logger.Info("No hits")
	}

	return hits, nil
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/policyq/policyq-cli/internal/core/domain"
)

// fakePageStore is an in-memory PageStore for service tests.
type fakePageStore struct {
	pages      []domain.PageRecord
	readErr    error
	replaceErr error
	lastRunID  string
}

func (f *fakePageStore) ReplaceAll(_ context.Context, runID string, pages []domain.PageRecord) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.lastRunID = runID
	f.pages = append([]domain.PageRecord(nil), pages...)
	return nil
}

func (f *fakePageStore) AllPages(_ context.Context) ([]domain.PageRecord, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.pages, nil
}

func (f *fakePageStore) Stats(_ context.Context) (domain.IndexStats, error) {
	return domain.IndexStats{TotalPages: len(f.pages)}, nil
}

func (f *fakePageStore) Close() error { return nil }

func TestSearch_EmptyQuery(t *testing.T) {
	svc := NewSearchService(&fakePageStore{pages: []domain.PageRecord{{Text: "anything"}}})

	for _, query := range []string{"", "   ", "\t\n", "、。"} {
		hits, err := svc.Search(context.Background(), query, domain.SearchOptions{})
		require.NoError(t, err)
		assert.Empty(t, hits, "query %q must match nothing", query)
	}
}

func TestSearch_EmptyStore(t *testing.T) {
	svc := NewSearchService(&fakePageStore{})

	hits, err := svc.Search(context.Background(), "有給", domain.SearchOptions{})

	require.NoError(t, err, "an empty store is a normal outcome, not an error")
	assert.Empty(t, hits)
}

func TestSearch_StoreErrorPropagated(t *testing.T) {
	store := &fakePageStore{readErr: domain.ErrStoreUnavailable}
	svc := NewSearchService(store)

	hits, err := svc.Search(context.Background(), "有給", domain.SearchOptions{})

	// A store failure must never be masked as an empty result.
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))
	assert.Nil(t, hits)
}

func TestSearch_SingleJapanesePage(t *testing.T) {
	store := &fakePageStore{pages: []domain.PageRecord{{
		DocumentName: "rules.pdf",
		PageNumber:   1,
		Text:         "有給休暇は年10日、繰越は翌年度まで可能です。",
	}}}
	svc := NewSearchService(store)

	hits, err := svc.Search(context.Background(), "繰越", domain.SearchOptions{})

	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "rules.pdf", hits[0].DocumentName)
	assert.Equal(t, 1, hits[0].PageNumber)
	assert.Greater(t, hits[0].Score.Total(), 0)
}

func TestSearch_ExcludesZeroScores(t *testing.T) {
	store := &fakePageStore{pages: []domain.PageRecord{
		{DocumentName: "a.pdf", PageNumber: 1, Text: "vacation carry-over rules"},
		{DocumentName: "b.pdf", PageNumber: 1, Text: "無関係な日本語のページ"},
	}}
	svc := NewSearchService(store)

	hits, err := svc.Search(context.Background(), "vacation", domain.SearchOptions{})

	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "a.pdf", hits[0].DocumentName)
	for _, h := range hits {
		assert.Greater(t, h.Score.Total(), 0)
	}
}

func TestSearch_OrderingAndTieBreak(t *testing.T) {
	// Identical texts produce identical scores; order must then be
	// (document name, page number) ascending, deterministically.
	shared := "overtime must be approved in advance"
	store := &fakePageStore{pages: []domain.PageRecord{
		{DocumentName: "b.pdf", PageNumber: 2, Text: shared},
		{DocumentName: "a.pdf", PageNumber: 3, Text: shared},
		{DocumentName: "a.pdf", PageNumber: 1, Text: shared},
		{DocumentName: "c.pdf", PageNumber: 1, Text: "overtime compensation overtime approval overtime", Section: "overtime"},
	}}
	svc := NewSearchService(store)

	for i := 0; i < 5; i++ {
		hits, err := svc.Search(context.Background(), "overtime", domain.SearchOptions{TopK: 10})
		require.NoError(t, err)
		require.Len(t, hits, 4)

		// c.pdf carries the section bonus and sorts first.
		assert.Equal(t, "c.pdf", hits[0].DocumentName)

		assert.Equal(t, "a.pdf", hits[1].DocumentName)
		assert.Equal(t, 1, hits[1].PageNumber)
		assert.Equal(t, "a.pdf", hits[2].DocumentName)
		assert.Equal(t, 3, hits[2].PageNumber)
		assert.Equal(t, "b.pdf", hits[3].DocumentName)

		for j := 1; j < len(hits); j++ {
			assert.GreaterOrEqual(t, hits[j-1].Score.Total(), hits[j].Score.Total())
		}
	}
}

func TestSearch_TopKTruncation(t *testing.T) {
	var pages []domain.PageRecord
	for i := 1; i <= 8; i++ {
		pages = append(pages, domain.PageRecord{
			DocumentName: "handbook.pdf",
			PageNumber:   i,
			Text:         "expense reimbursement procedure",
		})
	}
	store := &fakePageStore{pages: pages}
	svc := NewSearchService(store)

	hits, err := svc.Search(context.Background(), "expense", domain.SearchOptions{TopK: 3})
	require.NoError(t, err)
	assert.Len(t, hits, 3)

	// TopK <= 0 falls back to the default.
	hits, err = svc.Search(context.Background(), "expense", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Len(t, hits, domain.DefaultTopK)
}

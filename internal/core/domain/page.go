package domain

import "time"

// Default tunables for the retrieval core. Both can be overridden
// per call through SearchOptions and MakeSnippet.
const (
	// DefaultTopK is the default maximum number of search hits.
	DefaultTopK = 5

	// DefaultWindow is the default snippet window, in runes, taken
	// on each side of a match.
	DefaultWindow = 120
)

// PageRecord is one physical page of a source document, as persisted
// in the page store. The store is a derived cache: every ingest run
// rebuilds it wholesale from the documents currently on disk.
type PageRecord struct {
	// DocumentName is the display identifier of the source file.
	// Unique in combination with PageNumber.
	DocumentName string

	// DocumentPath is the resolved location of the source file at
	// ingest time.
	DocumentPath string

	// PageNumber is the 1-based ordinal within the document.
	PageNumber int

	// Text is the extracted, whitespace-normalised page content.
	// Empty when extraction failed for this page.
	Text string

	// Section is an optional coarse label (detected heading or
	// clause number). Empty when nothing could be inferred.
	Section string

	// CreatedAt is the ingestion timestamp.
	CreatedAt time.Time
}

// SearchHit is a single scored page returned by a search.
// Transient: created fresh per query, never persisted.
type SearchHit struct {
	DocumentName string `json:"document_name"`
	PageNumber   int    `json:"page_number"`
	Score        Score  `json:"score"`
	Text         string `json:"text"`
	Section      string `json:"section,omitempty"`
}

// SearchOptions configures a search query.
type SearchOptions struct {
	// TopK is the maximum number of results. Values <= 0 fall back
	// to DefaultTopK.
	TopK int
}

// IngestReport summarises one ingest run.
type IngestReport struct {
	// RunID uniquely identifies the ingest run.
	RunID string

	// PagesIndexed is the number of pages written to the store.
	PagesIndexed int

	// DocumentsSkipped counts documents that failed to extract and
	// were left out of the index. A warning signal, not a failure.
	DocumentsSkipped int
}

// IndexStats describes the current contents of the page store.
type IndexStats struct {
	TotalPages     int
	TotalDocuments int
	AvgTextLength  int
	LastIndexed    string
	LastRunID      string
}

package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/policyq/policyq-cli/internal/core/domain"
	"github.com/policyq/policyq-cli/internal/core/ports/driven"
	"github.com/policyq/policyq-cli/internal/core/ports/driving"
	"github.com/policyq/policyq-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.Ingestor = (*IngestService)(nil)

// IngestService walks a document directory and rebuilds the page store.
type IngestService struct {
	pages      driven.PageStore
	extractors map[string]driven.Extractor
}

// NewIngestService creates a new ingest service. Extractors are keyed
// by the file extensions they report; a later extractor claiming an
// already-registered extension wins.
func NewIngestService(pages driven.PageStore, extractors ...driven.Extractor) *IngestService {
	byExt := make(map[string]driven.Extractor)
	for _, ex := range extractors {
		for _, ext := range ex.Extensions() {
			byExt[strings.ToLower(ext)] = ex
		}
	}
	return &IngestService{pages: pages, extractors: byExt}
}

// Ingest extracts every supported document under dir, in lexicographic
// filename order, and atomically replaces the page store contents.
// Files with no registered extractor are ignored; documents whose
// extraction fails are skipped, counted and reported, never fatal.
// A directory with zero matching documents leaves the store empty.
func (s *IngestService) Ingest(ctx context.Context, dir string) (domain.IngestReport, error) {
	logger.Section("Ingest")
	logger.Debug("Directory: %s", dir)

	report := domain.IngestReport{RunID: uuid.NewString()}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return report, fmt.Errorf("reading document directory: %w", err)
	}

	now := time.Now().UTC()
	var all []domain.PageRecord

	// os.ReadDir returns entries sorted by filename, which makes
	// re-runs reproducible.
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		extractor, ok := s.extractors[strings.ToLower(filepath.Ext(name))]
		if !ok {
			continue
		}

		path := filepath.Join(dir, name)
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}

		pages, err := extractor.Extract(ctx, path)
		if err != nil {
			logger.Warn("Skipping %s: %v", name, err)
			report.DocumentsSkipped++
			continue
		}

		for i := range pages {
			pages[i].CreatedAt = now
		}
		all = append(all, pages...)
		logger.Debug("Extracted %d pages from %s", len(pages), name)
	}

	if err := s.pages.ReplaceAll(ctx, report.RunID, all); err != nil {
		return report, fmt.Errorf("replacing page store: %w", err)
	}

	report.PagesIndexed = len(all)
	logger.Info("Run %s: indexed %d pages, skipped %d documents",
		report.RunID, report.PagesIndexed, report.DocumentsSkipped)

	return report, nil
}
